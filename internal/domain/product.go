package domain

type ProductRepository interface {
	CreateProduct(product *Product) (*Product, error)
	// GetProductByID returns the product with its users and categories loaded.
	GetProductByID(id int64) (*Product, error)
	// UpdateProduct overwrites every scalar field of the stored product.
	UpdateProduct(product *Product) (*Product, error)
	DeleteProduct(id int64) error
	// ListProducts returns scalar fields only, without associations.
	ListProducts() ([]Product, error)
}
