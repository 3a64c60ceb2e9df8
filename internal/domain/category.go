package domain

type CategoryRepository interface {
	// CreateCategoryForProduct inserts the category and its link to the product
	// in a single transaction.
	CreateCategoryForProduct(category *Category, productID int64) (*Category, error)
	GetCategoryByID(id int64) (*Category, error)
	UpdateCategory(category *Category) (*Category, error)
}
