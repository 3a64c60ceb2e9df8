package domain

type Product struct {
	ProductID          int64      `json:"productId"`
	ProductName        string     `json:"productName"`
	ProductDescription string     `json:"productDescription"`
	ProductPrice       int64      `json:"productPrice"`
	ProductQuantity    int64      `json:"productQuantity"`
	Users              []User     `json:"users"`
	Categories         []Category `json:"categories"`
}

type User struct {
	UserID        int64  `json:"userId"`
	UserEmail     string `json:"userEmail"`
	UserFirstName string `json:"userFirstName"`
	UserLastName  string `json:"userLastName"`
	UserAddress   string `json:"userAddress"`
	ProductID     int64  `json:"-"` // owning product, kept off the wire
}

type Category struct {
	CategoryID   int64  `json:"categoryId"`
	CategoryName string `json:"categoryName"`
}
