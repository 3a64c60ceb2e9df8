package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"online_store/internal/domain"

	"github.com/sirupsen/logrus"
)

type postgresProductRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresProductRepository(db *sql.DB, logger *logrus.Logger) domain.ProductRepository {
	return &postgresProductRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresProductRepository) CreateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        INSERT INTO products (product_name, product_description, product_price, product_quantity)
        VALUES ($1, $2, $3, $4)
        RETURNING product_id`
	err := r.db.QueryRow(query,
		product.ProductName,
		product.ProductDescription,
		product.ProductPrice,
		product.ProductQuantity,
	).Scan(&product.ProductID)
	if err != nil {
		r.log.Errorf("Failed to create product '%s': %v", product.ProductName, err)
		return nil, fmt.Errorf("could not create product: %w", err)
	}
	r.log.Infof("Product created successfully with ID: %d, Name: %s", product.ProductID, product.ProductName)
	return product, nil
}

func (r *postgresProductRepository) GetProductByID(id int64) (*domain.Product, error) {
	query := `
        SELECT product_id, product_name, product_description, product_price, product_quantity
        FROM products
        WHERE product_id = $1`
	product := &domain.Product{}
	err := r.db.QueryRow(query, id).Scan(
		&product.ProductID,
		&product.ProductName,
		&product.ProductDescription,
		&product.ProductPrice,
		&product.ProductQuantity,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Product with ID %d not found", id)
			return nil, fmt.Errorf("product with id %d not found", id)
		}
		r.log.Errorf("Failed to get product by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get product by id: %w", err)
	}

	users, err := r.usersForProduct(id)
	if err != nil {
		return nil, err
	}
	product.Users = users

	categories, err := r.categoriesForProduct(id)
	if err != nil {
		return nil, err
	}
	product.Categories = categories

	r.log.Infof("Product retrieved successfully with ID: %d", id)
	return product, nil
}

func (r *postgresProductRepository) usersForProduct(productID int64) ([]domain.User, error) {
	query := `
        SELECT user_id, user_email, user_first_name, user_last_name, user_address, product_id
        FROM users
        WHERE product_id = $1
        ORDER BY user_id ASC`
	rows, err := r.db.Query(query, productID)
	if err != nil {
		r.log.Errorf("Failed to load users for product %d: %v", productID, err)
		return nil, fmt.Errorf("could not load users for product: %w", err)
	}
	defer rows.Close()

	users := []domain.User{}
	for rows.Next() {
		var user domain.User
		if err := rows.Scan(
			&user.UserID,
			&user.UserEmail,
			&user.UserFirstName,
			&user.UserLastName,
			&user.UserAddress,
			&user.ProductID,
		); err != nil {
			r.log.Errorf("Failed to scan user row for product %d: %v", productID, err)
			return nil, fmt.Errorf("error scanning user data: %w", err)
		}
		users = append(users, user)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during users iteration for product %d: %v", productID, err)
		return nil, fmt.Errorf("error iterating users: %w", err)
	}
	return users, nil
}

func (r *postgresProductRepository) categoriesForProduct(productID int64) ([]domain.Category, error) {
	query := `
        SELECT c.category_id, c.category_name
        FROM categories c
        JOIN category_product cp ON cp.category_id = c.category_id
        WHERE cp.product_id = $1
        ORDER BY c.category_id ASC`
	rows, err := r.db.Query(query, productID)
	if err != nil {
		r.log.Errorf("Failed to load categories for product %d: %v", productID, err)
		return nil, fmt.Errorf("could not load categories for product: %w", err)
	}
	defer rows.Close()

	categories := []domain.Category{}
	for rows.Next() {
		var category domain.Category
		if err := rows.Scan(&category.CategoryID, &category.CategoryName); err != nil {
			r.log.Errorf("Failed to scan category row for product %d: %v", productID, err)
			return nil, fmt.Errorf("error scanning category data: %w", err)
		}
		categories = append(categories, category)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during categories iteration for product %d: %v", productID, err)
		return nil, fmt.Errorf("error iterating categories: %w", err)
	}
	return categories, nil
}

func (r *postgresProductRepository) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	query := `
        UPDATE products
        SET product_name = $1, product_description = $2, product_price = $3, product_quantity = $4
        WHERE product_id = $5`
	result, err := r.db.Exec(query,
		product.ProductName,
		product.ProductDescription,
		product.ProductPrice,
		product.ProductQuantity,
		product.ProductID,
	)
	if err != nil {
		r.log.Errorf("Failed to update product ID %d: %v", product.ProductID, err)
		return nil, fmt.Errorf("could not update product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating product ID %d: %v", product.ProductID, err)
		return nil, fmt.Errorf("could not confirm product update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Product with ID %d not found for update", product.ProductID)
		return nil, fmt.Errorf("product with id %d not found", product.ProductID)
	}
	r.log.Infof("Product updated successfully with ID: %d", product.ProductID)
	return product, nil
}

func (r *postgresProductRepository) DeleteProduct(id int64) error {
	query := `DELETE FROM products WHERE product_id = $1`
	result, err := r.db.Exec(query, id)
	if err != nil {
		r.log.Errorf("Failed to delete product ID %d: %v", id, err)
		return fmt.Errorf("could not delete product: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after deleting product ID %d: %v", id, err)
		return fmt.Errorf("could not confirm product deletion: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("Attempted to delete non-existent product ID %d", id)
		return fmt.Errorf("product with id %d not found", id)
	}
	r.log.Infof("Product deleted successfully with ID: %d", id)
	return nil
}

func (r *postgresProductRepository) ListProducts() ([]domain.Product, error) {
	query := `
        SELECT product_id, product_name, product_description, product_price, product_quantity
        FROM products
        ORDER BY product_id ASC`
	rows, err := r.db.Query(query)
	if err != nil {
		r.log.Errorf("Failed to list products: %v", err)
		return nil, fmt.Errorf("could not list products: %w", err)
	}
	defer rows.Close()

	products := []domain.Product{}
	for rows.Next() {
		var product domain.Product
		if err := rows.Scan(
			&product.ProductID,
			&product.ProductName,
			&product.ProductDescription,
			&product.ProductPrice,
			&product.ProductQuantity,
		); err != nil {
			r.log.Errorf("Failed to scan product row: %v", err)
			return nil, fmt.Errorf("error scanning product data: %w", err)
		}
		products = append(products, product)
	}
	if err = rows.Err(); err != nil {
		r.log.Errorf("Error during products list iteration: %v", err)
		return nil, fmt.Errorf("error iterating products: %w", err)
	}
	r.log.Infof("Retrieved %d products", len(products))
	return products, nil
}
