package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"online_store/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresCategoryRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresCategoryRepository(db *sql.DB, logger *logrus.Logger) domain.CategoryRepository {
	return &postgresCategoryRepository{
		db:  db,
		log: logger,
	}
}

// CreateCategoryForProduct inserts the category row and its category_product link
// together, so the category never exists unlinked.
func (r *postgresCategoryRepository) CreateCategoryForProduct(category *domain.Category, productID int64) (*domain.Category, error) {
	tx, err := r.db.Begin()
	if err != nil {
		r.log.Errorf("Failed to begin transaction for category '%s': %v", category.CategoryName, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}
	defer tx.Rollback()

	err = tx.QueryRow(
		`INSERT INTO categories (category_name) VALUES ($1) RETURNING category_id`,
		category.CategoryName,
	).Scan(&category.CategoryID)
	if err != nil {
		r.log.Errorf("Failed to create category '%s': %v", category.CategoryName, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}

	_, err = tx.Exec(
		`INSERT INTO category_product (category_id, product_id) VALUES ($1, $2)`,
		category.CategoryID, productID,
	)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to link category '%s' to non-existent product ID: %d", category.CategoryName, productID)
			return nil, fmt.Errorf("product with id %d not found", productID)
		}
		r.log.Errorf("Failed to link category %d to product %d: %v", category.CategoryID, productID, err)
		return nil, fmt.Errorf("could not link category to product: %w", err)
	}

	if err := tx.Commit(); err != nil {
		r.log.Errorf("Failed to commit category '%s' for product %d: %v", category.CategoryName, productID, err)
		return nil, fmt.Errorf("could not create category: %w", err)
	}

	r.log.Infof("Category created successfully with ID: %d, linked to product %d", category.CategoryID, productID)
	return category, nil
}

func (r *postgresCategoryRepository) GetCategoryByID(id int64) (*domain.Category, error) {
	query := `SELECT category_id, category_name FROM categories WHERE category_id = $1`
	category := &domain.Category{}
	err := r.db.QueryRow(query, id).Scan(&category.CategoryID, &category.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found", id)
			return nil, fmt.Errorf("category with id %d not found", id)
		}
		r.log.Errorf("Failed to get category by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get category by id: %w", err)
	}
	r.log.Infof("Category retrieved successfully with ID: %d", id)
	return category, nil
}

func (r *postgresCategoryRepository) UpdateCategory(category *domain.Category) (*domain.Category, error) {
	query := `UPDATE categories SET category_name = $1 WHERE category_id = $2 RETURNING category_id, category_name`
	err := r.db.QueryRow(query, category.CategoryName, category.CategoryID).Scan(&category.CategoryID, &category.CategoryName)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("Category with ID %d not found for update", category.CategoryID)
			return nil, fmt.Errorf("category with id %d not found", category.CategoryID)
		}
		r.log.Errorf("Failed to update category ID %d: %v", category.CategoryID, err)
		return nil, fmt.Errorf("could not update category: %w", err)
	}
	r.log.Infof("Category updated successfully with ID: %d", category.CategoryID)
	return category, nil
}
