package repository

import (
	"database/sql"
	"errors"
	"fmt"

	"online_store/internal/domain"

	"github.com/lib/pq"
	"github.com/sirupsen/logrus"
)

type postgresUserRepository struct {
	db  *sql.DB
	log *logrus.Logger
}

func NewPostgresUserRepository(db *sql.DB, logger *logrus.Logger) domain.UserRepository {
	return &postgresUserRepository{
		db:  db,
		log: logger,
	}
}

func (r *postgresUserRepository) CreateUser(user *domain.User) (*domain.User, error) {
	query := `
        INSERT INTO users (user_email, user_first_name, user_last_name, user_address, product_id)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING user_id`
	err := r.db.QueryRow(query,
		user.UserEmail,
		user.UserFirstName,
		user.UserLastName,
		user.UserAddress,
		user.ProductID,
	).Scan(&user.UserID)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23503" {
			r.log.Warnf("Attempted to create user for non-existent product ID: %d", user.ProductID)
			return nil, fmt.Errorf("product with id %d not found", user.ProductID)
		}
		r.log.Errorf("Failed to create user '%s': %v", user.UserEmail, err)
		return nil, fmt.Errorf("could not create user: %w", err)
	}
	r.log.Infof("User created successfully with ID: %d for product %d", user.UserID, user.ProductID)
	return user, nil
}

func (r *postgresUserRepository) GetUserByID(id int64) (*domain.User, error) {
	query := `
        SELECT user_id, user_email, user_first_name, user_last_name, user_address, product_id
        FROM users
        WHERE user_id = $1`
	user := &domain.User{}
	err := r.db.QueryRow(query, id).Scan(
		&user.UserID,
		&user.UserEmail,
		&user.UserFirstName,
		&user.UserLastName,
		&user.UserAddress,
		&user.ProductID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			r.log.Warnf("User with ID %d not found", id)
			return nil, fmt.Errorf("user with id %d not found", id)
		}
		r.log.Errorf("Failed to get user by ID %d: %v", id, err)
		return nil, fmt.Errorf("could not get user by id: %w", err)
	}
	r.log.Infof("User retrieved successfully with ID: %d", id)
	return user, nil
}

func (r *postgresUserRepository) UpdateUser(user *domain.User) (*domain.User, error) {
	query := `
        UPDATE users
        SET user_email = $1, user_first_name = $2, user_last_name = $3, user_address = $4, product_id = $5
        WHERE user_id = $6`
	result, err := r.db.Exec(query,
		user.UserEmail,
		user.UserFirstName,
		user.UserLastName,
		user.UserAddress,
		user.ProductID,
		user.UserID,
	)
	if err != nil {
		r.log.Errorf("Failed to update user ID %d: %v", user.UserID, err)
		return nil, fmt.Errorf("could not update user: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		r.log.Errorf("Failed to get rows affected after updating user ID %d: %v", user.UserID, err)
		return nil, fmt.Errorf("could not confirm user update: %w", err)
	}
	if rowsAffected == 0 {
		r.log.Warnf("User with ID %d not found for update", user.UserID)
		return nil, fmt.Errorf("user with id %d not found", user.UserID)
	}
	r.log.Infof("User updated successfully with ID: %d", user.UserID)
	return user, nil
}
