package usecase

import (
	"errors"
	"fmt"

	"online_store/internal/domain"

	"github.com/sirupsen/logrus"
)

type StoreUseCase interface {
	SaveProduct(product *domain.Product) (*domain.Product, error)
	SaveUser(productID int64, user *domain.User) (*domain.User, error)
	SaveCategory(productID int64, category *domain.Category) (*domain.Category, error)
	GetProductByID(id int64) (*domain.Product, error)
	ListProducts() ([]domain.Product, error)
	DeleteProduct(id int64) error
}

type storeUseCase struct {
	productRepo  domain.ProductRepository
	userRepo     domain.UserRepository
	categoryRepo domain.CategoryRepository
	log          *logrus.Logger
}

func NewStoreUseCase(pRepo domain.ProductRepository, uRepo domain.UserRepository, cRepo domain.CategoryRepository, logger *logrus.Logger) StoreUseCase {
	return &storeUseCase{
		productRepo:  pRepo,
		userRepo:     uRepo,
		categoryRepo: cRepo,
		log:          logger,
	}
}

// SaveProduct creates the product when no ID is supplied, otherwise overwrites
// every scalar field of the existing one. Partial updates are not supported:
// fields omitted from the input are written as their zero values.
func (uc *storeUseCase) SaveProduct(product *domain.Product) (*domain.Product, error) {
	if product.ProductID == 0 {
		uc.log.Infof("Use Case: Attempting to create product '%s'", product.ProductName)
		createdProduct, err := uc.productRepo.CreateProduct(product)
		if err != nil {
			uc.log.Errorf("Use Case: Repository failed to create product '%s': %v", product.ProductName, err)
			return nil, err
		}
		createdProduct.Users = []domain.User{}
		createdProduct.Categories = []domain.Category{}
		uc.log.Infof("Use Case: Product '%s' created successfully with ID %d", createdProduct.ProductName, createdProduct.ProductID)
		return createdProduct, nil
	}

	if _, err := uc.productRepo.GetProductByID(product.ProductID); err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for update: %v", product.ProductID, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Attempting to update product ID %d", product.ProductID)
	if _, err := uc.productRepo.UpdateProduct(product); err != nil {
		uc.log.Errorf("Use Case: Repository failed to update product ID %d: %v", product.ProductID, err)
		return nil, err
	}

	// Re-read so the returned shape carries the current associations.
	updatedProduct, err := uc.productRepo.GetProductByID(product.ProductID)
	if err != nil {
		uc.log.Errorf("Use Case: Failed to reload product ID %d after update: %v", product.ProductID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Product updated successfully for ID %d", updatedProduct.ProductID)
	return updatedProduct, nil
}

// SaveUser attaches or updates a user under the given product. A user addressed
// by ID must already belong to that product; referencing it through any other
// product is an ownership violation, not a not-found.
func (uc *storeUseCase) SaveUser(productID int64, user *domain.User) (*domain.User, error) {
	product, err := uc.productRepo.GetProductByID(productID)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for user save: %v", productID, err)
		return nil, err
	}

	if user.UserID == 0 {
		user.ProductID = product.ProductID
		uc.log.Infof("Use Case: Attempting to create user '%s' for product %d", user.UserEmail, productID)
		createdUser, err := uc.userRepo.CreateUser(user)
		if err != nil {
			uc.log.Errorf("Use Case: Repository failed to create user '%s': %v", user.UserEmail, err)
			return nil, err
		}
		uc.log.Infof("Use Case: User created successfully with ID %d for product %d", createdUser.UserID, productID)
		return createdUser, nil
	}

	existingUser, err := uc.userRepo.GetUserByID(user.UserID)
	if err != nil {
		uc.log.Warnf("Use Case: User ID %d not found: %v", user.UserID, err)
		return nil, err
	}
	if existingUser.ProductID != productID {
		uc.log.Warnf("Use Case: User ID %d belongs to product %d, not product %d", user.UserID, existingUser.ProductID, productID)
		return nil, fmt.Errorf("user with id %d does not belong to product with id %d", user.UserID, productID)
	}

	existingUser.UserEmail = user.UserEmail
	existingUser.UserFirstName = user.UserFirstName
	existingUser.UserLastName = user.UserLastName
	existingUser.UserAddress = user.UserAddress
	existingUser.ProductID = product.ProductID

	uc.log.Infof("Use Case: Attempting to update user ID %d for product %d", existingUser.UserID, productID)
	updatedUser, err := uc.userRepo.UpdateUser(existingUser)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update user ID %d: %v", existingUser.UserID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: User updated successfully for ID %d", updatedUser.UserID)
	return updatedUser, nil
}

// SaveCategory attaches or updates a category in the given product's category
// set. Unlike product upsert, supplying a category ID never creates the link:
// the category must already be a member of the product's set.
func (uc *storeUseCase) SaveCategory(productID int64, category *domain.Category) (*domain.Category, error) {
	product, err := uc.productRepo.GetProductByID(productID)
	if err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for category save: %v", productID, err)
		return nil, err
	}

	if category.CategoryID == 0 {
		uc.log.Infof("Use Case: Attempting to create category '%s' for product %d", category.CategoryName, productID)
		createdCategory, err := uc.categoryRepo.CreateCategoryForProduct(category, product.ProductID)
		if err != nil {
			uc.log.Errorf("Use Case: Repository failed to create category '%s': %v", category.CategoryName, err)
			return nil, err
		}
		uc.log.Infof("Use Case: Category created successfully with ID %d for product %d", createdCategory.CategoryID, productID)
		return createdCategory, nil
	}

	existingCategory, err := uc.categoryRepo.GetCategoryByID(category.CategoryID)
	if err != nil {
		uc.log.Warnf("Use Case: Category ID %d not found: %v", category.CategoryID, err)
		return nil, err
	}

	member := false
	for _, c := range product.Categories {
		if c.CategoryID == existingCategory.CategoryID {
			member = true
			break
		}
	}
	if !member {
		uc.log.Warnf("Use Case: Category ID %d is not linked to product %d", category.CategoryID, productID)
		return nil, fmt.Errorf("category with id %d is not linked to product with id %d", category.CategoryID, productID)
	}

	existingCategory.CategoryName = category.CategoryName

	uc.log.Infof("Use Case: Attempting to update category ID %d for product %d", existingCategory.CategoryID, productID)
	updatedCategory, err := uc.categoryRepo.UpdateCategory(existingCategory)
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to update category ID %d: %v", existingCategory.CategoryID, err)
		return nil, err
	}
	uc.log.Infof("Use Case: Category updated successfully for ID %d", updatedCategory.CategoryID)
	return updatedCategory, nil
}

func (uc *storeUseCase) GetProductByID(id int64) (*domain.Product, error) {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted to get product with invalid ID: %d", id)
		return nil, errors.New("invalid product ID")
	}

	uc.log.Infof("Use Case: Attempting to get product with ID %d", id)
	product, err := uc.productRepo.GetProductByID(id)
	if err != nil {
		uc.log.Warnf("Use Case: Repository failed to get product ID %d: %v", id, err)
		return nil, err
	}

	uc.log.Infof("Use Case: Product retrieved successfully for ID %d", id)
	return product, nil
}

// ListProducts returns summary records: the nested user and category sets are
// always empty in listing output. Full associations come from GetProductByID.
func (uc *storeUseCase) ListProducts() ([]domain.Product, error) {
	uc.log.Info("Use Case: Attempting to list all products")
	products, err := uc.productRepo.ListProducts()
	if err != nil {
		uc.log.Errorf("Use Case: Repository failed to list products: %v", err)
		return nil, fmt.Errorf("could not retrieve products: %w", err)
	}

	for i := range products {
		products[i].Users = []domain.User{}
		products[i].Categories = []domain.Category{}
	}

	uc.log.Infof("Use Case: Retrieved %d products", len(products))
	return products, nil
}

func (uc *storeUseCase) DeleteProduct(id int64) error {
	if id <= 0 {
		uc.log.Warnf("Use Case: Attempted delete with invalid product ID: %d", id)
		return errors.New("invalid product ID for delete")
	}

	if _, err := uc.productRepo.GetProductByID(id); err != nil {
		uc.log.Warnf("Use Case: Product ID %d not found for delete: %v", id, err)
		return err
	}

	uc.log.Infof("Use Case: Attempting to delete product ID %d", id)
	if err := uc.productRepo.DeleteProduct(id); err != nil {
		uc.log.Warnf("Use Case: Repository failed to delete product ID %d: %v", id, err)
		return err
	}
	uc.log.Infof("Use Case: Product deleted successfully for ID %d", id)
	return nil
}
