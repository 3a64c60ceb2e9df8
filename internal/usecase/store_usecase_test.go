package usecase

import (
	"fmt"
	"io"
	"sort"
	"testing"

	"online_store/internal/domain"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory stand-in for all three repository interfaces.
type fakeRepo struct {
	products   map[int64]domain.Product
	users      map[int64]domain.User
	categories map[int64]domain.Category
	links      map[int64]map[int64]bool // productID -> categoryID set

	nextProductID  int64
	nextUserID     int64
	nextCategoryID int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		products:   map[int64]domain.Product{},
		users:      map[int64]domain.User{},
		categories: map[int64]domain.Category{},
		links:      map[int64]map[int64]bool{},
	}
}

func (f *fakeRepo) CreateProduct(product *domain.Product) (*domain.Product, error) {
	f.nextProductID++
	product.ProductID = f.nextProductID
	f.products[product.ProductID] = domain.Product{
		ProductID:          product.ProductID,
		ProductName:        product.ProductName,
		ProductDescription: product.ProductDescription,
		ProductPrice:       product.ProductPrice,
		ProductQuantity:    product.ProductQuantity,
	}
	return product, nil
}

func (f *fakeRepo) GetProductByID(id int64) (*domain.Product, error) {
	stored, ok := f.products[id]
	if !ok {
		return nil, fmt.Errorf("product with id %d not found", id)
	}
	product := stored
	product.Users = []domain.User{}
	for _, user := range f.users {
		if user.ProductID == id {
			product.Users = append(product.Users, user)
		}
	}
	sort.Slice(product.Users, func(i, j int) bool {
		return product.Users[i].UserID < product.Users[j].UserID
	})
	product.Categories = []domain.Category{}
	for categoryID := range f.links[id] {
		product.Categories = append(product.Categories, f.categories[categoryID])
	}
	sort.Slice(product.Categories, func(i, j int) bool {
		return product.Categories[i].CategoryID < product.Categories[j].CategoryID
	})
	return &product, nil
}

func (f *fakeRepo) UpdateProduct(product *domain.Product) (*domain.Product, error) {
	if _, ok := f.products[product.ProductID]; !ok {
		return nil, fmt.Errorf("product with id %d not found", product.ProductID)
	}
	f.products[product.ProductID] = domain.Product{
		ProductID:          product.ProductID,
		ProductName:        product.ProductName,
		ProductDescription: product.ProductDescription,
		ProductPrice:       product.ProductPrice,
		ProductQuantity:    product.ProductQuantity,
	}
	return product, nil
}

func (f *fakeRepo) DeleteProduct(id int64) error {
	if _, ok := f.products[id]; !ok {
		return fmt.Errorf("product with id %d not found", id)
	}
	delete(f.products, id)
	for userID, user := range f.users {
		if user.ProductID == id {
			delete(f.users, userID)
		}
	}
	delete(f.links, id)
	return nil
}

func (f *fakeRepo) ListProducts() ([]domain.Product, error) {
	products := []domain.Product{}
	for _, product := range f.products {
		products = append(products, product)
	}
	sort.Slice(products, func(i, j int) bool {
		return products[i].ProductID < products[j].ProductID
	})
	return products, nil
}

func (f *fakeRepo) CreateUser(user *domain.User) (*domain.User, error) {
	f.nextUserID++
	user.UserID = f.nextUserID
	f.users[user.UserID] = *user
	return user, nil
}

func (f *fakeRepo) GetUserByID(id int64) (*domain.User, error) {
	stored, ok := f.users[id]
	if !ok {
		return nil, fmt.Errorf("user with id %d not found", id)
	}
	user := stored
	return &user, nil
}

func (f *fakeRepo) UpdateUser(user *domain.User) (*domain.User, error) {
	if _, ok := f.users[user.UserID]; !ok {
		return nil, fmt.Errorf("user with id %d not found", user.UserID)
	}
	f.users[user.UserID] = *user
	return user, nil
}

func (f *fakeRepo) CreateCategoryForProduct(category *domain.Category, productID int64) (*domain.Category, error) {
	if _, ok := f.products[productID]; !ok {
		return nil, fmt.Errorf("product with id %d not found", productID)
	}
	f.nextCategoryID++
	category.CategoryID = f.nextCategoryID
	f.categories[category.CategoryID] = *category
	if f.links[productID] == nil {
		f.links[productID] = map[int64]bool{}
	}
	f.links[productID][category.CategoryID] = true
	return category, nil
}

func (f *fakeRepo) GetCategoryByID(id int64) (*domain.Category, error) {
	stored, ok := f.categories[id]
	if !ok {
		return nil, fmt.Errorf("category with id %d not found", id)
	}
	category := stored
	return &category, nil
}

func (f *fakeRepo) UpdateCategory(category *domain.Category) (*domain.Category, error) {
	if _, ok := f.categories[category.CategoryID]; !ok {
		return nil, fmt.Errorf("category with id %d not found", category.CategoryID)
	}
	f.categories[category.CategoryID] = *category
	return category, nil
}

func newTestUseCase(t *testing.T) (StoreUseCase, *fakeRepo) {
	t.Helper()
	repo := newFakeRepo()
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewStoreUseCase(repo, repo, repo, logger), repo
}

func seedProduct(t *testing.T, uc StoreUseCase, name string) *domain.Product {
	t.Helper()
	product, err := uc.SaveProduct(&domain.Product{
		ProductName:        name,
		ProductDescription: name + " description",
		ProductPrice:       100,
		ProductQuantity:    50,
	})
	require.NoError(t, err)
	return product
}

func TestSaveProductCreatesWithFreshID(t *testing.T) {
	uc, _ := newTestUseCase(t)

	first, err := uc.SaveProduct(&domain.Product{ProductName: "Pen", ProductPrice: 100, ProductQuantity: 50})
	require.NoError(t, err)
	second, err := uc.SaveProduct(&domain.Product{ProductName: "Pencil", ProductPrice: 40, ProductQuantity: 10})
	require.NoError(t, err)

	assert.NotZero(t, first.ProductID)
	assert.NotZero(t, second.ProductID)
	assert.NotEqual(t, first.ProductID, second.ProductID)
	assert.Equal(t, "Pen", first.ProductName)
	assert.Equal(t, int64(100), first.ProductPrice)
	assert.Equal(t, int64(50), first.ProductQuantity)
	assert.Empty(t, first.Users)
	assert.Empty(t, first.Categories)
}

func TestSaveProductUpdateOverwritesEveryField(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	// Description and quantity omitted: full overwrite writes them as zero values.
	updated, err := uc.SaveProduct(&domain.Product{
		ProductID:    product.ProductID,
		ProductName:  "Fountain Pen",
		ProductPrice: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, product.ProductID, updated.ProductID)
	assert.Equal(t, "Fountain Pen", updated.ProductName)
	assert.Equal(t, int64(250), updated.ProductPrice)
	assert.Equal(t, "", updated.ProductDescription)
	assert.Equal(t, int64(0), updated.ProductQuantity)

	reloaded, err := uc.GetProductByID(product.ProductID)
	require.NoError(t, err)
	assert.Equal(t, "", reloaded.ProductDescription)
	assert.Equal(t, int64(0), reloaded.ProductQuantity)
}

func TestSaveProductUnknownIDIsNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.SaveProduct(&domain.Product{ProductID: 42, ProductName: "Ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveUserWithoutIDCreatesOwnedUser(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	user, err := uc.SaveUser(product.ProductID, &domain.User{
		UserEmail:     "jane@example.com",
		UserFirstName: "Jane",
		UserLastName:  "Doe",
		UserAddress:   "12 Main St",
	})
	require.NoError(t, err)
	assert.NotZero(t, user.UserID)
	assert.Equal(t, product.ProductID, user.ProductID)

	reloaded, err := uc.GetProductByID(product.ProductID)
	require.NoError(t, err)
	require.Len(t, reloaded.Users, 1)
	assert.Equal(t, user.UserID, reloaded.Users[0].UserID)
	assert.Equal(t, "jane@example.com", reloaded.Users[0].UserEmail)
}

func TestSaveUserOwnershipMismatchFailsWithoutMutation(t *testing.T) {
	uc, repo := newTestUseCase(t)
	productP := seedProduct(t, uc, "Pen")
	productQ := seedProduct(t, uc, "Notebook")

	user, err := uc.SaveUser(productQ.ProductID, &domain.User{UserEmail: "jane@example.com"})
	require.NoError(t, err)

	_, err = uc.SaveUser(productP.ProductID, &domain.User{
		UserID:    user.UserID,
		UserEmail: "hijack@example.com",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", user.UserID))
	assert.Contains(t, err.Error(), fmt.Sprintf("%d", productP.ProductID))

	stored := repo.users[user.UserID]
	assert.Equal(t, "jane@example.com", stored.UserEmail)
	assert.Equal(t, productQ.ProductID, stored.ProductID)
}

func TestSaveUserUpdateOverwritesFields(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	user, err := uc.SaveUser(product.ProductID, &domain.User{
		UserEmail:     "jane@example.com",
		UserFirstName: "Jane",
		UserLastName:  "Doe",
		UserAddress:   "12 Main St",
	})
	require.NoError(t, err)

	// Address omitted: overwritten with the zero value, same as product upsert.
	updated, err := uc.SaveUser(product.ProductID, &domain.User{
		UserID:        user.UserID,
		UserEmail:     "jane.doe@example.com",
		UserFirstName: "Jane",
		UserLastName:  "Doe",
	})
	require.NoError(t, err)
	assert.Equal(t, user.UserID, updated.UserID)
	assert.Equal(t, "jane.doe@example.com", updated.UserEmail)
	assert.Equal(t, "", updated.UserAddress)
}

func TestSaveUserUnknownUserIsNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	_, err := uc.SaveUser(product.ProductID, &domain.User{UserID: 99})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveUserUnknownProductIsNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	_, err := uc.SaveUser(7, &domain.User{UserEmail: "jane@example.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestSaveCategoryWithoutIDLinksBothDirections(t *testing.T) {
	uc, repo := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	category, err := uc.SaveCategory(product.ProductID, &domain.Category{CategoryName: "Stationery"})
	require.NoError(t, err)
	assert.NotZero(t, category.CategoryID)
	assert.Equal(t, "Stationery", category.CategoryName)

	reloaded, err := uc.GetProductByID(product.ProductID)
	require.NoError(t, err)
	require.Len(t, reloaded.Categories, 1)
	assert.Equal(t, category.CategoryID, reloaded.Categories[0].CategoryID)

	assert.True(t, repo.links[product.ProductID][category.CategoryID])
}

func TestSaveCategoryNotLinkedFailsWithoutMutation(t *testing.T) {
	uc, repo := newTestUseCase(t)
	productP := seedProduct(t, uc, "Pen")
	productQ := seedProduct(t, uc, "Notebook")

	category, err := uc.SaveCategory(productQ.ProductID, &domain.Category{CategoryName: "Stationery"})
	require.NoError(t, err)

	// The category exists but belongs to Q's set; referencing it under P does
	// not create the link implicitly.
	_, err = uc.SaveCategory(productP.ProductID, &domain.Category{
		CategoryID:   category.CategoryID,
		CategoryName: "Office",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not linked")

	assert.Equal(t, "Stationery", repo.categories[category.CategoryID].CategoryName)
	assert.False(t, repo.links[productP.ProductID][category.CategoryID])
}

func TestSaveCategoryUpdateRenamesLinkedCategory(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	category, err := uc.SaveCategory(product.ProductID, &domain.Category{CategoryName: "Stationery"})
	require.NoError(t, err)

	updated, err := uc.SaveCategory(product.ProductID, &domain.Category{
		CategoryID:   category.CategoryID,
		CategoryName: "Office Supplies",
	})
	require.NoError(t, err)
	assert.Equal(t, category.CategoryID, updated.CategoryID)
	assert.Equal(t, "Office Supplies", updated.CategoryName)
}

func TestSaveCategoryUnknownCategoryIsNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	_, err := uc.SaveCategory(product.ProductID, &domain.Category{CategoryID: 99, CategoryName: "Ghost"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestListProductsReturnsSummaryShape(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	_, err := uc.SaveUser(product.ProductID, &domain.User{UserEmail: "jane@example.com"})
	require.NoError(t, err)
	_, err = uc.SaveCategory(product.ProductID, &domain.Category{CategoryName: "Stationery"})
	require.NoError(t, err)

	products, err := uc.ListProducts()
	require.NoError(t, err)
	require.Len(t, products, 1)

	// Listing never carries associations, no matter how many exist.
	assert.NotNil(t, products[0].Users)
	assert.NotNil(t, products[0].Categories)
	assert.Empty(t, products[0].Users)
	assert.Empty(t, products[0].Categories)
}

func TestGetProductReturnsFullShape(t *testing.T) {
	uc, _ := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	user, err := uc.SaveUser(product.ProductID, &domain.User{UserEmail: "jane@example.com"})
	require.NoError(t, err)
	category, err := uc.SaveCategory(product.ProductID, &domain.Category{CategoryName: "Stationery"})
	require.NoError(t, err)

	reloaded, err := uc.GetProductByID(product.ProductID)
	require.NoError(t, err)
	require.Len(t, reloaded.Users, 1)
	require.Len(t, reloaded.Categories, 1)
	assert.Equal(t, user.UserID, reloaded.Users[0].UserID)
	assert.Equal(t, category.CategoryID, reloaded.Categories[0].CategoryID)
}

func TestDeleteProductCascadesUsersAndSparesCategories(t *testing.T) {
	uc, repo := newTestUseCase(t)
	product := seedProduct(t, uc, "Pen")

	user, err := uc.SaveUser(product.ProductID, &domain.User{UserEmail: "jane@example.com"})
	require.NoError(t, err)
	category, err := uc.SaveCategory(product.ProductID, &domain.Category{CategoryName: "Stationery"})
	require.NoError(t, err)

	require.NoError(t, uc.DeleteProduct(product.ProductID))

	_, err = uc.GetProductByID(product.ProductID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	_, exists := repo.users[user.UserID]
	assert.False(t, exists)

	_, exists = repo.categories[category.CategoryID]
	assert.True(t, exists)
}

func TestDeleteProductUnknownIDIsNotFound(t *testing.T) {
	uc, _ := newTestUseCase(t)

	err := uc.DeleteProduct(42)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}
