package delivery

import (
	"fmt"
	"net/http"
	"strconv"

	"online_store/internal/domain"
	"online_store/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type StoreHandler struct {
	useCase usecase.StoreUseCase
	log     *logrus.Logger
}

func NewStoreHandler(uc usecase.StoreUseCase, logger *logrus.Logger) *StoreHandler {
	return &StoreHandler{
		useCase: uc,
		log:     logger,
	}
}

func (h *StoreHandler) RegisterRoutes(router gin.IRouter) {
	store := router.Group("/online_store")
	{
		store.POST("/product", h.CreateProduct)
		store.PUT("/product/:productId", h.UpdateProduct)
		store.POST("/:productId/user", h.AddUserToProduct)
		store.PUT("/:productId/user/:userId", h.UpdateUser)
		store.POST("/:productId/category", h.AddCategoryToProduct)
		store.PUT("/:productId/category/:categoryId", h.UpdateCategory)
		store.GET("/products", h.ListProducts)
		store.GET("/:productId", h.GetProductByID)
		store.DELETE("/:productId", h.DeleteProduct)
	}
}

func parseID(c *gin.Context, name string) (int64, bool) {
	idStr := c.Param(name)
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *StoreHandler) CreateProduct(c *gin.Context) {
	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for create product: %v", err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	savedProduct, err := h.useCase.SaveProduct(&product)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to save product '%s': %v", product.ProductName, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Product saved successfully: ID %d, Name %s", savedProduct.ProductID, savedProduct.ProductName)
	c.JSON(http.StatusOK, savedProduct)
}

func (h *StoreHandler) UpdateProduct(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for update: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var product domain.Product
	if err := c.ShouldBindJSON(&product); err != nil {
		h.log.Errorf("Failed to bind JSON for update product ID %d: %v", productID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	// Path ID wins over whatever the body carries.
	product.ProductID = productID

	updatedProduct, err := h.useCase.SaveProduct(&product)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update product ID %d: %v", productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Product updated successfully: ID %d", updatedProduct.ProductID)
	c.JSON(http.StatusOK, updatedProduct)
}

func (h *StoreHandler) AddUserToProduct(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for user create: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.log.Errorf("Failed to bind JSON for user create under product %d: %v", productID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	savedUser, err := h.useCase.SaveUser(productID, &user)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to save user under product %d: %v", productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("User saved successfully: ID %d under product %d", savedUser.UserID, productID)
	c.JSON(http.StatusCreated, savedUser)
}

func (h *StoreHandler) UpdateUser(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for user update: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	userID, ok := parseID(c, "userId")
	if !ok {
		h.log.Warnf("Invalid user ID parameter for update: %s", c.Param("userId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid user ID format")
		return
	}

	var user domain.User
	if err := c.ShouldBindJSON(&user); err != nil {
		h.log.Errorf("Failed to bind JSON for user update ID %d: %v", userID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	user.UserID = userID

	updatedUser, err := h.useCase.SaveUser(productID, &user)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update user ID %d under product %d: %v", userID, productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("User updated successfully: ID %d under product %d", updatedUser.UserID, productID)
	c.JSON(http.StatusOK, updatedUser)
}

func (h *StoreHandler) AddCategoryToProduct(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for category create: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for category create under product %d: %v", productID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	savedCategory, err := h.useCase.SaveCategory(productID, &category)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to save category under product %d: %v", productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Category saved successfully: ID %d under product %d", savedCategory.CategoryID, productID)
	c.JSON(http.StatusCreated, savedCategory)
}

func (h *StoreHandler) UpdateCategory(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for category update: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}
	categoryID, ok := parseID(c, "categoryId")
	if !ok {
		h.log.Warnf("Invalid category ID parameter for update: %s", c.Param("categoryId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid category ID format")
		return
	}

	var category domain.Category
	if err := c.ShouldBindJSON(&category); err != nil {
		h.log.Errorf("Failed to bind JSON for category update ID %d: %v", categoryID, err)
		ErrorResponse(c, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}

	category.CategoryID = categoryID

	updatedCategory, err := h.useCase.SaveCategory(productID, &category)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Errorf("Failed to update category ID %d under product %d: %v", categoryID, productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Category updated successfully: ID %d under product %d", updatedCategory.CategoryID, productID)
	c.JSON(http.StatusOK, updatedCategory)
}

func (h *StoreHandler) ListProducts(c *gin.Context) {
	products, err := h.useCase.ListProducts()
	if err != nil {
		h.log.Errorf("Failed to list products: %v", err)
		ErrorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}

	h.log.Infof("Retrieved %d products", len(products))
	c.JSON(http.StatusOK, products)
}

func (h *StoreHandler) GetProductByID(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	product, err := h.useCase.GetProductByID(productID)
	if err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to get product by ID %d: %v", productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Product retrieved successfully: ID %d", productID)
	c.JSON(http.StatusOK, product)
}

func (h *StoreHandler) DeleteProduct(c *gin.Context) {
	productID, ok := parseID(c, "productId")
	if !ok {
		h.log.Warnf("Invalid product ID parameter for delete: %s", c.Param("productId"))
		ErrorResponse(c, http.StatusBadRequest, "Invalid product ID format")
		return
	}

	if err := h.useCase.DeleteProduct(productID); err != nil {
		statusCode := mapErrorToStatus(err)
		h.log.Warnf("Failed to delete product ID %d: %v", productID, err)
		ErrorResponse(c, statusCode, err.Error())
		return
	}

	h.log.Infof("Product deleted successfully: ID %d", productID)
	c.JSON(http.StatusOK, MessageResponse{
		Message: fmt.Sprintf("Product with ID=%d deleted.", productID),
	})
}
