package main

import (
	"net/http"
	"os"

	"online_store/config"
	"online_store/internal/delivery"
	"online_store/internal/repository"
	"online_store/internal/usecase"
	"online_store/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

// HTML content for the test page
const htmlTestPageContent = `
<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Online Store API Test Page</title>
    <style>
        body { font-family: Helvetica, Arial, sans-serif; line-height: 1.6; padding: 20px; background-color: #f9f9f9; color: #333; }
        h1, h2 { border-bottom: 1px solid #ccc; padding-bottom: 5px; }
        ul { list-style: none; padding-left: 0; }
        li { margin-bottom: 15px; background-color: #fff; padding: 10px; border: 1px solid #eee; border-radius: 4px; }
        code { background-color: #e8e8e8; padding: 3px 6px; border-radius: 3px; font-family: Consolas, Monaco, monospace; }
        .method { font-weight: bold; display: inline-block; width: 60px; }
        .method-post { color: #49cc90; }
        .method-get { color: #61affe; }
        .method-put { color: #fca130; }
        .method-delete { color: #f93e3e; }
        a { color: #007bff; text-decoration: none; }
        a:hover { text-decoration: underline; }
    </style>
</head>
<body>
    <h1>Online Store API Endpoints</h1>
    <p>Base URL: <code>http://localhost:8080/online_store</code></p>

    <h2>Products API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/online_store/product</code> - Create or update a product. JSON body: <code>{"productName": "string", "productDescription": "string", "productPrice": int, "productQuantity": int}</code> (include <code>productId</code> to update).</li>
        <li><span class="method method-put">PUT</span> <code>/online_store/product/{productId}</code> - Update a product; the path ID overrides any body ID.</li>
        <li><span class="method method-get">GET</span> <code><a href="/online_store/products">/online_store/products</a></code> - List all products (summary, without users/categories).</li>
        <li><span class="method method-get">GET</span> <code>/online_store/{productId}</code> - Retrieve one product with its users and categories (e.g., <a href="/online_store/1">/online_store/1</a>).</li>
        <li><span class="method method-delete">DELETE</span> <code>/online_store/{productId}</code> - Delete a product and its users; shared categories remain.</li>
    </ul>

    <h2>Users API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/online_store/{productId}/user</code> - Attach a user to a product. JSON body: <code>{"userEmail": "string", "userFirstName": "string", "userLastName": "string", "userAddress": "string"}</code></li>
        <li><span class="method method-put">PUT</span> <code>/online_store/{productId}/user/{userId}</code> - Update a user; the user must belong to the product.</li>
    </ul>

    <h2>Categories API</h2>
    <ul>
        <li><span class="method method-post">POST</span> <code>/online_store/{productId}/category</code> - Attach a category to a product. JSON body: <code>{"categoryName": "string"}</code> (include <code>categoryId</code> to update an already linked category).</li>
        <li><span class="method method-put">PUT</span> <code>/online_store/{productId}/category/{categoryId}</code> - Update a category already linked to the product.</li>
    </ul>

</body>
</html>
`

func serveTestPage(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(htmlTestPageContent))
}

func main() {
	//  Configuration and Logging Setup
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Online Store Service...")

	// --- Database Connection ---
	database, err := db.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()
	logger.Info("Database connection established.")

	// --- Dependency Injection ---
	// Repository Layer
	productRepo := repository.NewPostgresProductRepository(database, logger)
	userRepo := repository.NewPostgresUserRepository(database, logger)
	categoryRepo := repository.NewPostgresCategoryRepository(database, logger)
	logger.Info("Repositories initialized.")

	// Usecase Layer
	storeUseCase := usecase.NewStoreUseCase(productRepo, userRepo, categoryRepo, logger)
	logger.Info("Use cases initialized.")

	storeHandler := delivery.NewStoreHandler(storeUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.Default()

	router.Use(gin.Recovery())

	router.Use(func(c *gin.Context) {
		logger.WithFields(logrus.Fields{
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
			"ip":     c.ClientIP(),
		}).Info("Request received")
		c.Next()
		logger.WithFields(logrus.Fields{
			"status": c.Writer.Status(),
			"method": c.Request.Method,
			"path":   c.Request.URL.Path,
		}).Info("Request completed")
	})

	// Route Registration

	router.GET("/", serveTestPage)
	logger.Info("Registered HTML test page route at /")

	storeHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	//  Start Server
	logger.Infof("Starting server on port %s", cfg.HTTPPort)
	if err := router.Run(cfg.HTTPPort); err != nil {
		logger.Fatalf("Failed to start server: %v", err)
	}
}
