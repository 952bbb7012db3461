// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/alihanerman/ai-product-explorer/internal/config"
	"github.com/alihanerman/ai-product-explorer/internal/handlers"
	"github.com/alihanerman/ai-product-explorer/internal/llm"
	"github.com/alihanerman/ai-product-explorer/internal/middleware"
	"github.com/alihanerman/ai-product-explorer/internal/services"
	"github.com/alihanerman/ai-product-explorer/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Without an API key the AI services run with a nil client and serve
	// their fallback paths.
	var completionClient llm.CompletionClient
	if cfg.AI.APIKey != "" {
		completionClient = llm.NewOpenRouterClient(cfg.AI)
	}
	callBudget := llm.NewCallBudget(cfg.AI.DailyBudget)

	// Initialize services
	storageService, _ := services.NewStorageService(cfg)
	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	suggestionService := services.NewSuggestionService(db)
	favoriteService := services.NewFavoriteService(db)
	aiService := services.NewAIService(db, completionClient, cfg.AI.Models, callBudget)
	compareService := services.NewCompareService(db, completionClient, cfg.AI.Models)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(productService, suggestionService, storageService)
	aiHandler := handlers.NewAIHandler(aiService, compareService, productService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	logHandler := handlers.NewLogHandler(aiService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS([]string{cfg.Frontend.BaseURL}))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.Refresh)
			auth.GET("/me", middleware.AuthRequired(), authHandler.Me)
		}

		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/brands", productHandler.GetBrands)
			products.POST("/batch", productHandler.GetProductsBatch)
			products.GET("/:id", productHandler.GetProduct)
		}

		v1.GET("/search/suggestions", productHandler.GetSuggestions)

		// AI routes
		ai := v1.Group("/ai")
		ai.Use(middleware.AIRateLimit())
		{
			ai.POST("/parse-query", middleware.OptionalAuth(), aiHandler.ParseQuery)
			ai.POST("/compare", middleware.AuthRequired(), aiHandler.Compare)
			ai.POST("/score", aiHandler.Score)
		}

		// Favorites
		favorites := v1.Group("/favorites")
		favorites.Use(middleware.AuthRequired())
		{
			favorites.POST("", favoriteHandler.Toggle)
			favorites.GET("", favoriteHandler.List)
		}

		// AI interaction logs
		logs := v1.Group("/logs")
		logs.Use(middleware.AuthRequired())
		{
			logs.GET("", logHandler.List)
			logs.DELETE("", middleware.AdminRequired(), logHandler.Clear)
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.POST("/products", productHandler.CreateProduct)
			admin.PUT("/products/:id", productHandler.UpdateProduct)
			admin.DELETE("/products/:id", productHandler.DeleteProduct)
			admin.POST("/products/:id/image", productHandler.UploadProductImage)
		}
	}

	return r
}
