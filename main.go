package main

import (
	"log"
	"net/http"
	"os"

	"restaurant-directory-api/config"
	"restaurant-directory-api/handlers"
	"restaurant-directory-api/routes"
	"restaurant-directory-api/services"
	"restaurant-directory-api/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	utils.InitLogger()
	defer utils.Log.Sync()

	// Initialize database and the S3 client
	config.InitDB()
	utils.InitS3()

	// Wire stores, guard and uploader into the coordinator
	restaurantStore := services.NewRestaurantStore(config.DB)
	menuStore := services.NewMenuStore(config.DB)
	svc := services.NewRestaurantService(restaurantStore, menuStore, services.S3Uploader{}, utils.Log)
	handlers.Init(svc)

	// Create Gin router with default middleware (logger + recovery)
	r := gin.Default()

	// CORS middleware for frontend integration
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	})

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"service": "Restaurant Directory API",
			"version": "1.0.0",
		})
	})

	// Register all routes
	routes.SetupRoutes(r)

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	utils.Log.Infof("Server running on http://localhost:%s", port)
	if err := r.Run(":" + port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
