package routes

import (
	"restaurant-directory-api/handlers"
	"restaurant-directory-api/middleware"
	"restaurant-directory-api/models"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine) {
	// ── Public routes ──────────────────────────────────────────────
	public := r.Group("/api")
	{
		// Auth
		public.POST("/users/register", handlers.Register)
		public.POST("/users/login", handlers.Login)

		// Restaurants & menus (no auth needed)
		public.GET("/restaurants", handlers.ListRestaurants)
		public.GET("/restaurants/:id", handlers.GetRestaurant)
		public.GET("/menu/:restaurantId", handlers.GetMenu)
	}

	// ── Authenticated routes ───────────────────────────────────────
	auth := r.Group("/api")
	auth.Use(middleware.AuthRequired())
	{
		auth.GET("/profile", handlers.GetProfile)
		auth.GET("/restaurants/myrestaurants", handlers.GetMyRestaurants)
	}

	// ── Restaurant owner routes ────────────────────────────────────
	owner := r.Group("/api/restaurants")
	owner.Use(middleware.AuthRequired(), middleware.RoleRequired(models.RoleOwner, models.RoleAdmin))
	{
		// Restaurant management
		owner.POST("", handlers.CreateRestaurant)
		owner.PUT("/:id", handlers.UpdateRestaurant)
		owner.DELETE("/:id", handlers.DeleteRestaurant)

		// Menu management
		owner.POST("/:id/menu", handlers.AddMenuItem)
		owner.PUT("/:id/menu/:itemId", handlers.UpdateMenuItem)
		owner.DELETE("/:id/menu/:itemId", handlers.RemoveMenuItem)
	}
}
