package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// ListRestaurants returns all restaurants (public)
func ListRestaurants(c *gin.Context) {
	restaurants, err := Svc.GetRestaurants()
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":       len(restaurants),
		"restaurants": restaurants,
	})
}

// GetRestaurant returns a single restaurant with its menu items embedded
func GetRestaurant(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	detail, err := Svc.GetRestaurantDetail(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"restaurant": detail})
}

// GetMenu returns the item list for a restaurant. A restaurant with no menu
// yet gets an empty list, not a 404.
func GetMenu(c *gin.Context) {
	id, ok := parseID(c, "restaurantId")
	if !ok {
		return
	}
	items, err := Svc.GetMenuByRestaurant(id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}
