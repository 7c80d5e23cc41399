package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"restaurant-directory-api/services"

	"github.com/gin-gonic/gin"
)

// Svc is the shared coordinator, wired once at startup.
var Svc *services.RestaurantService

func Init(svc *services.RestaurantService) {
	Svc = svc
}

// respondError maps domain errors onto HTTP status codes. Anything outside
// the taxonomy is a 500 with no internals leaked.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrDuplicateEmail):
		c.JSON(http.StatusBadRequest, gin.H{"error": services.ErrDuplicateEmail.Error()})
	case errors.Is(err, services.ErrItemNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Menu item not found"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	case errors.Is(err, services.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authorized to modify this restaurant"})
	case errors.Is(err, services.ErrUploadFailed):
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Image upload failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}

func parseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid " + name})
		return 0, false
	}
	return uint(id), true
}
