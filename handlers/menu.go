package handlers

import (
	"errors"
	"io"
	"net/http"
	"strconv"
	"strings"

	"restaurant-directory-api/middleware"
	"restaurant-directory-api/services"

	"github.com/gin-gonic/gin"
)

// ── Menu Management ─────────────────────────────────────────────────────────

// Menu mutation endpoints accept either JSON or multipart form data; an
// image can only arrive via multipart (field "image").

type AddMenuItemRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,gt=0"`
}

type UpdateMenuItemRequest struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
}

// AddMenuItem appends a new item to the restaurant's menu (owner only)
func AddMenuItem(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}

	var in services.AddMenuItemInput
	var image *services.ImageUpload
	if isMultipart(c) {
		in.Name = c.PostForm("name")
		in.Description = c.PostForm("description")
		price, err := strconv.ParseFloat(c.PostForm("price"), 64)
		if in.Name == "" || err != nil || price <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Menu item name and a positive price are required"})
			return
		}
		in.Price = price
		image, err = imageFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		var req AddMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		in = services.AddMenuItemInput{Name: req.Name, Description: req.Description, Price: req.Price}
	}

	menu, err := Svc.AddMenuItem(c.Request.Context(), restaurantID, in, image, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Menu item added", "menu": menu})
}

// UpdateMenuItem merges the provided fields over an existing item (owner
// only). Omitted fields keep their stored values.
func UpdateMenuItem(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	var patch services.MenuItemPatch
	var image *services.ImageUpload
	if isMultipart(c) {
		if v, present := c.GetPostForm("name"); present {
			patch.Name = &v
		}
		if v, present := c.GetPostForm("description"); present {
			patch.Description = &v
		}
		if v, present := c.GetPostForm("price"); present {
			price, err := strconv.ParseFloat(v, 64)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid price"})
				return
			}
			patch.Price = &price
		}
		var err error
		image, err = imageFromForm(c)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	} else {
		var req UpdateMenuItemRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		patch = services.MenuItemPatch{Name: req.Name, Description: req.Description, Price: req.Price}
	}

	menu, err := Svc.UpdateMenuItem(c.Request.Context(), restaurantID, itemID, patch, image, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item updated", "menu": menu})
}

// RemoveMenuItem deletes an item from the menu (owner only)
func RemoveMenuItem(c *gin.Context) {
	restaurantID, ok := parseID(c, "id")
	if !ok {
		return
	}
	itemID := c.Param("itemId")

	menu, err := Svc.RemoveMenuItem(restaurantID, itemID, middleware.GetUserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Menu item removed", "menu": menu})
}

func isMultipart(c *gin.Context) bool {
	return strings.HasPrefix(c.ContentType(), "multipart/form-data")
}

// imageFromForm pulls the optional "image" file out of a multipart request.
// The read is capped just past the size limit so oversized uploads fail in
// validation without buffering the whole file.
func imageFromForm(c *gin.Context) (*services.ImageUpload, error) {
	file, err := c.FormFile("image")
	if err != nil {
		if errors.Is(err, http.ErrMissingFile) {
			return nil, nil
		}
		return nil, err
	}

	f, err := file.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, services.MaxImageSize+1))
	if err != nil {
		return nil, err
	}

	return &services.ImageUpload{
		Data:        data,
		FileName:    file.Filename,
		ContentType: file.Header.Get("Content-Type"),
	}, nil
}
