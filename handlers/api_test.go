package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"restaurant-directory-api/config"
	"restaurant-directory-api/handlers"
	"restaurant-directory-api/middleware"
	"restaurant-directory-api/models"
	"restaurant-directory-api/routes"
	"restaurant-directory-api/services"

	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type stubUploader struct {
	url string
	err error
}

func (s *stubUploader) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	if s.err != nil {
		return "", s.err
	}
	return s.url, nil
}

func setupRouter(t *testing.T) (*gin.Engine, *stubUploader) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Restaurant{}, &models.Menu{}))
	config.DB = db

	uploader := &stubUploader{url: "https://cdn.example.com/uploads/dish.jpg"}
	handlers.Init(services.NewRestaurantService(
		services.NewRestaurantStore(db),
		services.NewMenuStore(db),
		uploader,
		zap.NewNop().Sugar(),
	))

	r := gin.New()
	routes.SetupRoutes(r)
	return r, uploader
}

func ownerToken(t *testing.T, name, email string) string {
	t.Helper()
	user := models.User{Name: name, Email: email, PasswordHash: "x", Role: models.RoleOwner}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)
	return token
}

func doJSON(r *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestOwnerLifecycleScenario(t *testing.T) {
	r, _ := setupRouter(t)
	u1 := ownerToken(t, "U1", "u1@x.com")
	u2 := ownerToken(t, "U2", "u2@x.com")

	// U1 creates Cafe A
	w := doJSON(r, http.MethodPost, "/api/restaurants", u1, gin.H{"name": "Cafe A", "email": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	restaurant := decode(t, w)["restaurant"].(map[string]any)
	id := fmt.Sprintf("%.0f", restaurant["id"].(float64))

	// No menu yet: items must still be an empty list
	w = doJSON(r, http.MethodGet, "/api/menu/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items, present := decode(t, w)["items"]
	require.True(t, present)
	assert.Empty(t, items)

	// U1 adds an item
	w = doJSON(r, http.MethodPost, "/api/restaurants/"+id+"/menu", u1, gin.H{"name": "Tea", "price": 3})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	menu := decode(t, w)["menu"].(map[string]any)
	menuItems := menu["items"].([]any)
	require.Len(t, menuItems, 1)
	item := menuItems[0].(map[string]any)
	assert.Equal(t, "Tea", item["name"])
	assert.Equal(t, 3.0, item["price"])
	assert.Nil(t, item["imageUrl"])

	// U2 cannot rename Cafe A
	w = doJSON(r, http.MethodPut, "/api/restaurants/"+id, u2, gin.H{"name": "Cafe B"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = doJSON(r, http.MethodGet, "/api/restaurants/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode(t, w)["restaurant"].(map[string]any)
	assert.Equal(t, "Cafe A", detail["name"])
	assert.Len(t, detail["items"].([]any), 1)
}

func TestCreateRestaurantRequiresAuth(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/api/restaurants", "", gin.H{"name": "Cafe A", "email": "a@x.com"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCreateRestaurantRejectsDinerRole(t *testing.T) {
	r, _ := setupRouter(t)

	user := models.User{Name: "D", Email: "d@x.com", PasswordHash: "x", Role: models.RoleDiner}
	require.NoError(t, config.DB.Create(&user).Error)
	token, err := middleware.GenerateToken(&user)
	require.NoError(t, err)

	w := doJSON(r, http.MethodPost, "/api/restaurants", token, gin.H{"name": "Cafe A", "email": "a@x.com"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestDuplicateEmailIsA400(t *testing.T) {
	r, _ := setupRouter(t)
	u1 := ownerToken(t, "U1", "u1@x.com")

	w := doJSON(r, http.MethodPost, "/api/restaurants", u1, gin.H{"name": "Cafe A", "email": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(r, http.MethodPost, "/api/restaurants", u1, gin.H{"name": "Cafe B", "email": "a@x.com"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMenuItemUploadOutage(t *testing.T) {
	r, uploader := setupRouter(t)
	u1 := ownerToken(t, "U1", "u1@x.com")

	w := doJSON(r, http.MethodPost, "/api/restaurants", u1, gin.H{"name": "Cafe A", "email": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	restaurant := decode(t, w)["restaurant"].(map[string]any)
	id := fmt.Sprintf("%.0f", restaurant["id"].(float64))

	w = doJSON(r, http.MethodPost, "/api/restaurants/"+id+"/menu", u1, gin.H{"name": "Tea", "price": 3})
	require.Equal(t, http.StatusCreated, w.Code)
	menu := decode(t, w)["menu"].(map[string]any)
	itemID := menu["items"].([]any)[0].(map[string]any)["id"].(string)

	// Simulated storage outage during an image update: the item must come
	// through unchanged and the response must be a server error.
	uploader.err = errors.New("storage outage")
	w = doMultipartUpdate(t, r, id, itemID, u1, map[string]string{"price": "9.5"}, true)
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	w = doJSON(r, http.MethodGet, "/api/menu/"+id, "", nil)
	require.Equal(t, http.StatusOK, w.Code)
	items := decode(t, w)["items"].([]any)
	require.Len(t, items, 1)
	got := items[0].(map[string]any)
	assert.Equal(t, "Tea", got["name"])
	assert.Equal(t, 3.0, got["price"])
	assert.Nil(t, got["imageUrl"])
}

func TestRemoveMenuItemNotFoundMapping(t *testing.T) {
	r, _ := setupRouter(t)
	u1 := ownerToken(t, "U1", "u1@x.com")

	w := doJSON(r, http.MethodPost, "/api/restaurants", u1, gin.H{"name": "Cafe A", "email": "a@x.com"})
	require.Equal(t, http.StatusCreated, w.Code)
	restaurant := decode(t, w)["restaurant"].(map[string]any)
	id := fmt.Sprintf("%.0f", restaurant["id"].(float64))

	// No menu exists yet
	w = doJSON(r, http.MethodDelete, "/api/restaurants/"+id+"/menu/xyz", u1, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Missing restaurant
	w = doJSON(r, http.MethodDelete, "/api/restaurants/9999/menu/xyz", u1, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
