package services

import (
	"context"
	"testing"

	"restaurant-directory-api/models"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Restaurant{}, &models.Menu{}))
	return db
}

// fakeUploader stands in for the S3 uploader. It records calls and can be
// told to fail, which lets tests assert the upload-then-persist ordering.
type fakeUploader struct {
	url   string
	err   error
	calls int
}

func (f *fakeUploader) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.url != "" {
		return f.url, nil
	}
	return "https://cdn.example.com/uploads/" + fileName, nil
}

func testService(t *testing.T) (*RestaurantService, *fakeUploader, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	uploader := &fakeUploader{}
	svc := NewRestaurantService(NewRestaurantStore(db), NewMenuStore(db), uploader, zap.NewNop().Sugar())
	return svc, uploader, db
}

func createRestaurant(t *testing.T, svc *RestaurantService, ownerID uint, name, email string) *models.Restaurant {
	t.Helper()
	r, err := svc.CreateRestaurant(CreateRestaurantInput{Name: name, Email: email}, ownerID)
	require.NoError(t, err)
	return r
}

func jpegUpload() *ImageUpload {
	return &ImageUpload{Data: []byte{0xff, 0xd8, 0xff}, FileName: "dish.jpg", ContentType: "image/jpeg"}
}
