package services

import (
	"context"
	"fmt"

	"restaurant-directory-api/utils"
)

// MaxImageSize caps menu item images at 5 MB.
const MaxImageSize = 5 << 20

var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
}

// ImageUpload carries a validated image blob plus the metadata the object
// store needs.
type ImageUpload struct {
	Data        []byte
	FileName    string
	ContentType string
}

// Validate rejects oversized blobs and disallowed content types before any
// network call is made.
func (u *ImageUpload) Validate() error {
	if !allowedImageTypes[u.ContentType] {
		return fmt.Errorf("%w: image must be JPEG or PNG, got %q", ErrValidation, u.ContentType)
	}
	if len(u.Data) > MaxImageSize {
		return fmt.Errorf("%w: image exceeds the %d byte limit", ErrValidation, MaxImageSize)
	}
	return nil
}

// ImageUploader stores an image blob and returns a durable public URL.
type ImageUploader interface {
	Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error)
}

// S3Uploader is the production uploader backed by the shared S3 client.
type S3Uploader struct{}

func (S3Uploader) Upload(ctx context.Context, data []byte, fileName, contentType string) (string, error) {
	url, err := utils.UploadImageToS3(ctx, data, fileName, contentType)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUploadFailed, err)
	}
	return url, nil
}
