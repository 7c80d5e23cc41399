package services

import "errors"

// Domain errors. Handlers translate these to HTTP status codes; everything
// else surfaces as a 500. All of them are terminal for the current request —
// no partial aggregate state is persisted once any step past validation
// fails.
var (
	ErrValidation     = errors.New("missing or invalid required field")
	ErrNotFound       = errors.New("resource not found")
	ErrItemNotFound   = errors.New("menu item not found")
	ErrUnauthorized   = errors.New("not authorized to modify this restaurant")
	ErrDuplicateEmail = errors.New("a restaurant with this email already exists")
	ErrUploadFailed   = errors.New("image upload failed")
)
