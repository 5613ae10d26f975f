package service

import "errors"

// Sentinel errors shared across services. Handlers map these onto HTTP
// statuses; anything else surfaces as an internal error.
var (
	ErrNotFound             = errors.New("not found")
	ErrConflict             = errors.New("username already registered")
	ErrUnauthorized         = errors.New("could not validate credentials")
	ErrFileTooLarge         = errors.New("file too large")
	ErrProcessingFailed     = errors.New("ocr processing failed")
	ErrEmptyQuery           = errors.New("search query must not be empty")
	ErrValidation           = errors.New("validation failed")
	ErrInvalidScope         = errors.New("invalid search type")
	ErrInvalidFormat        = errors.New("unsupported export format")
	ErrAnalyticsUnavailable = errors.New("analytics temporarily unavailable")
)
