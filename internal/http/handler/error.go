package handler

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/chou-ng-coder/ocr-website/internal/http/middleware"
	"github.com/chou-ng-coder/ocr-website/internal/service"
)

// errorPayload defines the standardized error response body.
type errorPayload struct {
	RequestID string        `json:"request_id"`
	Error     errorEnvelope `json:"error"`
}

type errorEnvelope struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// requestIDFromCtx extracts request_id previously stored by middleware.RequestID.
func requestIDFromCtx(c *fiber.Ctx) string {
	if v := c.Locals(middleware.RequestIDLocalKey); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// writeError writes a standardized JSON error response without leaking internal errors.
//
// Parameters:
// - status: HTTP status code to return
// - code: machine-readable short error code (e.g., "NOT_FOUND", "PROCESSING_FAILED")
// - message: human-readable safe message (no internal details)
func writeError(c *fiber.Ctx, status int, code, message string) error {
	res := errorPayload{
		RequestID: requestIDFromCtx(c),
		Error: errorEnvelope{
			Code:    code,
			Message: message,
		},
	}
	return c.Status(status).JSON(res)
}

// writeServiceError translates service sentinel errors into the standard
// error envelope. Unrecognized errors surface as 500 without details.
func writeServiceError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return writeError(c, fiber.StatusNotFound, "NOT_FOUND", "resource not found")
	case errors.Is(err, service.ErrConflict):
		return writeError(c, fiber.StatusConflict, "CONFLICT", "username already registered")
	case errors.Is(err, service.ErrUnauthorized):
		c.Set(fiber.HeaderWWWAuthenticate, "Bearer")
		return writeError(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "could not validate credentials")
	case errors.Is(err, service.ErrFileTooLarge):
		return writeError(c, fiber.StatusRequestEntityTooLarge, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
	case errors.Is(err, service.ErrProcessingFailed):
		return writeError(c, fiber.StatusUnprocessableEntity, "PROCESSING_FAILED", "could not extract text from the image")
	case errors.Is(err, service.ErrEmptyQuery):
		return writeError(c, fiber.StatusBadRequest, "EMPTY_QUERY", "search query must not be empty")
	case errors.Is(err, service.ErrInvalidScope):
		return writeError(c, fiber.StatusBadRequest, "INVALID_SEARCH_TYPE", "search type must be all, filename or content")
	case errors.Is(err, service.ErrInvalidFormat):
		return writeError(c, fiber.StatusBadRequest, "INVALID_FORMAT", "format must be txt, csv or pdf")
	case errors.Is(err, service.ErrValidation):
		return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "request validation failed")
	case errors.Is(err, service.ErrAnalyticsUnavailable):
		return writeError(c, fiber.StatusServiceUnavailable, "SERVICE_UNAVAILABLE", "statistics temporarily unavailable")
	default:
		return writeError(c, fiber.StatusInternalServerError, "INTERNAL_ERROR", "internal server error")
	}
}

// ErrorHandler returns a Fiber global error handler that standardizes error responses.
func ErrorHandler() fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		if e, ok := err.(*fiber.Error); ok {
			status = e.Code
		}

		switch status {
		case fiber.StatusBadRequest:
			return writeError(c, status, "BAD_REQUEST", "bad request")
		case fiber.StatusUnauthorized:
			return writeError(c, status, "UNAUTHORIZED", "could not validate credentials")
		case fiber.StatusNotFound:
			return writeError(c, status, "NOT_FOUND", "resource not found")
		case fiber.StatusMethodNotAllowed:
			return writeError(c, status, "METHOD_NOT_ALLOWED", "method not allowed")
		case fiber.StatusRequestEntityTooLarge:
			return writeError(c, status, "FILE_TOO_LARGE", "uploaded file exceeds the size limit")
		default:
			return writeError(c, status, "INTERNAL_ERROR", "internal server error")
		}
	}
}
