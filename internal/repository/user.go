package repository

import (
	"context"

	"github.com/chou-ng-coder/ocr-website/internal/model"
)

// UserRepository defines data access for user accounts.
type UserRepository interface {
	// Create inserts a new user record and returns the stored row.
	// A duplicate username surfaces as the driver's unique-violation error.
	Create(ctx context.Context, user *model.User) (*model.User, error)

	// FindByUsername returns a user by username. Returns sql.ErrNoRows when absent.
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}
