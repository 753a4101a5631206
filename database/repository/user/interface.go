package userRepo

import (
	"context"

	"clinicportal/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// GetByEmail retrieves a user by email; nil when absent.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// GetAll retrieves all users.
	GetAll(ctx context.Context) ([]models.User, error)
	// Create inserts a new user record and returns its hex id.
	Create(ctx context.Context, user *models.User) (string, error)
	// SetRole upserts the role of the user with the given hex id.
	SetRole(ctx context.Context, id, role string) error
	// Delete removes a user record by its hex id.
	Delete(ctx context.Context, id string) error
}
