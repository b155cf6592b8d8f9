package userRepo

import (
	"context"

	"lustrio/database"
	"lustrio/models"
)

// UserRepository defines methods for user data access.
type UserRepository interface {
	// Create inserts a new user record.
	Create(ctx context.Context, user *models.User) (database.InsertResult, error)
	// UpsertByEmail creates the user on first sign-in or refreshes its profile.
	UpsertByEmail(ctx context.Context, in models.UserInput) (database.UpdateResult, error)
	// GetByEmail returns nil without error when no user has that email.
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	// SetRole upserts the role of the user with that email.
	SetRole(ctx context.Context, email, role string) (database.UpdateResult, error)
}
