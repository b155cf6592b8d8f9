package user

import (
	"context"
	"errors"

	"lustrio/database"
	userRepo "lustrio/database/repository/user"
	"lustrio/models"
	"lustrio/services/identity"
)

var (
	// ErrForbidden rejects a promotion whose requester is not a verified admin.
	ErrForbidden = errors.New("forbidden")
	// ErrIdentityUnavailable means the requester's token could not be checked.
	ErrIdentityUnavailable = errors.New("identity verification unavailable")
)

type UserService interface {
	// RegisterUser inserts a new user; a second registration of the same
	// email fails with database.ErrDuplicate.
	RegisterUser(ctx context.Context, in models.UserInput) (database.InsertResult, error)
	// SignInUser upserts the user by email.
	SignInUser(ctx context.Context, in models.UserInput) (database.UpdateResult, error)
	IsAdmin(ctx context.Context, email string) (models.AdminStatus, error)
	PromoteToAdmin(ctx context.Context, requester identity.Result, targetEmail string) (database.UpdateResult, error)
}

// DefaultUserService is the production implementation.
type DefaultUserService struct {
	Repo userRepo.UserRepository
}
