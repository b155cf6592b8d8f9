package user

import (
	"context"
	"fmt"

	"lustrio/database"
	"lustrio/models"
	"lustrio/services/identity"
)

// PromoteToAdmin sets targetEmail's role to admin. The requester's identity
// must be verified first, and only then is its stored role trusted.
func (s *DefaultUserService) PromoteToAdmin(ctx context.Context, requester identity.Result, targetEmail string) (database.UpdateResult, error) {
	if requester.Status == identity.Failed {
		return database.UpdateResult{}, fmt.Errorf("%w: %w", ErrIdentityUnavailable, requester.Err)
	}
	if !requester.IsVerified() {
		return database.UpdateResult{}, fmt.Errorf("%w: requester is not authenticated", ErrForbidden)
	}

	acting, err := s.Repo.GetByEmail(ctx, normalizeEmail(requester.Email))
	if err != nil {
		return database.UpdateResult{}, err
	}
	if !acting.IsAdmin() {
		return database.UpdateResult{}, fmt.Errorf("%w: %s is not an admin", ErrForbidden, requester.Email)
	}

	return s.Repo.SetRole(ctx, normalizeEmail(targetEmail), models.RoleAdmin)
}
