package user

import (
	"context"
	"strings"

	"lustrio/database"
	"lustrio/models"
)

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *DefaultUserService) RegisterUser(ctx context.Context, in models.UserInput) (database.InsertResult, error) {
	return s.Repo.Create(ctx, &models.User{
		Email:       normalizeEmail(in.Email),
		DisplayName: in.DisplayName,
	})
}

func (s *DefaultUserService) SignInUser(ctx context.Context, in models.UserInput) (database.UpdateResult, error) {
	in.Email = normalizeEmail(in.Email)
	return s.Repo.UpsertByEmail(ctx, in)
}

// IsAdmin reports false for unknown emails.
func (s *DefaultUserService) IsAdmin(ctx context.Context, email string) (models.AdminStatus, error) {
	u, err := s.Repo.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return models.AdminStatus{}, err
	}
	return models.AdminStatus{Admin: u.IsAdmin()}, nil
}
