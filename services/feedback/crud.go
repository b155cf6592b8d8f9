package feedback

import (
	"context"
	"strings"

	"lustrio/database"
	"lustrio/models"
)

func (s *DefaultFeedbackService) CreateFeedback(ctx context.Context, in models.FeedbackInput) (database.InsertResult, error) {
	fb := &models.Feedback{
		Name:    strings.TrimSpace(in.Name),
		Email:   strings.ToLower(strings.TrimSpace(in.Email)),
		Message: in.Message,
		Rating:  in.Rating,
	}
	return s.Repo.Create(ctx, fb)
}

func (s *DefaultFeedbackService) ListFeedbacks(ctx context.Context) ([]models.Feedback, error) {
	return s.Repo.GetAll(ctx)
}
