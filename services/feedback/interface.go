package feedback

import (
	"context"

	"lustrio/database"
	feedbackRepo "lustrio/database/repository/feedback"
	"lustrio/models"
)

type FeedbackService interface {
	CreateFeedback(ctx context.Context, in models.FeedbackInput) (database.InsertResult, error)
	ListFeedbacks(ctx context.Context) ([]models.Feedback, error)
}

type DefaultFeedbackService struct {
	Repo feedbackRepo.FeedbackRepository
}
