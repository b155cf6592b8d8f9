package feedbackRepo

import (
	"context"

	"lustrio/database"
	"lustrio/models"
)

// FeedbackRepository is append-only.
type FeedbackRepository interface {
	GetAll(ctx context.Context) ([]models.Feedback, error)
	Create(ctx context.Context, feedback *models.Feedback) (database.InsertResult, error)
}
