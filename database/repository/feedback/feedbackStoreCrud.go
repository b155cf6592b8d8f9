package feedbackRepo

import (
	"context"
	"fmt"
	"time"

	"lustrio/database"
	"lustrio/models"

	"go.mongodb.org/mongo-driver/bson"
)

type StoreFeedbackRepo struct {
	store database.Store
}

func NewStoreFeedbackRepo(store database.Store) FeedbackRepository {
	return &StoreFeedbackRepo{store: store}
}

func (r *StoreFeedbackRepo) GetAll(ctx context.Context) ([]models.Feedback, error) {
	feedbacks := []models.Feedback{}
	if err := r.store.Find(ctx, database.CollectionFeedbacks, bson.M{}, &feedbacks); err != nil {
		return nil, fmt.Errorf("failed to retrieve feedbacks: %w", err)
	}
	if feedbacks == nil {
		feedbacks = []models.Feedback{}
	}
	return feedbacks, nil
}

func (r *StoreFeedbackRepo) Create(ctx context.Context, feedback *models.Feedback) (database.InsertResult, error) {
	if feedback.CreatedAt.IsZero() {
		feedback.CreatedAt = time.Now().UTC()
	}
	res, err := r.store.InsertOne(ctx, database.CollectionFeedbacks, feedback)
	if err != nil {
		return res, fmt.Errorf("failed to create feedback: %w", err)
	}
	return res, nil
}
