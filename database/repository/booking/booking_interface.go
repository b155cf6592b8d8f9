package bookingRepo

import (
	"context"

	"lustrio/database"
	"lustrio/models"
)

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	GetAll(ctx context.Context) ([]models.Booking, error)
	GetByEmail(ctx context.Context, email string) ([]models.Booking, error)
	// GetByID returns database.ErrNotFound when the id matches nothing.
	GetByID(ctx context.Context, id string) (*models.Booking, error)
	// GetByPaymentIntent returns the booking settled by intentID, or
	// database.ErrNotFound.
	GetByPaymentIntent(ctx context.Context, intentID string) (*models.Booking, error)
	Create(ctx context.Context, booking *models.Booking) (database.InsertResult, error)
	Delete(ctx context.Context, id string) (database.DeleteResult, error)
	// MarkPaid flips an unpaid booking to paid/approved. A booking that is
	// already paid does not match, so MatchedCount is 0.
	MarkPaid(ctx context.Context, id, paymentIntentID string) (database.UpdateResult, error)
}
