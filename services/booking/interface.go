package booking

import (
	"context"

	"lustrio/database"
	bookingRepo "lustrio/database/repository/booking"
	"lustrio/models"
	"lustrio/services/payment"

	"go.uber.org/zap"
)

type BookingService interface {
	CreateBooking(ctx context.Context, in models.BookingInput) (database.InsertResult, error)
	ListBookings(ctx context.Context) ([]models.Booking, error)
	ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error)
	GetBooking(ctx context.Context, id string) (*models.Booking, error)
	CancelBooking(ctx context.Context, id string) (database.DeleteResult, error)
	CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error)
	// ConfirmPayment marks the booking paid and approved once the payment
	// intent is shown to have settled the booking's exact amount.
	ConfirmPayment(ctx context.Context, id string, in models.ConfirmPaymentInput) (database.UpdateResult, error)
}

// DefaultBookingService is the production implementation.
type DefaultBookingService struct {
	Repo     bookingRepo.BookingRepository
	Payments payment.Issuer
	Currency string
	Logger   *zap.Logger
}

func NewBookingService(repo bookingRepo.BookingRepository, issuer payment.Issuer, currency string, logger *zap.Logger) *DefaultBookingService {
	if currency == "" {
		currency = "usd"
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultBookingService{
		Repo:     repo,
		Payments: issuer,
		Currency: currency,
		Logger:   logger,
	}
}
