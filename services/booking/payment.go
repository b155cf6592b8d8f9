package booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lustrio/database"
	"lustrio/models"
	"lustrio/services/payment"

	"go.uber.org/zap"
)

const bookingMetadataKey = "booking_id"

// CreatePaymentIntent issues an intent for req.Price, or for the stored price
// of req.BookingID when one is given.
func (s *DefaultBookingService) CreatePaymentIntent(ctx context.Context, req models.PaymentIntentRequest) (*models.PaymentIntentResponse, error) {
	price := req.Price
	var metadata map[string]string
	if req.BookingID != "" {
		b, err := s.Repo.GetByID(ctx, req.BookingID)
		if err != nil {
			return nil, err
		}
		if b.Paid {
			return nil, fmt.Errorf("%w: %s", ErrAlreadyPaid, req.BookingID)
		}
		price = b.Price
		metadata = map[string]string{bookingMetadataKey: b.ID.Hex()}
	}

	amount := payment.MinorUnits(price)
	if amount <= 0 {
		return nil, newValidationError("price", "must be greater than zero")
	}

	intent, err := s.Payments.CreateIntent(ctx, amount, s.Currency, metadata)
	if err != nil {
		return nil, err
	}
	s.Logger.Info("payment intent created",
		zap.String("intent", intent.ID),
		zap.Int64("amount", amount),
		zap.String("booking", req.BookingID))

	return &models.PaymentIntentResponse{
		ClientSecret:    intent.ClientSecret,
		PaymentIntentID: intent.ID,
		Amount:          intent.Amount,
		Currency:        intent.Currency,
	}, nil
}

// ConfirmPayment looks the intent up before touching the booking, so a
// failed lookup or a mismatch leaves the booking unpaid.
func (s *DefaultBookingService) ConfirmPayment(ctx context.Context, id string, in models.ConfirmPaymentInput) (database.UpdateResult, error) {
	if strings.TrimSpace(in.PaymentIntentID) == "" {
		return database.UpdateResult{}, newValidationError("paymentIntentId", "is required")
	}

	b, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if b.Paid {
		return database.UpdateResult{}, fmt.Errorf("%w: %s", ErrAlreadyPaid, id)
	}

	intent, err := s.Payments.GetIntent(ctx, in.PaymentIntentID)
	if err != nil {
		return database.UpdateResult{}, err
	}
	if err := s.checkIntent(b, intent); err != nil {
		s.Logger.Warn("payment intent rejected for booking",
			zap.String("booking", id),
			zap.String("intent", intent.ID),
			zap.Error(err))
		return database.UpdateResult{}, err
	}

	// An intent settles at most one booking.
	used, err := s.Repo.GetByPaymentIntent(ctx, intent.ID)
	switch {
	case err == nil:
		s.Logger.Warn("payment intent already settles another booking",
			zap.String("booking", id),
			zap.String("intent", intent.ID),
			zap.String("settled", used.ID.Hex()))
		return database.UpdateResult{}, fmt.Errorf("%w: intent %s already settles booking %s", ErrPaymentMismatch, intent.ID, used.ID.Hex())
	case !errors.Is(err, database.ErrNotFound):
		return database.UpdateResult{}, err
	}

	res, err := s.Repo.MarkPaid(ctx, id, intent.ID)
	if errors.Is(err, database.ErrDuplicate) {
		// Another booking recorded the same intent between the lookup and the update.
		return res, fmt.Errorf("%w: intent %s already used: %w", ErrPaymentMismatch, intent.ID, err)
	}
	if err != nil {
		return res, err
	}
	if res.MatchedCount == 0 {
		// Paid concurrently between the read and the update.
		return res, fmt.Errorf("%w: %s", ErrAlreadyPaid, id)
	}
	s.Logger.Info("booking paid", zap.String("booking", id), zap.String("intent", intent.ID))
	return res, nil
}

func (s *DefaultBookingService) checkIntent(b *models.Booking, intent *payment.Intent) error {
	if intent.Status != payment.IntentSucceeded {
		return fmt.Errorf("%w: intent status is %q", ErrPaymentMismatch, intent.Status)
	}
	if want := payment.MinorUnits(b.Price); intent.Amount != want {
		return fmt.Errorf("%w: intent amount %d, booking amount %d", ErrPaymentMismatch, intent.Amount, want)
	}
	if !strings.EqualFold(intent.Currency, s.Currency) {
		return fmt.Errorf("%w: intent currency %q", ErrPaymentMismatch, intent.Currency)
	}
	if tagged, ok := intent.Metadata[bookingMetadataKey]; ok && tagged != b.ID.Hex() {
		return fmt.Errorf("%w: intent belongs to booking %s", ErrPaymentMismatch, tagged)
	}
	return nil
}
