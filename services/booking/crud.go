package booking

import (
	"context"
	"strings"
	"time"

	"lustrio/database"
	"lustrio/models"
)

func (s *DefaultBookingService) CreateBooking(ctx context.Context, in models.BookingInput) (database.InsertResult, error) {
	if err := validateDates(in.CheckIn, in.CheckOut); err != nil {
		return database.InsertResult{}, err
	}
	if in.Price <= 0 {
		return database.InsertResult{}, newValidationError("price", "must be greater than zero")
	}
	return s.Repo.Create(ctx, &models.Booking{
		HotelID:   in.HotelID,
		HotelName: in.HotelName,
		Name:      in.Name,
		Email:     strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:     in.Phone,
		CheckIn:   in.CheckIn,
		CheckOut:  in.CheckOut,
		Price:     in.Price,
	})
}

func (s *DefaultBookingService) ListBookings(ctx context.Context) ([]models.Booking, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultBookingService) ListBookingsByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	return s.Repo.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
}

func (s *DefaultBookingService) GetBooking(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

// CancelBooking hard-deletes the booking. Cancelling twice reports
// DeletedCount 0.
func (s *DefaultBookingService) CancelBooking(ctx context.Context, id string) (database.DeleteResult, error) {
	return s.Repo.Delete(ctx, id)
}

func validateDates(checkIn, checkOut string) error {
	var in, out time.Time
	var err error
	if checkIn != "" {
		if in, err = time.Parse(models.DateLayout, checkIn); err != nil {
			return newValidationError("checkIn", "must be YYYY-MM-DD")
		}
	}
	if checkOut != "" {
		if out, err = time.Parse(models.DateLayout, checkOut); err != nil {
			return newValidationError("checkOut", "must be YYYY-MM-DD")
		}
	}
	if !in.IsZero() && !out.IsZero() && out.Before(in) {
		return newValidationError("checkOut", "must not be before checkIn")
	}
	return nil
}
