package booking

import (
	"context"
	"testing"

	"lustrio/database"
	"lustrio/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingValidatesDates(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)

	_, err := s.CreateBooking(ctx, models.BookingInput{
		HotelID: "H1", Email: "b@x.com", Price: 100,
		CheckIn: "2026-05-10", CheckOut: "2026-05-08",
	})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "checkOut", verr.Field)

	_, err = s.CreateBooking(ctx, models.BookingInput{
		HotelID: "H1", Email: "b@x.com", Price: 100, CheckIn: "10/05/2026",
	})
	assert.ErrorAs(t, err, &verr)

	_, err = s.CreateBooking(ctx, models.BookingInput{
		HotelID: "H1", Email: "B@X.com", Price: 100,
		CheckIn: "2026-05-08", CheckOut: "2026-05-10",
	})
	require.NoError(t, err)

	mine, err := s.ListBookingsByEmail(ctx, "b@x.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.False(t, mine[0].Paid)
}

func TestCancelBookingTwice(t *testing.T) {
	ctx := context.Background()
	s, _ := newService(t)
	id := createBooking(t, s, 80)
	keep := createBooking(t, s, 90)

	res, err := s.CancelBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(1), res.DeletedCount)

	res, err = s.CancelBooking(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, int64(0), res.DeletedCount)

	all, err := s.ListBookings(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep, all[0].ID.Hex())

	_, err = s.GetBooking(ctx, id)
	assert.ErrorIs(t, err, database.ErrNotFound)
}
