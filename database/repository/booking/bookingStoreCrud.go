package bookingRepo

import (
	"context"
	"fmt"
	"time"

	"lustrio/database"
	"lustrio/models"

	"go.mongodb.org/mongo-driver/bson"
)

type StoreBookingRepo struct {
	store database.Store
}

func NewStoreBookingRepo(store database.Store) BookingRepository {
	return &StoreBookingRepo{store: store}
}

func (r *StoreBookingRepo) find(ctx context.Context, filter bson.M) ([]models.Booking, error) {
	bookings := []models.Booking{}
	if err := r.store.Find(ctx, database.CollectionBookings, filter, &bookings); err != nil {
		return nil, err
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	return bookings, nil
}

func (r *StoreBookingRepo) GetAll(ctx context.Context) ([]models.Booking, error) {
	bookings, err := r.find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings: %w", err)
	}
	return bookings, nil
}

func (r *StoreBookingRepo) GetByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	bookings, err := r.find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to retrieve bookings for %s: %w", email, err)
	}
	return bookings, nil
}

func (r *StoreBookingRepo) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	var booking models.Booking
	if err := r.store.FindOne(ctx, database.CollectionBookings, bson.M{"_id": oid}, &booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking with id %s: %w", id, err)
	}
	return &booking, nil
}

func (r *StoreBookingRepo) GetByPaymentIntent(ctx context.Context, intentID string) (*models.Booking, error) {
	var booking models.Booking
	if err := r.store.FindOne(ctx, database.CollectionBookings, bson.M{"paymentIntentId": intentID}, &booking); err != nil {
		return nil, fmt.Errorf("failed to fetch booking for payment intent %s: %w", intentID, err)
	}
	return &booking, nil
}

// Create stores a new booking as pending and unpaid.
func (r *StoreBookingRepo) Create(ctx context.Context, booking *models.Booking) (database.InsertResult, error) {
	booking.Paid = false
	booking.Status = models.BookingStatusPending
	booking.PaymentIntentID = ""
	if booking.CreatedAt.IsZero() {
		booking.CreatedAt = time.Now().UTC()
	}
	res, err := r.store.InsertOne(ctx, database.CollectionBookings, booking)
	if err != nil {
		return res, fmt.Errorf("failed to create booking: %w", err)
	}
	return res, nil
}

func (r *StoreBookingRepo) Delete(ctx context.Context, id string) (database.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	res, err := r.store.DeleteOne(ctx, database.CollectionBookings, bson.M{"_id": oid})
	if err != nil {
		return res, fmt.Errorf("failed to delete booking with id %s: %w", id, err)
	}
	return res, nil
}

func (r *StoreBookingRepo) MarkPaid(ctx context.Context, id, paymentIntentID string) (database.UpdateResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return database.UpdateResult{}, err
	}
	filter := bson.M{"_id": oid, "paid": false}
	update := bson.M{"$set": bson.M{
		"paid":            true,
		"status":          models.BookingStatusApproved,
		"paymentIntentId": paymentIntentID,
	}}
	res, err := r.store.UpdateOne(ctx, database.CollectionBookings, filter, update, false)
	if err != nil {
		return res, fmt.Errorf("failed to mark booking %s paid: %w", id, err)
	}
	return res, nil
}
