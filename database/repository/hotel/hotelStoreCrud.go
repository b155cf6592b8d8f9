package hotelRepo

import (
	"context"
	"fmt"
	"time"

	"lustrio/database"
	"lustrio/models"

	"go.mongodb.org/mongo-driver/bson"
)

type StoreHotelRepo struct {
	store database.Store
}

func NewStoreHotelRepo(store database.Store) HotelRepository {
	return &StoreHotelRepo{store: store}
}

func (r *StoreHotelRepo) GetAll(ctx context.Context) ([]models.Hotel, error) {
	hotels := []models.Hotel{}
	if err := r.store.Find(ctx, database.CollectionHotels, bson.M{}, &hotels); err != nil {
		return nil, fmt.Errorf("failed to retrieve hotels: %w", err)
	}
	if hotels == nil {
		hotels = []models.Hotel{}
	}
	return hotels, nil
}

func (r *StoreHotelRepo) GetByID(ctx context.Context, id string) (*models.Hotel, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return nil, err
	}
	var hotel models.Hotel
	if err := r.store.FindOne(ctx, database.CollectionHotels, bson.M{"_id": oid}, &hotel); err != nil {
		return nil, fmt.Errorf("failed to fetch hotel with id %s: %w", id, err)
	}
	return &hotel, nil
}

func (r *StoreHotelRepo) Create(ctx context.Context, hotel *models.Hotel) (database.InsertResult, error) {
	if hotel.CreatedAt.IsZero() {
		hotel.CreatedAt = time.Now().UTC()
	}
	res, err := r.store.InsertOne(ctx, database.CollectionHotels, hotel)
	if err != nil {
		return res, fmt.Errorf("failed to create hotel: %w", err)
	}
	return res, nil
}

// Delete removes at most one hotel. A miss is reported as DeletedCount 0.
func (r *StoreHotelRepo) Delete(ctx context.Context, id string) (database.DeleteResult, error) {
	oid, err := database.ParseID(id)
	if err != nil {
		return database.DeleteResult{}, err
	}
	res, err := r.store.DeleteOne(ctx, database.CollectionHotels, bson.M{"_id": oid})
	if err != nil {
		return res, fmt.Errorf("failed to delete hotel with id %s: %w", id, err)
	}
	return res, nil
}
