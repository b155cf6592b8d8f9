package hotelRepo

import (
	"context"

	"lustrio/database"
	"lustrio/models"
)

// HotelRepository defines methods for hotel data access. There is no update:
// a stored image is never rewritten.
type HotelRepository interface {
	GetAll(ctx context.Context) ([]models.Hotel, error)
	// GetByID returns database.ErrNotFound when the id matches nothing.
	GetByID(ctx context.Context, id string) (*models.Hotel, error)
	Create(ctx context.Context, hotel *models.Hotel) (database.InsertResult, error)
	Delete(ctx context.Context, id string) (database.DeleteResult, error)
}
