package hotel

import (
	"context"
	"errors"

	"lustrio/database"
	hotelRepo "lustrio/database/repository/hotel"
	"lustrio/models"
	"lustrio/services/storage"

	"go.uber.org/zap"
)

var ErrInvalidImage = errors.New("invalid image")

// ImageUpload is a decoded multipart image.
type ImageUpload struct {
	Filename    string
	ContentType string
	Data        []byte
}

type HotelService interface {
	ListHotels(ctx context.Context) ([]models.Hotel, error)
	GetHotel(ctx context.Context, id string) (*models.Hotel, error)
	CreateHotel(ctx context.Context, in models.HotelInput, img ImageUpload) (database.InsertResult, error)
	DeleteHotel(ctx context.Context, id string) (database.DeleteResult, error)
}

// DefaultHotelService stores hotels and, when Mirror is set, copies their
// images to the CDN.
type DefaultHotelService struct {
	Repo   hotelRepo.HotelRepository
	Mirror storage.ImageMirror
	Logger *zap.Logger
}

func NewHotelService(repo hotelRepo.HotelRepository, mirror storage.ImageMirror, logger *zap.Logger) *DefaultHotelService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DefaultHotelService{Repo: repo, Mirror: mirror, Logger: logger}
}
