package hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"lustrio/database"
	"lustrio/models"

	"github.com/gabriel-vasile/mimetype"
	"go.uber.org/zap"
)

func (s *DefaultHotelService) ListHotels(ctx context.Context) ([]models.Hotel, error) {
	return s.Repo.GetAll(ctx)
}

func (s *DefaultHotelService) GetHotel(ctx context.Context, id string) (*models.Hotel, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultHotelService) CreateHotel(ctx context.Context, in models.HotelInput, img ImageUpload) (database.InsertResult, error) {
	if len(img.Data) == 0 {
		return database.InsertResult{}, fmt.Errorf("%w: image is empty", ErrInvalidImage)
	}
	contentType := mimetype.Detect(img.Data).String()
	if !strings.HasPrefix(contentType, "image/") {
		return database.InsertResult{}, fmt.Errorf("%w: unsupported content type %s", ErrInvalidImage, contentType)
	}

	h := &models.Hotel{
		Name:        strings.TrimSpace(in.Name),
		Price:       in.Price,
		Location:    strings.TrimSpace(in.Location),
		Description: in.Description,
		Img:         img.Data,
		ImageType:   contentType,
	}

	if s.Mirror != nil {
		mirrored, err := s.Mirror.Put(ctx, img.Filename, img.Data)
		if err != nil {
			// The bytes are still stored; only the CDN copy is missing.
			s.Logger.Warn("hotel image mirror failed", zap.String("hotel", h.Name), zap.Error(err))
		} else {
			h.ImageURL = mirrored.URL
			h.ImageID = mirrored.ID
		}
	}

	return s.Repo.Create(ctx, h)
}

// DeleteHotel removes the hotel and its mirrored image. A repeated delete
// reports DeletedCount 0.
func (s *DefaultHotelService) DeleteHotel(ctx context.Context, id string) (database.DeleteResult, error) {
	var imageID string
	if s.Mirror != nil {
		h, err := s.Repo.GetByID(ctx, id)
		switch {
		case err == nil:
			imageID = h.ImageID
		case !errors.Is(err, database.ErrNotFound):
			return database.DeleteResult{}, err
		}
	}

	res, err := s.Repo.Delete(ctx, id)
	if err != nil {
		return res, err
	}
	if res.DeletedCount > 0 && imageID != "" {
		if err := s.Mirror.Remove(ctx, imageID); err != nil {
			s.Logger.Warn("hotel image removal failed", zap.String("image", imageID), zap.Error(err))
		}
	}
	return res, nil
}
