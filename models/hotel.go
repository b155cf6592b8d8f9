package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Hotel is a listed property. Img holds the uploaded image bytes and is never
// rewritten after insert.
type Hotel struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Price       float64            `bson:"price" json:"price"`
	Location    string             `bson:"location" json:"location"`
	Description string             `bson:"description" json:"description"`
	Img         []byte             `bson:"img" json:"img"`
	ImageType   string             `bson:"imageType,omitempty" json:"imageType,omitempty"`
	ImageURL    string             `bson:"imageUrl,omitempty" json:"imageUrl,omitempty"`
	ImageID     string             `bson:"imageId,omitempty" json:"imageId,omitempty"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// HotelInput carries the multipart form fields of POST /hotels.
type HotelInput struct {
	Name        string  `form:"name" binding:"required"`
	Price       float64 `form:"price" binding:"required,gt=0"`
	Location    string  `form:"location" binding:"required"`
	Description string  `form:"description"`
}
