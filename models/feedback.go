package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email,omitempty" json:"email,omitempty"`
	Message   string             `bson:"message" json:"message"`
	Rating    int                `bson:"rating,omitempty" json:"rating,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
}

type FeedbackInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"omitempty,email"`
	Message string `json:"message" binding:"required"`
	Rating  int    `json:"rating" binding:"omitempty,min=1,max=5"`
}
