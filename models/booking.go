package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	BookingStatusPending  = "pending"
	BookingStatusApproved = "approved"
)

// DateLayout is the wire format of check-in and check-out dates.
const DateLayout = "2006-01-02"

// Booking is a stay requested by a user for one hotel.
type Booking struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	HotelID         string             `bson:"hotelId" json:"hotelId"`
	HotelName       string             `bson:"hotelName,omitempty" json:"hotelName,omitempty"`
	Name            string             `bson:"name,omitempty" json:"name,omitempty"`
	Email           string             `bson:"email" json:"email"`
	Phone           string             `bson:"phone,omitempty" json:"phone,omitempty"`
	CheckIn         string             `bson:"checkIn,omitempty" json:"checkIn,omitempty"`
	CheckOut        string             `bson:"checkOut,omitempty" json:"checkOut,omitempty"`
	Price           float64            `bson:"price" json:"price"`
	Paid            bool               `bson:"paid" json:"paid"`
	Status          string             `bson:"status" json:"status"`
	PaymentIntentID string             `bson:"paymentIntentId,omitempty" json:"paymentIntentId,omitempty"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// BookingInput is the body of POST /bookings. Paid and status are not
// accepted from clients.
type BookingInput struct {
	HotelID   string  `json:"hotelId" binding:"required"`
	HotelName string  `json:"hotelName"`
	Name      string  `json:"name"`
	Email     string  `json:"email" binding:"required,email"`
	Phone     string  `json:"phone"`
	CheckIn   string  `json:"checkIn" binding:"omitempty,datetime=2006-01-02"`
	CheckOut  string  `json:"checkOut" binding:"omitempty,datetime=2006-01-02"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// ConfirmPaymentInput is the body of PUT /booking/:id.
type ConfirmPaymentInput struct {
	PaymentIntentID string `json:"paymentIntentId" binding:"required"`
}
