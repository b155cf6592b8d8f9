package handlers

import (
	"lustrio/middleware"
	"lustrio/services/booking"
	"lustrio/services/feedback"
	"lustrio/services/hotel"
	"lustrio/services/identity"
	"lustrio/services/user"
	"lustrio/utils"

	"go.uber.org/zap"
)

// HandlerBundle groups the services every endpoint handler needs.
type HandlerBundle struct {
	Hotels    hotel.HotelService
	Bookings  booking.BookingService
	Feedbacks feedback.FeedbackService
	Users     user.UserService

	// Verifier backs IdentityMiddleware on the admin route.
	Verifier identity.Verifier
	// Metrics is optional; nil disables /metrics.
	Metrics        *middleware.Metrics
	AllowedOrigins []string

	// Health is optional; without it /health only reports liveness.
	Health *utils.HealthMonitor
	Logger *zap.Logger

	// MaxUploadBytes caps the hotel image size. Zero means unlimited.
	MaxUploadBytes int64
}

func (hb *HandlerBundle) logger() *zap.Logger {
	if hb.Logger == nil {
		return zap.L()
	}
	return hb.Logger
}
