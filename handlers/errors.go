package handlers

import (
	"errors"
	"net/http"

	"lustrio/database"
	"lustrio/middleware"
	"lustrio/services/booking"
	"lustrio/services/hotel"
	"lustrio/services/payment"
	"lustrio/services/user"
	"lustrio/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// statusOf maps service and store errors to an HTTP status and a short
// client-facing message.
func statusOf(err error) (int, string) {
	var verr *booking.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest, "Invalid request"
	case errors.Is(err, database.ErrInvalidID):
		return http.StatusBadRequest, "Invalid id"
	case errors.Is(err, hotel.ErrInvalidImage):
		return http.StatusBadRequest, "Invalid image"
	case errors.Is(err, booking.ErrPaymentMismatch), errors.Is(err, payment.ErrRejected):
		return http.StatusPaymentRequired, "Payment not accepted"
	case errors.Is(err, user.ErrForbidden):
		return http.StatusForbidden, "Forbidden"
	case errors.Is(err, database.ErrNotFound):
		return http.StatusNotFound, "Not found"
	case errors.Is(err, database.ErrDuplicate):
		return http.StatusConflict, "Already exists"
	case errors.Is(err, booking.ErrAlreadyPaid):
		return http.StatusConflict, "Booking already paid"
	case errors.Is(err, user.ErrIdentityUnavailable):
		return http.StatusServiceUnavailable, "Identity service unavailable"
	case errors.Is(err, payment.ErrUnavailable):
		return http.StatusServiceUnavailable, "Payment service unavailable"
	case errors.Is(err, database.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, "Store unavailable"
	default:
		return http.StatusInternalServerError, "Internal Server Error"
	}
}

func (hb *HandlerBundle) respondError(c *gin.Context, err error) {
	status, message := statusOf(err)
	_ = c.Error(err)

	details := err.Error()
	fields := []zap.Field{
		zap.String("route", c.FullPath()),
		zap.Int("status", status),
		zap.String("requestId", middleware.RequestID(c)),
		zap.Error(err),
	}
	if status >= http.StatusInternalServerError {
		hb.logger().Error(message, fields...)
		// Driver and SDK errors stay in the logs.
		details = ""
	} else {
		hb.logger().Warn(message, fields...)
	}
	utils.JSONError(c, status, message, details)
}

func (hb *HandlerBundle) badRequest(c *gin.Context, err error) {
	hb.logger().Warn("Invalid request", zap.String("route", c.FullPath()), zap.Error(err))
	utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
}
