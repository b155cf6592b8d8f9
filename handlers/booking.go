package handlers

import (
	"net/http"

	"lustrio/models"

	"github.com/gin-gonic/gin"
)

// CreateBookingHandler handles POST /bookings.
func (hb *HandlerBundle) CreateBookingHandler(c *gin.Context) {
	var in models.BookingInput
	if err := c.ShouldBindJSON(&in); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Bookings.CreateBooking(c.Request.Context(), in)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetBookingsHandler handles GET /bookings.
func (hb *HandlerBundle) GetBookingsHandler(c *gin.Context) {
	bookings, err := hb.Bookings.ListBookings(c.Request.Context())
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingsByEmailHandler handles GET /bookings/:email.
func (hb *HandlerBundle) GetBookingsByEmailHandler(c *gin.Context) {
	bookings, err := hb.Bookings.ListBookingsByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// GetBookingHandler handles GET /booking/:id.
func (hb *HandlerBundle) GetBookingHandler(c *gin.Context) {
	b, err := hb.Bookings.GetBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// CancelBookingHandler handles DELETE /booking/:id.
func (hb *HandlerBundle) CancelBookingHandler(c *gin.Context) {
	res, err := hb.Bookings.CancelBooking(c.Request.Context(), c.Param("id"))
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// ConfirmPaymentHandler handles PUT /booking/:id. The body names the
// payment intent that settles the booking.
func (hb *HandlerBundle) ConfirmPaymentHandler(c *gin.Context) {
	var in models.ConfirmPaymentInput
	if err := c.ShouldBindJSON(&in); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Bookings.ConfirmPayment(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// CreatePaymentIntentHandler handles POST /create-payment-intent.
func (hb *HandlerBundle) CreatePaymentIntentHandler(c *gin.Context) {
	var req models.PaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		hb.badRequest(c, err)
		return
	}
	res, err := hb.Bookings.CreatePaymentIntent(c.Request.Context(), req)
	if err != nil {
		hb.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
