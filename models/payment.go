package models

// PaymentIntentRequest is the body of POST /create-payment-intent. When
// BookingID is set the amount comes from the stored booking, not Price.
type PaymentIntentRequest struct {
	Price     float64 `json:"price"`
	BookingID string  `json:"bookingId"`
}

type PaymentIntentResponse struct {
	ClientSecret    string `json:"clientSecret"`
	PaymentIntentID string `json:"paymentIntentId"`
	Amount          int64  `json:"amount"`
	Currency        string `json:"currency"`
}
