package request_models

type CreateBookingRequest struct {
	RetreatID string `json:"retreat_id" binding:"required"`
	Guests    int    `json:"guests"`
	Notes     string `json:"notes,omitempty"`
}

type CheckoutRequest struct {
	BookingID string `json:"booking_id" binding:"required"`
}
