package response_models

type BookingResponse struct {
	ID           string `json:"id"`
	RetreatID    string `json:"retreat_id"`
	RetreatTitle string `json:"retreat_title,omitempty"`
	Guests       int    `json:"guests"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
}

type CreateCheckoutResponse struct {
	OrderCode    int64  `json:"order_code"`
	Amount       int64  `json:"amount"`
	PaymentURL   string `json:"payment_url"`
	ProviderName string `json:"provider_name"`
}
