package payment

type CreateIntentInput struct {
	ScholarshipID uint `json:"scholarship_id" binding:"required"`
}

// Intent is returned to the client to open the hosted checkout.
type Intent struct {
	PaymentID    uint    `json:"payment_id"`
	OrderID      string  `json:"order_id"`
	ClientSecret string  `json:"client_secret,omitempty"`
	RedirectURL  string  `json:"redirect_url,omitempty"`
	Amount       float64 `json:"amount"`
	Status       Status  `json:"status"`
	ClientKey    string  `json:"client_key,omitempty"`
}

type NotificationInput struct {
	OrderID string `json:"order_id" binding:"required"`
}
