package payment

import "time"

type Status string

const (
	StatusPending Status = "pending"
	StatusPaid    Status = "paid"
	StatusFailed  Status = "failed"
	StatusExpired Status = "expired"
)

type Payment struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	OrderID       string     `gorm:"size:64;not null;uniqueIndex" json:"order_id"`
	UserID        uint       `gorm:"not null;index" json:"user_id"`
	ScholarshipID uint       `gorm:"not null;index" json:"scholarship_id"`
	Amount        float64    `gorm:"not null" json:"amount"`
	Currency      string     `gorm:"size:8;not null;default:'IDR'" json:"currency"`
	Status        Status     `gorm:"size:16;not null;default:'pending';index" json:"status"`
	ProviderToken string     `gorm:"size:255" json:"-"`
	RedirectURL   string     `gorm:"size:512" json:"redirect_url,omitempty"`
	ProviderTxnID string     `gorm:"size:128" json:"provider_txn_id,omitempty"`
	PaidAt        *time.Time `json:"paid_at,omitempty"`
	ConsumedAt    *time.Time `json:"consumed_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// Consumable reports whether the payment can still unlock an application.
// A payment is spent for good once an application used it, even if that
// application is later withdrawn.
func (p Payment) Consumable() bool {
	return p.Status == StatusPaid && p.ConsumedAt == nil
}

// StatusFromProvider maps a hosted-checkout transaction status onto ours.
// Unknown values keep the payment pending.
func StatusFromProvider(txnStatus, fraudStatus string) Status {
	switch txnStatus {
	case "settlement":
		return StatusPaid
	case "capture":
		if fraudStatus == "" || fraudStatus == "accept" {
			return StatusPaid
		}
		return StatusPending
	case "deny", "cancel", "failure":
		return StatusFailed
	case "expire":
		return StatusExpired
	}
	return StatusPending
}
