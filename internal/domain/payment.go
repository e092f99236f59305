package domain

import (
	"context"
	"time"
)

// Payment status values.
const (
	PaymentPending  = "PENDING"
	PaymentVerified = "VERIFIED"
	PaymentRejected = "REJECTED"
)

// ValidPaymentStatus reports whether s is a recognized payment status.
func ValidPaymentStatus(s string) bool {
	return s == PaymentPending || s == PaymentVerified || s == PaymentRejected
}

// Payment is a registrant's payment record; at most one per user.
// swagger:model Payment
type Payment struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	Amount        float64   `json:"amount"`
	ScreenshotURL string    `json:"screenshot_url"`
	TransactionID *string   `json:"transaction_id"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
}

// PaymentRepository defines storage operations for payments.
type PaymentRepository interface {
	GetByUserID(ctx context.Context, userID string) (*Payment, error)
	// SetStatusByUserID updates the user's payment status and returns the
	// updated row. Returns ErrNotFound when the user has no payment.
	SetStatusByUserID(ctx context.Context, userID, status string) (*Payment, error)
}
