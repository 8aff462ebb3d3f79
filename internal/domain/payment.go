package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentMethod is a saved card reference belonging to a user. Checkout only
// selects one; it never mutates payment methods and never touches a real
// gateway (payment processing is mocked at this layer).
type PaymentMethod struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Brand     string    `json:"brand"` // e.g. "VISA", "MASTERCARD"
	Last4     string    `json:"last4"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}
