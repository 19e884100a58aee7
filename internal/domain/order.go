package domain

import (
	"time"

	"github.com/google/uuid"
)

// Receipt describes a placed order. It is handed back to the caller and logged,
// never stored.
type Receipt struct {
	ID       uuid.UUID
	UserID   string
	PlacedBy string

	Items       []CartItem
	Subtotal    Money
	DeliveryFee Money
	Total       Money

	PaymentMethod    PaymentMethod
	DeliveryMethod   DeliveryMethod
	DeliveryLocation string
	DeliveryDate     string
	DeliveryTime     string

	PlacedAt time.Time
}
