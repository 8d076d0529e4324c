package cart

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
)

// Entry is one cart line. Lines are keyed by the composite of product id
// and the selected color/size, so the same product can appear once per
// variant combination.
type Entry struct {
	ProductID     uuid.UUID `json:"product_id"`
	SelectedColor *string   `json:"selected_color,omitempty"`
	SelectedSize  *string   `json:"selected_size,omitempty"`
	Quantity      int       `json:"quantity"`
	AddedAt       time.Time `json:"added_at"`
}

// ItemDTO pairs a cart entry with its catalog product and line total.
type ItemDTO struct {
	ProductID     uuid.UUID            `json:"product_id"`
	SelectedColor *string              `json:"selected_color,omitempty"`
	SelectedSize  *string              `json:"selected_size,omitempty"`
	Quantity      int                  `json:"quantity"`
	AddedAt       time.Time            `json:"added_at"`
	Product       *catalog.ProductView `json:"product,omitempty"`
	LineTotal     decimal.Decimal      `json:"line_total"`
}

// CartDTO is the transport shape of a user's cart.
type CartDTO struct {
	Items    []ItemDTO       `json:"items"`
	Count    int             `json:"count"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

func sameVariant(entry Entry, productID uuid.UUID, color, size *string) bool {
	return entry.ProductID == productID &&
		equalPtr(entry.SelectedColor, color) &&
		equalPtr(entry.SelectedSize, size)
}

func equalPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
