package wishlist

import (
	"time"

	"github.com/google/uuid"

	"github.com/lucashenriquez/exclusive-backend/internal/catalog"
)

// Entry marks one saved product on a user's wishlist.
type Entry struct {
	ProductID uuid.UUID `json:"product_id"`
	AddedAt   time.Time `json:"added_at"`
}

// ItemDTO joins a wishlist entry with its catalog product. Product is nil
// when the product has since been removed from the catalog.
type ItemDTO struct {
	ProductID uuid.UUID            `json:"product_id"`
	AddedAt   time.Time            `json:"added_at"`
	Product   *catalog.ProductView `json:"product,omitempty"`
}

// WishlistDTO is the transport shape of a user's wishlist.
type WishlistDTO struct {
	Items []ItemDTO `json:"items"`
	Count int       `json:"count"`
}

func contains(entries []Entry, productID uuid.UUID) bool {
	for _, entry := range entries {
		if entry.ProductID == productID {
			return true
		}
	}
	return false
}

func without(entries []Entry, productID uuid.UUID) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		if entry.ProductID == productID {
			continue
		}
		out = append(out, entry)
	}
	return out
}
