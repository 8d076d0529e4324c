package catalog

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/pkg/db/models"
	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
)

// ProductView is the storefront-facing product shape.
type ProductView struct {
	ID              uuid.UUID             `json:"id"`
	Name            string                `json:"name"`
	Description     *string               `json:"description,omitempty"`
	ImageURL        string                `json:"image_url"`
	Category        enums.ProductCategory `json:"category"`
	Price           decimal.Decimal       `json:"price"`
	OriginalPrice   *decimal.Decimal      `json:"original_price,omitempty"`
	DiscountPercent *decimal.Decimal      `json:"discount_percent,omitempty"`
	Rating          decimal.Decimal       `json:"rating"`
	ReviewCount     int                   `json:"review_count"`
	Colors          []string              `json:"colors,omitempty"`
	Sizes           []string              `json:"sizes,omitempty"`
	InStock         bool                  `json:"in_stock"`
	CreatedAt       time.Time             `json:"created_at"`
	UpdatedAt       time.Time             `json:"updated_at"`
}

// ProductListResult wraps a page of products plus the next page cursor.
type ProductListResult struct {
	Products   []ProductView `json:"products"`
	NextCursor string        `json:"next_cursor,omitempty"`
}

// FromModel converts a persisted product into its storefront view,
// deriving the discount percent when an original price applies.
func FromModel(p models.Product) ProductView {
	view := ProductView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		Category:    p.Category,
		Price:       p.Price,
		Rating:      p.Rating,
		ReviewCount: p.ReviewCount,
		Colors:      append([]string(nil), p.Colors...),
		Sizes:       append([]string(nil), p.Sizes...),
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.OriginalPrice != nil {
		original := *p.OriginalPrice
		view.OriginalPrice = &original
		if percent := DiscountPercent(p.Price, original); percent != nil {
			view.DiscountPercent = percent
		}
	}
	return view
}

// DiscountPercent derives the rounded markdown percentage, nil when the
// original price does not exceed the current one.
func DiscountPercent(price, original decimal.Decimal) *decimal.Decimal {
	if original.LessThanOrEqual(price) || original.IsZero() {
		return nil
	}
	percent := original.Sub(price).
		Div(original).
		Mul(decimal.NewFromInt(100)).
		Round(0)
	return &percent
}
