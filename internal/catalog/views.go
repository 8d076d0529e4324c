package catalog

import (
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
)

// ByCategory filters products to a single category, preserving order.
func ByCategory(products []ProductView, category enums.ProductCategory) []ProductView {
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

// SearchByName keeps products whose name contains the query,
// case-insensitively. A blank query matches everything.
func SearchByName(products []ProductView, query string) []ProductView {
	needle := strings.ToLower(strings.TrimSpace(query))
	if needle == "" {
		return append([]ProductView(nil), products...)
	}
	out := make([]ProductView, 0, len(products))
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	return out
}

// Related returns products sharing the subject's category, excluding the
// subject itself, bounded by limit.
func Related(products []ProductView, productID uuid.UUID, category enums.ProductCategory, limit int) []ProductView {
	out := make([]ProductView, 0, limit)
	for _, p := range products {
		if p.ID == productID || p.Category != category {
			continue
		}
		out = append(out, p)
		if limit > 0 && len(out) >= limit {
			break
		}
	}
	return out
}

// FlashSale keeps discounted products sorted by discount percent descending,
// bounded by limit. Ties keep the incoming order.
func FlashSale(products []ProductView, limit int) []ProductView {
	discounted := make([]ProductView, 0, len(products))
	for _, p := range products {
		if p.DiscountPercent != nil {
			discounted = append(discounted, p)
		}
	}
	sort.SliceStable(discounted, func(i, j int) bool {
		return discounted[i].DiscountPercent.GreaterThan(*discounted[j].DiscountPercent)
	})
	return bound(discounted, limit)
}

// BestSelling sorts products by review count descending, bounded by limit.
func BestSelling(products []ProductView, limit int) []ProductView {
	ranked := append([]ProductView(nil), products...)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].ReviewCount > ranked[j].ReviewCount
	})
	return bound(ranked, limit)
}

func bound(products []ProductView, limit int) []ProductView {
	if limit > 0 && len(products) > limit {
		return products[:limit]
	}
	return products
}
