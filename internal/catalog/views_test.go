package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/lucashenriquez/exclusive-backend/pkg/enums"
)

func discountedProduct(name string, price, original float64) ProductView {
	p := decimal.NewFromFloat(price)
	o := decimal.NewFromFloat(original)
	view := ProductView{
		ID:       uuid.New(),
		Name:     name,
		Category: enums.ProductCategoryElectronics,
		Price:    p,
	}
	view.OriginalPrice = &o
	view.DiscountPercent = DiscountPercent(p, o)
	return view
}

func TestDiscountPercent(t *testing.T) {
	percent := DiscountPercent(decimal.NewFromInt(75), decimal.NewFromInt(100))
	if percent == nil {
		t.Fatal("expected a discount percent")
	}
	if !percent.Equal(decimal.NewFromInt(25)) {
		t.Fatalf("expected 25, got %s", percent)
	}

	if DiscountPercent(decimal.NewFromInt(100), decimal.NewFromInt(100)) != nil {
		t.Fatal("expected nil when original equals price")
	}
	if DiscountPercent(decimal.NewFromInt(120), decimal.NewFromInt(100)) != nil {
		t.Fatal("expected nil when original is below price")
	}
}

func TestFlashSaleSortsByDiscountDescending(t *testing.T) {
	products := []ProductView{
		discountedProduct("small", 90, 100),  // 10%
		discountedProduct("large", 50, 100),  // 50%
		discountedProduct("medium", 70, 100), // 30%
		{ID: uuid.New(), Name: "full-price", Price: decimal.NewFromInt(10)},
	}

	sale := FlashSale(products, 2)
	if len(sale) != 2 {
		t.Fatalf("expected 2 products, got %d", len(sale))
	}
	if sale[0].Name != "large" || sale[1].Name != "medium" {
		t.Fatalf("unexpected order: %s, %s", sale[0].Name, sale[1].Name)
	}
}

func TestBestSellingSortsByReviewCount(t *testing.T) {
	products := []ProductView{
		{ID: uuid.New(), Name: "quiet", ReviewCount: 3},
		{ID: uuid.New(), Name: "popular", ReviewCount: 900},
		{ID: uuid.New(), Name: "steady", ReviewCount: 120},
	}

	ranked := BestSelling(products, 2)
	if len(ranked) != 2 {
		t.Fatalf("expected 2 products, got %d", len(ranked))
	}
	if ranked[0].Name != "popular" || ranked[1].Name != "steady" {
		t.Fatalf("unexpected order: %s, %s", ranked[0].Name, ranked[1].Name)
	}
}

func TestRelatedExcludesSelfAndOtherCategories(t *testing.T) {
	subject := ProductView{ID: uuid.New(), Name: "subject", Category: enums.ProductCategoryGaming}
	products := []ProductView{
		subject,
		{ID: uuid.New(), Name: "peer-one", Category: enums.ProductCategoryGaming},
		{ID: uuid.New(), Name: "other", Category: enums.ProductCategoryGroceriesPets},
		{ID: uuid.New(), Name: "peer-two", Category: enums.ProductCategoryGaming},
		{ID: uuid.New(), Name: "peer-three", Category: enums.ProductCategoryGaming},
	}

	related := Related(products, subject.ID, subject.Category, 2)
	if len(related) != 2 {
		t.Fatalf("expected 2 products, got %d", len(related))
	}
	for _, p := range related {
		if p.ID == subject.ID {
			t.Fatal("related must exclude the subject")
		}
		if p.Category != subject.Category {
			t.Fatalf("unexpected category %s", p.Category)
		}
	}
}

func TestSearchByNameIsCaseInsensitive(t *testing.T) {
	products := []ProductView{
		{ID: uuid.New(), Name: "Wireless Headset"},
		{ID: uuid.New(), Name: "USB Cable"},
		{ID: uuid.New(), Name: "wireless charger"},
	}

	matches := SearchByName(products, "WIRELESS")
	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}

	all := SearchByName(products, "   ")
	if len(all) != len(products) {
		t.Fatalf("blank query should match everything, got %d", len(all))
	}
}

func TestByCategory(t *testing.T) {
	products := []ProductView{
		{ID: uuid.New(), Category: enums.ProductCategoryMedicine},
		{ID: uuid.New(), Category: enums.ProductCategoryGaming},
		{ID: uuid.New(), Category: enums.ProductCategoryMedicine},
	}

	filtered := ByCategory(products, enums.ProductCategoryMedicine)
	if len(filtered) != 2 {
		t.Fatalf("expected 2 products, got %d", len(filtered))
	}
}
