package enums

import "fmt"

// ProductCategory represents the canonical product categories supported by the catalog.
type ProductCategory string

const (
	ProductCategoryWomensFashion ProductCategory = "womens_fashion"
	ProductCategoryMensFashion   ProductCategory = "mens_fashion"
	ProductCategoryElectronics   ProductCategory = "electronics"
	ProductCategoryHomeLifestyle ProductCategory = "home_lifestyle"
	ProductCategoryMedicine      ProductCategory = "medicine"
	ProductCategorySportsOutdoor ProductCategory = "sports_outdoor"
	ProductCategoryBabyToys      ProductCategory = "baby_toys"
	ProductCategoryGroceriesPets ProductCategory = "groceries_pets"
	ProductCategoryHealthBeauty  ProductCategory = "health_beauty"
	ProductCategoryGaming        ProductCategory = "gaming"
)

var validProductCategories = []ProductCategory{
	ProductCategoryWomensFashion,
	ProductCategoryMensFashion,
	ProductCategoryElectronics,
	ProductCategoryHomeLifestyle,
	ProductCategoryMedicine,
	ProductCategorySportsOutdoor,
	ProductCategoryBabyToys,
	ProductCategoryGroceriesPets,
	ProductCategoryHealthBeauty,
	ProductCategoryGaming,
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
