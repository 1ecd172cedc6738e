package enums

import "fmt"

// ProductCategory represents the merchandising categories supported by the catalog.
type ProductCategory string

const (
	ProductCategorySneakers ProductCategory = "sneakers"
	ProductCategoryCasual   ProductCategory = "casual"
	ProductCategoryRunning  ProductCategory = "running"
	ProductCategorySandals  ProductCategory = "sandals"
	ProductCategoryKids     ProductCategory = "kids"
)

var validProductCategories = []ProductCategory{
	ProductCategorySneakers,
	ProductCategoryCasual,
	ProductCategoryRunning,
	ProductCategorySandals,
	ProductCategoryKids,
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
