package enums

import "fmt"

// ProductFamily represents the storefront collections a product belongs to.
type ProductFamily string

const (
	ProductFamilyJordan ProductFamily = "jordan"
	ProductFamilyAirmax ProductFamily = "airmax"
	ProductFamilyCasual ProductFamily = "casual"
)

var validProductFamilies = []ProductFamily{
	ProductFamilyJordan,
	ProductFamilyAirmax,
	ProductFamilyCasual,
}

// String implements fmt.Stringer.
func (f ProductFamily) String() string {
	return string(f)
}

// IsValid reports whether the value is a known ProductFamily.
func (f ProductFamily) IsValid() bool {
	for _, candidate := range validProductFamilies {
		if candidate == f {
			return true
		}
	}
	return false
}

// ParseProductFamily converts raw input into a ProductFamily.
func ParseProductFamily(value string) (ProductFamily, error) {
	for _, candidate := range validProductFamilies {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product family %q", value)
}

// ProductFamilies returns the known families in display order.
func ProductFamilies() []ProductFamily {
	out := make([]ProductFamily, len(validProductFamilies))
	copy(out, validProductFamilies)
	return out
}
