// Package catalog holds the read-side product model and the category/brand
// matcher used for storefront filtering.
package catalog

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/smontoya/kickstore-backend/pkg/enums"
)

// Product is read-only input to the matcher. A missing description is the
// empty string.
type Product struct {
	ID          string                `json:"id"`
	Name        string                `json:"name"`
	Description string                `json:"description,omitempty"`
	Image       string                `json:"image"`
	Family      enums.ProductFamily   `json:"family"`
	Category    enums.ProductCategory `json:"category"`
	Price       decimal.Decimal       `json:"price"`
	Sizes       []string              `json:"sizes,omitempty"`
}

// Corpus is the lowercase text the matcher's substring predicates run over.
func (p Product) Corpus() string {
	return strings.ToLower(p.Name + " " + p.Description + " " + p.Image)
}
