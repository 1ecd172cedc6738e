package seo

import (
	"errors"
	"strings"

	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/pkg/config"
	"github.com/smontoya/kickstore-backend/pkg/currency"
)

// PageMeta is the set of head values the frontend renders per page.
type PageMeta struct {
	Title           string `json:"title"`
	Description     string `json:"description"`
	CanonicalURL    string `json:"canonicalUrl"`
	OGTitle         string `json:"ogTitle"`
	OGDescription   string `json:"ogDescription"`
	OGImage         string `json:"ogImage,omitempty"`
	GAMeasurementID string `json:"gaMeasurementId,omitempty"`
}

// MetaBuilder derives page metadata from the site and analytics settings
// handed in at construction. Nothing here reads ambient globals.
type MetaBuilder struct {
	site      config.SiteConfig
	analytics config.AnalyticsConfig
	baseURL   string
}

func NewMetaBuilder(site config.SiteConfig, analytics config.AnalyticsConfig) (*MetaBuilder, error) {
	base := strings.TrimSuffix(site.BaseURL, "/")
	if base == "" {
		return nil, errors.New("site base url is required")
	}
	return &MetaBuilder{site: site, analytics: analytics, baseURL: base}, nil
}

var routeTitles = map[string]string{
	"/":         "",
	"/jordan":   "Jordan",
	"/airmax":   "Airmax",
	"/casual":   "Calzado Casual",
	"/carrito":  "Carrito de compras",
	"/contacto": "Contacto",
}

// ForRoute builds metadata for a fixed storefront route. Unknown routes fall
// back to the site defaults.
func (b *MetaBuilder) ForRoute(route string) PageMeta {
	title := b.site.Name
	if section, ok := routeTitles[route]; ok && section != "" {
		title = section + " | " + b.site.Name
	}
	if _, ok := routeTitles[route]; !ok {
		route = "/"
	}

	return PageMeta{
		Title:           title,
		Description:     b.site.Description,
		CanonicalURL:    b.canonical(route),
		OGTitle:         title,
		OGDescription:   b.site.Description,
		GAMeasurementID: b.analytics.GAMeasurementID,
	}
}

// ForProduct builds metadata for a product detail page.
func (b *MetaBuilder) ForProduct(product catalog.Product) PageMeta {
	title := product.Name + " | " + b.site.Name

	description := product.Description
	if description == "" {
		description = product.Name + " disponible en " + b.site.Name + " por " + currency.Format(product.Price) + "."
	}

	return PageMeta{
		Title:           title,
		Description:     description,
		CanonicalURL:    b.canonical("/producto/" + products.Slugify(product.Name)),
		OGTitle:         title,
		OGDescription:   description,
		OGImage:         product.Image,
		GAMeasurementID: b.analytics.GAMeasurementID,
	}
}

func (b *MetaBuilder) canonical(route string) string {
	if route == "/" {
		return b.baseURL + "/"
	}
	return b.baseURL + route
}
