package seo

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/pkg/config"
)

func testSite() config.SiteConfig {
	return config.SiteConfig{
		BaseURL:     "https://kickstore.com.co/",
		Name:        "KickStore",
		Description: "Calzado deportivo y casual",
	}
}

func TestSitemapIncludesFixedRoutesAndProducts(t *testing.T) {
	t.Parallel()

	builder, err := NewSitemapBuilder(testSite())
	require.NoError(t, err)
	builder.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	body, err := builder.Build([]catalog.Product{
		{ID: "p1", Name: "Jordan 1 Chicago", Price: decimal.NewFromInt(250000)},
	})
	require.NoError(t, err)

	xml := string(body)
	assert.True(t, strings.HasPrefix(xml, "<?xml"), "missing xml header")
	assert.Contains(t, xml, "<loc>https://kickstore.com.co/</loc>")
	assert.Contains(t, xml, "<loc>https://kickstore.com.co/jordan</loc>")
	assert.Contains(t, xml, "<loc>https://kickstore.com.co/producto/jordan-1-chicago</loc>")
	assert.Contains(t, xml, "<lastmod>2026-08-01</lastmod>")
}

func TestSitemapIsDeterministic(t *testing.T) {
	t.Parallel()

	builder, err := NewSitemapBuilder(testSite())
	require.NoError(t, err)
	builder.now = func() time.Time { return time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC) }

	catalogProducts := []catalog.Product{
		{ID: "p1", Name: "Airmax 90"},
		{ID: "p2", Name: "Airmax 97"},
	}

	first, err := builder.Build(catalogProducts)
	require.NoError(t, err)
	second, err := builder.Build(catalogProducts)
	require.NoError(t, err)

	assert.Equal(t, string(first), string(second))
}

func TestSitemapRequiresBaseURL(t *testing.T) {
	t.Parallel()

	_, err := NewSitemapBuilder(config.SiteConfig{})
	assert.Error(t, err)
}

func TestMetaForKnownRoute(t *testing.T) {
	t.Parallel()

	builder, err := NewMetaBuilder(testSite(), config.AnalyticsConfig{GAMeasurementID: "G-TEST123"})
	require.NoError(t, err)

	meta := builder.ForRoute("/jordan")

	assert.Equal(t, "Jordan | KickStore", meta.Title)
	assert.Equal(t, "https://kickstore.com.co/jordan", meta.CanonicalURL)
	assert.Equal(t, "G-TEST123", meta.GAMeasurementID)
}

func TestMetaUnknownRouteFallsBackToHome(t *testing.T) {
	t.Parallel()

	builder, err := NewMetaBuilder(testSite(), config.AnalyticsConfig{})
	require.NoError(t, err)

	meta := builder.ForRoute("/no-such-page")

	assert.Equal(t, "KickStore", meta.Title)
	assert.Equal(t, "https://kickstore.com.co/", meta.CanonicalURL)
	assert.Empty(t, meta.GAMeasurementID)
}

func TestMetaForProductGeneratesDescription(t *testing.T) {
	t.Parallel()

	builder, err := NewMetaBuilder(testSite(), config.AnalyticsConfig{})
	require.NoError(t, err)

	meta := builder.ForProduct(catalog.Product{
		ID:    "p1",
		Name:  "Jordan 1 Chicago",
		Image: "https://cdn.example.com/products/jordan1.jpg",
		Price: decimal.NewFromInt(250000),
	})

	assert.Equal(t, "Jordan 1 Chicago | KickStore", meta.Title)
	assert.Contains(t, meta.Description, "$ 250.000")
	assert.Equal(t, "https://kickstore.com.co/producto/jordan-1-chicago", meta.CanonicalURL)
	assert.Equal(t, "https://cdn.example.com/products/jordan1.jpg", meta.OGImage)
}

func TestMetaForProductPrefersStoredDescription(t *testing.T) {
	t.Parallel()

	builder, err := NewMetaBuilder(testSite(), config.AnalyticsConfig{})
	require.NoError(t, err)

	meta := builder.ForProduct(catalog.Product{
		Name:        "Airmax 90",
		Description: "Clásico de los 90 en mesh y gamuza.",
	})

	assert.Equal(t, "Clásico de los 90 en mesh y gamuza.", meta.Description)
	assert.Equal(t, meta.Description, meta.OGDescription)
}
