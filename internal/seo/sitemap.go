// Package seo produces the sitemap and page metadata values for the
// storefront. It only computes values; rendering them into HTML belongs to
// the frontend.
package seo

import (
	"encoding/xml"
	"errors"
	"strings"
	"time"

	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/pkg/config"
)

// storefrontRoutes are the fixed pages every deployment serves.
var storefrontRoutes = []string{
	"/",
	"/jordan",
	"/airmax",
	"/casual",
	"/carrito",
	"/contacto",
}

type urlEntry struct {
	Loc        string  `xml:"loc"`
	LastMod    string  `xml:"lastmod,omitempty"`
	ChangeFreq string  `xml:"changefreq,omitempty"`
	Priority   float64 `xml:"priority,omitempty"`
}

type urlSet struct {
	XMLName xml.Name   `xml:"urlset"`
	Xmlns   string     `xml:"xmlns,attr"`
	URLs    []urlEntry `xml:"url"`
}

// SitemapBuilder renders a deterministic XML sitemap from the active
// catalog plus the fixed storefront routes.
type SitemapBuilder struct {
	baseURL string
	now     func() time.Time
}

func NewSitemapBuilder(site config.SiteConfig) (*SitemapBuilder, error) {
	base := strings.TrimSuffix(site.BaseURL, "/")
	if base == "" {
		return nil, errors.New("site base url is required")
	}
	return &SitemapBuilder{baseURL: base, now: time.Now}, nil
}

// Build renders the sitemap. Product entries follow the fixed routes and
// keep the input (newest first) order, so output is stable for a stable
// catalog.
func (b *SitemapBuilder) Build(activeProducts []catalog.Product) ([]byte, error) {
	today := b.now().UTC().Format("2006-01-02")

	set := urlSet{Xmlns: "http://www.sitemaps.org/schemas/sitemap/0.9"}
	for _, route := range storefrontRoutes {
		priority := 0.7
		if route == "/" {
			priority = 1.0
		}
		set.URLs = append(set.URLs, urlEntry{
			Loc:        b.baseURL + route,
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   priority,
		})
	}

	for _, product := range activeProducts {
		set.URLs = append(set.URLs, urlEntry{
			Loc:        b.baseURL + "/producto/" + products.Slugify(product.Name),
			LastMod:    today,
			ChangeFreq: "weekly",
			Priority:   0.8,
		})
	}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return nil, err
	}
	return append([]byte(xml.Header), body...), nil
}
