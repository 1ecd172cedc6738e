package controllers

import (
	"net/http"

	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/internal/seo"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// Sitemap serves sitemap.xml built from the active catalog.
func Sitemap(builder *seo.SitemapBuilder, svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if builder == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "sitemap unavailable"))
			return
		}

		active, err := svc.List(r.Context(), products.ListInput{})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		body, err := builder.Build(active)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "building sitemap"))
			return
		}

		w.Header().Set("Content-Type", "application/xml; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(body); err != nil && logg != nil {
			logg.Error(r.Context(), "writing sitemap response failed", err)
		}
	}
}

// PageMeta returns the head values for a page. Either route or productId is
// given; productId wins when both are present.
func PageMeta(builder *seo.MetaBuilder, svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if builder == nil || svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "meta unavailable"))
			return
		}

		if productID := r.URL.Query().Get("productId"); productID != "" {
			product, err := svc.Get(r.Context(), productID)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			responses.WriteSuccess(w, builder.ForProduct(product))
			return
		}

		route := r.URL.Query().Get("route")
		if route == "" {
			route = "/"
		}
		responses.WriteSuccess(w, builder.ForRoute(route))
	}
}
