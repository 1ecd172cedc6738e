package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/internal/catalog"
	"github.com/smontoya/kickstore-backend/internal/products"
	"github.com/smontoya/kickstore-backend/pkg/enums"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// ListProducts serves the public catalog. Optional query parameters:
// family narrows to one collection, label additionally runs the family's
// filter predicate over the results.
func ListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		familyRaw := r.URL.Query().Get("family")
		label := r.URL.Query().Get("label")

		listed, err := svc.List(r.Context(), products.ListInput{Family: familyRaw})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if label != "" {
			if familyRaw == "" {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "label filtering requires a family"))
				return
			}
			family, parseErr := enums.ParseProductFamily(familyRaw)
			if parseErr != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.Wrap(pkgerrors.CodeValidation, parseErr, "unknown product family"))
				return
			}
			listed = catalog.Filter(listed, family, label)
		}

		if listed == nil {
			listed = []catalog.Product{}
		}
		responses.WriteSuccess(w, map[string]any{"products": listed})
	}
}

type filterLabelResponse struct {
	Label      string `json:"label"`
	HasMatches bool   `json:"hasMatches"`
}

// FamilyFilters returns the family's filter labels in display order with a
// hasMatches flag computed over the current active catalog.
func FamilyFilters(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		family, err := enums.ParseProductFamily(chi.URLParam(r, "family"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "unknown product family"))
			return
		}

		listed, err := svc.List(r.Context(), products.ListInput{Family: family.String()})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		labels := catalog.Labels(family)
		out := make([]filterLabelResponse, len(labels))
		for i, label := range labels {
			out[i] = filterLabelResponse{
				Label:      label,
				HasMatches: catalog.HasMatches(listed, family, label),
			}
		}

		responses.WriteSuccess(w, map[string]any{
			"family":  family.String(),
			"filters": out,
		})
	}
}
