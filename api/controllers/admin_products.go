package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/api/validators"
	"github.com/smontoya/kickstore-backend/internal/products"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

type createProductRequest struct {
	Name        string   `json:"name" validate:"required,min=2,max=160"`
	Description *string  `json:"description,omitempty"`
	Family      string   `json:"family" validate:"required"`
	Category    string   `json:"category" validate:"required"`
	Price       string   `json:"price" validate:"required"`
	ImagePath   string   `json:"imagePath" validate:"required"`
	Sizes       []string `json:"sizes,omitempty"`
}

type updateProductRequest struct {
	Name        *string  `json:"name,omitempty" validate:"omitempty,min=2,max=160"`
	Description *string  `json:"description,omitempty"`
	Family      *string  `json:"family,omitempty"`
	Category    *string  `json:"category,omitempty"`
	Price       *string  `json:"price,omitempty"`
	ImagePath   *string  `json:"imagePath,omitempty"`
	Sizes       []string `json:"sizes,omitempty"`
	IsActive    *bool    `json:"isActive,omitempty"`
}

func parsePrice(raw string) (decimal.Decimal, error) {
	price, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "price must be numeric")
	}
	return price, nil
}

func AdminCreateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload createProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		price, err := parsePrice(payload.Price)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		created, err := svc.Create(r.Context(), products.CreateInput{
			Name:        payload.Name,
			Description: payload.Description,
			Family:      payload.Family,
			Category:    payload.Category,
			Price:       price,
			ImagePath:   payload.ImagePath,
			Sizes:       payload.Sizes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, created)
	}
}

func AdminUpdateProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		var payload updateProductRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := products.UpdateInput{
			Name:        payload.Name,
			Description: payload.Description,
			Family:      payload.Family,
			Category:    payload.Category,
			ImagePath:   payload.ImagePath,
			Sizes:       payload.Sizes,
			IsActive:    payload.IsActive,
		}
		if payload.Price != nil {
			price, err := parsePrice(*payload.Price)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, err)
				return
			}
			input.Price = &price
		}

		updated, err := svc.Update(r.Context(), chi.URLParam(r, "productId"), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, updated)
	}
}

// AdminDeleteProduct deactivates by default; ?hard=true removes the row.
func AdminDeleteProduct(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		hard, err := validators.ParseQueryBool(r, "hard", false)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), chi.URLParam(r, "productId"), hard); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// AdminListProducts includes inactive rows so the panel can manage drafts.
func AdminListProducts(svc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "product service unavailable"))
			return
		}

		listed, err := svc.List(r.Context(), products.ListInput{
			Family:          r.URL.Query().Get("family"),
			IncludeInactive: true,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"products": listed})
	}
}
