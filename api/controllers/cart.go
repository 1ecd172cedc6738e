package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/smontoya/kickstore-backend/api/middleware"
	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/api/validators"
	cartsvc "github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/internal/products"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

type cartItemResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Price    string `json:"price"`
	Image    string `json:"image,omitempty"`
	Quantity int    `json:"quantity"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	ItemsCount int                `json:"itemsCount"`
	Subtotal   string             `json:"subtotal"`
	Hydrated   bool               `json:"hydrated"`
}

func newCartResponse(state cartsvc.State, hydrated bool) cartResponse {
	items := make([]cartItemResponse, len(state.Items))
	for i, item := range state.Items {
		items[i] = cartItemResponse{
			ID:       item.ID,
			Name:     item.Name,
			Price:    item.Price.String(),
			Image:    item.Image,
			Quantity: item.Quantity,
		}
	}
	return cartResponse{
		Items:      items,
		ItemsCount: state.ItemsCount(),
		Subtotal:   state.Subtotal().String(),
		Hydrated:   hydrated,
	}
}

func sessionFrom(r *http.Request) string {
	return middleware.CartSessionFromContext(r.Context())
}

// CartFetch hydrates and returns the session's cart.
func CartFetch(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		snap := manager.Hydrate(r.Context(), sessionFrom(r))
		responses.WriteSuccess(w, newCartResponse(snap.State, snap.Hydrated))
	}
}

type addItemRequest struct {
	ProductID string `json:"productId" validate:"required,uuid"`
}

// CartAddItem resolves the product and applies the add action. Adding an
// item already in the cart bumps its quantity.
func CartAddItem(manager *cartsvc.Manager, productSvc products.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil || productSvc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		product, err := productSvc.Get(r.Context(), payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := manager.Add(r.Context(), sessionFrom(r), cartsvc.Item{
			ID:    product.ID,
			Name:  product.Name,
			Price: product.Price,
			Image: product.Image,
		})
		responses.WriteSuccess(w, newCartResponse(state, true))
	}
}

// CartIncrementItem bumps a line's quantity. Unknown ids are a no-op and
// return the unchanged snapshot.
func CartIncrementItem(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		state := manager.Increment(r.Context(), sessionFrom(r), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newCartResponse(state, true))
	}
}

// CartDecrementItem lowers a line's quantity, removing it at zero.
func CartDecrementItem(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		state := manager.Decrement(r.Context(), sessionFrom(r), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newCartResponse(state, true))
	}
}

// CartRemoveItem drops a line regardless of quantity.
func CartRemoveItem(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		state := manager.Remove(r.Context(), sessionFrom(r), chi.URLParam(r, "productId"))
		responses.WriteSuccess(w, newCartResponse(state, true))
	}
}

// CartClear resets the session's cart.
func CartClear(manager *cartsvc.Manager, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart unavailable"))
			return
		}

		state := manager.Clear(r.Context(), sessionFrom(r))
		responses.WriteSuccess(w, newCartResponse(state, true))
	}
}
