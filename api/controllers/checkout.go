package controllers

import (
	"net/http"

	"github.com/smontoya/kickstore-backend/api/responses"
	cartsvc "github.com/smontoya/kickstore-backend/internal/cart"
	"github.com/smontoya/kickstore-backend/internal/checkout"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// CheckoutLink builds the WhatsApp hand-off link for the session's current
// cart. An empty cart still yields a link, carrying the generic inquiry.
func CheckoutLink(manager *cartsvc.Manager, builder *checkout.LinkBuilder, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if manager == nil || builder == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout unavailable"))
			return
		}

		snap := manager.Hydrate(r.Context(), sessionFrom(r))
		link := builder.BuildLink(snap.State.Items, snap.State.Subtotal())

		responses.WriteSuccess(w, map[string]any{
			"link":       link,
			"itemsCount": snap.State.ItemsCount(),
		})
	}
}
