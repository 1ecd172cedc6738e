package middleware

import (
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/smontoya/kickstore-backend/api/responses"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

const cartSessionHeader = "X-Cart-Session"

// CartSession resolves the device cart session from the request header. A
// missing header mints a fresh session id so first-time visitors get an
// empty cart rather than an error; the id is echoed back for the client to
// keep.
func CartSession(logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID := strings.TrimSpace(r.Header.Get(cartSessionHeader))
			if sessionID == "" {
				sessionID = uuid.NewString()
			} else if _, err := uuid.Parse(sessionID); err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid cart session id"))
				return
			}

			w.Header().Set(cartSessionHeader, sessionID)

			ctx := WithCartSession(r.Context(), sessionID)
			if logg != nil {
				ctx = logg.WithCartSession(ctx, sessionID)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
