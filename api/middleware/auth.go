package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/smontoya/kickstore-backend/api/responses"
	pkgauth "github.com/smontoya/kickstore-backend/pkg/auth"
	"github.com/smontoya/kickstore-backend/pkg/config"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

// AdminAuth validates the bearer token minted at admin login and seeds the
// request context with the admin identity.
func AdminAuth(cfg config.JWTConfig, logg *logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			raw := strings.TrimSpace(r.Header.Get("Authorization"))
			if raw == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			token := raw
			if strings.HasPrefix(strings.ToLower(token), "bearer ") {
				token = strings.TrimSpace(token[7:])
			}
			if token == "" {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeUnauthorized, "missing credentials"))
				return
			}

			claims, err := pkgauth.ParseAdminToken(cfg, token)
			if err != nil {
				responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeUnauthorized, err, "invalid token"))
				return
			}
			if claims.Role != pkgauth.RoleAdmin {
				responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "admin access required"))
				return
			}

			ctx := context.WithValue(r.Context(), ctxAdminEmail, claims.Email)
			if logg != nil {
				ctx = logg.WithField(ctx, "admin_email", claims.Email)
			}

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
