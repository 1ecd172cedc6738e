package controllers

import (
	"net/http"
	"strings"
	"time"

	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/api/validators"
	pkgauth "github.com/smontoya/kickstore-backend/pkg/auth"
	"github.com/smontoya/kickstore-backend/pkg/config"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
	"github.com/smontoya/kickstore-backend/pkg/security"
)

type adminLoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type adminLoginResponse struct {
	AccessToken string `json:"accessToken"`
	TokenType   string `json:"tokenType"`
	ExpiresIn   int    `json:"expiresIn"`
}

// AdminLogin verifies the single configured admin credential and mints a
// bearer token. Wrong email and wrong password return the same error.
func AdminLogin(admin config.AdminConfig, jwtCfg config.JWTConfig, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload adminLoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		invalid := pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid credentials")

		if !strings.EqualFold(strings.TrimSpace(payload.Email), admin.Email) {
			// still burn a verify so both paths cost the same
			_, _ = security.VerifyPassword(payload.Password, admin.PasswordHash)
			responses.WriteError(r.Context(), logg, w, invalid)
			return
		}

		ok, err := security.VerifyPassword(payload.Password, admin.PasswordHash)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verifying credentials"))
			return
		}
		if !ok {
			responses.WriteError(r.Context(), logg, w, invalid)
			return
		}

		token, err := pkgauth.MintAdminToken(jwtCfg, time.Now(), pkgauth.AdminTokenPayload{Email: admin.Email})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "minting token"))
			return
		}

		if logg != nil {
			logg.Info(logg.WithField(r.Context(), "admin_email", admin.Email), "admin login")
		}

		responses.WriteSuccess(w, adminLoginResponse{
			AccessToken: token,
			TokenType:   "Bearer",
			ExpiresIn:   jwtCfg.ExpirationMinutes * 60,
		})
	}
}
