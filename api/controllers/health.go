package controllers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/multierr"

	"github.com/smontoya/kickstore-backend/api/responses"
	"github.com/smontoya/kickstore-backend/pkg/config"
	pkgerrors "github.com/smontoya/kickstore-backend/pkg/errors"
	"github.com/smontoya/kickstore-backend/pkg/logger"
)

const readyTimeout = 5 * time.Second

const envHeader = "X-KickStore-Env"

// Pinger is any dependency the readiness probe checks.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady pings every wired dependency and aggregates failures into a
// single error so the probe response names everything that is down.
func HealthReady(cfg *config.Config, logg *logger.Logger, deps map[string]Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set(envHeader, cfg.App.Env)

		ctx, cancel := context.WithTimeout(r.Context(), readyTimeout)
		defer cancel()

		var combined error
		failed := []string{}
		for name, dep := range deps {
			if dep == nil {
				continue
			}
			if err := dep.Ping(ctx); err != nil {
				combined = multierr.Append(combined, err)
				failed = append(failed, name)
			}
		}

		if combined != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.Wrap(pkgerrors.CodeDependency, combined, "dependencies unavailable").
					WithDetails(map[string]any{"failed": failed}))
			return
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
