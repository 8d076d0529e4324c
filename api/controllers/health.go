package controllers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/multierr"

	"github.com/lucashenriquez/exclusive-backend/api/responses"
	"github.com/lucashenriquez/exclusive-backend/pkg/config"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/logger"
)

type pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Exclusive-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

func HealthReady(cfg *config.Config, logg *logger.Logger, db pinger, cache pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Exclusive-Env", cfg.App.Env)

		checks := []struct {
			name string
			dep  pinger
		}{
			{"database", db},
			{"redis", cache},
		}
		var errs error
		for _, check := range checks {
			if check.dep == nil {
				continue
			}
			if err := check.dep.Ping(r.Context()); err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s unreachable: %w", check.name, err))
			}
		}
		if errs != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeDependency, errs, "dependencies unreachable"))
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
