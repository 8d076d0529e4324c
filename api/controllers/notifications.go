package controllers

import (
	"net/http"

	"github.com/lucashenriquez/exclusive-backend/api/responses"
	"github.com/lucashenriquez/exclusive-backend/internal/notifications"
	pkgerrors "github.com/lucashenriquez/exclusive-backend/pkg/errors"
	"github.com/lucashenriquez/exclusive-backend/pkg/logger"
)

// NotificationsList returns the authenticated user's active toasts.
func NotificationsList(svc *notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications service unavailable"))
			return
		}

		userID, err := authenticatedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, svc.List(userID))
	}
}

// NotificationsDismiss removes a toast. Unknown or expired ids succeed.
func NotificationsDismiss(svc *notifications.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "notifications service unavailable"))
			return
		}

		userID, err := authenticatedUserID(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		toastID, err := uuidURLParam(r, "toastId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		svc.Dismiss(userID, toastID)
		responses.WriteSuccess(w, map[string]string{"status": "dismissed"})
	}
}
