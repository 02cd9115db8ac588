package http

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/service"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/utils"
)

var errNoSessionInContext = fmt.Errorf("%w: no session in request context", store.ErrSessionNotFound)

// auth resolves the "sid" cookie into a session and stores its session and
// account ids in the request context.
//
// A missing, forged, unknown or expired cookie is answered with 401 and the
// cookie is cleared. Storage failures answer 500.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(sessionCookieName)
		if err != nil || cookie.Value == "" {
			log.Debug().Msg("no session cookie")
			writeError(w, r, store.ErrSessionNotFound)
			return
		}

		ctx := r.Context()
		session, err := h.services.SessionService.Resolve(ctx, cookie.Value)
		if err != nil {
			if isSessionRejection(err) {
				http.SetCookie(w, expiredSessionCookie())
				writeError(w, r, store.ErrSessionNotFound)
				return
			}
			writeError(w, r, err)
			return
		}

		ctx = utils.WithSession(ctx, session.ID, session.AccountID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func isSessionRejection(err error) bool {
	return errors.Is(err, service.ErrInvalidSessionToken) ||
		errors.Is(err, service.ErrSessionExpired) ||
		errors.Is(err, store.ErrSessionNotFound)
}
