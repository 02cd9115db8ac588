package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/service"
	"github.com/MKhiriev/threadboard/internal/store"
	"github.com/MKhiriev/threadboard/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:     http.StatusBadRequest,
	ErrInvalidForm:     http.StatusBadRequest,
	ErrInvalidThreadID: http.StatusBadRequest,
	errRouteNotFound:   http.StatusNotFound,

	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrWrongPassword:       http.StatusUnauthorized,
	service.ErrInvalidSessionToken: http.StatusUnauthorized,
	service.ErrSessionExpired:      http.StatusUnauthorized,

	store.ErrUsernameTaken:   http.StatusConflict,
	store.ErrEmailTaken:      http.StatusConflict,
	store.ErrAccountNotFound: http.StatusNotFound,
	store.ErrSessionNotFound: http.StatusUnauthorized,
	store.ErrThreadNotFound:  http.StatusNotFound,
	store.ErrUnknownAuthor:   http.StatusBadRequest,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with a FAILED status body. Server-side failures are
// reported by status text only.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	reason := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Msg("request failed")
		reason = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, wErr := utils.WriteFailed(w, reason, status); wErr != nil {
		log.Err(wErr).Msg("failed to write error response")
	}
}
