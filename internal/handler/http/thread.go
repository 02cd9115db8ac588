package http

import (
	"net/http"
	"strconv"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/go-chi/chi/v5"
)

// createThread handles POST /api/thread/new with form fields title and body.
// The author is the signed-in account.
func (h *Handler) createThread(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	accountID, ok := utils.GetAccountIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoSessionInContext)
		return
	}

	if err := r.ParseForm(); err != nil {
		writeError(w, r, ErrInvalidForm)
		return
	}

	thread, err := h.services.ThreadService.Create(ctx, accountID, r.PostForm.Get("title"), r.PostForm.Get("body"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("thread_id", thread.ID).Int64("account_id", accountID).Msg("thread created")
	utils.WriteJSON(w, thread, http.StatusCreated)
}

// listThreads handles GET /api/threads?limit=&offset=.
func (h *Handler) listThreads(w http.ResponseWriter, r *http.Request) {
	list, err := h.services.ThreadService.List(r.Context(),
		utils.QueryUint(r, "limit", 0),
		utils.QueryUint(r, "offset", 0),
	)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, list, http.StatusOK)
}

// getThread handles GET /api/thread/{id}.
func (h *Handler) getThread(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeError(w, r, ErrInvalidThreadID)
		return
	}

	thread, err := h.services.ThreadService.Get(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, thread, http.StatusOK)
}
