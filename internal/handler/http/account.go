package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/threadboard/internal/logger"
	"github.com/MKhiriev/threadboard/internal/utils"
	"github.com/MKhiriev/threadboard/models"
)

// createAccount handles POST /api/account/new with a JSON
// {username, password, email} body.
func (h *Handler) createAccount(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.NewAccountRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, r, ErrInvalidJSON)
		return
	}

	account, err := h.services.AccountService.Register(ctx, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("account_id", account.ID).Str("username", account.Username).Msg("account created")
	utils.WriteJSON(w, models.Success(), http.StatusOK)
}

// login handles POST /api/account/login with form fields email and password.
// On success the session cookie is set.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if err := r.ParseForm(); err != nil {
		writeError(w, r, ErrInvalidForm)
		return
	}

	req := models.LoginRequest{
		Email:     r.PostForm.Get("email"),
		Password:  r.PostForm.Get("password"),
		UserAgent: r.UserAgent(),
	}

	account, err := h.services.AccountService.Authenticate(ctx, req.Email, req.Password)
	if err != nil {
		writeError(w, r, err)
		return
	}

	_, token, err := h.services.SessionService.Create(ctx, account, req.UserAgent)
	if err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, h.sessionCookie(token.SignedString))
	utils.WriteJSON(w, models.SessionAdded(), http.StatusOK)
}

// logout handles GET /api/logout: the current session is deleted and the
// cookie cleared.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	sessionID, ok := utils.GetSessionIDFromContext(ctx)
	if !ok {
		writeError(w, r, errNoSessionInContext)
		return
	}

	if err := h.services.SessionService.Revoke(ctx, sessionID); err != nil {
		writeError(w, r, err)
		return
	}

	http.SetCookie(w, expiredSessionCookie())
	utils.WriteJSON(w, models.Success(), http.StatusOK)
}
