package http

import (
	"net/http"

	"github.com/aussiebroadwan/notes/internal/notes/service"
	"github.com/aussiebroadwan/notes/pkg/httpx"
	"github.com/aussiebroadwan/notes/pkg/notesdk"
)

type AuthHandler struct {
	AuthService *service.AuthService
	Cookie      httpx.SessionCookie
}

// HandleRegister creates an account and signs the user in.
//
//	@Summary		Register
//	@Description	Creates an account and sets the session cookie. Every field must be shorter than 20 characters and the username may only contain a-z, 0-9, dots and underscores.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.RegisterRequest	true	"new account"
//	@Success		201		{object}	notesdk.Envelope[notesdk.User]
//	@Failure		400		{object}	notesdk.Envelope[any]	"validation failure or username taken"
//	@Router			/api/v1/auth/register [post].
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req notesdk.RegisterRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	sess, err := h.AuthService.Register(r.Context(), req.FullName, req.Username, req.Password)
	if err != nil {
		writeError(w, r, "register", err)
		return
	}

	h.Cookie.Set(w, sess.Token)
	httpx.WriteSuccess(w, http.StatusCreated, "User Signup Successful!", toUser(sess.User))
}

// HandleLogin signs a user in.
//
//	@Summary		Login
//	@Description	Verifies the credentials and sets the session cookie.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			body	body		notesdk.LoginRequest	true	"credentials"
//	@Success		200		{object}	notesdk.Envelope[notesdk.User]
//	@Failure		400		{object}	notesdk.Envelope[any]	"validation failure"
//	@Failure		401		{object}	notesdk.Envelope[any]	"wrong password"
//	@Failure		404		{object}	notesdk.Envelope[any]	"unknown user"
//	@Router			/api/v1/auth/login [post].
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req notesdk.LoginRequest
	if err := httpx.DecodeJSON(w, r, &req); err != nil {
		writeBadBody(w)
		return
	}

	sess, err := h.AuthService.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		writeError(w, r, "login", err)
		return
	}

	h.Cookie.Set(w, sess.Token)
	httpx.WriteSuccess(w, http.StatusOK, "Welcome back, "+sess.User.FirstName(), toUser(sess.User))
}

// HandleLogout expires the session cookie.
//
//	@Summary		Logout
//	@Tags			Auth
//	@Security		CookieAuth
//	@Produce		json
//	@Success		200	{object}	notesdk.Envelope[any]
//	@Failure		401	{object}	notesdk.Envelope[any]
//	@Router			/api/v1/auth/logout [post].
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	h.Cookie.Clear(w)
	httpx.WriteSuccess(w, http.StatusOK, "Logged Out!", nil)
}
