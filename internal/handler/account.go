package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/DragonKeeper_Go/internal/auth"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/user"
)

// LoginForm is the sign-in form
type LoginForm struct {
	Username string `validate:"required,max=50"`
	Password string `validate:"required,max=72"`
}

// RegisterForm is the sign-up form
type RegisterForm struct {
	Username string `validate:"required,min=3,max=50,excludesall=<>"`
	Email    string `validate:"required,email,max=255"`
	Password string `validate:"required,min=6,max=72"`
}

// AccountHandler handles registration, login and email confirmation
type AccountHandler struct {
	userSvc user.Service
	rend    *Renderer
}

// NewAccountHandler creates a new account handler
func NewAccountHandler(userSvc user.Service, rend *Renderer) *AccountHandler {
	return &AccountHandler{userSvc: userSvc, rend: rend}
}

// LoginPage handles GET /login
func (h *AccountHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, r, http.StatusOK, "login", "Sign in", "", nil)
}

// Login handles POST /login
func (h *AccountHandler) Login(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	form := LoginForm{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	if err := GetValidator().ValidateStruct(form); err != nil {
		h.rend.Redirect(w, r, "/login", ErrMsgInvalidCredentials)
		return
	}

	sess, err := h.userSvc.Login(r.Context(), form.Username, form.Password)
	if err != nil {
		h.rend.Fail(w, r, err)
		return
	}

	log.Info("User logged in", "userID", sess.User.ID)
	auth.SetSessionCookie(w, r, sess.Token, sess.ExpiresAt)
	http.Redirect(w, r, "/yourhome", http.StatusSeeOther)
}

// RegisterPage handles GET /register
func (h *AccountHandler) RegisterPage(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, r, http.StatusOK, "register", "Begin your adventure", "", nil)
}

// Register handles POST /register
func (h *AccountHandler) Register(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	form := RegisterForm{
		Username: r.PostFormValue("username"),
		Email:    r.PostFormValue("email"),
		Password: r.PostFormValue("password"),
	}
	if err := GetValidator().ValidateStruct(form); err != nil {
		notice := joinFieldErrors(FormatValidationError(err))
		h.rend.Page(w, r, http.StatusOK, "register", "Begin your adventure", notice, form)
		return
	}

	sess, err := h.userSvc.Register(r.Context(), form.Username, form.Email, form.Password)
	switch {
	case errors.Is(err, domain.ErrEmailTaken):
		h.rend.Redirect(w, r, "/login", ErrMsgEmailTaken)
		return
	case errors.Is(err, domain.ErrUsernameTaken):
		h.rend.Redirect(w, r, "/register", ErrMsgUsernameTaken)
		return
	case err != nil:
		h.rend.Fail(w, r, err)
		return
	}

	log.Info("User registered and logged in", "userID", sess.User.ID)
	auth.SetSessionCookie(w, r, sess.Token, sess.ExpiresAt)
	http.Redirect(w, r, "/yourhome", http.StatusSeeOther)
}

// Logout handles GET /logout
func (h *AccountHandler) Logout(w http.ResponseWriter, r *http.Request) {
	auth.ClearSessionCookie(w, r)
	h.rend.Redirect(w, r, "/", MsgLoggedOut)
}

// Confirm handles GET /confirm/{token}
func (h *AccountHandler) Confirm(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")
	if _, err := h.userSvc.Confirm(r.Context(), token); err != nil {
		h.rend.Fail(w, r, err)
		return
	}

	next := "/login"
	if _, ok := auth.UserIDFromContext(r.Context()); ok {
		next = "/yourhome"
	}
	h.rend.Redirect(w, r, next, MsgEmailConfirmed)
}

// Unconfirmed handles GET /unconfirmed
func (h *AccountHandler) Unconfirmed(w http.ResponseWriter, r *http.Request) {
	h.rend.Page(w, r, http.StatusOK, "unconfirmed", "Confirm your email", "", nil)
}

// Resend handles POST /confirm/resend
func (h *AccountHandler) Resend(w http.ResponseWriter, r *http.Request) {
	if err := h.userSvc.ResendConfirmation(r.Context(), currentUserID(r)); err != nil {
		h.rend.Fail(w, r, err)
		return
	}
	h.rend.Redirect(w, r, "/unconfirmed", MsgConfirmationResent)
}
