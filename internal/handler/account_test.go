package handler

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DragonKeeper_Go/internal/auth"
	"github.com/osse101/DragonKeeper_Go/internal/domain"
	"github.com/osse101/DragonKeeper_Go/internal/user"
)

func testSession() *user.Session {
	return &user.Session{
		User:      domain.User{ID: testUserID, Username: "keeper"},
		Token:     "signed.jwt.token",
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func sessionCookie(w *httptest.ResponseRecorder) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == auth.SessionCookieName {
			return c
		}
	}
	return nil
}

func TestAccountHandler_Login(t *testing.T) {
	rend := newTestRenderer(t)

	t.Run("success sets the session and goes home", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "keeper", "secret1").Return(testSession(), nil)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Login(w, formRequest("/login", url.Values{"username": {"keeper"}, "password": {"secret1"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/yourhome", w.Header().Get("Location"))
		c := sessionCookie(w)
		require.NotNil(t, c)
		assert.Equal(t, "signed.jwt.token", c.Value)
		assert.True(t, c.HttpOnly)
		svc.AssertExpectations(t)
	})

	t.Run("bad password flashes and returns to login", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Login", mock.Anything, "keeper", "wrong").Return(nil, domain.ErrInvalidCredentials)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Login(w, formRequest("/login", url.Values{"username": {"keeper"}, "password": {"wrong"}}))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Equal(t, ErrMsgInvalidCredentials, flashOf(t, w))
		assert.Nil(t, sessionCookie(w))
	})

	t.Run("empty form never reaches the service", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Login(w, formRequest("/login", url.Values{}))

		assert.Equal(t, "/login", w.Header().Get("Location"))
		svc.AssertNotCalled(t, "Login", mock.Anything, mock.Anything, mock.Anything)
	})
}

func TestAccountHandler_Register(t *testing.T) {
	rend := newTestRenderer(t)
	valid := url.Values{"username": {"keeper"}, "email": {"k@example.com"}, "password": {"secret1"}}

	t.Run("success logs the new user in", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, "keeper", "k@example.com", "secret1").Return(testSession(), nil)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Register(w, formRequest("/register", valid))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/yourhome", w.Header().Get("Location"))
		assert.NotNil(t, sessionCookie(w))
	})

	t.Run("email taken goes to login", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, "keeper", "k@example.com", "secret1").Return(nil, domain.ErrEmailTaken)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Register(w, formRequest("/register", valid))

		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Equal(t, ErrMsgEmailTaken, flashOf(t, w))
	})

	t.Run("username taken stays on register", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, "keeper", "k@example.com", "secret1").Return(nil, domain.ErrUsernameTaken)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Register(w, formRequest("/register", valid))

		assert.Equal(t, "/register", w.Header().Get("Location"))
		assert.Equal(t, ErrMsgUsernameTaken, flashOf(t, w))
	})

	t.Run("invalid form re-renders with a notice", func(t *testing.T) {
		svc := new(MockUserService)
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Register(w, formRequest("/register", url.Values{"username": {"keeper"}, "email": {"nope"}, "password": {"secret1"}}))

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid email format")
		svc.AssertNotCalled(t, "Register", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("storage failure is a 500", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Register", mock.Anything, "keeper", "k@example.com", "secret1").Return(nil, errors.New("db down"))
		h := NewAccountHandler(svc, rend)

		w := httptest.NewRecorder()
		h.Register(w, formRequest("/register", valid))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
	})
}

func TestAccountHandler_Confirm(t *testing.T) {
	rend := newTestRenderer(t)

	route := func(h *AccountHandler) http.Handler {
		r := chi.NewRouter()
		r.Get("/confirm/{token}", h.Confirm)
		return r
	}

	t.Run("anonymous confirm goes to login", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Confirm", mock.Anything, "tok").Return(&domain.User{ID: testUserID, EmailConfirmed: true}, nil)

		w := httptest.NewRecorder()
		route(NewAccountHandler(svc, rend)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/confirm/tok", nil))

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/login", w.Header().Get("Location"))
		assert.Equal(t, MsgEmailConfirmed, flashOf(t, w))
	})

	t.Run("logged in confirm goes home", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Confirm", mock.Anything, "tok").Return(&domain.User{ID: testUserID, EmailConfirmed: true}, nil)

		w := httptest.NewRecorder()
		route(NewAccountHandler(svc, rend)).ServeHTTP(w, asUser(httptest.NewRequest(http.MethodGet, "/confirm/tok", nil)))

		assert.Equal(t, "/yourhome", w.Header().Get("Location"))
	})

	t.Run("expired link", func(t *testing.T) {
		svc := new(MockUserService)
		svc.On("Confirm", mock.Anything, "old").Return(nil, domain.ErrTokenExpired)

		w := httptest.NewRecorder()
		route(NewAccountHandler(svc, rend)).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/confirm/old", nil))

		assert.Equal(t, "/unconfirmed", w.Header().Get("Location"))
		assert.Equal(t, ErrMsgTokenExpired, flashOf(t, w))
	})
}

func TestAccountHandler_Logout(t *testing.T) {
	h := NewAccountHandler(new(MockUserService), newTestRenderer(t))

	w := httptest.NewRecorder()
	h.Logout(w, asUser(httptest.NewRequest(http.MethodGet, "/logout", nil)))

	assert.Equal(t, "/", w.Header().Get("Location"))
	c := sessionCookie(w)
	require.NotNil(t, c)
	assert.True(t, c.MaxAge < 0)
}
