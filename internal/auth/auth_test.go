package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

func TestPasswordHasher(t *testing.T) {
	h := NewPasswordHasher(bcrypt.MinCost)

	hashed, err := h.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hashed)

	assert.NoError(t, h.Verify("hunter22", hashed))
	assert.ErrorIs(t, h.Verify("wrong", hashed), domain.ErrInvalidCredentials)
}

func newTestTokens(now time.Time) *TokenManager {
	m := NewTokenManager("test-secret", time.Hour, time.Hour)
	m.now = func() time.Time { return now }
	return m
}

func TestTokens_RoundTrip(t *testing.T) {
	now := time.Now()
	m := newTestTokens(now)

	session, exp, err := m.IssueSession("user-1")
	require.NoError(t, err)
	assert.Equal(t, now.Add(time.Hour), exp)

	id, err := m.ParseSession(session)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)

	confirm, err := m.IssueConfirmation("user-1")
	require.NoError(t, err)
	id, err = m.ParseConfirmation(confirm)
	require.NoError(t, err)
	assert.Equal(t, "user-1", id)
}

func TestTokens_PurposeMismatch(t *testing.T) {
	m := newTestTokens(time.Now())

	session, _, err := m.IssueSession("user-1")
	require.NoError(t, err)
	_, err = m.ParseConfirmation(session)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestTokens_Expired(t *testing.T) {
	issued := time.Now().Add(-2 * time.Hour)
	m := newTestTokens(issued)
	token, err := m.IssueConfirmation("user-1")
	require.NoError(t, err)

	m.now = time.Now
	_, err = m.ParseConfirmation(token)
	assert.ErrorIs(t, err, domain.ErrTokenExpired)
}

func TestTokens_Tampered(t *testing.T) {
	m := newTestTokens(time.Now())
	token, err := m.IssueConfirmation("user-1")
	require.NoError(t, err)

	other := NewTokenManager("other-secret", time.Hour, time.Hour)
	_, err = other.ParseConfirmation(token)
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)

	_, err = m.ParseConfirmation("not-a-token")
	assert.ErrorIs(t, err, domain.ErrTokenInvalid)
}

func TestLoadSessionAndRequireLogin(t *testing.T) {
	m := newTestTokens(time.Now())
	token, _, err := m.IssueSession("user-1")
	require.NoError(t, err)

	var seen string
	h := LoadSession(m)(RequireLogin(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen, _ = UserIDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})))

	t.Run("anonymous is redirected", func(t *testing.T) {
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/yourhome", nil))
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		assert.Equal(t, "/login", rec.Header().Get("Location"))
	})

	t.Run("valid cookie passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/yourhome", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: token})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", seen)
	})

	t.Run("bad cookie is cleared", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/yourhome", nil)
		req.AddCookie(&http.Cookie{Name: SessionCookieName, Value: "garbage"})
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusSeeOther, rec.Code)
		cookies := rec.Result().Cookies()
		require.NotEmpty(t, cookies)
		assert.Equal(t, SessionCookieName, cookies[0].Name)
		assert.Equal(t, -1, cookies[0].MaxAge)
	})
}

func TestFlash(t *testing.T) {
	rec := httptest.NewRecorder()
	SetFlash(rec, "Invalid credentials")

	req := httptest.NewRequest(http.MethodGet, "/login", nil)
	for _, c := range rec.Result().Cookies() {
		req.AddCookie(c)
	}
	rec2 := httptest.NewRecorder()
	assert.Equal(t, "Invalid credentials", PopFlash(rec2, req))
	assert.Equal(t, "", PopFlash(rec2, httptest.NewRequest(http.MethodGet, "/", nil)))
}
