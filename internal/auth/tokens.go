package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/osse101/DragonKeeper_Go/internal/domain"
)

// Token purposes
const (
	PurposeSession      = "session"
	PurposeConfirmEmail = "confirm-email"
)

const issuer = "dragon-keeper"

// Claims carries the user ID in Subject and what the token may be used for
type Claims struct {
	jwt.RegisteredClaims
	Purpose string `json:"purpose"`
}

// TokenManager signs and validates HS256 tokens
type TokenManager struct {
	secret     []byte
	sessionTTL time.Duration
	confirmTTL time.Duration
	now        func() time.Time
}

// NewTokenManager creates a manager signing with secret
func NewTokenManager(secret string, sessionTTL, confirmTTL time.Duration) *TokenManager {
	return &TokenManager{
		secret:     []byte(secret),
		sessionTTL: sessionTTL,
		confirmTTL: confirmTTL,
		now:        time.Now,
	}
}

// IssueSession returns a session token and its expiry
func (m *TokenManager) IssueSession(userID string) (string, time.Time, error) {
	return m.issue(userID, PurposeSession, m.sessionTTL)
}

// IssueConfirmation returns an email confirmation token
func (m *TokenManager) IssueConfirmation(userID string) (string, error) {
	token, _, err := m.issue(userID, PurposeConfirmEmail, m.confirmTTL)
	return token, err
}

// ParseSession returns the user ID of a valid session token
func (m *TokenManager) ParseSession(token string) (string, error) {
	return m.parse(token, PurposeSession)
}

// ParseConfirmation returns the user ID of a valid confirmation token
func (m *TokenManager) ParseConfirmation(token string) (string, error) {
	return m.parse(token, PurposeConfirmEmail)
}

func (m *TokenManager) issue(userID, purpose string, ttl time.Duration) (string, time.Time, error) {
	now := m.now()
	exp := now.Add(ttl)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			Issuer:    issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
		Purpose: purpose,
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, exp, nil
}

func (m *TokenManager) parse(token, purpose string) (string, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(token, claims,
		func(*jwt.Token) (any, error) { return m.secret, nil },
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", fmt.Errorf("%w: %v", domain.ErrTokenInvalid, err)
	}
	if claims.Purpose != purpose || claims.Subject == "" {
		return "", domain.ErrTokenInvalid
	}
	return claims.Subject, nil
}
