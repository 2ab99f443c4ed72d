package server

import "time"

// HTTP error messages for middleware responses
const (
	ErrMsgTooManyRequests      = "Too Many Requests"
	ErrMsgTooManyLoginAttempts = "Too many failed logins. Please wait a few minutes and try again."
)

// Security alert message templates
const (
	SecurityAlertFailedAuth = "⚠️ SECURITY ALERT: Multiple failed login attempts"
	SecurityAlertHighRate   = "⚠️ SECURITY ALERT: Blocking high request rate"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
	LogMsgRequestHeaders   = "Request headers"
	LogMsgLoginFailed      = "Login failed"
	LogMsgLoginBlocked     = "Login blocked"
)

// HTTP header names
const (
	HeaderAuthorization  = "Authorization"
	HeaderCookie         = "Cookie"
	HeaderForwardedFor   = "X-Forwarded-For"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
	HeaderCSP            = "Content-Security-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
	HeaderValueCSP                  = "default-src 'self'; img-src 'self' https: data:; form-action 'self'; frame-ancestors 'self'"
)

// Abuse thresholds, counted per client IP within one window
const (
	CounterWindow        = 5 * time.Minute
	RequestRateLimit     = 1000
	FailedLoginThreshold = 5
)

// MaxRequestBodyBytes caps form posts
const MaxRequestBodyBytes = 64 << 10

// quietPaths are not request-logged
var quietPaths = []string{
	"/healthz",
	"/readyz",
	"/metrics",
}

// Header redaction marker
const (
	RedactedValue = "[REDACTED]"
)
