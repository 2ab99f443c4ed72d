package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/osse101/DragonKeeper_Go/internal/auth"
	"github.com/osse101/DragonKeeper_Go/internal/handler"
	"github.com/osse101/DragonKeeper_Go/internal/logger"
	"github.com/osse101/DragonKeeper_Go/internal/metrics"
)

// Handlers groups the page handlers mounted by the router
type Handlers struct {
	Renderer  *handler.Renderer
	Pages     *handler.PageHandler
	Account   *handler.AccountHandler
	Home      *handler.HomeHandler
	Missions  *handler.MissionHandler
	Dragons   *handler.DragonHandler
	Inventory *handler.InventoryHandler
	Store     *handler.StoreHandler
	Farm      *handler.FarmHandler
}

// Options configures the HTTP listener and middleware
type Options struct {
	Port           int
	TrustedProxies []string
	// Ready is pinged by /readyz. Leave nil for in-memory storage.
	Ready handler.HealthChecker
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, h Handlers, tokens *auth.TokenManager) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, h, tokens),
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      30 * time.Second,
			IdleTimeout:       60 * time.Second,
		},
	}
}

// NewRouter builds the middleware stack and mounts every route
func NewRouter(opts Options, h Handlers, tokens *auth.TokenManager) http.Handler {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(SecurityLoggingMiddleware(opts.TrustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)
	r.Use(auth.LoadSession(tokens))

	r.NotFound(h.Renderer.NotFound)

	// Operational routes
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(opts.Ready))
	r.Get("/version", handler.HandleVersion())
	r.Handle("/metrics", promhttp.Handler())

	// Public pages
	r.Get("/", h.Pages.Home)
	r.Get("/map", h.Pages.Map)
	r.Get("/dragons", h.Pages.Gallery)

	r.Get("/login", h.Account.LoginPage)
	r.With(LoginThrottleMiddleware(opts.TrustedProxies, detector)).Post("/login", h.Account.Login)
	r.Get("/register", h.Account.RegisterPage)
	r.Post("/register", h.Account.Register)
	r.Get("/logout", h.Account.Logout)
	r.Get("/confirm/{token}", h.Account.Confirm)
	r.Get("/unconfirmed", h.Account.Unconfirmed)

	// Player pages
	r.Group(func(r chi.Router) {
		r.Use(auth.RequireLogin)

		r.Post("/confirm/resend", h.Account.Resend)
		r.Get("/yourhome", h.Home.YourHome)

		r.Get("/missions", h.Missions.Missions)
		r.Post("/missions", h.Missions.Dispatch)
		r.Get("/claim_reward", h.Missions.ClaimReward)
		r.Post("/claim_reward", h.Missions.ClaimReward)

		r.Get("/mydragons", h.Dragons.MyDragons)
		r.Get("/carefor", h.Dragons.CarePage)
		r.Post("/carefor", h.Dragons.Care)

		r.Get("/inventory", h.Inventory.Inventory)
		r.Get("/inventory/eggs", h.Inventory.Eggs)
		r.Post("/inventory/eggs", h.Inventory.Hatch)

		r.Get("/store", h.Store.Store)
		r.Post("/store", h.Store.Trade)

		r.Get("/farm", h.Farm.Farm)
		r.Post("/farm", h.Farm.Act)
	})

	return r
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func isQuietPath(path string) bool {
	for _, p := range quietPaths {
		if strings.HasPrefix(path, p) {
			return true
		}
	}
	return false
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		if isQuietPath(r.URL.Path) {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Session cookies and credentials never reach the log
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderCookie) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
