// Package api implements the legend sizing HTTP API.
//
// The API exposes the sizing engine over JSON:
//
//	POST   /api/v1/legend/size   compute a dimension for a spec
//	POST   /api/v1/layouts       compute and persist a layout document
//	GET    /api/v1/layouts/{id}  fetch a persisted layout
//	DELETE /api/v1/layouts/{id}  remove a persisted layout
//	GET    /healthz              liveness probe
//
// Responses for /legend/size are cached by spec digest and chart width.
// Layout persistence is optional; without a store the /layouts routes
// return 404.
package api

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/dana-c0914/tui.chart/pkg/cache"
	"github.com/dana-c0914/tui.chart/pkg/legend/layout"
	"github.com/dana-c0914/tui.chart/pkg/observability"
	"github.com/dana-c0914/tui.chart/pkg/store"
)

// requestIDHeader carries the per-request correlation ID.
const requestIDHeader = "X-Request-Id"

// Config assembles a Server's collaborators.
type Config struct {
	Logger   *log.Logger
	Measurer layout.Measurer
	Consts   layout.Constants
	Cache    cache.Cache // nil disables response caching
	Store    store.Store // nil disables layout persistence
	CacheTTL time.Duration
}

// Server handles sizing API requests.
type Server struct {
	logger   *log.Logger
	measurer layout.Measurer
	consts   layout.Constants
	cache    cache.Cache
	keyer    cache.Keyer
	store    store.Store
	cacheTTL time.Duration
}

// NewServer creates a Server from its config. A nil cache falls back to
// [cache.NullCache] so handlers never branch on its presence.
//
// Servers running non-default layout constants scope their cache keys with
// a constants digest; instances sharing one redis must not serve each other
// results computed under different spacing.
func NewServer(cfg Config) *Server {
	c := cfg.Cache
	if c == nil {
		c = cache.NewNullCache()
	}
	l := cfg.Logger
	if l == nil {
		l = log.Default()
	}
	ttl := cfg.CacheTTL
	if ttl == 0 {
		ttl = time.Hour
	}

	keyer := cache.NewDefaultKeyer()
	if cfg.Consts != layout.DefaultConstants() {
		constsJSON, _ := json.Marshal(cfg.Consts)
		keyer = cache.NewScopedKeyer(keyer, "consts:"+cache.Hash(constsJSON)[:8]+":")
	}

	return &Server{
		logger:   l,
		measurer: cfg.Measurer,
		consts:   cfg.Consts,
		cache:    c,
		keyer:    keyer,
		store:    cfg.Store,
		cacheTTL: ttl,
	}
}

// Router builds the chi router with all routes and middleware registered.
func (s *Server) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(s.requestID)
	r.Use(s.instrument)

	r.Get("/healthz", s.handleHealth)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/legend/size", s.handleSize)

		if s.store != nil {
			r.Route("/layouts", func(r chi.Router) {
				r.Post("/", s.handleCreateLayout)
				r.Get("/{id}", s.handleGetLayout)
				r.Delete("/{id}", s.handleDeleteLayout)
			})
		}
	})

	return r
}

// requestID assigns a correlation ID to each request, honoring one supplied
// by the caller.
func (s *Server) requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(requestIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// statusWriter captures the response status code for instrumentation.
type statusWriter struct {
	http.ResponseWriter
	status int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

// instrument emits server hooks and an access log line per request.
func (s *Server) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		observability.Server().OnRequest(r.Context(), r.Method, r.URL.Path)

		sw := &statusWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(sw, r)

		elapsed := time.Since(start)
		observability.Server().OnResponse(r.Context(), r.Method, r.URL.Path, sw.status, elapsed)
		s.logger.Debug("request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", sw.status,
			"duration", elapsed.Round(time.Microsecond),
			"request_id", w.Header().Get(requestIDHeader))
	})
}
