// Package dashboard serves the interactive forecast dashboard and its JSON API.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"sonicseer/internal/forecast"
	"sonicseer/internal/metrics"
)

const shutdownTimeout = 5 * time.Second

// Options configures the dashboard server.
type Options struct {
	Version     string
	CORSOrigins []string
	// DaysBack is the history window applied when a request omits days_back.
	DaysBack       int
	Charts         bool
	RequestTimeout time.Duration
	// ForecastRate limits forecast requests per second across all clients. Zero disables the limit.
	ForecastRate  float64
	ForecastBurst int
}

// Server represents the HTTP dashboard
type Server struct {
	router     *chi.Mux
	forecaster *forecast.Service
	metrics    *metrics.Metrics
	opts       Options
	log        zerolog.Logger
	limiter    *rate.Limiter

	index  *template.Template
	script []byte
}

// New creates the dashboard server. metrics may be nil to disable /metrics.
func New(forecaster *forecast.Service, m *metrics.Metrics, opts Options) (*Server, error) {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 30 * time.Second
	}

	index, script, err := loadAssets()
	if err != nil {
		return nil, err
	}

	s := &Server{
		router:     chi.NewRouter(),
		forecaster: forecaster,
		metrics:    m,
		opts:       opts,
		log:        log.With().Str("component", "dashboard").Logger(),
		index:      index,
		script:     script,
	}

	if opts.ForecastRate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.ForecastRate), max(1, opts.ForecastBurst))
	}

	s.setupMiddleware()
	s.setupRoutes()
	return s, nil
}

// Handler returns the root handler with all middleware applied.
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) setupMiddleware() {
	s.router.Use(middleware.Recoverer)
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(s.loggingMiddleware)
	s.router.Use(middleware.Timeout(s.opts.RequestTimeout))

	if len(s.opts.CORSOrigins) > 0 {
		s.router.Use(cors.Handler(cors.Options{
			AllowedOrigins: s.opts.CORSOrigins,
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
			MaxAge:         300,
		}))
	}
}

func (s *Server) setupRoutes() {
	s.router.Get("/", s.handleIndex)
	s.router.Get("/assets/app.js", s.handleScript)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", s.handleHealth)
		r.Get("/options", s.handleOptions)
		r.With(s.rateLimitMiddleware).Post("/forecast", s.handleForecast)
	})

	if s.metrics != nil {
		s.router.Handle("/metrics", s.metrics.Handler())
	}
}

// Serve listens on addr and blocks until ctx is cancelled or the server fails.
// onReady, if set, receives the base URL once the listener is bound.
func (s *Server) Serve(ctx context.Context, addr string, onReady func(url string)) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", addr, err)
	}

	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: s.opts.RequestTimeout + 5*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		s.log.Info().Msg("Shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	url := "http://" + ln.Addr().String()
	s.log.Info().Str("url", url).Msg("Dashboard listening")
	if onReady != nil {
		onReady(url)
	}

	return g.Wait()
}

// rateLimitMiddleware rejects requests beyond the configured forecast rate with 429.
func (s *Server) rateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.limiter != nil && !s.limiter.Allow() {
			w.Header().Set("Retry-After", "1")
			respondWithError(w, http.StatusTooManyRequests, "too many forecast requests, retry shortly", nil)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		s.log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Int("bytes", ww.BytesWritten()).
			Dur("duration_ms", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("HTTP request")
	})
}
