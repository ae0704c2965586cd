// Package server exposes the grading service over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/abhisek/assessly/internal/config"
	"github.com/abhisek/assessly/internal/grader"
	"github.com/abhisek/assessly/internal/store"
	"github.com/abhisek/assessly/internal/tracing"
	"github.com/abhisek/assessly/internal/transport"
)

const shutdownTimeout = 10 * time.Second

// Options configures a Server.
type Options struct {
	// Events receives telemetry posted by clients. Optional.
	Events store.EventRepo

	Logger *zap.Logger

	// Registerer receives the server metrics. Defaults to a private registry.
	Registerer prometheus.Registerer
	Gatherer   prometheus.Gatherer

	RequestTimeout time.Duration
	RateLimit      config.RateLimitConfig
	AllowedOrigins []string
}

// Server routes grading requests to a grader.Service.
type Server struct {
	svc     *grader.Service
	events  store.EventRepo
	log     *zap.Logger
	metrics *metrics
	limiter *limiter
	handler http.Handler
}

// New creates a server and builds its routes.
func New(svc *grader.Service, opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}
	reg, gath := opts.Registerer, opts.Gatherer
	if reg == nil {
		r := prometheus.NewRegistry()
		reg, gath = r, r
	}

	s := &Server{
		svc:     svc,
		events:  opts.Events,
		log:     log,
		metrics: newMetrics(reg, gath),
	}
	if rl := opts.RateLimit; rl.MaxRequests > 0 {
		s.limiter = newLimiter(rl.MaxRequests, rl.Window)
	}
	s.handler = s.routes(opts)
	return s
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) routes(opts Options) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.RealIP, s.requestLogger, middleware.Recoverer)
	if opts.RequestTimeout > 0 {
		r.Use(middleware.Timeout(opts.RequestTimeout))
	}

	origins := opts.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Traceparent", transport.SessionHeader},
		ExposedHeaders:   []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Handle("/metrics", s.metrics.handler())

	r.Route("/api/v1", func(api chi.Router) {
		api.Use(tracing.Middleware, s.metrics.middleware)
		api.Get("/assessments", s.handleListAssessments)
		api.Route("/assessments/{assessment}/learners/{learner}", func(lr chi.Router) {
			if s.limiter != nil {
				lr.Use(s.limiter.middleware)
			}
			lr.Post("/submit", s.handleSubmit)
			lr.Post("/get_results", s.handleGetResults)
			lr.Post("/try_again", s.handleTryAgain)
			lr.Get("/state", s.handleState)
			lr.Post("/events", s.handleEvents)
			lr.Delete("/", s.handleReset)
		})
	})
	return r
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("grading server listening", zap.String("addr", addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
	}

	s.log.Info("shutting down grading server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

// requestLogger logs each request with zap once it completes.
func (s *Server) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		s.log.Debug("http request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Int("bytes", ww.BytesWritten()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())),
		)
	})
}
