// Package server exposes the corporation lookup and financial analysis
// endpoints over HTTP.
package server

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/sells-group/dart-analysis/internal/corpstore"
	"github.com/sells-group/dart-analysis/internal/financial"
)

// Config holds the listener settings.
type Config struct {
	Addr            string
	ShutdownTimeout time.Duration
	AllowedOrigins  []string
}

// Server is the HTTP front of the analysis service.
type Server struct {
	router          *chi.Mux
	log             *zap.Logger
	server          *http.Server
	shutdownTimeout time.Duration
}

func New(cfg Config, corps corpstore.Store, svc *financial.Service) *Server {
	log := zap.L().Named("server")
	h := &handler{corps: corps, svc: svc, log: log}

	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 10 * time.Second
	}
	origins := cfg.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Route("/api/corporations", func(r chi.Router) {
		r.Get("/search", h.searchCorporations)
		r.Get("/count", h.countCorporations)
		r.Get("/health", h.health)
		r.Get("/stock/{stockCode}", h.getByStockCode)
		r.Get("/{corpCode}", h.getByCorpCode)
	})

	r.Route("/api/financial/{corpCode}", func(r chi.Router) {
		r.Get("/", h.rawFinancial)
		r.Get("/summary", h.summary)
		r.Get("/analysis", h.analysis)
		r.Get("/balance-structure", h.balanceStructure)
		r.Get("/detailed-analysis", h.detailedAnalysis)
		r.Get("/ai-analysis", h.aiAnalysis)
		r.Get("/ai-summary", h.aiSummary)
	})

	return &Server{
		router: r,
		log:    log,
		server: &http.Server{
			Addr:              cfg.Addr,
			Handler:           r,
			ReadHeaderTimeout: 10 * time.Second,
		},
		shutdownTimeout: cfg.ShutdownTimeout,
	}
}

// Router exposes the mux, mainly for httptest.
func (s *Server) Router() http.Handler { return s.router }

// Start runs the listener until a terminating signal arrives, then shuts
// down gracefully within the configured timeout.
func (s *Server) Start() error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	go func() {
		s.log.Info("starting server", zap.String("addr", s.server.Addr))
		serverErrors <- s.server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		return err
	case sig := <-shutdown:
		s.log.Info("shutdown initiated", zap.String("signal", sig.String()))

		ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			s.log.Error("graceful shutdown failed", zap.Error(err))
			return s.server.Close()
		}
	}
	return nil
}
