package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

const shutdownTimeout = 10 * time.Second

// NewHandler - routes of the HTTP API.
func NewHandler(logger *slog.Logger) http.Handler {
	engine := newEngineHandler(logger)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/ping", ping)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/classify", engine.Classify)
		r.Post("/best-move", engine.BestMove)
	})

	return r
}

// Start - starts HTTP server and stops it when ctx is done.
func Start(ctx context.Context, logger *slog.Logger, port string) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      NewHandler(logger),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	return serve(ctx, logger, srv, srv.ListenAndServe)
}

// serve - runs the server until listen fails or ctx is done, then shuts it down.
func serve(ctx context.Context, logger *slog.Logger, srv *http.Server, listen func() error) error {
	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("failed to shutdown server", "error", err)
		}
	}()

	if err := listen(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// requestLogger - logs every request through slog instead of chi's stdlib logger.
func requestLogger(logger *slog.Logger) func(http.Handler) http.Handler {
	log := logger.With("component", "http")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			defer func() {
				log.Info("request served",
					"requestID", middleware.GetReqID(r.Context()),
					"method", r.Method,
					"path", r.URL.Path,
					"status", ww.Status(),
					"bytes", ww.BytesWritten(),
					"duration", time.Since(start),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}
