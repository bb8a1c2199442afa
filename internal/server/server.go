package server

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/fairpaycheck/fairpaycheck/internal/scoring"
)

// Server exposes the scoring engine over HTTP.
type Server struct {
	engine  *scoring.Engine
	logger  *zap.Logger
	schema  *requestSchema
	httpSrv *http.Server
}

// New builds a Server listening on addr. The request schema is compiled
// once from the engine's dataset enumerations.
func New(engine *scoring.Engine, logger *zap.Logger, addr string) (*Server, error) {
	if logger == nil {
		logger = zap.NewNop()
	}

	schema, err := compileRequestSchema(engine.Data())
	if err != nil {
		return nil, err
	}

	s := &Server{
		engine: engine,
		logger: logger,
		schema: schema,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /api/v1/score", s.handleScore)
	mux.HandleFunc("GET /api/v1/metadata", s.handleMetadata)
	mux.HandleFunc("GET /healthz", s.handleHealth)

	s.httpSrv = &http.Server{
		Addr:              addr,
		Handler:           s.withLogging(s.withRecovery(mux)),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return s, nil
}

// Start blocks serving requests until Shutdown is called or the listener
// fails.
func (s *Server) Start() error {
	s.logger.Info("http server listening", zap.String("addr", s.httpSrv.Addr))
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpSrv.Shutdown(ctx)
}

// Handler returns the server's HTTP handler, used directly by tests.
func (s *Server) Handler() http.Handler {
	return s.httpSrv.Handler
}

func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		s.logger.Info("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", rec.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}

// withRecovery converts panics into the generic processing error. The
// diagnostic goes to the log only, never to the client.
func (s *Server) withRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				s.logger.Error("panic while handling request",
					zap.String("path", r.URL.Path),
					zap.Any("panic", rec),
				)
				s.errorResponse(w, http.StatusInternalServerError, genericErrorMessage)
			}
		}()
		next.ServeHTTP(w, r)
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) jsonResponse(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		s.logger.Error("writing response", zap.Error(err))
	}
}

func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{
		"error":   message,
		"version": apiVersion,
	})
}
