// Package api provides the HTTP REST API for nmap-navigator. It wires the
// in-memory store, the scan importer, and the checklist reference data behind
// a gorilla/mux router.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	gorilla "github.com/gorilla/handlers"
	"github.com/gorilla/mux"

	"github.com/theawkwardchild/nmap-navigator/internal/api/handlers"
	"github.com/theawkwardchild/nmap-navigator/internal/checklist"
	"github.com/theawkwardchild/nmap-navigator/internal/config"
	"github.com/theawkwardchild/nmap-navigator/internal/importer"
	"github.com/theawkwardchild/nmap-navigator/internal/logging"
	"github.com/theawkwardchild/nmap-navigator/internal/metrics"
	"github.com/theawkwardchild/nmap-navigator/internal/store"
)

const serviceVersion = "0.1.0"

// Server represents the API server.
type Server struct {
	httpServer *http.Server
	router     *mux.Router
	config     *config.Config
	store      *store.Store
	handler    *handlers.Handler
	logger     *logging.Logger
	metrics    *metrics.Registry
	startTime  time.Time
}

// New creates a new API server instance. The checklist template collection is
// seeded into the store here so every request observes it.
func New(cfg *config.Config, st *store.Store) *Server {
	logger := logging.Default().WithComponent("api")

	st.SetChecklistItems(checklist.DefaultItems())

	metricsRegistry := metrics.NewRegistry()
	imp := importer.New(st, logging.Default(), metricsRegistry)

	server := &Server{
		router:    mux.NewRouter(),
		config:    cfg,
		store:     st,
		handler:   handlers.New(st, imp, logging.Default(), cfg.Server.MaxUploadSize),
		logger:    logger,
		metrics:   metricsRegistry,
		startTime: time.Now(),
	}

	server.setupRoutes()
	server.setupMiddleware()

	server.httpServer = &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      server.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return server
}

// Start starts the API server and blocks until the context is canceled or
// the listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.logger.Info("Starting API server",
		"address", s.httpServer.Addr,
		"read_timeout", s.httpServer.ReadTimeout,
		"write_timeout", s.httpServer.WriteTimeout)

	errChan := make(chan error, 1)
	go func() {
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("API server failed: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		return s.Stop()
	case err := <-errChan:
		return err
	}
}

// Stop gracefully stops the API server.
func (s *Server) Stop() error {
	s.logger.Info("Stopping API server")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Error("API server shutdown error", "error", err)
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	s.logger.Info("API server stopped")
	return nil
}

// setupRoutes configures all API routes.
func (s *Server) setupRoutes() {
	api := s.router.PathPrefix("/api").Subrouter()

	// System endpoints
	api.HandleFunc("/health", s.healthHandler).Methods("GET")
	api.HandleFunc("/version", s.versionHandler).Methods("GET")

	// Hosts and services
	api.HandleFunc("/hosts", s.handler.ListHosts).Methods("GET")
	api.HandleFunc("/hosts/{id}", s.handler.GetHost).Methods("GET")
	api.HandleFunc("/hosts/{id}", s.handler.DeleteHost).Methods("DELETE")
	api.HandleFunc("/hosts/{hostId}/services", s.handler.ListHostServices).Methods("GET")
	api.HandleFunc("/services", s.handler.ListServices).Methods("GET")
	api.HandleFunc("/services/{id}", s.handler.GetService).Methods("GET")
	api.HandleFunc("/services/{id}", s.handler.DeleteService).Methods("DELETE")

	// Scan import
	api.HandleFunc("/scans/upload", s.handler.UploadScan).Methods("POST")

	// Checklists and progress
	api.HandleFunc("/checklists", s.handler.ListChecklists).Methods("GET")
	api.HandleFunc("/checklist-states", s.handler.ListChecklistStates).Methods("GET")
	api.HandleFunc("/checklist-states", s.handler.UpsertChecklistState).Methods("POST")

	// Credentials and test results
	api.HandleFunc("/credentials", s.handler.ListCredentials).Methods("GET")
	api.HandleFunc("/credentials", s.handler.CreateCredential).Methods("POST")
	api.HandleFunc("/credentials/{id}", s.handler.DeleteCredential).Methods("DELETE")
	api.HandleFunc("/credential-tests", s.handler.ListCredentialTests).Methods("GET")
	api.HandleFunc("/credential-tests", s.handler.UpsertCredentialTest).Methods("POST")

	// Discovered wordlist material
	api.HandleFunc("/usernames", s.handler.ListUsernames).Methods("GET")
	api.HandleFunc("/usernames", s.handler.CreateUsername).Methods("POST")
	api.HandleFunc("/usernames/{id}", s.handler.DeleteUsername).Methods("DELETE")
	api.HandleFunc("/passwords", s.handler.ListPasswords).Methods("GET")
	api.HandleFunc("/passwords", s.handler.CreatePassword).Methods("POST")
	api.HandleFunc("/passwords/{id}", s.handler.DeletePassword).Methods("DELETE")

	// Prometheus exposition
	s.router.Handle("/metrics", s.metrics.Handler()).Methods("GET")
}

// setupMiddleware configures middleware for the API server.
func (s *Server) setupMiddleware() {
	s.router.Use(s.recoveryMiddleware)
	s.router.Use(s.loggingMiddleware)

	if s.config.Server.CORS.Enabled {
		corsOptions := gorilla.AllowedOrigins(s.config.Server.CORS.AllowedOrigins)
		corsHeaders := gorilla.AllowedHeaders(s.config.Server.CORS.AllowedHeaders)
		corsMethods := gorilla.AllowedMethods(s.config.Server.CORS.AllowedMethods)
		s.router.Use(gorilla.CORS(corsOptions, corsHeaders, corsMethods))
	}
}

// healthHandler provides a basic health check endpoint.
func (s *Server) healthHandler(w http.ResponseWriter, r *http.Request) {
	hosts, services := s.store.Counts()

	response := map[string]interface{}{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
		"uptime":    time.Since(s.startTime).String(),
		"inventory": map[string]int{
			"hosts":    hosts,
			"services": services,
		},
	}

	s.writeJSON(w, r, http.StatusOK, response)
}

// versionHandler provides version information.
func (s *Server) versionHandler(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"service":   "nmap-navigator",
		"version":   serviceVersion,
		"timestamp": time.Now().UTC(),
	}

	s.writeJSON(w, r, http.StatusOK, response)
}

// writeJSON writes a JSON response.
func (s *Server) writeJSON(w http.ResponseWriter, r *http.Request, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	if err := json.NewEncoder(w).Encode(data); err != nil {
		s.logger.Error("Failed to encode JSON response",
			"error", err,
			"path", r.URL.Path,
			"method", r.Method)
	}
}

// GetRouter returns the configured router.
func (s *Server) GetRouter() *mux.Router {
	return s.router
}

// GetAddress returns the server address.
func (s *Server) GetAddress() string {
	return s.httpServer.Addr
}

// Middleware functions.

// recoveryMiddleware recovers from panics and returns a 500 error.
func (s *Server) recoveryMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				s.logger.Error("Panic in API handler",
					"error", err,
					"path", r.URL.Path,
					"method", r.Method)

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_ = json.NewEncoder(w).Encode(map[string]string{"message": "Internal server error"})
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// loggingMiddleware logs HTTP requests and records request metrics.
func (s *Server) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		wrapped := &responseWriter{ResponseWriter: w, statusCode: http.StatusOK}

		next.ServeHTTP(wrapped, r)

		duration := time.Since(start)

		s.logger.Info("HTTP request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", wrapped.statusCode,
			"duration", duration,
			"remote_addr", r.RemoteAddr)

		s.metrics.RecordHTTPRequest(r.Method, wrapped.statusCode, duration.Seconds())
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	statusCode int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}
