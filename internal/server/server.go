// Package server provides the HTTP REST API for the resume builder.
package server

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/resumify/resumify/internal/export"
	"github.com/resumify/resumify/internal/printer"
	"github.com/resumify/resumify/internal/store"
	"github.com/resumify/resumify/internal/suggest"
)

// Server represents the HTTP server
type Server struct {
	httpServer *http.Server
	store      *store.Store
	exporter   *export.Exporter
	printer    *printer.Printer
	suggests   *suggest.Manager
	validator  *validator.Validate
}

// Config holds server configuration
type Config struct {
	Port           int
	Storage        store.Storage
	TemplatePath   string
	ChromePath     string
	SuggestLatency time.Duration
}

// New creates a new server instance
func New(cfg Config) (*Server, error) {
	if cfg.Storage == nil {
		return nil, fmt.Errorf("server config requires a storage backend")
	}

	s := &Server{
		store:     store.Open(cfg.Storage),
		exporter:  export.New(cfg.TemplatePath),
		printer:   printer.New(cfg.ChromePath),
		suggests:  suggest.NewManager(suggest.NewService(), cfg.SuggestLatency),
		validator: validator.New(),
	}

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      s.withLogging(s.withCORS(s.routes())),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 120 * time.Second, // PDF printing can take a while
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

func (s *Server) routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /health", s.handleHealth)

	// Document endpoints
	mux.HandleFunc("GET /resume", s.handleGetResume)
	mux.HandleFunc("PUT /resume/personal", s.handleUpdatePersonal)
	mux.HandleFunc("PUT /resume/theme", s.handleUpdateTheme)
	mux.HandleFunc("PUT /resume/theme/color", s.handleUpdateThemeColor)
	mux.HandleFunc("PUT /resume/theme/font", s.handleUpdateThemeFont)
	mux.HandleFunc("POST /resume/reset", s.handleReset)
	mux.HandleFunc("POST /resume/import", s.handleImport)

	// Repeated section record endpoints
	mux.HandleFunc("POST /resume/{section}", s.handleAppendRecord)
	mux.HandleFunc("PATCH /resume/{section}/{id}", s.handleUpdateRecord)
	mux.HandleFunc("DELETE /resume/{section}/{id}", s.handleRemoveRecord)

	// Suggestion endpoint
	mux.HandleFunc("POST /resume/experience/{id}/suggest", s.handleSuggest)

	// Rendering endpoints
	mux.HandleFunc("GET /preview", s.handlePreview)
	mux.HandleFunc("GET /export/docx", s.handleExportDOCX)
	mux.HandleFunc("GET /export/pdf", s.handleExportPDF)

	return mux
}

// Handler returns the fully wrapped HTTP handler, used by tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start begins listening for requests
func (s *Server) Start() error {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	go func() {
		log.Printf("Server starting on %s", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server error: %v", err)
		}
	}()

	<-stop
	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := s.httpServer.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown failed: %w", err)
	}

	// Let in-flight suggestion requests settle so applied text is persisted.
	s.suggests.Wait()

	log.Println("Server stopped")
	return nil
}

// withCORS adds CORS headers
func (s *Server) withCORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// withLogging adds request logging
func (s *Server) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		next.ServeHTTP(w, r)
		log.Printf("[%s] %s completed in %v", r.Method, r.URL.Path, time.Since(start))
	})
}

// handleHealth returns server health status
func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, map[string]string{"status": "ok"})
}

// jsonResponse writes a JSON response
func (s *Server) jsonResponse(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Printf("Error encoding JSON response: %v", err)
	}
}

// errorResponse writes an error JSON response
func (s *Server) errorResponse(w http.ResponseWriter, status int, message string) {
	s.jsonResponse(w, status, map[string]string{"error": message})
}
