// ABOUTME: Example gallery HTTP server: index page, example file passthrough, and JSON listing
// ABOUTME: behind a single chi router. Holds no mutable state; every request rescans the root.
package web

import (
	"bytes"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/2389-research/hypergallery/gallery"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
)

// PageTitle is the heading and <title> of the index page.
const PageTitle = "Isomorphic Open Hypergraph Examples"

// Server is the example gallery HTTP server.
type Server struct {
	scanner   *gallery.Scanner
	templates *TemplateEngine
	markdown  goldmark.Markdown
	router    chi.Router
	addr      string
	logf      func(format string, args ...any)
}

// ServerConfig holds the configuration for the gallery server.
type ServerConfig struct {
	Addr string // listen address (default: "localhost:8000")
	Root string // example root directory (default: "example_isomorphisms")

	// Logf receives request and error log lines. Defaults to log.Printf.
	Logf func(format string, args ...any)
}

// NewServer creates a Server with the given configuration and sets up routing.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Addr == "" {
		cfg.Addr = "localhost:8000"
	}
	if cfg.Logf == nil {
		cfg.Logf = log.Printf
	}

	tmpl, err := NewTemplateEngine()
	if err != nil {
		return nil, err
	}

	s := &Server{
		scanner:   gallery.NewScanner(cfg.Root),
		templates: tmpl,
		markdown:  goldmark.New(goldmark.WithExtensions(extension.GFM)),
		addr:      cfg.Addr,
		logf:      cfg.Logf,
	}
	s.router = s.buildRouter()
	return s, nil
}

// ServeHTTP delegates to the chi router, satisfying http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Root returns the example root directory being served.
func (s *Server) Root() string {
	return s.scanner.Root
}

// HTTPServer returns an http.Server bound to the configured address with
// timeouts that keep slow clients from holding connections open.
func (s *Server) HTTPServer() *http.Server {
	return &http.Server{
		Addr:              s.addr,
		Handler:           s,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      time.Minute,
		IdleTimeout:       2 * time.Minute,
	}
}

func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	r.Use(requestLogger(s.logf))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get(gallery.URLPrefix+"*", s.handleExampleFile)
	r.Get("/api/examples", s.handleListExamples)

	return r
}

// handleIndex renders the gallery table.
func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	examples, err := s.scanner.Scan()
	if err != nil {
		s.internalError(w, "scanning examples", err)
		return
	}

	intro, err := s.loadIntro()
	if err != nil {
		// The intro is decoration; the table still renders without it.
		s.logf("error rendering intro: %v", err)
	}

	data := IndexData{
		Title: PageTitle,
		Intro: intro,
		Rows:  BuildRows(examples),
	}

	var buf bytes.Buffer
	if err := s.templates.RenderTo(&buf, "index.html", data); err != nil {
		s.internalError(w, "rendering index", err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// handleListExamples returns the example collection as a JSON array.
func (s *Server) handleListExamples(w http.ResponseWriter, r *http.Request) {
	examples, err := s.scanner.Scan()
	if err != nil {
		s.internalError(w, "scanning examples", err)
		return
	}

	body, err := json.Marshal(examples)
	if err != nil {
		s.internalError(w, "encoding examples", err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

func (s *Server) internalError(w http.ResponseWriter, action string, err error) {
	s.logf("error %s: %v", action, err)
	http.Error(w, "internal server error", http.StatusInternalServerError)
}
