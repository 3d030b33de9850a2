// Package web serves the creature search as a server-rendered page.
//
// Each request gets its own display and search orchestrator, so the page
// holds no state between requests.
package web

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/catalog"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/orchestrators/search"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/telemetry"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/view"
)

// Config holds the dependencies for the web server
type Config struct {
	Client external.Client
	// IDGenerator is optional, defaults to UUIDs
	IDGenerator idgen.Generator
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.IDGenerator == nil {
		c.IDGenerator = idgen.NewUUID("search")
	}
	return nil
}

// Server handles the search page.
type Server struct {
	client external.Client
	idGen  idgen.Generator
	tracer trace.Tracer
	mux    *http.ServeMux
}

// NewServer creates the page handler.
func NewServer(cfg *Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	s := &Server{
		client: cfg.Client,
		idGen:  cfg.IDGenerator,
		tracer: telemetry.Tracer("web"),
		mux:    http.NewServeMux(),
	}

	s.mux.HandleFunc("GET /{$}", s.handlePage)
	s.mux.HandleFunc("POST /clear", s.handleClear)
	s.mux.HandleFunc("GET /health", s.handleHealth)
	s.mux.HandleFunc("GET /catalog", s.handleCatalog)
	s.mux.HandleFunc("GET /api/creature/{query}", s.handleCreature)

	return s, nil
}

// ServeHTTP implements http.Handler with request logging.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	ctx, span := s.tracer.Start(r.Context(), r.Method+" "+r.URL.Path, trace.WithAttributes(
		attribute.String("http.method", r.Method),
		attribute.String("http.target", r.URL.RequestURI()),
	))
	defer span.End()

	rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
	s.mux.ServeHTTP(rec, r.WithContext(ctx))

	span.SetAttributes(attribute.Int("http.status_code", rec.status))
	slog.InfoContext(ctx, "HTTP request",
		"method", r.Method,
		"path", r.URL.Path,
		"status", rec.status,
		"duration", time.Since(start))
}

// handlePage renders the empty page, or searches when q is present.
func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	display := view.NewDisplay()
	notices := &noticeList{}

	if r.URL.Query().Has("q") {
		orch, err := search.NewOrchestrator(&search.Config{
			Client:      s.client,
			Sink:        display,
			Notifier:    notices,
			IDGenerator: s.idGen,
		})
		if err != nil {
			slog.ErrorContext(ctx, "Failed to create search orchestrator", "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}

		display.SetInputValue(r.URL.Query().Get("q"))
		orch.Search(ctx)
	}

	s.render(ctx, w, display.State(), notices.all())
}

// handleClear answers the clear button with an empty page.
func (s *Server) handleClear(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, catalog.All())
}

// handleCreature answers with the record as JSON. Fetch failures map to the
// status of their error code.
func (s *Server) handleCreature(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	query := search.Classify(r.PathValue("query"))

	record, err := s.client.GetCreature(ctx, query)
	if err == nil {
		err = search.CheckRecord(query, record)
	}
	if err != nil {
		slog.WarnContext(ctx, "Creature request failed",
			"query", query.Raw,
			"code", errors.GetCode(err),
			"error", err)
		writeJSON(ctx, w, errors.GetCode(err).HTTPStatus(), map[string]string{"error": errors.GetMessage(err)})
		return
	}

	writeJSON(ctx, w, http.StatusOK, record)
}

func (s *Server) render(ctx context.Context, w http.ResponseWriter, state view.DisplayState, notices []string) {
	data := page{
		State:       state,
		StatKeys:    creature.StatKeys,
		Notices:     notices,
		Suggestions: names(),
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, data); err != nil {
		slog.ErrorContext(ctx, "Failed to render page", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = buf.WriteTo(w)
}

func writeJSON(ctx context.Context, w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.ErrorContext(ctx, "Failed to write response", "error", err)
	}
}

func names() []string {
	all := catalog.All()
	out := make([]string, len(all))
	for i, e := range all {
		out[i] = e.Name
	}
	return out
}

// noticeList collects notifications for one page render.
type noticeList struct {
	mu       sync.Mutex
	messages []string
}

func (n *noticeList) Notify(_ context.Context, message string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.messages = append(n.messages, message)
}

func (n *noticeList) all() []string {
	n.mu.Lock()
	defer n.mu.Unlock()
	return append([]string(nil), n.messages...)
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
