// Package external is the location for the creature service client
package external

//go:generate mockgen -destination=mock/mock_client.go -package=externalmock github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external Client

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/telemetry"
)

const (
	// DefaultBaseURL is the public creature service.
	DefaultBaseURL = "https://rpg-creature-api.freecodecamp.rocks"

	creaturePath = "/api/creature/"
)

// Client defines the interface for creature service interactions
type Client interface {
	// GetCreature fetches one creature by name or id.
	// Returns an errors.Status error for non-2xx responses and an
	// errors.Transport error when the service is unreachable or the body
	// is not valid JSON.
	GetCreature(ctx context.Context, query creature.Query) (*creature.Creature, error)
}

// Config contains configuration options for the creature client.
type Config struct {
	// BaseURL of the creature service (optional, defaults to DefaultBaseURL)
	BaseURL string
	// HTTPTimeout for requests (optional). Zero waits for the transport to
	// settle or fail on its own.
	HTTPTimeout time.Duration
	// HTTPClient overrides the client used for requests (optional)
	HTTPClient *http.Client
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout < 0 {
		return errors.InvalidArgumentf("http timeout cannot be negative: %s", cfg.HTTPTimeout)
	}

	parsed, err := url.Parse(cfg.BaseURL)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return errors.InvalidArgumentf("invalid base url: %q", cfg.BaseURL)
	}
	return nil
}

type client struct {
	baseURL    string
	httpClient *http.Client
	tracer     trace.Tracer
}

// New creates a new creature client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: httpClient,
		tracer:     telemetry.Tracer("external"),
	}, nil
}

// creatureURL substitutes the query into the last path segment.
func (c *client) creatureURL(query creature.Query) string {
	return c.baseURL + creaturePath + url.PathEscape(query.PathValue())
}

func (c *client) GetCreature(ctx context.Context, query creature.Query) (*creature.Creature, error) {
	ctx, span := c.tracer.Start(ctx, "external.GetCreature",
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("creature.query", query.PathValue()),
			attribute.String("creature.query_kind", query.Kind.String()),
		),
	)
	defer span.End()

	endpoint := c.creatureURL(query)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, c.fail(ctx, span, errors.Transport(err, "failed to build creature request"))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.fail(ctx, span, errors.Transport(err, "failed to reach creature service"))
	}
	defer func() {
		_ = resp.Body.Close() // nolint:errcheck // safe to ignore in cleanup
	}()

	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, c.fail(ctx, span, errors.Status(resp.StatusCode,
			"creature not found or creature service error").
			WithMeta("query", query.PathValue()))
	}

	var record creature.Creature
	if err := json.NewDecoder(resp.Body).Decode(&record); err != nil {
		return nil, c.fail(ctx, span, errors.Transport(err, "failed to decode creature response"))
	}

	slog.DebugContext(ctx, "fetched creature",
		"query", query.PathValue(),
		"id", record.ID,
		"name", record.GetName())

	return &record, nil
}

// fail logs err and records it on the span before it is handed back.
func (c *client) fail(ctx context.Context, span trace.Span, err *errors.Error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Message)

	attrs := []any{"error", err}
	if status, ok := errors.GetStatusCode(err); ok {
		attrs = append(attrs, "status_code", status)
	}
	slog.ErrorContext(ctx, "Failed to fetch creature stats", attrs...)

	return err
}
