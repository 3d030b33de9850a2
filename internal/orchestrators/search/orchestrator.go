// Package search implements the creature search flow: classify the input,
// fetch the creature, render it or report it as not found.
package search

//go:generate mockgen -destination=mock/mock_service.go -package=searchmock github.com/KirkDiggler/rpg-creature-lookup/internal/orchestrators/search Service

import (
	"context"
	"log/slog"
	"sync"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/clients/external"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/telemetry"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/view"
)

// Service drives one display
type Service interface {
	// Search reads the input, looks the creature up and renders it.
	// Every failure ends with a not found notification and a cleared display.
	Search(ctx context.Context) *SearchOutput

	// Clear resets the input and the display, whatever the current state.
	// A search still in flight is dropped when it returns.
	Clear(ctx context.Context)

	// State returns the current state.
	State() State
}

// Config holds the dependencies for the search orchestrator
type Config struct {
	Client   external.Client
	Sink     view.Sink
	Notifier view.Notifier
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
	if c.Sink == nil {
		vb.RequiredField("Sink")
	}
	if c.Notifier == nil {
		vb.RequiredField("Notifier")
	}

	return vb.Build()
}

type orchestrator struct {
	client   external.Client
	sink     view.Sink
	notifier view.Notifier
	idGen    idgen.Generator
	tracer   trace.Tracer

	mu     sync.Mutex
	state  State
	latest uint64
}

// NewOrchestrator creates a search orchestrator and puts its display in the
// initial state: input empty, every slot empty, info hidden.
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	idGen := cfg.IDGenerator
	if idGen == nil {
		idGen = idgen.NewUUID("search")
	}

	o := &orchestrator{
		client:   cfg.Client,
		sink:     cfg.Sink,
		notifier: cfg.Notifier,
		idGen:    idGen,
		tracer:   telemetry.Tracer("search"),
		state:    StateIdle,
	}
	view.Clear(o.sink)

	return o, nil
}

func (o *orchestrator) Search(ctx context.Context) *SearchOutput {
	o.mu.Lock()
	o.latest++
	token := o.latest
	o.state = StateSearching
	raw := o.sink.InputValue()
	o.mu.Unlock()

	query := Classify(raw)
	out := &SearchOutput{
		SearchID: o.idGen.Generate(),
		Query:    query,
	}

	ctx, span := o.tracer.Start(ctx, "search.Search", trace.WithAttributes(
		attribute.String("search.id", out.SearchID),
		attribute.String("creature.query", query.PathValue()),
		attribute.String("creature.query_kind", query.Kind.String()),
	))
	defer span.End()

	slog.InfoContext(ctx, "Creature search requested",
		"search_id", out.SearchID,
		"query", query.PathValue(),
		"kind", query.Kind.String())

	record, err := o.client.GetCreature(ctx, query)
	if err == nil {
		err = CheckRecord(query, record)
	}

	if err != nil {
		return o.fail(ctx, span, token, out, err)
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if token != o.latest {
		return o.stale(ctx, span, out, nil)
	}

	view.Render(o.sink, record)
	o.state = StateDisplaying

	slog.InfoContext(ctx, "Creature displayed",
		"search_id", out.SearchID,
		"id", record.ID,
		"name", record.GetName())

	out.Creature = record
	out.State = o.state
	return out
}

// CheckRecord rejects a fetched record that cannot be displayed: one with no
// id, or one missing its name, types or stats.
func CheckRecord(query creature.Query, record *creature.Creature) error {
	missing := record.MissingFields()
	if len(missing) == 0 {
		return nil
	}
	if !record.HasID() {
		return errors.EmptyResult("creature response has no id").
			WithMeta("query", query.PathValue())
	}
	return errors.EmptyResult("creature response is missing fields").
		WithMeta("query", query.PathValue()).
		WithMeta("missing", missing)
}

// fail reports a failed search and clears the display. The notification
// runs without holding o.mu since a notifier may block until the user
// acknowledges it.
func (o *orchestrator) fail(ctx context.Context, span trace.Span, token uint64, out *SearchOutput, err error) *SearchOutput {
	o.mu.Lock()
	if token != o.latest {
		defer o.mu.Unlock()
		return o.stale(ctx, span, out, err)
	}
	o.mu.Unlock()

	span.RecordError(err)
	span.SetStatus(codes.Error, errors.GetMessage(err))
	slog.WarnContext(ctx, "Creature search failed",
		"search_id", out.SearchID,
		"query", out.Query.PathValue(),
		"kind", errors.GetKind(err),
		"error", err)

	o.notifier.Notify(ctx, NotFoundMessage)

	o.mu.Lock()
	defer o.mu.Unlock()

	out.Err = err
	if token != o.latest {
		// Something newer took over while the notification was up.
		out.Stale = true
		out.State = o.state
		return out
	}

	o.clearLocked()
	out.State = o.state
	return out
}

// stale drops a superseded result. Callers hold o.mu.
func (o *orchestrator) stale(ctx context.Context, span trace.Span, out *SearchOutput, err error) *SearchOutput {
	slog.DebugContext(ctx, "Dropping stale search result",
		"search_id", out.SearchID,
		"query", out.Query.PathValue())
	span.SetAttributes(attribute.Bool("search.stale", true))

	out.Stale = true
	out.Err = err
	out.State = o.state
	return out
}

func (o *orchestrator) Clear(ctx context.Context) {
	o.mu.Lock()
	defer o.mu.Unlock()

	// Invalidate any search still in flight.
	o.latest++
	o.clearLocked()

	slog.DebugContext(ctx, "Display cleared")
}

func (o *orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

// clearLocked resets the display. Callers hold o.mu.
func (o *orchestrator) clearLocked() {
	view.Clear(o.sink)
	o.state = StateCleared
}
