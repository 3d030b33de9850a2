package search

import (
	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// NotFoundMessage is shown for every failed search.
const NotFoundMessage = "Creature not found"

// State is where the search flow currently is.
type State int

// Search states
const (
	StateIdle State = iota
	StateSearching
	StateDisplaying
	StateCleared
)

// String returns the state name for logs.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSearching:
		return "searching"
	case StateDisplaying:
		return "displaying"
	case StateCleared:
		return "cleared"
	default:
		return "unknown"
	}
}

// SearchOutput describes how one search ended.
type SearchOutput struct {
	// SearchID correlates logs and spans for this search
	SearchID string
	Query    creature.Query
	// State after the search settled
	State State
	// Creature is set when the search was rendered
	Creature *creature.Creature
	// Err is the failure that was reported to the user as not found
	Err error
	// Stale is true when a newer search or a clear superseded this one and
	// its result was dropped
	Stale bool
}
