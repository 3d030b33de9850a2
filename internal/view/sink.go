// Package view maps creature records onto named display slots.
//
// A Sink is the presentation boundary: a set of named write operations plus
// the current text of the search input. Render and Clear are the only
// writers; they never read a slot back.
package view

import (
	"context"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

//go:generate mockgen -destination=mock/mock_view.go -package=viewmock github.com/KirkDiggler/rpg-creature-lookup/internal/view Sink,Notifier

// Display text
const (
	NotAvailable     = "N/A"
	NoSpecialAbility = "No special ability data."
)

// TypeChip is one labeled type tag. StyleKey selects the chip's color.
type TypeChip struct {
	Label    string
	StyleKey string
}

// SpecialAbility is the content of the special ability slot. Either Title
// and Description are set, or only Placeholder is. The zero value is an
// empty slot.
type SpecialAbility struct {
	Title       string
	Description string
	Placeholder string
}

// IsEmpty reports whether the slot shows nothing.
func (s SpecialAbility) IsEmpty() bool {
	return s == SpecialAbility{}
}

// Sink receives display values.
type Sink interface {
	// InputValue returns the current text of the search input.
	InputValue() string
	SetInputValue(value string)

	SetName(value string)
	SetID(value string)
	SetWeight(value string)
	SetHeight(value string)
	// SetTypes replaces every chip.
	SetTypes(chips []TypeChip)
	SetSpecial(special SpecialAbility)
	SetStat(key creature.StatKey, value string)

	// SetInfoVisible shows or hides the region holding every slot above
	// except the input.
	SetInfoVisible(visible bool)
}

// Notifier shows a message the user has to acknowledge.
type Notifier interface {
	Notify(ctx context.Context, message string)
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string)

// Notify calls f.
func (f NotifierFunc) Notify(ctx context.Context, message string) {
	f(ctx, message)
}
