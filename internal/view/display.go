package view

import (
	"sync"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// DisplayState is a copy of every slot of a Display.
type DisplayState struct {
	Input       string
	Name        string
	ID          string
	Weight      string
	Height      string
	Types       []TypeChip
	Special     SpecialAbility
	Stats       map[creature.StatKey]string
	InfoVisible bool
}

// Display is a Sink that keeps slot values in memory. It is safe for
// concurrent use. The terminal and web front ends draw from its State.
type Display struct {
	mu    sync.RWMutex
	state DisplayState
}

// NewDisplay returns a Display in the initial state: hidden, every slot empty.
func NewDisplay() *Display {
	d := &Display{}
	d.state.Stats = make(map[creature.StatKey]string, len(creature.StatKeys))
	for _, key := range creature.StatKeys {
		d.state.Stats[key] = ""
	}
	return d
}

// State returns a copy of the current slots.
func (d *Display) State() DisplayState {
	d.mu.RLock()
	defer d.mu.RUnlock()

	out := d.state
	out.Types = append([]TypeChip(nil), d.state.Types...)
	out.Stats = make(map[creature.StatKey]string, len(d.state.Stats))
	for k, v := range d.state.Stats {
		out.Stats[k] = v
	}
	return out
}

func (d *Display) update(fn func(s *DisplayState)) {
	d.mu.Lock()
	fn(&d.state)
	d.mu.Unlock()
}

// InputValue implements Sink.
func (d *Display) InputValue() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.state.Input
}

// SetInputValue implements Sink.
func (d *Display) SetInputValue(value string) {
	d.update(func(s *DisplayState) { s.Input = value })
}

// SetName implements Sink.
func (d *Display) SetName(value string) {
	d.update(func(s *DisplayState) { s.Name = value })
}

// SetID implements Sink.
func (d *Display) SetID(value string) {
	d.update(func(s *DisplayState) { s.ID = value })
}

// SetWeight implements Sink.
func (d *Display) SetWeight(value string) {
	d.update(func(s *DisplayState) { s.Weight = value })
}

// SetHeight implements Sink.
func (d *Display) SetHeight(value string) {
	d.update(func(s *DisplayState) { s.Height = value })
}

// SetTypes implements Sink.
func (d *Display) SetTypes(chips []TypeChip) {
	copied := append([]TypeChip(nil), chips...)
	d.update(func(s *DisplayState) { s.Types = copied })
}

// SetSpecial implements Sink.
func (d *Display) SetSpecial(special SpecialAbility) {
	d.update(func(s *DisplayState) { s.Special = special })
}

// SetStat implements Sink.
func (d *Display) SetStat(key creature.StatKey, value string) {
	d.update(func(s *DisplayState) {
		if s.Stats == nil {
			s.Stats = make(map[creature.StatKey]string, len(creature.StatKeys))
		}
		s.Stats[key] = value
	})
}

// SetInfoVisible implements Sink.
func (d *Display) SetInfoVisible(visible bool) {
	d.update(func(s *DisplayState) { s.InfoVisible = visible })
}
