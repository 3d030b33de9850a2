// Package builders provides test data builders for creating test fixtures
package builders

import (
	"slices"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// CreatureBuilder provides a fluent interface for building test Creature instances
type CreatureBuilder struct {
	c creature.Creature
}

// NewCreatureBuilder creates a new builder with minimal defaults: an id, a
// name, empty type and stat lists and no special ability
func NewCreatureBuilder() *CreatureBuilder {
	b := &CreatureBuilder{
		c: creature.Creature{
			ID:    1,
			Types: []creature.Type{},
			Stats: []creature.Stat{},
		},
	}
	return b.WithName("Pyrolynx")
}

// WithID sets the creature id
func (b *CreatureBuilder) WithID(id int) *CreatureBuilder {
	b.c.ID = id
	return b
}

// WithName sets the creature name
func (b *CreatureBuilder) WithName(name string) *CreatureBuilder {
	b.c.Name = &name
	return b
}

// WithoutName drops the name, as a response without one decodes
func (b *CreatureBuilder) WithoutName() *CreatureBuilder {
	b.c.Name = nil
	return b
}

// WithoutLists drops the types and stats, as a response without them decodes
func (b *CreatureBuilder) WithoutLists() *CreatureBuilder {
	b.c.Types = nil
	b.c.Stats = nil
	return b
}

// WithSize sets weight and height
func (b *CreatureBuilder) WithSize(weight, height float64) *CreatureBuilder {
	b.c.Weight = weight
	b.c.Height = height
	return b
}

// WithTypes replaces the types
func (b *CreatureBuilder) WithTypes(names ...string) *CreatureBuilder {
	b.c.Types = make([]creature.Type, len(names))
	for i, name := range names {
		b.c.Types[i] = creature.Type{Name: name}
	}
	return b
}

// WithSpecial sets the special ability
func (b *CreatureBuilder) WithSpecial(name, description string) *CreatureBuilder {
	b.c.Special = &creature.Special{Name: name, Description: description}
	return b
}

// WithStat appends a stat; repeat a name to test overwrites
func (b *CreatureBuilder) WithStat(name string, value float64) *CreatureBuilder {
	b.c.Stats = append(b.c.Stats, creature.Stat{Name: name, BaseStat: value})
	return b
}

// WithAllStats sets the six panel stats in panel order
func (b *CreatureBuilder) WithAllStats(hp, attack, defense, spAttack, spDefense, speed float64) *CreatureBuilder {
	values := []float64{hp, attack, defense, spAttack, spDefense, speed}
	b.c.Stats = []creature.Stat{}
	for i, key := range creature.StatKeys {
		b.WithStat(string(key), values[i])
	}
	return b
}

// Build returns a copy of the built creature
func (b *CreatureBuilder) Build() *creature.Creature {
	out := b.c
	out.Types = slices.Clone(b.c.Types)
	out.Stats = slices.Clone(b.c.Stats)
	if b.c.Name != nil {
		name := *b.c.Name
		out.Name = &name
	}
	if b.c.Special != nil {
		special := *b.c.Special
		out.Special = &special
	}
	return &out
}
