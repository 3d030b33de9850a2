package view

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// Render writes every slot for c and then shows the info region.
func Render(sink Sink, c *creature.Creature) {
	sink.SetName(strings.ToUpper(c.GetName()))
	sink.SetID("#" + strconv.Itoa(c.ID))
	sink.SetWeight("Weight: " + FormatNumber(c.Weight))
	sink.SetHeight("Height: " + FormatNumber(c.Height))

	sink.SetTypes(TypeChips(c.Types))
	sink.SetSpecial(Special(c))

	panel := creature.BuildStatPanel(c.Stats)
	for _, key := range creature.StatKeys {
		sink.SetStat(key, StatText(panel[key]))
	}

	sink.SetInfoVisible(true)
}

// Clear empties the input and every slot and hides the info region.
func Clear(sink Sink) {
	sink.SetInputValue("")

	sink.SetName("")
	sink.SetID("")
	sink.SetWeight("")
	sink.SetHeight("")
	sink.SetTypes(nil)
	sink.SetSpecial(SpecialAbility{})

	for _, key := range creature.StatKeys {
		sink.SetStat(key, "")
	}

	sink.SetInfoVisible(false)
}

// TypeChips builds one chip per type, in order.
func TypeChips(types []creature.Type) []TypeChip {
	chips := make([]TypeChip, 0, len(types))
	for _, t := range types {
		chips = append(chips, TypeChip{
			Label:    strings.ToUpper(t.Name),
			StyleKey: strings.ToLower(t.Name),
		})
	}
	return chips
}

// Special returns the special ability slot content for c.
func Special(c *creature.Creature) SpecialAbility {
	if !c.HasSpecial() {
		return SpecialAbility{Placeholder: NoSpecialAbility}
	}
	return SpecialAbility{
		Title:       c.Special.Name,
		Description: c.Special.Description,
	}
}

// StatText formats one stat panel value.
func StatText(v creature.StatValue) string {
	if !v.Present {
		return NotAvailable
	}
	return FormatNumber(v.Value)
}

// FormatNumber prints n the shortest way that round-trips: 9, 6.5, 0.25.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
