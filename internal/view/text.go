package view

import (
	"fmt"
	"io"
	"strings"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// StatLabels are the human labels for the stat panel keys.
var StatLabels = map[creature.StatKey]string{
	creature.StatHP:             "HP",
	creature.StatAttack:         "Attack",
	creature.StatDefense:        "Defense",
	creature.StatSpecialAttack:  "Sp. Attack",
	creature.StatSpecialDefense: "Sp. Defense",
	creature.StatSpeed:          "Speed",
}

// WriteText prints a visible display as plain text. A hidden display prints
// nothing.
func WriteText(w io.Writer, state DisplayState) error {
	if !state.InfoVisible {
		return nil
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", state.Name, state.ID)
	fmt.Fprintf(&b, "%s  %s\n", state.Weight, state.Height)

	if len(state.Types) > 0 {
		labels := make([]string, len(state.Types))
		for i, chip := range state.Types {
			labels[i] = "[" + chip.Label + "]"
		}
		fmt.Fprintf(&b, "Types: %s\n", strings.Join(labels, " "))
	}

	switch {
	case state.Special.Title != "":
		fmt.Fprintf(&b, "\n%s\n  %s\n", state.Special.Title, state.Special.Description)
	case state.Special.Placeholder != "":
		fmt.Fprintf(&b, "\n%s\n", state.Special.Placeholder)
	}

	b.WriteString("\nBase Stats:\n")
	for _, key := range creature.StatKeys {
		fmt.Fprintf(&b, "  %-12s %s\n", StatLabels[key]+":", state.Stats[key])
	}

	_, err := io.WriteString(w, b.String())
	return err
}
