package creature

import "strings"

// StatKey names one of the six stats shown in the stat panel.
type StatKey string

// Stat panel keys, in display order
const (
	StatHP             StatKey = "hp"
	StatAttack         StatKey = "attack"
	StatDefense        StatKey = "defense"
	StatSpecialAttack  StatKey = "special-attack"
	StatSpecialDefense StatKey = "special-defense"
	StatSpeed          StatKey = "speed"
)

// StatKeys lists the stat panel keys in display order.
var StatKeys = []StatKey{
	StatHP,
	StatAttack,
	StatDefense,
	StatSpecialAttack,
	StatSpecialDefense,
	StatSpeed,
}

// StatValue is a stat panel entry. Present is false when the record has no
// usable value for the key.
type StatValue struct {
	Value   float64
	Present bool
}

// StatPanel is the fixed six-key projection of a creature's stats.
type StatPanel map[StatKey]StatValue

// BuildStatPanel projects stats onto the six panel keys by lowercased name.
// Later duplicates overwrite earlier ones. Every panel key is present in the
// result; keys without a usable value are marked not present.
//
// A base stat of zero is treated as missing, matching how the creature page
// has always displayed it.
func BuildStatPanel(stats []Stat) StatPanel {
	byName := make(map[string]float64, len(stats))
	for _, stat := range stats {
		byName[strings.ToLower(stat.Name)] = stat.BaseStat
	}

	panel := make(StatPanel, len(StatKeys))
	for _, key := range StatKeys {
		value, ok := byName[string(key)]
		panel[key] = StatValue{
			Value:   value,
			Present: statPresent(value, ok),
		}
	}
	return panel
}

// statPresent decides whether a looked-up stat is shown as a number.
// Zero counts as missing.
func statPresent(value float64, found bool) bool {
	return found && value != 0
}
