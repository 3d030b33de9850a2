package testutils

import "github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"

// Pyrolynx returns a complete creature record as the creature service
// would send it.
func Pyrolynx() *creature.Creature {
	return &creature.Creature{
		ID:     1,
		Name:   name("Pyrolynx"),
		Weight: 42,
		Height: 32,
		Types:  []creature.Type{{Name: "fire"}},
		Special: &creature.Special{
			Name:        "Blazing Roar",
			Description: "Lets out a roar that increases fire-type damage by 50% for two turns.",
		},
		Stats: []creature.Stat{
			{Name: "hp", BaseStat: 65},
			{Name: "attack", BaseStat: 80},
			{Name: "defense", BaseStat: 50},
			{Name: "special-attack", BaseStat: 90},
			{Name: "special-defense", BaseStat: 55},
			{Name: "speed", BaseStat: 100},
		},
	}
}

// PyrolynxJSON is Pyrolynx as a response body.
const PyrolynxJSON = `{
  "id": 1,
  "name": "Pyrolynx",
  "weight": 42,
  "height": 32,
  "special": {
    "name": "Blazing Roar",
    "description": "Lets out a roar that increases fire-type damage by 50% for two turns."
  },
  "stats": [
    {"base_stat": 65, "name": "hp"},
    {"base_stat": 80, "name": "attack"},
    {"base_stat": 50, "name": "defense"},
    {"base_stat": 90, "name": "special-attack"},
    {"base_stat": 55, "name": "special-defense"},
    {"base_stat": 100, "name": "speed"}
  ],
  "types": [{"name": "fire"}]
}`

// Minimal returns the smallest record that still renders: one type, one stat,
// no special ability.
func Minimal() *creature.Creature {
	return &creature.Creature{
		ID:     1,
		Name:   name("pyrolynx"),
		Weight: 9,
		Height: 5,
		Types:  []creature.Type{{Name: "Fire"}},
		Stats:  []creature.Stat{{Name: "HP", BaseStat: 39}},
	}
}

func name(s string) *string {
	return &s
}
