// Package creature holds the creature record decoded from the creature
// service and the values derived from it for display.
package creature

// Creature is a creature record as returned by the creature service.
// Fields the service adds beyond these are ignored when decoding. Name,
// Types and Stats stay nil when the response omits them or sends null.
type Creature struct {
	ID      int      `json:"id"`
	Name    *string  `json:"name"`
	Weight  float64  `json:"weight"`
	Height  float64  `json:"height"`
	Types   []Type   `json:"types"`
	Special *Special `json:"special,omitempty"`
	Stats   []Stat   `json:"stats"`
}

// Type is one category tag of a creature, e.g. "fire".
type Type struct {
	Name string `json:"name"`
}

// Special is a creature's special ability.
type Special struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Stat is one named base stat. Names are not guaranteed unique.
type Stat struct {
	Name     string  `json:"name"`
	BaseStat float64 `json:"base_stat"`
}

// HasID reports whether the record carries a usable identifier.
func (c *Creature) HasID() bool {
	return c != nil && c.ID != 0
}

// GetName returns the name, or "" when the record has none.
func (c *Creature) GetName() string {
	if c == nil || c.Name == nil {
		return ""
	}
	return *c.Name
}

// MissingFields lists the fields a record needs before it can be displayed
// but does not have. Empty type and stat lists are fine; absent ones are not.
func (c *Creature) MissingFields() []string {
	if c == nil {
		return []string{"id", "name", "types", "stats"}
	}

	var missing []string
	if c.ID == 0 {
		missing = append(missing, "id")
	}
	if c.Name == nil {
		missing = append(missing, "name")
	}
	if c.Types == nil {
		missing = append(missing, "types")
	}
	if c.Stats == nil {
		missing = append(missing, "stats")
	}
	return missing
}

// Complete reports whether the record can be displayed.
func (c *Creature) Complete() bool {
	return len(c.MissingFields()) == 0
}

// HasSpecial reports whether the special ability is complete enough to show.
// A name without a description (or the reverse) counts as absent.
func (c *Creature) HasSpecial() bool {
	return c != nil && c.Special != nil && c.Special.Name != "" && c.Special.Description != ""
}
