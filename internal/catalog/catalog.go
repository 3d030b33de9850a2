// Package catalog holds the creatures the lookup service is known to serve.
// It is used for suggestions and the catalog command; searches always go to
// the service.
package catalog

import (
	"sort"
	"strings"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
	"github.com/KirkDiggler/rpg-creature-lookup/internal/errors"
)

// EmptyQueryMessage is returned when a lookup names neither an id nor a name.
const EmptyQueryMessage = "Please enter either a ID or Creature Name"

// Entry is one known creature.
type Entry struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

var entries = []Entry{
	{ID: 1, Name: "Pyrolynx"},
	{ID: 2, Name: "Aquoroc"},
	{ID: 3, Name: "Voltadon"},
	{ID: 4, Name: "Floraspine"},
	{ID: 5, Name: "Cryostag"},
	{ID: 6, Name: "Terradon"},
	{ID: 7, Name: "Emberapod"},
	{ID: 8, Name: "Lunaclaw"},
	{ID: 9, Name: "Quillquake"},
	{ID: 10, Name: "Mystifin"},
	{ID: 11, Name: "Dracilume"},
	{ID: 12, Name: "Thornaconda"},
	{ID: 13, Name: "Frostbyte"},
	{ID: 14, Name: "Graviboa"},
	{ID: 15, Name: "Zephyreon"},
	{ID: 16, Name: "Blazebore"},
	{ID: 17, Name: "Brontogale"},
	{ID: 18, Name: "Shadeelisk"},
	{ID: 19, Name: "Titanule"},
	{ID: 20, Name: "Faegis"},
}

// All returns every entry ordered by id.
func All() []Entry {
	out := make([]Entry, len(entries))
	copy(out, entries)
	return out
}

// ByID finds an entry by id.
func ByID(id int) (Entry, bool) {
	for _, e := range entries {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// ByName finds an entry by name, ignoring case and surrounding space.
func ByName(name string) (Entry, bool) {
	want := strings.ToLower(strings.TrimSpace(name))
	if want == "" {
		return Entry{}, false
	}
	for _, e := range entries {
		if strings.ToLower(e.Name) == want {
			return e, true
		}
	}
	return Entry{}, false
}

// Lookup resolves a classified query against the catalog. An empty name and
// an id of 0 both count as no query at all.
func Lookup(query creature.Query) (Entry, error) {
	switch query.Kind {
	case creature.KindByID:
		if query.ID == 0 {
			return Entry{}, errors.InvalidArgument(EmptyQueryMessage)
		}
		if e, ok := ByID(query.ID); ok {
			return e, nil
		}
		return Entry{}, errors.NotFoundf("creature %d not in catalog", query.ID).
			WithMeta("id", query.ID)
	default:
		if strings.TrimSpace(query.Name) == "" {
			return Entry{}, errors.InvalidArgument(EmptyQueryMessage)
		}
		if e, ok := ByName(query.Name); ok {
			return e, nil
		}
		return Entry{}, errors.NotFoundf("creature %q not in catalog", query.Name).
			WithMeta("name", query.Name)
	}
}

// Suggest returns the names starting with prefix, ignoring case, sorted
// alphabetically. An empty prefix matches nothing.
func Suggest(prefix string, limit int) []string {
	want := strings.ToLower(strings.TrimSpace(prefix))
	if want == "" {
		return nil
	}

	var out []string
	for _, e := range entries {
		if strings.HasPrefix(strings.ToLower(e.Name), want) {
			out = append(out, e.Name)
		}
	}
	sort.Strings(out)

	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}
