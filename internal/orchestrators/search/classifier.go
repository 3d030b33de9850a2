package search

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-creature-lookup/internal/entities/creature"
)

// decimalPattern accepts plain base-10 numbers: optional sign, digits with an
// optional fraction, optional exponent. Hex, Inf and NaN spellings do not match.
var decimalPattern = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?$`)

// Classify turns raw search text into a query. Text that is a number in its
// entirety is an id lookup; anything else, including the empty string, is a
// name lookup.
func Classify(raw string) creature.Query {
	text := strings.TrimSpace(raw)

	if id, ok := parseID(text); ok {
		return creature.Query{Kind: creature.KindByID, ID: id, Raw: text}
	}
	return creature.Query{Kind: creature.KindByName, Name: text, Raw: text}
}

// IsNumeric reports whether text is a base-10 number.
func IsNumeric(text string) bool {
	_, ok := parseID(text)
	return ok
}

// parseID reads the id from a numeric string the way parseInt does: the
// optional sign and the digits before the first '.', 'e' or 'E'. "1e2" is 1
// and ".5" is 0. Ids outside int32 are 0; the raw text is what gets sent.
func parseID(text string) (int, bool) {
	if !decimalPattern.MatchString(text) {
		return 0, false
	}

	end := strings.IndexAny(text, ".eE")
	if end < 0 {
		end = len(text)
	}
	lead := text[:end]
	if strings.TrimLeft(lead, "+-") == "" {
		return 0, true
	}

	id, err := strconv.ParseInt(lead, 10, 32)
	if err != nil {
		return 0, true
	}
	return int(id), true
}
