package view

// TypeColors maps a chip StyleKey to its hex color.
var TypeColors = map[string]string{
	"normal":   "#b7b7aa",
	"fire":     "#ff6f52",
	"water":    "#42a1ff",
	"electric": "#fecc33",
	"grass":    "#78cc55",
	"ice":      "#66ccfe",
	"fighting": "#d3887e",
	"poison":   "#c68cb6",
	"ground":   "#d4a82f",
	"flying":   "#9eaef1",
	"psychic":  "#fd81ff",
	"bug":      "#aabb23",
	"rock":     "#b8aa6f",
	"ghost":    "#9995d0",
	"dragon":   "#9e93f1",
	"dark":     "#b59682",
	"steel":    "#abaabb",
	"fairy":    "#ee99ee",
}

// DefaultTypeColor is used for unknown types.
const DefaultTypeColor = "#cccccc"

// TypeColor returns the hex color for a chip.
func TypeColor(chip TypeChip) string {
	if c, ok := TypeColors[chip.StyleKey]; ok {
		return c
	}
	return DefaultTypeColor
}
