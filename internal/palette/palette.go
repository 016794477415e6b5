// Package palette maps catalog classifications to display colors.
//
// A Table is built once at startup and shared by pointer; it is never
// mutated after construction.
package palette

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Fallback is the color used for classifications missing from a table.
const Fallback Color = "#a8a878"

// Color is a hex color string such as "#7ac74c".
type Color string

// Lipgloss converts the color for use in styles.
func (c Color) Lipgloss() lipgloss.Color { return lipgloss.Color(string(c)) }

// Table is an immutable classification→color mapping.
type Table struct {
	colors   map[string]Color
	fallback Color
}

// New copies colors into a new table. Keys are matched case-insensitively.
// An empty fallback selects Fallback.
func New(colors map[string]Color, fallback Color) *Table {
	if fallback == "" {
		fallback = Fallback
	}
	t := &Table{colors: make(map[string]Color, len(colors)), fallback: fallback}
	for k, v := range colors {
		t.colors[strings.ToLower(k)] = v
	}
	return t
}

// Default returns the standard eighteen-type table.
func Default() *Table {
	return New(map[string]Color{
		"grass":    "#7ac74c",
		"fire":     "#f08030",
		"water":    "#6890f0",
		"bug":      "#a8b820",
		"poison":   "#a040a0",
		"normal":   "#a8a878",
		"electric": "#f8d030",
		"ground":   "#e0c068",
		"fighting": "#c03028",
		"psychic":  "#f85888",
		"rock":     "#b8a038",
		"ghost":    "#705898",
		"ice":      "#98d8d8",
		"dragon":   "#7038f8",
		"dark":     "#705848",
		"steel":    "#b8b8d0",
		"fairy":    "#ee99ac",
		"flying":   "#a890f0",
	}, Fallback)
}

// Color returns the color for classification, or the fallback when unknown.
// A nil table always answers with Fallback.
func (t *Table) Color(classification string) Color {
	if t == nil {
		return Fallback
	}
	if c, ok := t.colors[strings.ToLower(classification)]; ok {
		return c
	}
	return t.fallback
}
