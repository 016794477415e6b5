package tui

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/rshade/dexterm/internal/catalog"
)

const (
	decimetersPerMeter   = 10
	decagramsPerKilogram = 10
)

//nolint:gochecknoglobals // Casers and printers are safe to share once built.
var (
	titleCaser = cases.Title(language.English)
	printer    = message.NewPrinter(language.English)
)

// DisplayName capitalizes a catalog name for display ("pikachu" → "Pikachu").
func DisplayName(name string) string {
	return titleCaser.String(name)
}

// FormatHeight renders decimeters as meters ("0.4 m").
func FormatHeight(decimeters int) string {
	return printer.Sprintf("%v m", number.Decimal(
		float64(decimeters)/decimetersPerMeter, number.MaxFractionDigits(1)))
}

// FormatWeight renders decagrams as kilograms ("6 kg", "90.5 kg").
func FormatWeight(decagrams int) string {
	return printer.Sprintf("%v kg", number.Decimal(
		float64(decagrams)/decagramsPerKilogram, number.MaxFractionDigits(1)))
}

// AttributeRatio is the filled fraction of an attribute bar, clamped to [0, 1].
func AttributeRatio(value int) float64 {
	r := float64(value) / catalog.MaxAttributeValue
	switch {
	case r < 0:
		return 0
	case r > 1:
		return 1
	default:
		return r
	}
}
