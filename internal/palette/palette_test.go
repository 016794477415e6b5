package palette_test

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"

	"github.com/rshade/dexterm/internal/palette"
)

func TestDefault_KnownClassifications(t *testing.T) {
	table := palette.Default()

	tests := []struct {
		name string
		want palette.Color
	}{
		{"grass", "#7ac74c"},
		{"fire", "#f08030"},
		{"water", "#6890f0"},
		{"electric", "#f8d030"},
		{"dragon", "#7038f8"},
		{"flying", "#a890f0"},
		{"Fire", "#f08030"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, table.Color(tt.name))
		})
	}
}

func TestDefault_UnknownFallsBack(t *testing.T) {
	table := palette.Default()

	for _, name := range []string{"shadow", "", "stellar"} {
		assert.Equal(t, palette.Fallback, table.Color(name))
	}
}

func TestNew_CopiesInput(t *testing.T) {
	src := map[string]palette.Color{"grass": "#000000"}
	table := palette.New(src, "#111111")
	src["grass"] = "#ffffff"

	assert.Equal(t, palette.Color("#000000"), table.Color("grass"))
	assert.Equal(t, palette.Color("#111111"), table.Color("unknown"))
}

func TestNew_EmptyFallbackUsesDefault(t *testing.T) {
	table := palette.New(map[string]palette.Color{"Ice": "#98d8d8"}, "")

	assert.Equal(t, palette.Color("#98d8d8"), table.Color("ice"))
	assert.Equal(t, palette.Fallback, table.Color("fire"))
}

func TestNilTable(t *testing.T) {
	var table *palette.Table
	assert.Equal(t, palette.Fallback, table.Color("grass"))
}

func TestColor_Lipgloss(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#7ac74c"), palette.Color("#7ac74c").Lipgloss())
}
