package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/palette"
)

const (
	attributeLabelWidth = 16
	maxBarWidth         = 40
	minBarWidth         = 10
	classificationSep   = " / "
)

// detailLoadedMsg carries the outcome of a detail load.
type detailLoadedMsg struct {
	ticket loader.Ticket
	detail catalog.Detail
	err    error
}

// DetailModel shows one record.
type DetailModel struct {
	ctx     context.Context
	loader  *loader.DetailLoader
	colors  *palette.Table
	keys    KeyMap
	loading *LoadingState
	help    help.Model
	width   int
}

// NewDetailModel returns an empty detail view.
func NewDetailModel(ctx context.Context, l *loader.DetailLoader, colors *palette.Table) *DetailModel {
	return &DetailModel{
		ctx:     ctx,
		loader:  l,
		colors:  colors,
		keys:    DefaultKeyMap(),
		loading: NewLoadingState(),
		help:    help.New(),
		width:   defaultWidth,
	}
}

// Init implements tea.Model. Loads start through Open.
func (m *DetailModel) Init() tea.Cmd { return nil }

// Open begins loading name and returns the command that performs it.
func (m *DetailModel) Open(name string) tea.Cmd {
	t := m.loader.Begin(name)
	ctx := m.ctx
	fetch := func() tea.Msg {
		detail, err := m.loader.Fetch(ctx, t)
		return detailLoadedMsg{ticket: t, detail: detail, err: err}
	}
	return tea.Batch(fetch, m.loading.Init())
}

// Update handles detail results, spinner ticks and resizes.
func (m *DetailModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
	case detailLoadedMsg:
		m.loader.Complete(m.ctx, msg.ticket, msg.detail, msg.err)
	case spinner.TickMsg:
		if m.loader.State().Loading {
			return m, m.loading.Update(msg)
		}
	}
	return m, nil
}

// View renders the record. While loading it shows only the spinner; after a
// failed load the body stays empty.
func (m *DetailModel) View() string {
	state := m.loader.State()

	var b strings.Builder
	switch {
	case state.Loading:
		b.WriteString(RenderLoading(m.loading))
		b.WriteString("\n")
	case state.Detail != nil:
		b.WriteString(m.renderDetail(*state.Detail))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(detailHelp(m.keys)))
	return b.String()
}

func (m *DetailModel) renderDetail(d catalog.Detail) string {
	color := m.colors.Color(d.PrimaryClassification())
	accent := classificationStyle(color.Lipgloss())

	var content strings.Builder
	content.WriteString(HeaderStyle.Render(strings.ToUpper(DisplayName(d.Name))))
	content.WriteString("\n")
	content.WriteString(accent.Render(DisplayName(strings.Join(d.Classifications, classificationSep))))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Front:  "))
	content.WriteString(SubtleStyle.Render(orNone(d.FrontImageURL)))
	content.WriteString("\n")
	content.WriteString(LabelStyle.Render("Back:   "))
	content.WriteString(SubtleStyle.Render(orNone(d.BackImageURL)))
	content.WriteString("\n\n")

	content.WriteString(LabelStyle.Render("Height: "))
	content.WriteString(ValueStyle.Render(FormatHeight(d.HeightDecimeters)))
	content.WriteString(LabelStyle.Render("    Weight: "))
	content.WriteString(ValueStyle.Render(FormatWeight(d.WeightDecagrams)))
	content.WriteString("\n\n")

	content.WriteString(HeaderStyle.Render("STATS"))
	content.WriteString("\n")
	bar := progress.New(
		progress.WithSolidFill(string(color)),
		progress.WithWidth(m.barWidth()),
		progress.WithoutPercentage(),
	)
	for _, a := range d.Attributes {
		content.WriteString(LabelStyle.Render(fmt.Sprintf("%-*s", attributeLabelWidth, DisplayName(a.Label))))
		content.WriteString(bar.ViewAs(AttributeRatio(a.Value)))
		content.WriteString(ValueStyle.Render(fmt.Sprintf(" %3d", a.Value)))
		content.WriteString("\n")
	}

	return BoxStyle.Width(m.width - borderPadding).Render(content.String())
}

func (m *DetailModel) barWidth() int {
	w := m.width - attributeLabelWidth - 12
	return min(max(w, minBarWidth), maxBarWidth)
}

// State returns the loader state the view renders.
func (m *DetailModel) State() loader.DetailState {
	return m.loader.State()
}

func orNone(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}
