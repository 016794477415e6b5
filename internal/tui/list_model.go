package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/cli/pagination"
	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/palette"
	listview "github.com/rshade/dexterm/internal/tui/list"
)

// nameColumnWidth pads names so classifications line up.
const nameColumnWidth = 16

// pageLoadedMsg carries the outcome of a page load.
type pageLoadedMsg struct {
	ticket loader.Ticket
	page   loader.Page
	err    error
}

// OpenDetailMsg asks the browser to show the detail view for Name.
type OpenDetailMsg struct {
	Name string
}

// ListModel is the paged list view.
type ListModel struct {
	ctx      context.Context
	loader   *loader.ListLoader
	colors   *palette.Table
	keys     KeyMap
	startURL string
	pageSize int

	list    *listview.Model[catalog.Entry]
	loading *LoadingState
	help    help.Model

	width  int
	height int
}

// NewListModel returns a list view that loads startURL on Init. pageSize is
// used for the footer when the page URL does not carry a limit.
func NewListModel(
	ctx context.Context,
	l *loader.ListLoader,
	colors *palette.Table,
	startURL string,
	pageSize int,
) *ListModel {
	m := &ListModel{
		ctx:      ctx,
		loader:   l,
		colors:   colors,
		keys:     DefaultKeyMap(),
		startURL: startURL,
		pageSize: pageSize,
		loading:  NewLoadingState(),
		help:     help.New(),
		width:    defaultWidth,
		height:   defaultHeight,
	}
	m.list = listview.New(nil, m.listHeight(), m.width, m.renderEntry)
	m.list.SetKeyMap(m.keys.List)
	m.syncKeys()
	return m
}

// Init starts the first page load.
func (m *ListModel) Init() tea.Cmd {
	return m.load(m.startURL)
}

// load begins a request for pageURL and returns the command that performs it.
func (m *ListModel) load(pageURL string) tea.Cmd {
	t := m.loader.Begin(pageURL)
	ctx := m.ctx
	fetch := func() tea.Msg {
		page, err := m.loader.Fetch(ctx, t)
		return pageLoadedMsg{ticket: t, page: page, err: err}
	}
	return tea.Batch(fetch, m.loading.Init())
}

// Update handles page results, spinner ticks, resizes and list keys.
func (m *ListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.list.SetSize(m.width, m.listHeight())
		return m, nil

	case pageLoadedMsg:
		if m.loader.Complete(m.ctx, msg.ticket, msg.page, msg.err) {
			m.list.SetItems(m.loader.State().Entries)
		}
		m.syncKeys()
		return m, nil

	case spinner.TickMsg:
		if !m.loader.State().Loading {
			return m, nil
		}
		return m, m.loading.Update(msg)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *ListModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.loader.State()

	switch {
	case key.Matches(msg, m.keys.Next):
		if state.Cursor.HasNext() {
			return m, m.load(state.Cursor.Next)
		}
	case key.Matches(msg, m.keys.Prev):
		if state.Cursor.HasPrevious() {
			return m, m.load(state.Cursor.Previous)
		}
	case key.Matches(msg, m.keys.Open):
		if entry := m.list.SelectedItem(); entry != nil {
			name := entry.Name
			return m, func() tea.Msg { return OpenDetailMsg{Name: name} }
		}
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.list.SetSize(m.width, m.listHeight())
	default:
		m.list.Update(msg)
	}
	return m, nil
}

// syncKeys enables paging keys only when a page exists in that direction.
func (m *ListModel) syncKeys() {
	cursor := m.loader.State().Cursor
	m.keys.Next.SetEnabled(cursor.HasNext())
	m.keys.Prev.SetEnabled(cursor.HasPrevious())
}

func (m *ListModel) listHeight() int {
	rows := m.height - chromeRows
	if m.help.ShowAll {
		rows -= 4
	}
	return max(rows, 1)
}

// View renders the header, the entries of the current page and the footer.
func (m *ListModel) View() string {
	state := m.loader.State()

	var b strings.Builder
	b.WriteString(HeaderStyle.Render("CATALOG"))
	if state.Loading {
		b.WriteString("  " + RenderLoading(m.loading))
	}
	b.WriteString("\n\n")

	if !state.Loaded {
		if !state.Loading {
			b.WriteString(InfoStyle.Render("Nothing loaded."))
		}
	} else {
		if m.list.Len() == 0 {
			b.WriteString(InfoStyle.Render("No entries on this page."))
		} else {
			b.WriteString(m.list.View())
		}
		b.WriteString("\n\n")
		b.WriteString(m.footer(state))
	}

	b.WriteString("\n")
	b.WriteString(m.help.View(listHelp(m.keys)))
	return b.String()
}

func (m *ListModel) footer(state loader.ListState) string {
	meta := pagination.NewPaginationMeta(state.Cursor, state.Count, m.pageSize)
	text := fmt.Sprintf("Page %d of %d  •  %s entries",
		meta.CurrentPage, max(meta.TotalPages, 1), printer.Sprint(meta.TotalItems))
	return SubtleStyle.Render(text)
}

func (m *ListModel) renderEntry(e catalog.Entry, selected bool) string {
	name := fmt.Sprintf("%-*s", nameColumnWidth, DisplayName(e.Name))
	marker := "  "
	if selected {
		marker = "> "
		name = SelectedStyle.Render(name)
	} else {
		name = ValueStyle.Render(name)
	}

	primary := e.PrimaryClassification()
	color := m.colors.Color(primary)
	kind := classificationStyle(color.Lipgloss()).Render(fmt.Sprintf("%-10s", primary))

	return marker + name + " " + kind + " " + SubtleStyle.Render(e.FrontImageURL)
}

// State returns the loader state the view renders.
func (m *ListModel) State() loader.ListState {
	return m.loader.State()
}

// SelectedEntry returns the highlighted entry, or nil.
func (m *ListModel) SelectedEntry() *catalog.Entry {
	return m.list.SelectedItem()
}
