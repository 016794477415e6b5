package listview

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// defaultBufferSize is the number of extra rows rendered above and below the viewport.
const defaultBufferSize = 2

// RenderFunc renders one item. selected is true for the highlighted row.
type RenderFunc[T any] func(item T, selected bool) string

// Model is a scrolling list of T.
type Model[T any] struct {
	items      []T
	renderFunc RenderFunc[T]
	keys       KeyMap

	selected    int
	visibleFrom int
	visibleTo   int // exclusive

	height     int
	width      int
	bufferSize int
}

// New creates a list with the given viewport size.
func New[T any](items []T, height, width int, renderFunc RenderFunc[T]) *Model[T] {
	m := &Model[T]{
		items:      items,
		renderFunc: renderFunc,
		keys:       DefaultKeyMap(),
		height:     height,
		width:      width,
		bufferSize: defaultBufferSize,
	}
	m.updateVisibleRange()
	return m
}

// SetKeyMap replaces the navigation bindings.
func (m *Model[T]) SetKeyMap(keys KeyMap) { m.keys = keys }

// SetItems swaps the list contents and moves the selection to the top.
func (m *Model[T]) SetItems(items []T) {
	m.items = items
	m.selected = 0
	m.updateVisibleRange()
}

// SetSize resizes the viewport.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = max(height, 1)
	m.updateVisibleRange()
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// Update moves the selection on navigation keys. Other messages are ignored.
func (m *Model[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || len(m.items) == 0 {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, m.keys.Up):
		m.SetSelected(m.selected - 1)
	case key.Matches(keyMsg, m.keys.Down):
		m.SetSelected(m.selected + 1)
	case key.Matches(keyMsg, m.keys.PageUp):
		m.SetSelected(m.selected - m.height)
	case key.Matches(keyMsg, m.keys.PageDown):
		m.SetSelected(m.selected + m.height)
	case key.Matches(keyMsg, m.keys.Home):
		m.SetSelected(0)
	case key.Matches(keyMsg, m.keys.End):
		m.SetSelected(len(m.items) - 1)
	}
	return m, nil
}

// updateVisibleRange keeps the selected item inside [visibleFrom, visibleTo).
func (m *Model[T]) updateVisibleRange() {
	if len(m.items) == 0 {
		m.visibleFrom, m.visibleTo = 0, 0
		return
	}

	from := m.selected - m.height/2
	if from < 0 {
		from = 0
	}
	to := from + m.height
	if to > len(m.items) {
		to = len(m.items)
		from = max(to-m.height, 0)
	}
	m.visibleFrom, m.visibleTo = from, to
}

// View renders the visible rows.
func (m *Model[T]) View() string {
	if len(m.items) == 0 {
		return ""
	}

	from := max(m.visibleFrom-m.bufferSize, 0)
	to := min(m.visibleTo+m.bufferSize, len(m.items))

	rows := make([]string, 0, to-from)
	for i := from; i < to; i++ {
		rows = append(rows, m.renderFunc(m.items[i], i == m.selected))
	}
	return strings.Join(rows, "\n")
}

// Len returns the number of items.
func (m *Model[T]) Len() int { return len(m.items) }

// Selected returns the selected index.
func (m *Model[T]) Selected() int { return m.selected }

// SetSelected moves the selection, clamped to the list bounds.
func (m *Model[T]) SetSelected(index int) {
	switch {
	case len(m.items) == 0 || index < 0:
		m.selected = 0
	case index >= len(m.items):
		m.selected = len(m.items) - 1
	default:
		m.selected = index
	}
	m.updateVisibleRange()
}

// VisibleFrom returns the first visible index.
func (m *Model[T]) VisibleFrom() int { return m.visibleFrom }

// VisibleTo returns the index after the last visible row.
func (m *Model[T]) VisibleTo() int { return m.visibleTo }

// SelectedItem returns the selected item, or nil for an empty list.
func (m *Model[T]) SelectedItem() *T {
	if len(m.items) == 0 {
		return nil
	}
	return &m.items[m.selected]
}
