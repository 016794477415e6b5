package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

// ViewState is the screen the browser is showing.
type ViewState int

const (
	// ViewStateList shows the paged list.
	ViewStateList ViewState = iota
	// ViewStateDetail shows one record.
	ViewStateDetail
	// ViewStateQuitting is set once the user quits.
	ViewStateQuitting
)

// AppModel switches between the list and detail views. The list keeps its
// page and selection while the detail view is open.
type AppModel struct {
	state  ViewState
	list   *ListModel
	detail *DetailModel
	keys   KeyMap
}

// NewAppModel returns a browser that starts on the list view.
func NewAppModel(list *ListModel, detail *DetailModel) *AppModel {
	return &AppModel{
		state:  ViewStateList,
		list:   list,
		detail: detail,
		keys:   DefaultKeyMap(),
	}
}

// Init loads the first page.
func (m *AppModel) Init() tea.Cmd {
	return m.list.Init()
}

// Update routes messages to the views.
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.list.Update(msg)
		m.detail.Update(msg)
		return m, nil

	case pageLoadedMsg:
		return m, m.updateList(msg)

	case detailLoadedMsg:
		m.detail.Update(msg)
		return m, nil

	case spinner.TickMsg:
		_, listCmd := m.list.Update(msg)
		_, detailCmd := m.detail.Update(msg)
		return m, tea.Batch(listCmd, detailCmd)

	case OpenDetailMsg:
		m.state = ViewStateDetail
		return m, m.detail.Open(msg.Name)

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	}
	return m, nil
}

func (m *AppModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.state = ViewStateQuitting
		return m, tea.Quit
	}

	switch m.state {
	case ViewStateDetail:
		if key.Matches(msg, m.keys.Back) {
			m.state = ViewStateList
		}
		return m, nil
	case ViewStateList:
		return m, m.updateList(msg)
	default:
		return m, nil
	}
}

func (m *AppModel) updateList(msg tea.Msg) tea.Cmd {
	_, cmd := m.list.Update(msg)
	return cmd
}

// View renders the active view.
func (m *AppModel) View() string {
	switch m.state {
	case ViewStateDetail:
		return m.detail.View()
	case ViewStateQuitting:
		return ""
	default:
		return m.list.View()
	}
}

// State returns the active view.
func (m *AppModel) State() ViewState { return m.state }
