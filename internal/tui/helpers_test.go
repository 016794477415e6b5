package tui

import (
	"context"
	"testing"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/catalog/catalogtest"
	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/palette"
)

// runCmd executes cmd, expanding batches, and returns every message except
// spinner ticks.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	switch msg := msg.(type) {
	case nil, spinner.TickMsg:
		return nil
	case tea.BatchMsg:
		var out []tea.Msg
		for _, c := range msg {
			out = append(out, runCmd(c)...)
		}
		return out
	default:
		return []tea.Msg{msg}
	}
}

// single runs cmd and returns its only message.
func single(t *testing.T, cmd tea.Cmd) tea.Msg {
	t.Helper()
	msgs := runCmd(cmd)
	if len(msgs) != 1 {
		t.Fatalf("expected one message, got %d: %#v", len(msgs), msgs)
	}
	return msgs[0]
}

func keyRune(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

type fixture struct {
	srv    *catalogtest.Server
	client *catalog.Client
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	srv := catalogtest.NewServer(t, catalogtest.Starters()...)
	return fixture{srv: srv, client: catalog.NewClient(srv.BaseURL())}
}

func (f fixture) listModel(offset int) *ListModel {
	return NewListModel(context.Background(), loader.NewListLoader(f.client),
		palette.Default(), f.srv.PageURL(3, offset), 3)
}

func (f fixture) detailModel() *DetailModel {
	return NewDetailModel(context.Background(), loader.NewDetailLoader(f.client), palette.Default())
}
