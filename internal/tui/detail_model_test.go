package tui

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailModel_Open(t *testing.T) {
	f := newFixture(t)
	m := f.detailModel()

	cmd := m.Open("pikachu")
	assert.True(t, m.State().Loading)
	assert.Contains(t, m.View(), "Loading...")

	m.Update(single(t, cmd))

	state := m.State()
	require.NotNil(t, state.Detail)
	assert.Equal(t, "pikachu", state.Detail.Name)
	assert.Len(t, state.Detail.Attributes, 6)

	view := m.View()
	assert.Contains(t, view, "PIKACHU")
	assert.Contains(t, view, "Electric")
	assert.Contains(t, view, "0.4 m")
	assert.Contains(t, view, "6 kg")
	assert.Contains(t, view, "Speed")
	assert.Contains(t, view, "/sprites/back/25.png")
}

func TestDetailModel_JoinsClassifications(t *testing.T) {
	f := newFixture(t)
	m := f.detailModel()
	m.Update(single(t, m.Open("charizard")))

	assert.Contains(t, m.View(), "Fire / Flying")
}

func TestDetailModel_LatestOpenWins(t *testing.T) {
	f := newFixture(t)
	m := f.detailModel()

	first := m.Open("pikachu")
	second := m.Open("bulbasaur")
	secondMsg := single(t, second)
	firstMsg := single(t, first)

	m.Update(secondMsg)
	m.Update(firstMsg)

	state := m.State()
	require.NotNil(t, state.Detail)
	assert.Equal(t, "bulbasaur", state.Detail.Name)
	assert.Equal(t, "bulbasaur", state.Identifier)
}

func TestDetailModel_FailureLeavesEmptyBody(t *testing.T) {
	f := newFixture(t)
	f.srv.Fail("pikachu", http.StatusNotFound)
	m := f.detailModel()

	m.Update(single(t, m.Open("pikachu")))

	state := m.State()
	assert.False(t, state.Loading)
	assert.Nil(t, state.Detail)
	assert.NotContains(t, m.View(), "PIKACHU")
	assert.NotContains(t, m.View(), "Loading...")
}
