package cli

import (
	"bufio"
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/catalog/catalogtest"
	"github.com/rshade/dexterm/internal/cli/pagination"
	"github.com/rshade/dexterm/internal/config"
	"github.com/rshade/dexterm/internal/loader"
)

// execute runs the root command in an isolated home and working directory.
func execute(t *testing.T, env map[string]string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Chdir(t.TempDir())

	lookup := func(k string) (string, bool) {
		v, ok := env[k]
		return v, ok
	}
	root := NewRootCmdWithEnv("test", lookup)
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func newServer(t *testing.T) *catalogtest.Server {
	t.Helper()
	return catalogtest.NewServer(t, catalogtest.Starters()...)
}

func TestList_Table(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "--limit", "3")
	require.NoError(t, err)

	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "Bulbasaur")
	assert.Contains(t, out, "grass/poison")
	assert.Contains(t, out, "Page 1 of 3 (9 entries)")
	assert.Contains(t, out, "Next:     "+srv.PageURL(3, 3))
	assert.NotContains(t, out, "Previous:")
	assert.NotContains(t, out, "Charmander")
}

func TestList_JSON(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "--limit", "3", "--page", "2", "-o", "json")
	require.NoError(t, err)

	var got pageOutput
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Entries, 3)
	assert.Equal(t, "charmander", got.Entries[0].Name)
	assert.Equal(t, []string{"fire", "flying"}, got.Entries[2].Classifications)
	assert.Equal(t, srv.PageURL(3, 0), got.Cursor.Previous)
	assert.Equal(t, srv.PageURL(3, 6), got.Cursor.Next)
	assert.Equal(t, 2, got.Pagination.CurrentPage)
	assert.Equal(t, 3, got.Pagination.TotalPages)
}

func TestList_PageURLAsNDJSON(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "--page-url", srv.PageURL(3, 6), "-o", "ndjson")
	require.NoError(t, err)

	var names []string
	sc := bufio.NewScanner(strings.NewReader(out))
	for sc.Scan() {
		var e catalog.Entry
		require.NoError(t, json.Unmarshal(sc.Bytes(), &e))
		names = append(names, e.Name)
	}
	assert.Equal(t, []string{"squirtle", "wartortle", "pikachu"}, names)
}

func TestList_PageSizeFromEnv(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, map[string]string{config.EnvPageSize: "4"}, "list", "--base-url", srv.BaseURL())
	require.NoError(t, err)
	assert.Contains(t, out, "Charmander")
	assert.Contains(t, out, "Page 1 of 3 (9 entries)")
}

func TestList_Errors(t *testing.T) {
	t.Run("page url with paging flags", func(t *testing.T) {
		srv := newServer(t)
		_, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "--page-url", srv.PageURL(3, 0), "--limit", "3")
		require.ErrorIs(t, err, errPageURLWithPaging)
	})

	t.Run("limit out of range", func(t *testing.T) {
		srv := newServer(t)
		_, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "--limit", "5000")
		require.ErrorIs(t, err, pagination.ErrInvalidLimit)
	})

	t.Run("failing detail fails the page", func(t *testing.T) {
		srv := newServer(t)
		srv.Fail("pikachu", http.StatusInternalServerError)
		_, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "--limit", "9")
		require.ErrorIs(t, err, catalog.ErrFetch)
	})

	t.Run("unknown output format", func(t *testing.T) {
		srv := newServer(t)
		_, err := execute(t, nil, "list", "--base-url", srv.BaseURL(), "-o", "xml")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("invalid base url from env", func(t *testing.T) {
		_, err := execute(t, map[string]string{config.EnvBaseURL: "not a url"}, "list")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})
}

func TestShow(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, nil, "show", "--base-url", srv.BaseURL(), "Pikachu")
	require.NoError(t, err)

	assert.Contains(t, out, "Pikachu (#25)")
	assert.Contains(t, out, "Types:   Electric")
	assert.Contains(t, out, "Height:  0.4 m")
	assert.Contains(t, out, "Weight:  6 kg")
	assert.Contains(t, out, "Speed")
	assert.Contains(t, out, "90")
}

func TestShow_JSON(t *testing.T) {
	srv := newServer(t)

	out, err := execute(t, nil, "show", "--base-url", srv.BaseURL(), "pikachu", "--output", "json")
	require.NoError(t, err)

	var d catalog.Detail
	require.NoError(t, json.Unmarshal([]byte(out), &d))
	assert.Equal(t, "pikachu", d.Name)
	assert.Len(t, d.Attributes, 6)
	assert.Equal(t, 4, d.HeightDecimeters)
	assert.Equal(t, 60, d.WeightDecagrams)
}

func TestShow_Unknown(t *testing.T) {
	srv := newServer(t)

	_, err := execute(t, nil, "show", "--base-url", srv.BaseURL(), "missingno")
	require.ErrorIs(t, err, catalog.ErrFetch)
}

func TestShow_BlankNameIsRejected(t *testing.T) {
	srv := newServer(t)

	for _, name := range []string{"", "  "} {
		out, err := execute(t, nil, "show", "--base-url", srv.BaseURL(), name)
		require.ErrorIs(t, err, loader.ErrEmptyIdentifier)
		assert.Empty(t, out)

		_, err = execute(t, nil, "sprites", "--base-url", srv.BaseURL(), name, "--dir", t.TempDir())
		require.ErrorIs(t, err, catalog.ErrFetch)
	}
	assert.Zero(t, srv.Hits())
}

func TestSprites(t *testing.T) {
	srv := newServer(t)
	dir := filepath.Join(t.TempDir(), "sprites")

	out, err := execute(t, nil, "sprites", "--base-url", srv.BaseURL(), "charmander", "--dir", dir)
	require.NoError(t, err)

	assert.Contains(t, out, filepath.Join(dir, "charmander_front.png"))
	assert.FileExists(t, filepath.Join(dir, "charmander_front.png"))
	assert.FileExists(t, filepath.Join(dir, "charmander_back.png"))
}

func TestBrowse_FallsBackWhenNotATerminal(t *testing.T) {
	if isTerminal(os.Stdout) {
		t.Skip("stdout is a terminal")
	}
	srv := newServer(t)

	out, err := execute(t, nil, "browse", "--base-url", srv.BaseURL(), "--limit", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "Ivysaur")
	assert.Contains(t, out, "Page 1 of 5 (9 entries)")
}

func TestVersion(t *testing.T) {
	out, err := execute(t, nil, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "dexterm test")
}

func TestCloseLogOnError(t *testing.T) {
	var closed int
	root := &cobra.Command{Use: "root"}
	failing := &cobra.Command{Use: "fail", RunE: func(*cobra.Command, []string) error {
		return errors.New("boom")
	}}
	passing := &cobra.Command{Use: "pass", RunE: func(*cobra.Command, []string) error { return nil }}
	group := &cobra.Command{Use: "group"}
	group.AddCommand(failing)
	root.AddCommand(group, passing)

	closeLogOnError(root, func() error {
		closed++
		return nil
	})

	require.EqualError(t, failing.RunE(failing, nil), "boom")
	assert.Equal(t, 1, closed)

	require.NoError(t, passing.RunE(passing, nil))
	assert.Equal(t, 1, closed, "a successful run leaves closing to the post-run hook")
}

func TestFailingCommandReleasesLogFile(t *testing.T) {
	srv := newServer(t)
	dir := t.TempDir()
	logPath := filepath.Join(dir, "dexterm.log")
	cfgPath := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("logging:\n  file: "+logPath+"\n"), 0o600))

	_, err := execute(t, nil, "show", "--config", cfgPath, "--base-url", srv.BaseURL(), "missingno")
	require.ErrorIs(t, err, catalog.ErrFetch)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "command started")
	require.NoError(t, os.Remove(logPath))
}

func TestTextBar(t *testing.T) {
	assert.Equal(t, strings.Repeat(barUnfilled, barCells), textBar(0))
	assert.Equal(t, strings.Repeat(barFilled, barCells), textBar(255))
	assert.Equal(t, strings.Repeat(barFilled, barCells), textBar(400))
	assert.Equal(t, strings.Repeat(barFilled, 10)+strings.Repeat(barUnfilled, 10), textBar(128))
}
