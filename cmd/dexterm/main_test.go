package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rshade/dexterm/internal/cli"
	"github.com/rshade/dexterm/pkg/version"
)

func TestMainComponents(t *testing.T) {
	t.Run("version available", func(t *testing.T) {
		assert.NotEmpty(t, version.GetVersion())
	})

	t.Run("cli root command", func(t *testing.T) {
		root := cli.NewRootCmd(version.GetVersion())
		assert.NotNil(t, root)
		assert.Equal(t, "dexterm", root.Use)

		var names []string
		for _, c := range root.Commands() {
			names = append(names, c.Name())
		}
		assert.Subset(t, names, []string{"browse", "list", "show", "sprites", "version"})
	})

	t.Run("root carries build metadata", func(t *testing.T) {
		root := newRoot()
		assert.Equal(t, version.String(), root.Version)
		assert.Contains(t, root.Version, "commit "+version.GetCommit())
		assert.Contains(t, root.Version, "built "+version.GetBuildDate())
	})
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "nil error returns 0", err: nil, want: 0},
		{name: "generic error returns 1", err: errors.New("boom"), want: 1},
		{name: "interrupt returns 130", err: context.Canceled, want: exitInterrupted},
		{name: "wrapped interrupt returns 130", err: fmt.Errorf("loading page: %w", context.Canceled), want: exitInterrupted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, exitCode(tt.err))
		})
	}
}
