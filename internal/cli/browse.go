package cli

import (
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/dexterm/internal/cli/pagination"
	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/palette"
	"github.com/rshade/dexterm/internal/tui"
)

// NewBrowseCmd creates the "browse" command, the interactive catalog browser.
// When stdout is not a terminal it prints the starting page instead.
func NewBrowseCmd() *cobra.Command {
	params := pagination.NewPaginationParams()

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse the catalog interactively",
		Long: "Open a full-screen browser over the catalog. Use n/p to page, " +
			"enter to open a record and esc to return to the list.",
		Example: `  dexterm browse
  dexterm browse --limit 50 --page 3`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationInteractive: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !isTerminal(os.Stdout) {
				logger.Debug().Msg("stdout is not a terminal, printing the page instead")
				return runList(cmd, "", params)
			}
			return runBrowse(cmd, params)
		},
	}

	params.AddFlags(cmd)
	return cmd
}

func runBrowse(cmd *cobra.Command, params *pagination.PaginationParams) error {
	ctx := cmd.Context()
	cfg := configFromContext(ctx)
	client := newClient(cfg)

	start, err := startURL(client, cfg, params)
	if err != nil {
		return err
	}

	colors := palette.Default()
	list := tui.NewListModel(ctx,
		loader.NewListLoader(client, loader.WithConcurrency(cfg.Catalog.Concurrency)),
		colors, start, cfg.Catalog.PageSize)
	detail := tui.NewDetailModel(ctx, loader.NewDetailLoader(client), colors)

	p := tea.NewProgram(tui.NewAppModel(list, detail), tea.WithAltScreen(), tea.WithContext(ctx))
	_, err = p.Run()
	return err
}
