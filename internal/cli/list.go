package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/dexterm/internal/catalog"
	"github.com/rshade/dexterm/internal/cli/pagination"
	"github.com/rshade/dexterm/internal/config"
	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/logging"
)

var errPageURLWithPaging = errors.New("--page-url cannot be combined with --limit, --offset or --page")

// NewListCmd creates the "list" command, which loads one page of entries
// with their details and prints it.
func NewListCmd() *cobra.Command {
	var pageURL string
	params := pagination.NewPaginationParams()

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the catalog",
		Long: "Load one page of catalog entries, fetch every entry's detail record " +
			"concurrently, and print the enriched page with its paging cursors.",
		Example: `  # First page with the configured page size
  dexterm list

  # Entries 40-59
  dexterm list --limit 20 --offset 40

  # Follow a cursor printed by a previous run
  dexterm list --page-url "https://pokeapi.co/api/v2/pokemon/?offset=20&limit=20"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if pageURL != "" && (cmd.Flags().Changed("limit") ||
				cmd.Flags().Changed("offset") || cmd.Flags().Changed("page")) {
				return errPageURLWithPaging
			}
			return runList(cmd, pageURL, params)
		},
	}

	cmd.Flags().StringVar(&pageURL, "page-url", "", "load the page at this URL (a cursor from a previous run)")
	params.AddFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, pageURL string, params *pagination.PaginationParams) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := configFromContext(ctx)
	client := newClient(cfg)

	if pageURL == "" {
		var err error
		if pageURL, err = startURL(client, cfg, params); err != nil {
			return err
		}
	}

	l := loader.NewListLoader(client, loader.WithConcurrency(cfg.Catalog.Concurrency))
	page, err := l.Load(ctx, pageURL)
	if err != nil {
		return fmt.Errorf("loading page: %w", err)
	}
	log.Debug().Str("page_url", pageURL).Int("entries", len(page.Entries)).Msg("page loaded")

	return renderPage(cmd.OutOrStdout(), cfg.Output.DefaultFormat, page, cfg.Catalog.PageSize)
}

// startURL resolves pagination flags against the configured page size.
func startURL(client *catalog.Client, cfg *config.Config, params *pagination.PaginationParams) (string, error) {
	resolved := params.WithDefaultLimit(cfg.Catalog.PageSize)
	if err := resolved.Validate(); err != nil {
		return "", fmt.Errorf("invalid pagination flags: %w", err)
	}
	offset, limit := resolved.CalculateOffsetLimit()
	return client.FirstPageURL(limit, offset), nil
}
