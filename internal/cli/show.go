package cli

import (
	"github.com/spf13/cobra"

	"github.com/rshade/dexterm/internal/loader"
)

// NewShowCmd creates the "show" command, which prints one detail record.
func NewShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <name|id>",
		Short: "Print one catalog record",
		Example: `  dexterm show pikachu
  dexterm show 25 --output json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)

			d, err := loader.NewDetailLoader(newClient(cfg)).Load(ctx, args[0])
			if err != nil {
				return err
			}
			return renderDetail(cmd.OutOrStdout(), cfg.Output.DefaultFormat, d)
		},
	}
}
