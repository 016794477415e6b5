package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rshade/dexterm/internal/loader"
	"github.com/rshade/dexterm/internal/sprites"
)

// NewSpritesCmd creates the "sprites" command, which saves a record's
// front and back sprites to disk.
func NewSpritesCmd() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "sprites <name|id>",
		Short: "Download a record's sprite images",
		Example: `  # Writes ./pikachu_front.png and ./pikachu_back.png
  dexterm sprites pikachu

  dexterm sprites charizard --dir ~/Pictures/dex`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			cfg := configFromContext(ctx)
			client := newClient(cfg)

			d, err := loader.FetchDetail(ctx, client, args[0])
			if err != nil {
				return err
			}

			files, err := sprites.Download(ctx, client, d, dir)
			if err != nil {
				return fmt.Errorf("saving sprites for %s: %w", d.Name, err)
			}

			if cfg.Output.DefaultFormat == formatJSON || cfg.Output.DefaultFormat == formatNDJSON {
				return renderJSON(cmd.OutOrStdout(), files)
			}
			for _, f := range files {
				fmt.Fprintf(cmd.OutOrStdout(), "%-5s  %s\n", f.Side, f.Path)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", ".", "directory to write the images to")
	return cmd
}
