package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// NewVersionCmd creates the "version" command. ver is the full build
// string, as produced by version.String.
func NewVersionCmd(ver string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dexterm %s\n", ver)
		},
	}
}
