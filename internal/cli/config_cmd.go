package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rshade/dexterm/internal/config"
)

// newConfigCmd creates the config command group.
func newConfigCmd() *cobra.Command {
	cmd := &cobra.Command{Use: "config", Short: "Configuration management commands"}
	cmd.AddCommand(NewConfigInitCmd(), NewConfigValidateCmd())
	return cmd
}

// NewConfigInitCmd creates the config init command, which writes the default
// configuration to --config or ~/.dexterm/config.yaml.
func NewConfigInitCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize configuration file with default values",
		Example: `  # Create ~/.dexterm/config.yaml
  dexterm config init

  # Overwrite an existing file
  dexterm config init --force`,
		Args:        cobra.NoArgs,
		Annotations: map[string]string{annotationDefaultConfig: "true"},
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, _ := cmd.Flags().GetString("config")
			if path == "" {
				path = config.DefaultPath()
			}

			if !force {
				_, err := os.Stat(path)
				if err == nil {
					return errors.New("configuration file already exists, use --force to overwrite")
				}
				if !os.IsNotExist(err) {
					return fmt.Errorf("cannot access config path %s: %w", path, err)
				}
			}

			if err := config.New().Save(path); err != nil {
				return fmt.Errorf("failed to save configuration: %w", err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Configuration file: %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "overwrite existing configuration file")
	return cmd
}

// NewConfigValidateCmd creates the config validate command. Loading already
// validates, so reaching RunE means the effective configuration is valid.
func NewConfigValidateCmd() *cobra.Command {
	var verbose bool

	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the effective configuration",
		Long: `Loads the configuration file, .env file and DEXTERM_* environment
variables and checks the merged result.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := configFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, "Configuration is valid")
			if verbose {
				fmt.Fprintln(out)
				fmt.Fprintln(out, "Configuration details:")
				fmt.Fprintf(out, "  Base URL:      %s\n", cfg.Catalog.BaseURL)
				fmt.Fprintf(out, "  Page size:     %d\n", cfg.Catalog.PageSize)
				fmt.Fprintf(out, "  Timeout:       %s\n", cfg.Catalog.Timeout)
				fmt.Fprintf(out, "  Concurrency:   %s\n", concurrencyLabel(cfg.Catalog.Concurrency))
				fmt.Fprintf(out, "  Output format: %s\n", cfg.Output.DefaultFormat)
				fmt.Fprintf(out, "  Logging level: %s\n", cfg.Logging.Level)
				fmt.Fprintf(out, "  Log file:      %s\n", cfg.Logging.File)
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "show the effective configuration")
	return cmd
}

func concurrencyLabel(n int) string {
	if n == 0 {
		return "unbounded"
	}
	return fmt.Sprint(n)
}
