package cli

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rshade/dexterm/internal/config"
	"github.com/rshade/dexterm/internal/logging"
)

// Output formats accepted by --output.
const (
	formatTable  = "table"
	formatJSON   = "json"
	formatNDJSON = "ndjson"
)

// annotationInteractive marks commands that take over the terminal, so their
// logs go to a file instead of stderr.
const annotationInteractive = "dexterm/interactive"

// annotationDefaultConfig marks commands that run on built-in defaults
// without reading any config file.
const annotationDefaultConfig = "dexterm/default-config"

// isTerminal checks if the given file is a terminal.
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// logger is the package-level logger for CLI operations.
var logger = zerolog.Nop() //nolint:gochecknoglobals // Required for zerolog context integration

// NewRootCmd creates the root Cobra command for the dexterm CLI.
func NewRootCmd(ver string) *cobra.Command {
	return NewRootCmdWithEnv(ver, os.LookupEnv)
}

// NewRootCmdWithEnv creates the root command with an explicit env lookup for testability.
func NewRootCmdWithEnv(ver string, lookupEnv func(string) (string, bool)) *cobra.Command {
	var logResult *logging.LogPathResult

	cmd := &cobra.Command{
		Use:           "dexterm",
		Short:         "Browse the creature catalog from your terminal",
		Long:          "dexterm: page through a remote creature catalog and inspect individual records",
		Version:       ver,
		Example:       rootCmdExample,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(cmd, lookupEnv)
			if err != nil {
				return err
			}
			result := setupLogging(cmd, cfg)
			logResult = &result
			cmd.SetContext(contextWithConfig(cmd.Context(), cfg))
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
			return cleanupLogging(cmd, logResult)
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.PersistentFlags().String("config", "", "config file (default ~/.dexterm/config.yaml)")
	cmd.PersistentFlags().String("base-url", "", "catalog API root (overrides config and DEXTERM_BASE_URL)")
	cmd.PersistentFlags().StringP("output", "o", "", "output format: table, json or ndjson (default from config)")

	cmd.AddCommand(
		NewBrowseCmd(), NewListCmd(), NewShowCmd(), NewSpritesCmd(),
		newConfigCmd(), NewVersionCmd(ver),
	)
	closeLogOnError(cmd, func() error { return cleanupLogging(cmd, logResult) })

	return cmd
}

// closeLogOnError wraps every RunE in the tree so the log file is released
// when a command fails. Cobra skips PersistentPostRunE in that case.
func closeLogOnError(c *cobra.Command, closeLog func() error) {
	for _, sub := range c.Commands() {
		closeLogOnError(sub, closeLog)
	}
	run := c.RunE
	if run == nil {
		return
	}
	c.RunE = func(cmd *cobra.Command, args []string) error {
		err := run(cmd, args)
		if err != nil {
			// The command error is the one worth reporting.
			_ = closeLog()
		}
		return err
	}
}

// loadConfig builds the effective configuration and applies flag overrides.
func loadConfig(cmd *cobra.Command, lookupEnv func(string) (string, bool)) (*config.Config, error) {
	if cmd.Annotations[annotationDefaultConfig] == "true" {
		return config.New(), nil
	}

	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path, lookupEnv)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if cmd.Flags().Changed("base-url") {
		cfg.Catalog.BaseURL, _ = cmd.Flags().GetString("base-url")
	}
	if cmd.Flags().Changed("output") {
		cfg.Output.DefaultFormat, _ = cmd.Flags().GetString("output")
	}
	if err = cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

const rootCmdExample = `  # Browse the catalog interactively
  dexterm browse

  # Print the second page of 50 entries as JSON
  dexterm list --limit 50 --page 2 --output json

  # Show one record
  dexterm show pikachu

  # Save a record's sprites
  dexterm sprites pikachu --dir ./sprites

  # Use a different catalog mirror
  dexterm list --base-url http://localhost:8000/api/v2`
