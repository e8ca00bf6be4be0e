package main

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"smart-search-agent/internal/infrastructure/logger"
)

var version = "1.0.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "search-cli",
		Short: "Smart search agent CLI",
		Long: `search-cli runs the smart search agent operations from a terminal.

Examples:
  search-cli search "golang generics"
  search-cli greet Ada
  search-cli config show --file config.json
  search-cli config schema > config.schema.json
  search-cli config validate --file config.yaml`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().StringP("file", "f", defaultConfigFile(), "Search config file (JSON or YAML)")

	rootCmd.AddCommand(newSearchCmd())
	rootCmd.AddCommand(newGreetCmd())
	rootCmd.AddCommand(newConfigCmd())
	return rootCmd
}

func defaultConfigFile() string {
	if path := os.Getenv("SEARCH_AGENT_CONFIG_FILE"); path != "" {
		return path
	}
	return "config.json"
}

// cliLogger writes human readable logs to stderr so stdout only carries command output.
func cliLogger(cmd *cobra.Command) zerolog.Logger {
	level := "warn"
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = "debug"
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), TimeFormat: time.Kitchen}).
		With().
		Timestamp().
		Logger().
		Level(logger.ParseLevel(level))
}
