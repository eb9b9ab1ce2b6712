// Package handlers wires the CLI commands: analyze a bill PDF into a
// terminal dashboard, fetch the weather panel for an address, and run
// the HTTP server.
package handlers

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kaipengyu/ppl-small-win/internal/config"
	"github.com/kaipengyu/ppl-small-win/internal/logger"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command with all subcommands attached
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "smallwin",
		Short: "smallwin turns a utility bill PDF into an energy savings dashboard.",
		Long: `smallwin extracts structured data from an uploaded utility bill,
assigns an Energy Saver Rank, recommends the best-fit rebate, and pulls
a 7-day weather outlook for the service address.

Requires GEMINI_API_KEY for bill extraction and imagery, and
WEATHER_API_KEY for the weather panel.`,
	}

	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.smallwin.yaml)")

	rootCmd.AddCommand(NewAnalyzeCmd())
	rootCmd.AddCommand(NewWeatherCmd())
	rootCmd.AddCommand(NewServeCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	loaded, err := config.Load(cfgFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	cfg = loaded

	logger.SetLevel(cfg.App.LogLevel)
}
