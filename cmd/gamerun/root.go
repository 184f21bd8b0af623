// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"

	"gamerun/internal/config"
	"gamerun/internal/issue"

	"github.com/charmbracelet/fang"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Version is the semantic version (set via -ldflags).
	Version = "dev"
	// Commit is the git commit hash (set via -ldflags).
	Commit = "unknown"
	// BuildDate is the build timestamp (set via -ldflags).
	BuildDate = "unknown"

	// Verbose enables verbose output
	verbose bool

	// rootCmd represents the base command when called without any subcommands
	rootCmd = &cobra.Command{
		Use:   "gamerun",
		Short: "A personal game launcher",
		Long: TitleStyle.Render("gamerun") + SubtitleStyle.Render(" - A personal game launcher") + `

gamerun launches games from a TOML catalog, wrapping each command with
the configured overlay and compositor layers (mangohud, gamescope) and
recording play time per game in a small TSV ledger.

Games are defined in 'games.toml' in the gamerun config directory and
can be tagged, filtered, and picked at random.

` + SubtitleStyle.Render("Quick Start:") + `
  1. Run 'gamerun edit' to create the catalog
  2. Add a [games.<id>] table with a name and a cmd
  3. Launch it with: gamerun play <id>

` + SubtitleStyle.Render("Examples:") + `
  gamerun list              List all installed games
  gamerun list rpg          List installed games tagged 'rpg'
  gamerun play morrowind    Launch the 'morrowind' entry
  gamerun play-random fps   Launch a random game tagged 'fps'
  gamerun stats morrowind   Show recorded play time
  gamerun tags              List every tag in the catalog`,
	}
)

func init() {
	cobra.OnInitialize(initRootConfig)

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(playRandomCmd)
	rootCmd.AddCommand(tagsCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(editCmd)
}

// getVersionString returns a formatted version string for display.
func getVersionString() string {
	if Version == "dev" {
		return "dev (built from source)"
	}
	return fmt.Sprintf("%s (commit: %s, built: %s)", Version, Commit, BuildDate)
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Use fang.Execute for enhanced Cobra styling
	// Pass version via fang.WithVersion() since fang overrides rootCmd.Version
	if err := fang.Execute(
		context.Background(),
		rootCmd,
		fang.WithVersion(getVersionString()),
		fang.WithNotifySignal(os.Interrupt),
	); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			os.Exit(int(exitErr.Code))
		}
		os.Exit(1)
	}
}

// initRootConfig creates the app directories and reads the config file and
// ENV variables if set.
func initRootConfig() {
	if err := config.EnsureDirs(); err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, WarningStyle.Render("Warning: ")+formatErrorForDisplay(err, verbose))
		cfg = &config.Config{}
	}
	appConfig = cfg

	// Apply verbose from config if not set via flag
	if !verbose {
		verbose = cfg.Verbose
	}
	if verbose {
		logger.SetLevel(log.DebugLevel)
	}
	logger.Debug("configuration loaded", "catalog", cfg.Catalog, "statsFile", cfg.StatsFile)
}

// formatErrorForDisplay formats an error for user display.
// If the error is an ActionableError, it uses the Format method.
// In verbose mode, shows the full error chain.
func formatErrorForDisplay(err error, verboseMode bool) string {
	var ae *issue.ActionableError
	if errors.As(err, &ae) {
		return ae.Format(verboseMode)
	}
	return err.Error()
}

// GetVerbose returns the verbose flag value
func GetVerbose() bool {
	return verbose
}
