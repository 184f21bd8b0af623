// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"
	"os"

	"gamerun/internal/config"
	"gamerun/internal/issue"
	"gamerun/internal/launch"
	"gamerun/internal/stats"
	"gamerun/pkg/gamefile"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// appConfig holds the loaded application configuration. Populated by
	// initRootConfig before any RunE handler runs.
	appConfig = &config.Config{}

	// logger is the shared CLI logger. Runs at Info level unless verbose
	// output is enabled.
	logger = log.NewWithOptions(os.Stderr, log.Options{
		Prefix: "gamerun",
	})
)

// loadCatalog reads and compiles the game catalog. A missing or unreadable
// catalog file maps to the catalog-not-found issue so the user gets setup
// guidance instead of a bare I/O error.
func loadCatalog() (*gamefile.Gamefile, error) {
	data, err := os.ReadFile(appConfig.Catalog)
	if err != nil {
		actionable := issue.WrapWithContext(err, "load game catalog", appConfig.Catalog).
			WithSuggestions(
				"run 'gamerun edit' to create the catalog",
				"set 'catalog' in config.toml or GAMERUN_CATALOG to point at an existing file",
			)
		styled := ErrorStyle.Render("Error:") + " no game catalog at " + appConfig.Catalog + "\n"
		return nil, newServiceError(actionable, issue.CatalogNotFoundId, styled)
	}

	gf, err := gamefile.Parse(data)
	if err != nil {
		actionable := issue.WrapWithContext(err, "parse game catalog", appConfig.Catalog)
		styled := ErrorStyle.Render("Error:") + " " + err.Error() + "\n"
		return nil, newServiceError(actionable, 0, styled)
	}

	logger.Debug("catalog loaded", "path", appConfig.Catalog, "games", len(gf.Games))
	return gf, nil
}

// openLedger returns the play-time ledger at the configured path.
func openLedger() *stats.Ledger {
	return stats.NewLedger(appConfig.StatsFile)
}

// fail reports err on the command's stderr and converts it into an
// ExitError so Execute exits non-zero without cobra re-printing it.
func fail(cmd *cobra.Command, err error) error {
	stderr := cmd.ErrOrStderr()

	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		renderServiceError(stderr, svcErr)
	} else {
		fmt.Fprintf(stderr, "%s %s\n", ErrorStyle.Render("Error:"), formatErrorForDisplay(err, verbose))
	}

	return &ExitError{Code: launch.ExitCode(1)}
}
