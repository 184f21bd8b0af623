// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"gamerun/internal/stats"

	"github.com/spf13/cobra"
)

// statsCmd prints the recorded play time and last-played timestamp for each
// named game. With several games, a summed total follows the per-game
// blocks. Asking for a single game with no recorded sessions prints
// "No stats found"; with several games, unrecorded ones are skipped.
var statsCmd = &cobra.Command{
	Use:   "stats GAME_ID...",
	Short: "Show game statistics",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := loadCatalog()
		if err != nil {
			return fail(cmd, err)
		}

		stdout := cmd.OutOrStdout()
		ledger := openLedger()

		count := 0
		for _, id := range args {
			game, ok := games.Find(id)
			if !ok {
				return fail(cmd, fmt.Errorf("no such game: %s", id))
			}

			record, found, err := ledger.Find(game.ID)
			if err != nil {
				return fail(cmd, err)
			}
			if !found {
				if len(args) == 1 {
					fmt.Fprintln(stdout, "No stats found")
				}
				continue
			}

			count++
			if count > 1 {
				fmt.Fprintln(stdout)
			}
			fmt.Fprintf(stdout, "%s (%s) Statistics\n", game.Name, game.ID)
			fmt.Fprintf(stdout, "Play Time: %s\n", record.FormatPlayTime())
			fmt.Fprintf(stdout, "Last Played: %s\n", record.FormatLastPlayed())
		}

		if count > 1 {
			totalSeconds, err := ledger.TotalSeconds(args)
			if err != nil {
				return fail(cmd, err)
			}
			fmt.Fprintln(stdout)
			fmt.Fprintf(stdout, "Total Play Time: %s\n", stats.FormatPlayTime(totalSeconds))
		}
		return nil
	},
}
