// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"
	"time"

	"gamerun/internal/issue"
	"gamerun/internal/launch"
	"gamerun/pkg/gamefile"

	"github.com/spf13/cobra"
)

// playCmd launches a game by id and records the session in the play-time
// ledger when the game exits successfully.
var playCmd = &cobra.Command{
	Use:   "play GAME_ID",
	Short: "Play a game, specified by its game ID",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := loadCatalog()
		if err != nil {
			return fail(cmd, err)
		}

		game, ok := games.Find(args[0])
		if !ok {
			return fail(cmd, fmt.Errorf("no such game: %s", args[0]))
		}
		return playGame(cmd, game)
	},
}

// playGame runs the game's compiled command, prints the session summary,
// and merges the session into the ledger. The session is recorded only for
// successful runs; a ledger write failure is reported after the summary so
// the play time is not silently lost.
func playGame(cmd *cobra.Command, game *gamefile.Game) error {
	logger.Debug("launching game", "id", game.ID, "argv", game.Command, "dir", game.Dir)

	start := time.Now()
	if err := launch.Game(cmd.Context(), launch.NewNativeRunner(), game); err != nil {
		return fail(cmd, err)
	}
	elapsed := time.Since(start)

	seconds := uint32(elapsed / time.Second)
	hours := seconds / 3600
	minutes := seconds / 60 % 60
	secs := seconds % 60

	stdout := cmd.OutOrStdout()
	fmt.Fprintf(stdout, "Game: %s (%s)\n", game.Name, game.ID)
	fmt.Fprintf(stdout, "Play Time: %dh%dm%ds (%dsec)\n", hours, minutes, secs, seconds)

	ledger := openLedger()
	if err := ledger.Record(game.ID, seconds, start); err != nil {
		return fail(cmd, issue.WrapWithOperation(err, "record play session"))
	}
	return nil
}
