// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"github.com/spf13/cobra"
)

// playRandomCmd picks a random installed game, optionally restricted by tag
// queries, and launches it exactly like 'play'.
var playRandomCmd = &cobra.Command{
	Use:   "play-random [TAGS...]",
	Short: "Play a random game",
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := loadCatalog()
		if err != nil {
			return fail(cmd, err)
		}

		game, err := games.Random(args)
		if err != nil {
			return fail(cmd, err)
		}
		return playGame(cmd, game)
	},
}
