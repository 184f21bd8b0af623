// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// listCmd prints installed games as "id - name" lines, optionally filtered
// by tag queries. A query is a comma-separated tag group; a game matches a
// group when it carries every listed tag (a '!' prefix inverts a tag), and
// matches the filter when any group matches. A game's id also counts as a
// tag, so 'gamerun list morrowind' finds the entry even without tags.
var listCmd = &cobra.Command{
	Use:   "list [TAGS...]",
	Short: "List installed games",
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := loadCatalog()
		if err != nil {
			return fail(cmd, err)
		}

		for _, game := range games.Select(args) {
			fmt.Fprintln(cmd.OutOrStdout(), game.Format())
		}
		return nil
	},
}
