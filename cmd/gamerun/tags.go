// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tagsCmd prints every distinct tag in the catalog, sorted, one per line.
var tagsCmd = &cobra.Command{
	Use:   "tags",
	Short: "List all tags",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		games, err := loadCatalog()
		if err != nil {
			return fail(cmd, err)
		}

		for _, tag := range games.AllTags() {
			fmt.Fprintln(cmd.OutOrStdout(), tag)
		}
		return nil
	},
}
