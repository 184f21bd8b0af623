// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"os"

	"gamerun/internal/issue"
	"gamerun/internal/launch"

	"github.com/spf13/cobra"
)

// errNoEditor is reported when $EDITOR is unset.
var errNoEditor = errors.New("no default editor in $EDITOR")

// editCmd opens the game catalog in $EDITOR. It does not parse the catalog
// first, so it also works for creating the initial file.
var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit the game catalog",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		editor := os.Getenv("EDITOR")
		if editor == "" {
			styled := ErrorStyle.Render("Error:") + " " + errNoEditor.Error() + "\n"
			return fail(cmd, newServiceError(errNoEditor, issue.NoEditorId, styled))
		}

		spec := launch.Spec{Argv: []string{editor, appConfig.Catalog}}
		code, err := launch.NewNativeRunner().Run(cmd.Context(), spec)
		if err != nil {
			return fail(cmd, err)
		}
		if !code.IsSuccess() {
			return &ExitError{Code: code}
		}
		return nil
	},
}
