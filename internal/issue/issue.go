// SPDX-License-Identifier: MPL-2.0

package issue

import (
	"github.com/charmbracelet/glamour"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Id identifies an entry in the issue catalog.
type Id int

const (
	// CatalogNotFoundId is shown when no game catalog file exists.
	CatalogNotFoundId Id = iota + 1
	// NoEditorId is shown when $EDITOR is unset for the edit command.
	NoEditorId
)

// Issue is one catalog entry: a markdown help text rendered for the
// terminal when the corresponding failure occurs.
type Issue struct {
	id    Id
	mdMsg string
}

// Id returns the catalog id of the issue.
func (i *Issue) Id() Id { return i.id }

// Render renders the issue's markdown for the terminal.
func (i *Issue) Render(stylePath string) (string, error) {
	return render(i.mdMsg, stylePath)
}

var (
	render = func(in string, stylePath string) (string, error) {
		return glamour.Render(in, stylePath)
	}

	catalogNotFoundIssue = &Issue{
		id: CatalogNotFoundId,
		mdMsg: `
# No game catalog found!

gamerun looked for a catalog file but could not read one.

## Expected location
~~~
$XDG_CONFIG_HOME/gamerun/games.toml  (usually ~/.config/gamerun/games.toml)
~~~

## Things you can try
- Create the catalog and add a first game:
~~~toml
[games.morrowind]
name = "Morrowind"
cmd = "openmw"
~~~
- Or point gamerun at an existing catalog via ` + "`catalog`" + ` in
  ~/.config/gamerun/config.toml, or the GAMERUN_CATALOG environment
  variable.`,
	}

	noEditorIssue = &Issue{
		id: NoEditorId,
		mdMsg: `
# No default editor

The edit command opens the catalog in the editor named by the EDITOR
environment variable, which is currently unset.

## Things you can try
~~~
$ EDITOR=vi gamerun edit
~~~
or set EDITOR permanently in your shell profile.`,
	}

	catalog = map[Id]*Issue{
		CatalogNotFoundId: catalogNotFoundIssue,
		NoEditorId:        noEditorIssue,
	}
)

// Get returns the catalog entry for the given id, or nil.
func Get(id Id) *Issue {
	return catalog[id]
}

// Ids returns every catalog id in ascending order.
func Ids() []Id {
	ids := maps.Keys(catalog)
	slices.Sort(ids)
	return ids
}
