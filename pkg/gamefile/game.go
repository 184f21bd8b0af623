// SPDX-License-Identifier: MPL-2.0

package gamefile

import "fmt"

// Game is the fully resolved, immutable launch specification for one
// catalog entry. It is constructed once by GameBuilder.Build and never
// mutated or persisted afterwards.
type Game struct {
	// ID is the unique catalog key; it doubles as an implicit selector tag.
	ID string
	// Name is the required display name.
	Name string
	// Dir is the working directory to launch in, or "" for none. It is
	// resolved at compile time and never re-resolved at run time.
	Dir string
	// Command is the fully wrapped argument vector. Never empty.
	Command []string
	// Env is the environment overlay merged on top of the inherited
	// environment at launch time.
	Env map[string]string
	// Tags are the game's labels, in catalog order.
	Tags []string
	// Installed marks whether the game can currently be launched.
	Installed bool
}

// Format renders the game for listings as "id - name".
func (g *Game) Format() string {
	return fmt.Sprintf("%s - %s", g.ID, g.Name)
}

// MatchesTags reports whether any of the given tag query strings selects
// this game. A query selects the game if its parsed group matches either
// the game's tag set or the singleton set holding the game's own id.
func (g *Game) MatchesTags(queries []string) bool {
	for _, q := range queries {
		group := ParseTagGroup(q)
		if group.Matches(g.Tags) || group.Matches([]string{g.ID}) {
			return true
		}
	}
	return false
}
