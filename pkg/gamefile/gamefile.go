// SPDX-License-Identifier: MPL-2.0

package gamefile

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/pelletier/go-toml/v2"
)

const (
	// DefaultWidth is the gamescope window width when settings leave it unset.
	DefaultWidth = 1280
	// DefaultHeight is the gamescope window height when settings leave it unset.
	DefaultHeight = 720
)

// ErrNoMatchingGames is returned by Random when no installed game matches
// the given tag queries.
var ErrNoMatchingGames = fmt.Errorf("no matching games")

// Gamefile is a compiled game catalog: the global settings plus one
// resolved Game per games-table entry.
type Gamefile struct {
	Settings Settings
	Games    map[string]*Game
}

// Parse decodes a TOML catalog document and compiles every game table.
// Compilation is all-or-nothing: the first invalid game fails the whole
// document.
func Parse(data []byte) (*Gamefile, error) {
	var document map[string]any
	if err := toml.Unmarshal(data, &document); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}

	settings := parseSettings(document)
	directories := parseDirectories(document)

	rawGames, ok := document["games"].(map[string]any)
	if !ok {
		return nil, ErrMissingGamesTable
	}

	games := make(map[string]*Game, len(rawGames))
	for id, value := range rawGames {
		table, ok := value.(map[string]any)
		if !ok {
			return nil, &GameNotTableError{ID: id}
		}
		game, err := compileGame(id, table, directories, settings)
		if err != nil {
			return nil, err
		}
		games[id] = game
	}

	return &Gamefile{Settings: settings, Games: games}, nil
}

// parseSettings extracts the optional settings table, applying the default
// window size for unset dimensions.
func parseSettings(document map[string]any) Settings {
	settings := Settings{Width: DefaultWidth, Height: DefaultHeight}
	table, ok := document["settings"].(map[string]any)
	if !ok {
		return settings
	}
	if width, ok := table["width"].(int64); ok {
		settings.Width = width
	}
	if height, ok := table["height"].(int64); ok {
		settings.Height = height
	}
	if use, ok := table["use_gamescope"].(bool); ok {
		settings.UseGamescope = use
	}
	return settings
}

// parseDirectories extracts the optional directories alias table. Non-string
// values are ignored.
func parseDirectories(document map[string]any) map[string]string {
	directories := map[string]string{}
	table, ok := document["directories"].(map[string]any)
	if !ok {
		return directories
	}
	for alias, value := range table {
		if path, ok := value.(string); ok {
			directories[alias] = path
		}
	}
	return directories
}

// Find returns the game with the given id.
func (f *Gamefile) Find(id string) (*Game, bool) {
	game, ok := f.Games[id]
	return game, ok
}

// SortedIDs returns every game id in lexical order.
func (f *Gamefile) SortedIDs() []string {
	ids := make([]string, 0, len(f.Games))
	for id := range f.Games {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Select returns the installed games matching any of the tag queries, in id
// order. An empty query list selects every installed game.
func (f *Gamefile) Select(queries []string) []*Game {
	var selected []*Game
	for _, id := range f.SortedIDs() {
		game := f.Games[id]
		if !game.Installed {
			continue
		}
		if len(queries) == 0 || game.MatchesTags(queries) {
			selected = append(selected, game)
		}
	}
	return selected
}

// AllTags returns the distinct tags across the catalog, sorted.
func (f *Gamefile) AllTags() []string {
	set := map[string]struct{}{}
	for _, game := range f.Games {
		for _, tag := range game.Tags {
			set[tag] = struct{}{}
		}
	}
	tags := make([]string, 0, len(set))
	for tag := range set {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// Random picks a uniformly random installed game matching the tag queries.
func (f *Gamefile) Random(queries []string) (*Game, error) {
	candidates := f.Select(queries)
	if len(candidates) == 0 {
		return nil, ErrNoMatchingGames
	}
	return candidates[rand.IntN(len(candidates))], nil
}
