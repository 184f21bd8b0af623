// SPDX-License-Identifier: MPL-2.0

// Package gamefile parses the TOML game catalog and compiles each game's
// table into an immutable launch record.
//
// A catalog document has three top-level tables:
//   - games: one sub-table per game, keyed by game id (required)
//   - settings: display width/height and the gamescope toggle (optional)
//   - directories: named path prefixes referenced by dir/dir_prefix (optional)
//
// Compilation is a two-phase process. Option handlers translate each
// recognized key of a game table into setter calls on a GameBuilder; keys
// with no handler are rejected up front. All cross-field logic (overlay
// defaulting, directory alias resolution, gamescope/mangohud command
// wrapping, environment injection) is deferred to Build, so the handlers
// can run in any key order without producing intermediate invalid states.
package gamefile
