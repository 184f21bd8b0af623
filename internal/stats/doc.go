// SPDX-License-Identifier: MPL-2.0

// Package stats persists per-game play-time records in a flat TSV ledger.
//
// Each line holds three tab-separated fields: game id, cumulative play time
// in whole seconds, and the last-played timestamp as "YYYY-MM-DD HH:MM:SS".
// The timestamp carries no UTC offset and is reinterpreted with the current
// local offset on read, so historical records shift across timezone or DST
// changes. This is a known limitation of the on-disk format.
//
// Recording a session rewrites the whole file: every existing line is
// replayed, the matching game's record is updated in place, and a new
// record is appended when no line matched. The format is append-only in
// effect, not physically.
package stats
