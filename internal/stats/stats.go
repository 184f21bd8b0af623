// SPDX-License-Identifier: MPL-2.0

package stats

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// TimestampLayout is the textual form of the last-played field.
const TimestampLayout = "2006-01-02 15:04:05"

var (
	// ErrMalformedLine is the sentinel error wrapped by MalformedLineError.
	ErrMalformedLine = errors.New("malformed stats line")

	// ErrPlayTimeOverflow is the sentinel error wrapped by PlayTimeOverflowError.
	ErrPlayTimeOverflow = errors.New("play time overflow")
)

type (
	// GameStats is one ledger record: cumulative play time and the last
	// played timestamp for a single game id. The id is not validated
	// against the catalog; the ledger may hold entries for games that no
	// longer exist.
	GameStats struct {
		ID              string
		PlayTimeSeconds uint32
		LastPlayed      time.Time
	}

	// MalformedLineError is returned when a ledger line cannot be parsed.
	MalformedLineError struct {
		Line  string
		Cause error
	}

	// PlayTimeOverflowError is returned when adding a session would push a
	// game's cumulative play time past the counter width.
	PlayTimeOverflowError struct {
		ID string
	}
)

// Error implements the error interface.
func (e *MalformedLineError) Error() string {
	return fmt.Sprintf("malformed stats line %q: %v", e.Line, e.Cause)
}

// Unwrap returns ErrMalformedLine so callers can use errors.Is for programmatic detection.
func (e *MalformedLineError) Unwrap() error { return ErrMalformedLine }

// Error implements the error interface.
func (e *PlayTimeOverflowError) Error() string {
	return fmt.Sprintf("play time for %q would overflow", e.ID)
}

// Unwrap returns ErrPlayTimeOverflow so callers can use errors.Is for programmatic detection.
func (e *PlayTimeOverflowError) Unwrap() error { return ErrPlayTimeOverflow }

// NewGameStats creates the first record for a game.
func NewGameStats(id string, playTimeSeconds uint32, lastPlayed time.Time) GameStats {
	return GameStats{ID: id, PlayTimeSeconds: playTimeSeconds, LastPlayed: lastPlayed}
}

// ParseLine decodes one TSV ledger line. The timestamp is interpreted in
// the current local offset.
func ParseLine(line string) (GameStats, error) {
	parts := strings.Split(line, "\t")
	if len(parts) != 3 {
		return GameStats{}, &MalformedLineError{Line: line, Cause: fmt.Errorf("want 3 fields, got %d", len(parts))}
	}
	seconds, err := strconv.ParseUint(parts[1], 10, 32)
	if err != nil {
		return GameStats{}, &MalformedLineError{Line: line, Cause: err}
	}
	lastPlayed, err := time.ParseInLocation(TimestampLayout, parts[2], time.Local)
	if err != nil {
		return GameStats{}, &MalformedLineError{Line: line, Cause: err}
	}
	return GameStats{ID: parts[0], PlayTimeSeconds: uint32(seconds), LastPlayed: lastPlayed}, nil
}

// TSV encodes the record as one ledger line, without a trailing newline.
func (s GameStats) TSV() string {
	return fmt.Sprintf("%s\t%d\t%s", s.ID, s.PlayTimeSeconds, s.LastPlayed.Format(TimestampLayout))
}

// AddPlayTime adds a session's seconds to the cumulative total. It fails
// rather than silently wrapping past the counter width.
func (s *GameStats) AddPlayTime(seconds uint32) error {
	if seconds > math.MaxUint32-s.PlayTimeSeconds {
		return &PlayTimeOverflowError{ID: s.ID}
	}
	s.PlayTimeSeconds += seconds
	return nil
}

// SetLastPlayed overwrites the last-played timestamp.
func (s *GameStats) SetLastPlayed(t time.Time) {
	s.LastPlayed = t
}

// FormatPlayTime renders the record's cumulative play time.
func (s GameStats) FormatPlayTime() string {
	return FormatPlayTime(uint64(s.PlayTimeSeconds))
}

// FormatLastPlayed renders the last-played timestamp in the ledger layout.
func (s GameStats) FormatLastPlayed() string {
	return s.LastPlayed.Format(TimestampLayout)
}

// FormatPlayTime decomposes a second total into hours, minutes and seconds
// and renders the non-zero components as "<H>h<M>m<S>s". A zero total
// renders as the empty string.
func FormatPlayTime(total uint64) string {
	hours := total / 3600
	minutes := (total % 3600) / 60
	seconds := total % 60

	var b strings.Builder
	if hours > 0 {
		fmt.Fprintf(&b, "%dh", hours)
	}
	if minutes > 0 {
		fmt.Fprintf(&b, "%dm", minutes)
	}
	if seconds > 0 {
		fmt.Fprintf(&b, "%ds", seconds)
	}
	return b.String()
}
