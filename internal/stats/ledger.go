// SPDX-License-Identifier: MPL-2.0

package stats

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Ledger reads and rewrites the TSV stats file. A missing or unreadable
// file is treated as an empty ledger, never as an error.
type Ledger struct {
	path string
}

// NewLedger creates a ledger backed by the given file path.
func NewLedger(path string) *Ledger {
	return &Ledger{path: path}
}

// Path returns the backing file path.
func (l *Ledger) Path() string { return l.path }

// Load parses every non-blank line of the ledger file, preserving line
// order. Blank lines are skippable separators.
func (l *Ledger) Load() ([]GameStats, error) {
	content, err := os.ReadFile(l.path)
	if err != nil {
		return nil, nil
	}

	var records []GameStats
	for _, line := range strings.Split(string(content), "\n") {
		if line == "" {
			continue
		}
		record, err := ParseLine(line)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, nil
}

// Find returns the record for the given game id, if present.
func (l *Ledger) Find(id string) (GameStats, bool, error) {
	records, err := l.Load()
	if err != nil {
		return GameStats{}, false, err
	}
	for _, record := range records {
		if record.ID == id {
			return record, true, nil
		}
	}
	return GameStats{}, false, nil
}

// Record merges a finished play session into the ledger and rewrites the
// whole file. A matching record accumulates the session's seconds and takes
// the session start as its last-played time; every other record passes
// through unchanged; a game with no record gets a fresh line appended.
func (l *Ledger) Record(id string, seconds uint32, start time.Time) error {
	records, err := l.Load()
	if err != nil {
		return err
	}

	merged := false
	for i := range records {
		if records[i].ID != id {
			continue
		}
		if err := records[i].AddPlayTime(seconds); err != nil {
			return err
		}
		records[i].SetLastPlayed(start)
		merged = true
	}
	if !merged {
		records = append(records, NewGameStats(id, seconds, start))
	}

	return l.write(records)
}

// write serializes every record, one line each with a trailing newline, and
// replaces the ledger file.
func (l *Ledger) write(records []GameStats) error {
	var b strings.Builder
	for _, record := range records {
		b.WriteString(record.TSV())
		b.WriteByte('\n')
	}
	if err := os.WriteFile(l.path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write stats ledger: %w", err)
	}
	return nil
}

// TotalSeconds sums the cumulative play time of the given game ids.
// Unknown ids contribute nothing.
func (l *Ledger) TotalSeconds(ids []string) (uint64, error) {
	records, err := l.Load()
	if err != nil {
		return 0, err
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	var total uint64
	for _, record := range records {
		if _, ok := wanted[record.ID]; ok {
			total += uint64(record.PlayTimeSeconds)
		}
	}
	return total, nil
}
