// SPDX-License-Identifier: MPL-2.0

package gamefile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrMissingName is the sentinel error wrapped by MissingNameError.
	ErrMissingName = errors.New("game missing name")

	// ErrMissingCommand is the sentinel error wrapped by MissingCommandError.
	ErrMissingCommand = errors.New("game missing command")

	// ErrNoSuchDirectoryPrefix is the sentinel error wrapped by NoSuchDirectoryPrefixError.
	ErrNoSuchDirectoryPrefix = errors.New("no such directory prefix")

	// ErrUnrecognizedOption is the sentinel error wrapped by UnrecognizedOptionError.
	ErrUnrecognizedOption = errors.New("unrecognized option")

	// ErrConflictingCommand is the sentinel error wrapped by ConflictingCommandError.
	ErrConflictingCommand = errors.New("conflicting command options")

	// ErrCommandSyntax is the sentinel error wrapped by CommandSyntaxError.
	ErrCommandSyntax = errors.New("command syntax error")

	// ErrGameNotTable is the sentinel error wrapped by GameNotTableError.
	ErrGameNotTable = errors.New("game entry is not a table")

	// ErrMissingGamesTable is returned when the document has no games table.
	ErrMissingGamesTable = errors.New("a 'games' table is required")
)

type (
	// MissingNameError is returned by Build when a game table never set a
	// display name.
	MissingNameError struct {
		ID string
	}

	// MissingCommandError is returned by Build when no base command tokens
	// were set by any of cmd/wine_exe/dosbox_config/scummvm_id.
	MissingCommandError struct {
		ID string
	}

	// NoSuchDirectoryPrefixError is returned by Build when a game's
	// dir_prefix names an alias absent from the directories table.
	NoSuchDirectoryPrefixError struct {
		ID     string
		Prefix string
	}

	// UnrecognizedOptionError is returned during dispatch when a game table
	// contains a key with no registered handler.
	UnrecognizedOptionError struct {
		Key string
	}

	// ConflictingCommandError is returned when more than one command-setting
	// key (cmd, wine_exe, dosbox_config, scummvm_id) is present in one game
	// table.
	ConflictingCommandError struct {
		ID   string
		Keys []string
	}

	// CommandSyntaxError is returned when a cmd or wine_exe value cannot be
	// split into shell words (e.g. an unterminated quote).
	CommandSyntaxError struct {
		ID    string
		Value string
		Cause error
	}

	// GameNotTableError is returned when a games entry is not a table.
	GameNotTableError struct {
		ID string
	}
)

// Error implements the error interface.
func (e *MissingNameError) Error() string {
	return fmt.Sprintf("game %q has no name", e.ID)
}

// Unwrap returns ErrMissingName so callers can use errors.Is for programmatic detection.
func (e *MissingNameError) Unwrap() error { return ErrMissingName }

// Error implements the error interface.
func (e *MissingCommandError) Error() string {
	return fmt.Sprintf("game %q has no command", e.ID)
}

// Unwrap returns ErrMissingCommand so callers can use errors.Is for programmatic detection.
func (e *MissingCommandError) Unwrap() error { return ErrMissingCommand }

// Error implements the error interface.
func (e *NoSuchDirectoryPrefixError) Error() string {
	return fmt.Sprintf("game %q has nonexistent directory prefix %q", e.ID, e.Prefix)
}

// Unwrap returns ErrNoSuchDirectoryPrefix so callers can use errors.Is for programmatic detection.
func (e *NoSuchDirectoryPrefixError) Unwrap() error { return ErrNoSuchDirectoryPrefix }

// Error implements the error interface.
func (e *UnrecognizedOptionError) Error() string {
	return fmt.Sprintf("unrecognized option %q", e.Key)
}

// Unwrap returns ErrUnrecognizedOption so callers can use errors.Is for programmatic detection.
func (e *UnrecognizedOptionError) Unwrap() error { return ErrUnrecognizedOption }

// Error implements the error interface.
func (e *ConflictingCommandError) Error() string {
	return fmt.Sprintf("game %q sets more than one command option: %s",
		e.ID, strings.Join(e.Keys, ", "))
}

// Unwrap returns ErrConflictingCommand so callers can use errors.Is for programmatic detection.
func (e *ConflictingCommandError) Unwrap() error { return ErrConflictingCommand }

// Error implements the error interface.
func (e *CommandSyntaxError) Error() string {
	return fmt.Sprintf("game %q has an unparsable command %q: %v", e.ID, e.Value, e.Cause)
}

// Unwrap returns ErrCommandSyntax so callers can use errors.Is for programmatic detection.
func (e *CommandSyntaxError) Unwrap() error { return ErrCommandSyntax }

// Error implements the error interface.
func (e *GameNotTableError) Error() string {
	return fmt.Sprintf("games entry %q must be a table", e.ID)
}

// Unwrap returns ErrGameNotTable so callers can use errors.Is for programmatic detection.
func (e *GameNotTableError) Unwrap() error { return ErrGameNotTable }
