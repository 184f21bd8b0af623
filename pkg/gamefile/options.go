// SPDX-License-Identifier: MPL-2.0

package gamefile

import (
	"sort"

	"mvdan.cc/sh/v3/shell"
)

// commandOptions are the keys that set the base command. They are mutually
// exclusive within one game table.
var commandOptions = []string{"cmd", "dosbox_config", "scummvm_id", "wine_exe"}

// compileGame dispatches the recognized option handlers over one raw game
// table and builds the resolved Game. Every key present must have a handler;
// a wrong-shape value for a recognized key is treated as absent.
func compileGame(id string, table map[string]any, directories map[string]string, settings Settings) (*Game, error) {
	keys := make([]string, 0, len(table))
	for key := range table {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if !recognizedOption(key) {
			return nil, &UnrecognizedOptionError{Key: key}
		}
	}

	if conflicting := presentCommandOptions(table); len(conflicting) > 1 {
		return nil, &ConflictingCommandError{ID: id, Keys: conflicting}
	}

	builder := NewGameBuilder(id, directories, settings)
	for _, key := range keys {
		if err := applyOption(builder, key, table); err != nil {
			return nil, err
		}
	}

	return builder.Build()
}

// presentCommandOptions returns the command-setting keys of the table whose
// values would actually set a command, in sorted order.
func presentCommandOptions(table map[string]any) []string {
	var present []string
	for _, key := range commandOptions {
		if _, ok := table[key].(string); ok {
			present = append(present, key)
		}
	}
	return present
}

// recognizedOption reports whether the key has a registered handler.
func recognizedOption(key string) bool {
	switch key {
	case "cmd", "dir", "dir_prefix", "dosbox_config", "env", "fps_limit",
		"installed", "name", "scummvm_id", "tags", "use_gamescope",
		"use_mangohud", "use_vk", "wine_exe":
		return true
	}
	return false
}

// applyOption translates one recognized key into builder setter calls.
func applyOption(b *GameBuilder, key string, table map[string]any) error {
	switch key {
	case "name":
		if name, ok := table[key].(string); ok {
			b.Name(name)
		}
	case "cmd":
		if raw, ok := table[key].(string); ok {
			words, err := shell.Fields(raw, nil)
			if err != nil {
				return &CommandSyntaxError{ID: b.id, Value: raw, Cause: err}
			}
			b.Command(words)
		}
	case "wine_exe":
		if raw, ok := table[key].(string); ok {
			words, err := shell.Fields(raw, nil)
			if err != nil {
				return &CommandSyntaxError{ID: b.id, Value: raw, Cause: err}
			}
			b.Command(append([]string{wineCommand}, words...))
		}
	case "dosbox_config":
		if conf, ok := table[key].(string); ok {
			b.Command([]string{"dosbox", "-conf", conf})
		}
	case "scummvm_id":
		if scummvmID, ok := table[key].(string); ok {
			b.Command([]string{"scummvm", scummvmID})
		}
	case "dir":
		if dir, ok := table[key].(string); ok {
			b.Dir(dir)
		}
	case "dir_prefix":
		if prefix, ok := table[key].(string); ok && prefix != "" {
			b.DirPrefix(prefix)
		}
	case "env":
		if raw, ok := table[key].(map[string]any); ok {
			env := make(map[string]string, len(raw))
			for name, value := range raw {
				if s, ok := value.(string); ok {
					env[name] = s
				}
			}
			b.Env(env)
		}
	case "tags":
		if raw, ok := table[key].([]any); ok {
			var tags []string
			for _, value := range raw {
				if tag, ok := value.(string); ok {
					tags = append(tags, tag)
				}
			}
			b.Tags(tags)
		}
	case "fps_limit":
		if limit, ok := table[key].(int64); ok {
			b.FPSLimit(limit)
		}
	case "installed":
		if installed, ok := table[key].(bool); ok && !installed {
			b.NotInstalled()
		}
	case "use_gamescope":
		if use, ok := table[key].(bool); ok && use {
			b.UseGamescope()
		}
	case "use_mangohud":
		if use, ok := table[key].(bool); ok {
			b.Mangohud(use)
		}
	case "use_vk":
		if use, ok := table[key].(bool); ok {
			b.UseVK(use)
		}
	}
	return nil
}
