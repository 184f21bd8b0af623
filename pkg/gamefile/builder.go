// SPDX-License-Identifier: MPL-2.0

package gamefile

import (
	"path/filepath"
	"strconv"
)

const (
	// wineCommand is the compatibility-layer launcher token. A base command
	// starting with it marks the game as a Windows-compatibility launch.
	wineCommand = "wine"

	// mangohudCommand is the performance-overlay launcher token.
	mangohudCommand = "mangohud"

	// mangohudConfigVar carries the fps limit into the overlay.
	mangohudConfigVar = "MANGOHUD_CONFIG"

	// wineDLLOverridesVar forces wine's built-in D3D implementations instead
	// of Vulkan-backed translation (DXVK).
	wineDLLOverridesVar   = "WINEDLLOVERRIDES"
	wineDLLOverridesValue = "*d3d9,*d3d10,*d3d10_1,*d3d10core,*d3d11,*dxgi=b"
)

// Settings holds the global display options from the catalog's settings
// table.
type Settings struct {
	// Width and Height size the gamescope window.
	Width  int64
	Height int64
	// UseGamescope wraps every launched game in a gamescope session.
	UseGamescope bool
}

// GameBuilder accumulates the typed fields of one game table. Every setter
// is a pure field assignment; validation and all cross-field logic live in
// Build, so setters can be applied in any order.
type GameBuilder struct {
	id          string
	directories map[string]string
	settings    Settings

	name         string
	hasName      bool
	dir          string
	dirPrefix    string
	command      []string
	env          map[string]string
	tags         []string
	useMangohud  *bool
	fpsLimit     *int64
	useGamescope bool
	useVK        bool
	installed    bool
}

// NewGameBuilder creates a builder for the game with the given id. The
// directories table and global settings are captured for Build.
func NewGameBuilder(id string, directories map[string]string, settings Settings) *GameBuilder {
	return &GameBuilder{
		id:          id,
		directories: directories,
		settings:    settings,
		useVK:       true,
		installed:   true,
	}
}

// Name sets the display name.
func (b *GameBuilder) Name(name string) *GameBuilder {
	b.name = name
	b.hasName = true
	return b
}

// Command sets the base argument vector.
func (b *GameBuilder) Command(command []string) *GameBuilder {
	b.command = command
	return b
}

// Dir sets the working directory field.
func (b *GameBuilder) Dir(dir string) *GameBuilder {
	b.dir = dir
	return b
}

// DirPrefix sets the directory alias key to resolve at build time.
func (b *GameBuilder) DirPrefix(prefix string) *GameBuilder {
	b.dirPrefix = prefix
	return b
}

// Env sets the environment overrides.
func (b *GameBuilder) Env(env map[string]string) *GameBuilder {
	b.env = env
	return b
}

// Tags sets the tag list.
func (b *GameBuilder) Tags(tags []string) *GameBuilder {
	b.tags = tags
	return b
}

// Mangohud explicitly enables or disables the performance overlay. When
// never called, Build infers the flag from wine detection.
func (b *GameBuilder) Mangohud(use bool) *GameBuilder {
	b.useMangohud = &use
	return b
}

// FPSLimit sets the frame-rate target.
func (b *GameBuilder) FPSLimit(limit int64) *GameBuilder {
	b.fpsLimit = &limit
	return b
}

// UseGamescope records the per-game gamescope request. The compositor wrap
// itself is gated on the global settings toggle.
func (b *GameBuilder) UseGamescope() *GameBuilder {
	b.useGamescope = true
	return b
}

// UseVK sets whether the game may use Vulkan-backed D3D translation.
func (b *GameBuilder) UseVK(use bool) *GameBuilder {
	b.useVK = use
	return b
}

// NotInstalled marks the game as not currently installed.
func (b *GameBuilder) NotInstalled() *GameBuilder {
	b.installed = false
	return b
}

// IsWine reports whether the base command is a wine invocation.
func (b *GameBuilder) IsWine() bool {
	return len(b.command) > 0 && b.command[0] == wineCommand
}

// Build validates the accumulated fields and resolves them into a Game.
//
// Resolution order: required-field checks, overlay defaulting, directory
// alias resolution, command layering (gamescope outermost, else mangohud),
// environment injection.
func (b *GameBuilder) Build() (*Game, error) {
	if !b.hasName {
		return nil, &MissingNameError{ID: b.id}
	}
	if len(b.command) == 0 {
		return nil, &MissingCommandError{ID: b.id}
	}

	// An unset overlay flag inherits the wine-detection heuristic.
	useMangohud := b.IsWine()
	if b.useMangohud != nil {
		useMangohud = *b.useMangohud
	}

	dirPrefix := ""
	if b.dirPrefix != "" {
		resolved, ok := b.directories[b.dirPrefix]
		if !ok {
			return nil, &NoSuchDirectoryPrefixError{ID: b.id, Prefix: b.dirPrefix}
		}
		dirPrefix = resolved
	}

	// A dir matching an alias verbatim refers directly to that directory.
	dir := b.dir
	if resolved, ok := b.directories[b.dir]; ok {
		dir = resolved
	}
	gameDir := filepath.Join(dirPrefix, dir)

	command := b.wrapCommand(useMangohud)

	env := b.env
	if env == nil {
		env = map[string]string{}
	}
	if useMangohud && b.fpsLimit != nil {
		env[mangohudConfigVar] = "fps_limit=" + strconv.FormatInt(*b.fpsLimit, 10)
	}
	if !b.useVK {
		env[wineDLLOverridesVar] = wineDLLOverridesValue
	}

	return &Game{
		ID:        b.id,
		Name:      b.name,
		Dir:       gameDir,
		Command:   command,
		Env:       env,
		Tags:      b.tags,
		Installed: b.installed,
	}, nil
}

// wrapCommand layers the base command. The gamescope and mangohud wraps are
// mutually exclusive at the top level: gamescope integrates the overlay via
// --mangoapp instead of prepending the mangohud launcher.
func (b *GameBuilder) wrapCommand(useMangohud bool) []string {
	switch {
	case b.settings.UseGamescope:
		command := []string{
			"gamescope",
			"-W", strconv.FormatInt(b.settings.Width, 10),
			"-H", strconv.FormatInt(b.settings.Height, 10),
			"-f", "--force-grab-cursor",
		}
		if b.fpsLimit != nil {
			command = append(command, "-r", strconv.FormatInt(*b.fpsLimit, 10))
		}
		if useMangohud {
			command = append(command, "--mangoapp")
		}
		command = append(command, "--")
		return append(command, b.command...)
	case useMangohud:
		return append([]string{mangohudCommand}, b.command...)
	default:
		return b.command
	}
}
