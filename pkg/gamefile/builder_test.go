// SPDX-License-Identifier: MPL-2.0

package gamefile

import (
	"errors"
	"reflect"
	"testing"
)

func TestBuildRequiredFields(t *testing.T) {
	t.Parallel()

	t.Run("missing name", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("doom", nil, Settings{})
		builder.Command([]string{"dsda-doom"})
		_, err := builder.Build()
		if !errors.Is(err, ErrMissingName) {
			t.Fatalf("Build() error = %v, want ErrMissingName", err)
		}
		var missingName *MissingNameError
		if !errors.As(err, &missingName) || missingName.ID != "doom" {
			t.Errorf("error does not identify game id: %v", err)
		}
	})

	t.Run("missing command", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("doom", nil, Settings{})
		builder.Name("Doom")
		_, err := builder.Build()
		if !errors.Is(err, ErrMissingCommand) {
			t.Fatalf("Build() error = %v, want ErrMissingCommand", err)
		}
	})
}

func TestOverlayDefaultFollowsWineDetection(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		command     []string
		wantCommand []string
	}{
		{
			name:        "wine command defaults overlay on",
			command:     []string{"wine", "game.exe"},
			wantCommand: []string{"mangohud", "wine", "game.exe"},
		},
		{
			name:        "native command defaults overlay off",
			command:     []string{"openmw"},
			wantCommand: []string{"openmw"},
		},
		{
			name:        "wine appearing later in argv does not count",
			command:     []string{"sh", "wine"},
			wantCommand: []string{"sh", "wine"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			builder := NewGameBuilder("g", nil, Settings{})
			builder.Name("G").Command(tt.command)
			game, err := builder.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if !reflect.DeepEqual(game.Command, tt.wantCommand) {
				t.Errorf("Command = %v, want %v", game.Command, tt.wantCommand)
			}
		})
	}
}

func TestExplicitOverlayFlagOverridesInference(t *testing.T) {
	t.Parallel()

	builder := NewGameBuilder("bg3", nil, Settings{})
	builder.Name("Baldur's Gate 3").Command([]string{"wine", "bg3.exe"}).Mangohud(false)
	game, err := builder.Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	want := []string{"wine", "bg3.exe"}
	if !reflect.DeepEqual(game.Command, want) {
		t.Errorf("Command = %v, want %v", game.Command, want)
	}
}

func TestDirectoryResolution(t *testing.T) {
	t.Parallel()

	directories := map[string]string{
		"games_dir": "/home/test/Games",
		"quake_dir": "/home/test/Games/quake",
	}

	tests := []struct {
		name    string
		prepare func(b *GameBuilder)
		wantDir string
	}{
		{
			name:    "literal dir",
			prepare: func(b *GameBuilder) { b.Dir("/home/test/Games/quake") },
			wantDir: "/home/test/Games/quake",
		},
		{
			name: "prefix joined with dir",
			prepare: func(b *GameBuilder) {
				b.DirPrefix("games_dir").Dir("quake")
			},
			wantDir: "/home/test/Games/quake",
		},
		{
			name:    "dir matching an alias resolves directly",
			prepare: func(b *GameBuilder) { b.Dir("quake_dir") },
			wantDir: "/home/test/Games/quake",
		},
		{
			name:    "no directory fields leaves dir unset",
			prepare: func(_ *GameBuilder) {},
			wantDir: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			builder := NewGameBuilder("quake", directories, Settings{})
			builder.Name("Quake").Command([]string{"vkquake"})
			tt.prepare(builder)
			game, err := builder.Build()
			if err != nil {
				t.Fatalf("Build() error = %v", err)
			}
			if game.Dir != tt.wantDir {
				t.Errorf("Dir = %q, want %q", game.Dir, tt.wantDir)
			}
		})
	}
}

func TestUnknownDirPrefixFailsEvenWithEmptyDir(t *testing.T) {
	t.Parallel()

	builder := NewGameBuilder("test", map[string]string{}, Settings{})
	builder.Name("Test Game").Command([]string{"sh", "start.sh"}).DirPrefix("bad_dir")
	_, err := builder.Build()
	if !errors.Is(err, ErrNoSuchDirectoryPrefix) {
		t.Fatalf("Build() error = %v, want ErrNoSuchDirectoryPrefix", err)
	}
	var prefixErr *NoSuchDirectoryPrefixError
	if !errors.As(err, &prefixErr) {
		t.Fatalf("error is not a NoSuchDirectoryPrefixError: %v", err)
	}
	if prefixErr.ID != "test" || prefixErr.Prefix != "bad_dir" {
		t.Errorf("error = %+v, want id test and prefix bad_dir", prefixErr)
	}
}

func TestGamescopeWrapping(t *testing.T) {
	t.Parallel()

	settings := Settings{Width: 1920, Height: 1080, UseGamescope: true}

	t.Run("separator precedes inner command", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("morrowind", nil, settings)
		builder.Name("Morrowind").Command([]string{"openmw"}).Mangohud(true)
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		want := []string{
			"gamescope", "-W", "1920", "-H", "1080", "-f", "--force-grab-cursor",
			"--mangoapp", "--", "openmw",
		}
		if !reflect.DeepEqual(game.Command, want) {
			t.Errorf("Command = %v, want %v", game.Command, want)
		}
	})

	t.Run("fps flag pair sits between prefix and mangoapp", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, settings)
		builder.Name("Test Game").Command([]string{"sh", "start.sh"}).Mangohud(true).FPSLimit(60)
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		want := []string{
			"gamescope", "-W", "1920", "-H", "1080", "-f", "--force-grab-cursor",
			"-r", "60", "--mangoapp", "--", "sh", "start.sh",
		}
		if !reflect.DeepEqual(game.Command, want) {
			t.Errorf("Command = %v, want %v", game.Command, want)
		}
	})

	t.Run("overlay off drops mangoapp but keeps separator", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, settings)
		builder.Name("Test Game").Command([]string{"openmw"})
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		want := []string{
			"gamescope", "-W", "1920", "-H", "1080", "-f", "--force-grab-cursor",
			"--", "openmw",
		}
		if !reflect.DeepEqual(game.Command, want) {
			t.Errorf("Command = %v, want %v", game.Command, want)
		}
	})
}

func TestEnvironmentInjection(t *testing.T) {
	t.Parallel()

	t.Run("fps limit reaches the overlay config", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, Settings{})
		builder.Name("Test Game").Command([]string{"wine", "TestGame.exe"}).FPSLimit(60)
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if got := game.Env["MANGOHUD_CONFIG"]; got != "fps_limit=60" {
			t.Errorf("MANGOHUD_CONFIG = %q, want fps_limit=60", got)
		}
	})

	t.Run("fps limit also injected under gamescope", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, Settings{Width: 1280, Height: 720, UseGamescope: true})
		builder.Name("Test Game").Command([]string{"wine", "TestGame.exe"}).FPSLimit(60)
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if got := game.Env["MANGOHUD_CONFIG"]; got != "fps_limit=60" {
			t.Errorf("MANGOHUD_CONFIG = %q, want fps_limit=60", got)
		}
	})

	t.Run("no fps limit leaves overlay config unset", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, Settings{})
		builder.Name("Test Game").Command([]string{"wine", "TestGame.exe"})
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if _, ok := game.Env["MANGOHUD_CONFIG"]; ok {
			t.Error("MANGOHUD_CONFIG should not be set without an fps limit")
		}
	})

	t.Run("disabling vulkan forces dll overrides", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, Settings{})
		builder.Name("Test Game").Command([]string{"wine", "Test.exe"}).UseVK(false)
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		want := "*d3d9,*d3d10,*d3d10_1,*d3d10core,*d3d11,*dxgi=b"
		if got := game.Env["WINEDLLOVERRIDES"]; got != want {
			t.Errorf("WINEDLLOVERRIDES = %q, want %q", got, want)
		}
	})

	t.Run("injections preserve configured env vars", func(t *testing.T) {
		t.Parallel()

		builder := NewGameBuilder("test", nil, Settings{})
		builder.Name("Test Game").
			Command([]string{"wine", "Test.exe"}).
			Env(map[string]string{"DXVK_HUD": "fps"}).
			FPSLimit(30).
			UseVK(false)
		game, err := builder.Build()
		if err != nil {
			t.Fatalf("Build() error = %v", err)
		}
		if game.Env["DXVK_HUD"] != "fps" {
			t.Error("configured env var was dropped")
		}
		if len(game.Env) != 3 {
			t.Errorf("Env has %d entries, want 3", len(game.Env))
		}
	})
}
