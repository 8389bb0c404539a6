package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestEmbeddedControlsMatchDefaults(t *testing.T) {
	cfg, err := ParseControls(defaultControlsYAML)
	if err != nil {
		t.Fatalf("ParseControls(embedded) failed: %v", err)
	}

	want := DefaultControls()
	if len(cfg.Players) != len(want.Players) {
		t.Fatalf("got %d players, expected %d", len(cfg.Players), len(want.Players))
	}
	for i := range want.Players {
		if cfg.Players[i] != want.Players[i] {
			t.Errorf("player %d bindings = %+v, expected %+v", i+1, cfg.Players[i], want.Players[i])
		}
	}
	if cfg.Pause != want.Pause {
		t.Errorf("Pause = %q, expected %q", cfg.Pause, want.Pause)
	}
}

func TestLoadControlsCustomPath(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "controls.yaml")
	data := `players:
  - {up: I, down: K, left: J, right: L, charge: Space}
  - {up: W, down: S, left: A, right: D, charge: Tab}
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	cfg, err := LoadControls(path)
	if err != nil {
		t.Fatalf("LoadControls() failed: %v", err)
	}
	if cfg.Players[0].Up != "I" {
		t.Errorf("player 1 up = %q, expected %q", cfg.Players[0].Up, "I")
	}
	if cfg.Players[1].Charge != "Tab" {
		t.Errorf("player 2 charge = %q, expected %q", cfg.Players[1].Charge, "Tab")
	}
	// Не заданные в файле клавиши берутся из значений по умолчанию.
	if cfg.Pause != "P" {
		t.Errorf("Pause = %q, expected default %q", cfg.Pause, "P")
	}
}

func TestLoadControlsMissingCustomFile(t *testing.T) {
	_, err := LoadControls(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("expected error for missing explicit controls file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected os.ErrNotExist in chain, got %v", err)
	}
}

func TestControlsValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(c *Controls)
		wantErr string
	}{
		{
			name:   "defaults are valid",
			mutate: func(c *Controls) {},
		},
		{
			name:    "missing player",
			mutate:  func(c *Controls) { c.Players = c.Players[:1] },
			wantErr: "expected bindings for 2 players",
		},
		{
			name:    "empty key",
			mutate:  func(c *Controls) { c.Players[1].Left = "" },
			wantErr: "player 2 left",
		},
		{
			name:    "duplicate across players",
			mutate:  func(c *Controls) { c.Players[1].Charge = "space" },
			wantErr: "bound to both player 1 charge and player 2 charge",
		},
		{
			name:    "pause collides with movement",
			mutate:  func(c *Controls) { c.Pause = "W" },
			wantErr: "bound to both player 2 up and pause",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultControls()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() = %v, expected nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, expected error containing %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("Validate() = %q, expected it to contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestParseControlsInvalidYAML(t *testing.T) {
	if _, err := ParseControls([]byte("players: [")); err == nil {
		t.Fatal("expected parse error")
	}
}
