package config

import (
	"errors"
	"fmt"
	"strings"
)

// KeyBindings — клавиши одного игрока. Имена клавиш совпадают с именами ebiten
// (ArrowUp, Space, ShiftLeft, W ...), регистр не важен.
type KeyBindings struct {
	Up     string `yaml:"up"`
	Down   string `yaml:"down"`
	Left   string `yaml:"left"`
	Right  string `yaml:"right"`
	Charge string `yaml:"charge"`
}

// Controls — раскладка управления для всех игроков.
type Controls struct {
	Players []KeyBindings `yaml:"players"`
	Pause   string        `yaml:"pause"`
	Start   string        `yaml:"start"`
}

// DefaultControls возвращает раскладку по умолчанию: стрелки + пробел для
// первого игрока, WASD + левый Shift для второго.
func DefaultControls() Controls {
	return Controls{
		Players: []KeyBindings{
			{Up: "ArrowUp", Down: "ArrowDown", Left: "ArrowLeft", Right: "ArrowRight", Charge: "Space"},
			{Up: "W", Down: "S", Left: "A", Right: "D", Charge: "ShiftLeft"},
		},
		Pause: "P",
		Start: "Enter",
	}
}

// Validate проверяет, что раскладка полная и клавиши не пересекаются.
func (c Controls) Validate() error {
	if len(c.Players) != PlayerCount {
		return fmt.Errorf("config: expected bindings for %d players, got %d", PlayerCount, len(c.Players))
	}
	seen := make(map[string]string)
	claim := func(owner, key string) error {
		if key == "" {
			return fmt.Errorf("config: %s: %w", owner, ErrEmptyKey)
		}
		norm := strings.ToLower(key)
		if prev, ok := seen[norm]; ok {
			return fmt.Errorf("config: key %q bound to both %s and %s", key, prev, owner)
		}
		seen[norm] = owner
		return nil
	}
	for i, p := range c.Players {
		for _, b := range p.byAction() {
			if err := claim(fmt.Sprintf("player %d %s", i+1, b.action), b.key); err != nil {
				return err
			}
		}
	}
	if err := claim("pause", c.Pause); err != nil {
		return err
	}
	return nil
}

type binding struct {
	action, key string
}

func (b KeyBindings) byAction() []binding {
	return []binding{
		{"up", b.Up},
		{"down", b.Down},
		{"left", b.Left},
		{"right", b.Right},
		{"charge", b.Charge},
	}
}

// ErrEmptyKey — у действия не задана клавиша.
var ErrEmptyKey = errors.New("empty key binding")

// PlayerCount — число локальных игроков.
const PlayerCount = 2
