// internal/state/keyboard.go
package state

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/input"
)

// PlayerKeys — клавиши одного игрока.
type PlayerKeys struct {
	Up, Down, Left, Right, Charge ebiten.Key
}

// Bindings — разрешённая раскладка.
type Bindings struct {
	Players []PlayerKeys
	Pause   ebiten.Key
	Start   ebiten.Key
}

var keyAliases = map[string]ebiten.Key{
	"up":     ebiten.KeyArrowUp,
	"down":   ebiten.KeyArrowDown,
	"left":   ebiten.KeyArrowLeft,
	"right":  ebiten.KeyArrowRight,
	"lshift": ebiten.KeyShiftLeft,
	"rshift": ebiten.KeyShiftRight,
	"return": ebiten.KeyEnter,
	"esc":    ebiten.KeyEscape,
}

// keyNames: имя клавиши ebiten в нижнем регистре -> клавиша.
var keyNames = func() map[string]ebiten.Key {
	m := make(map[string]ebiten.Key, int(ebiten.KeyMax)+len(keyAliases))
	for k := ebiten.Key(0); k <= ebiten.KeyMax; k++ {
		m[strings.ToLower(k.String())] = k
	}
	for name, k := range keyAliases {
		m[name] = k
	}
	return m
}()

// ParseKey находит клавишу по имени без учёта регистра.
func ParseKey(name string) (ebiten.Key, error) {
	k, ok := keyNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, fmt.Errorf("config: unknown key %q", name)
	}
	return k, nil
}

// ResolveBindings переводит имена клавиш из конфигурации в ebiten.Key.
func ResolveBindings(cfg config.Controls) (Bindings, error) {
	var b Bindings
	for i, p := range cfg.Players {
		var keys PlayerKeys
		for _, f := range []struct {
			dst  *ebiten.Key
			name string
		}{
			{&keys.Up, p.Up},
			{&keys.Down, p.Down},
			{&keys.Left, p.Left},
			{&keys.Right, p.Right},
			{&keys.Charge, p.Charge},
		} {
			k, err := ParseKey(f.name)
			if err != nil {
				return Bindings{}, fmt.Errorf("player %d: %w", i+1, err)
			}
			*f.dst = k
		}
		b.Players = append(b.Players, keys)
	}

	var err error
	if b.Pause, err = ParseKey(cfg.Pause); err != nil {
		return Bindings{}, fmt.Errorf("pause: %w", err)
	}
	if b.Start, err = ParseKey(cfg.Start); err != nil {
		return Bindings{}, fmt.Errorf("start: %w", err)
	}
	return b, nil
}

// PollFrame снимает состояние клавиатуры в кадр ввода.
// Нажатие и отпускание заряда фиксируются по фронтам, движение — по удержанию.
func (b Bindings) PollFrame() input.Frame {
	frame := input.Frame{Players: make([]input.InputFrame, len(b.Players))}
	for i, keys := range b.Players {
		in := input.NewInputFrame()
		if ebiten.IsKeyPressed(keys.Up) {
			in.Set(input.ActionUp)
		}
		if ebiten.IsKeyPressed(keys.Down) {
			in.Set(input.ActionDown)
		}
		if ebiten.IsKeyPressed(keys.Left) {
			in.Set(input.ActionLeft)
		}
		if ebiten.IsKeyPressed(keys.Right) {
			in.Set(input.ActionRight)
		}
		if inpututil.IsKeyJustPressed(keys.Charge) {
			in.Set(input.ActionChargeStart)
		}
		if inpututil.IsKeyJustReleased(keys.Charge) {
			in.Set(input.ActionChargeRelease)
		}
		frame.Players[i] = in
	}
	return frame
}
