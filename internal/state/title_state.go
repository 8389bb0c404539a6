// internal/state/title_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/ui"
)

var _ State = (*TitleState)(nil)

// TitleState — заставка до начала партии.
type TitleState struct {
	sm        *StateMachine
	session   *Session
	highScore int
	scroll    int
}

func NewTitleState(sm *StateMachine, session *Session, highScore int) *TitleState {
	return &TitleState{sm: sm, session: session, highScore: highScore}
}

func (t *TitleState) Enter() {}

func (t *TitleState) Update(deltaTime float64) error {
	t.scroll += config.BackgroundScrollStep
	if inpututil.IsKeyJustPressed(t.session.Bindings.Start) {
		t.sm.SetState(NewPlayState(t.sm, t.session))
	}
	return nil
}

func (t *TitleState) Draw(screen *ebiten.Image) {
	t.session.Renderer.DrawBackground(screen, t.scroll)
	cx, cy := config.ScreenWidth/2, config.ScreenHeight/2
	t.session.Renderer.SpriteAt(screen, defs.SpritePlayer1, float64(cx)-120, float64(cy)-120, 1)
	t.session.Renderer.SpriteAt(screen, defs.SpritePlayer2, float64(cx)+120, float64(cy)-120, 1)

	ui.DrawCentered(screen, "KOKATON MUSOU", t.session.Fonts.Banner, cx, cy, config.TextLightColor)
	ui.DrawCentered(screen, fmt.Sprintf("press %s to start", t.session.Bindings.Start), t.session.Fonts.Hint, cx, cy+60, config.TextLightColor)
	if t.highScore > 0 {
		ui.DrawCentered(screen, fmt.Sprintf("High score: %d", t.highScore), t.session.Fonts.Hint, cx, cy+100, config.ScoreColor)
	}
}

func (t *TitleState) Exit() {}
