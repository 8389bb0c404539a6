// internal/state/play_state.go
package state

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"go-kokaton-musou/internal/app"
	"go-kokaton-musou/internal/config"
)

var _ State = (*PlayState)(nil)

// PlayState — идущая партия.
type PlayState struct {
	sm      *StateMachine
	session *Session
	game    *app.Game
}

func NewPlayState(sm *StateMachine, session *Session) *PlayState {
	return &PlayState{sm: sm, session: session, game: session.NewGame()}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(p.session.Bindings.Pause) {
		p.sm.SetState(NewPauseState(p.sm, p))
		return nil
	}

	p.game.Step(p.session.Bindings.PollFrame())

	if phase := p.game.Phase(); phase.Terminal() {
		p.sm.SetState(NewTerminalState(p.sm, p, app.TerminalHold(phase)))
	}
	return nil
}

func (p *PlayState) Draw(screen *ebiten.Image) {
	p.session.Renderer.DrawBackground(screen, p.game.Scroll())
	p.session.Renderer.DrawWorld(screen, p.game.ECS)
	p.session.Score.Draw(screen, p.game.Score())
	for _, id := range p.game.ECS.BossIDs() {
		p.session.BossHP.Draw(screen, p.game.ECS.Bosses[id].Health, config.BossHealth)
	}
}

func (p *PlayState) Exit() {}
