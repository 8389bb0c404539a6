// internal/state/pause_state.go
package state

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var _ State = (*PauseState)(nil)

// PauseState замораживает партию: тики не идут, мир рисуется под затемнением.
type PauseState struct {
	sm   *StateMachine
	play *PlayState
}

func NewPauseState(sm *StateMachine, play *PlayState) *PauseState {
	return &PauseState{sm: sm, play: play}
}

func (s *PauseState) Enter() {
	s.play.session.Logger.Debug("paused", "tick", s.play.game.Tick())
}

func (s *PauseState) Update(deltaTime float64) error {
	if inpututil.IsKeyJustPressed(s.play.session.Bindings.Pause) {
		s.sm.SetState(s.play)
	}
	return nil
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	hint := fmt.Sprintf("press %s to resume", s.play.session.Bindings.Pause)
	s.play.session.Banner.DrawPause(screen, hint)
}

func (s *PauseState) Exit() {}
