// internal/state/terminal_state.go
package state

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

var _ State = (*TerminalState)(nil)

// TerminalState показывает финальный экран поверх замершего мира,
// а по истечении hold закрывает окно.
type TerminalState struct {
	sm      *StateMachine
	play    *PlayState
	hold    time.Duration
	elapsed float64
}

func NewTerminalState(sm *StateMachine, play *PlayState, hold time.Duration) *TerminalState {
	return &TerminalState{sm: sm, play: play, hold: hold}
}

func (s *TerminalState) Enter() {}

func (s *TerminalState) Update(deltaTime float64) error {
	s.elapsed += deltaTime
	if s.elapsed >= s.hold.Seconds() {
		return ebiten.Termination
	}
	return nil
}

func (s *TerminalState) Draw(screen *ebiten.Image) {
	s.play.Draw(screen)
	s.play.session.Banner.Draw(screen, s.play.game.Phase(), s.play.game.Score())
}

func (s *TerminalState) Exit() {}
