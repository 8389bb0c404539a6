// internal/system/state.go
package system

import (
	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/event"
)

// StateSystem хранит состояние партии. Переход из Playing возможен один раз.
type StateSystem struct {
	phase           component.Phase
	reason          string
	eventDispatcher *event.Dispatcher
}

func NewStateSystem(eventDispatcher *event.Dispatcher) *StateSystem {
	return &StateSystem{phase: component.PhasePlaying, eventDispatcher: eventDispatcher}
}

func (s *StateSystem) Current() component.Phase {
	return s.phase
}

// Reason — правило, закончившее партию.
func (s *StateSystem) Reason() string {
	return s.reason
}

// End переводит партию в конечное состояние. Повторные вызовы игнорируются.
func (s *StateSystem) End(phase component.Phase, reason string, tick, score int) bool {
	if s.phase.Terminal() || !phase.Terminal() {
		return false
	}
	s.phase = phase
	s.reason = reason
	s.eventDispatcher.Dispatch(event.Event{Type: event.SessionEnded, Data: event.SessionData{
		Outcome: phase.String(),
		Reason:  reason,
		Tick:    tick,
		Score:   score,
	}})
	return true
}
