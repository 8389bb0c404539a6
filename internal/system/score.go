// internal/system/score.go
package system

import (
	"go-kokaton-musou/internal/event"
)

// ScoreSystem начисляет очки по событиям уничтожения.
type ScoreSystem struct {
	Score int
}

func NewScoreSystem(eventDispatcher *event.Dispatcher) *ScoreSystem {
	s := &ScoreSystem{}
	eventDispatcher.SubscribeAll(s, event.EnemyKilled, event.BombDestroyed, event.BossDefeated)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *ScoreSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.KillData)
	if !ok || data.Points <= 0 {
		return
	}
	s.Score += data.Points
}
