// internal/app/events.go
package app

import (
	"github.com/charmbracelet/log"

	"go-kokaton-musou/internal/event"
)

var loggedEvents = []event.EventType{
	event.EnemyKilled,
	event.EnemyDamaged,
	event.BombDestroyed,
	event.BossArrived,
	event.BossDamaged,
	event.BossDefeated,
	event.ItemSpawned,
	event.ItemCollected,
	event.ItemExpired,
	event.ChargeShotFired,
	event.SessionEnded,
}

// GameEventListener пишет события партии в журнал.
type GameEventListener struct {
	logger *log.Logger
}

// OnEvent реализует интерфейс event.Listener.
func (l *GameEventListener) OnEvent(e event.Event) {
	switch data := e.Data.(type) {
	case event.SessionData:
		l.logger.Info("session ended", "outcome", data.Outcome, "reason", data.Reason, "tick", data.Tick, "score", data.Score)
	case event.KillData:
		l.logger.Debug(string(e.Type), "kind", data.Kind, "points", data.Points, "tick", data.Tick)
	case event.DamageData:
		l.logger.Debug(string(e.Type), "id", data.ID, "remained", data.Remained)
	case event.ItemData:
		l.logger.Debug(string(e.Type), "id", data.ID, "player", data.Player)
	case event.ShotData:
		l.logger.Debug(string(e.Type), "id", data.ID, "owner", data.Owner)
	default:
		if e.Type == event.BossArrived {
			l.logger.Info("boss arrived")
			return
		}
		l.logger.Debug(string(e.Type))
	}
}
