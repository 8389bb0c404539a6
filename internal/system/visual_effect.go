// internal/system/visual_effect.go
package system

import (
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/event"
)

// VisualEffectSystem ведёт сущности с ограниченным сроком жизни: взрывы и предметы.
type VisualEffectSystem struct {
	ecs             *entity.ECS
	eventDispatcher *event.Dispatcher
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(ecs *entity.ECS, eventDispatcher *event.Dispatcher) *VisualEffectSystem {
	return &VisualEffectSystem{ecs: ecs, eventDispatcher: eventDispatcher}
}

// Update обновляет взрывы и убирает просроченные предметы.
func (s *VisualEffectSystem) Update(tick int) {
	for _, id := range s.ecs.ExplosionIDs() {
		exp := s.ecs.Explosions[id]
		exp.Life--
		exp.Frame = (exp.Life / config.ExplosionFrameTicks) % 2
		if exp.Life < 0 {
			s.ecs.Remove(id)
			continue
		}
		// Второй кадр — тот же спрайт, отражённый по обеим осям.
		if r, ok := s.ecs.Renderables[id]; ok {
			r.FlipX = exp.Frame == 1
			r.FlipY = exp.Frame == 1
		}
	}

	for _, id := range s.ecs.ItemIDs() {
		if !s.ecs.Items[id].Expired(tick) {
			continue
		}
		s.ecs.Remove(id)
		s.eventDispatcher.Dispatch(event.Event{Type: event.ItemExpired, Data: event.ItemData{ID: id, Player: -1}})
	}
}
