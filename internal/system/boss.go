// internal/system/boss.go
package system

import (
	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/entity"
)

// BossSystem двигает босса до рубежа и затем стреляет с интервалом.
type BossSystem struct {
	ecs     *entity.ECS
	spawner *Spawner
}

func NewBossSystem(ecs *entity.ECS, spawner *Spawner) *BossSystem {
	return &BossSystem{ecs: ecs, spawner: spawner}
}

func (s *BossSystem) Update(tick int) {
	for _, id := range s.ecs.BossIDs() {
		boss := s.ecs.Bosses[id]
		body := s.ecs.Bodies[id]
		vel := s.ecs.Velocities[id]

		if boss.Phase == component.BossMoving {
			body.Rect = body.Rect.Move(vel.X, vel.Y)
			if cx, _ := body.Rect.Center(); cx <= boss.Bound {
				vel.X, vel.Y = 0, 0
				boss.Phase = component.BossStopped
			}
		}

		// Остановка и первый выстрел могут случиться в одном кадре.
		if boss.Phase == component.BossStopped && tick-boss.LastShotTick >= boss.BeamInterval {
			s.spawner.SpawnBossBeam(id)
			boss.LastShotTick = tick
		}
	}
}
