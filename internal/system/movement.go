// internal/system/movement.go
package system

import (
	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/utils"
)

// MovementSystem двигает рядовых врагов и убирает улетевших за экран.
type MovementSystem struct {
	ecs *entity.ECS
}

func NewMovementSystem(ecs *entity.ECS) *MovementSystem {
	return &MovementSystem{ecs: ecs}
}

func (s *MovementSystem) Update() {
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		body := s.ecs.Bodies[id]
		vel := s.ecs.Velocities[id]
		def := defs.EnemyDef(enemy.Kind)

		enemy.Counter++
		if def.StopsOnUpdate {
			enemy.State = component.EnemyStopped
		}
		if enemy.Active(def) {
			body.Rect = body.Rect.Move(vel.X, vel.Y)
		}

		// Враги появляются наполовину за правым краем, поэтому удаляем
		// только полностью покинувших экран.
		if utils.OffScreen(body.Rect) {
			s.ecs.Remove(id)
		}
	}
}
