// internal/system/projectile.go
package system

import (
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/utils"
)

// ProjectileSystem двигает снаряды. Снаряд, хотя бы частично вышедший
// за экран, уничтожается.
type ProjectileSystem struct {
	ecs *entity.ECS
}

func NewProjectileSystem(ecs *entity.ECS) *ProjectileSystem {
	return &ProjectileSystem{ecs: ecs}
}

func (s *ProjectileSystem) Update() {
	for _, id := range s.ecs.ProjectileIDs() {
		body := s.ecs.Bodies[id]
		vel := s.ecs.Velocities[id]
		body.Rect = body.Rect.Move(vel.X, vel.Y)
		if !utils.OnScreen(body.Rect) {
			s.ecs.Remove(id)
		}
	}
}
