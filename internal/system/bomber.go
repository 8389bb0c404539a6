// internal/system/bomber.go
package system

import (
	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
)

// BombTarget — индекс игрока, в которого целятся бомбардировщики.
const BombTarget = 0

// BomberSystem заставляет остановившихся бомбардировщиков бросать бомбы.
type BomberSystem struct {
	ecs     *entity.ECS
	spawner *Spawner
}

func NewBomberSystem(ecs *entity.ECS, spawner *Spawner) *BomberSystem {
	return &BomberSystem{ecs: ecs, spawner: spawner}
}

func (s *BomberSystem) Update(tick int) {
	targetID, _, ok := s.ecs.PlayerByIndex(BombTarget)
	if !ok {
		return
	}
	for _, id := range s.ecs.EnemyIDs() {
		enemy := s.ecs.Enemies[id]
		def := defs.EnemyDef(enemy.Kind)
		if def.DropInterval <= 0 || enemy.State != component.EnemyStopped {
			continue
		}
		if tick%def.DropInterval == 0 {
			s.spawner.SpawnBomb(id, targetID)
		}
	}
}
