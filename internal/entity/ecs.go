// internal/entity/ecs.go
package entity

import (
	"sort"

	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/types"
)

// ECS — мир игры. Принадлежность к картам компонентов — единственный механизм
// жизни сущности: удалённая из всех карт сущность уничтожена.
type ECS struct {
	NextID      types.EntityID
	Bodies      map[types.EntityID]*component.Body
	Velocities  map[types.EntityID]*component.Velocity
	Players     map[types.EntityID]*component.Player
	Enemies     map[types.EntityID]*component.Enemy
	Bosses      map[types.EntityID]*component.Boss
	Projectiles map[types.EntityID]*component.Projectile
	Explosions  map[types.EntityID]*component.Explosion
	Items       map[types.EntityID]*component.Item
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Bodies:      make(map[types.EntityID]*component.Body),
		Velocities:  make(map[types.EntityID]*component.Velocity),
		Players:     make(map[types.EntityID]*component.Player),
		Enemies:     make(map[types.EntityID]*component.Enemy),
		Bosses:      make(map[types.EntityID]*component.Boss),
		Projectiles: make(map[types.EntityID]*component.Projectile),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Items:       make(map[types.EntityID]*component.Item),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// Remove удаляет сущность из всех карт. Повторный вызов ничего не делает.
func (ecs *ECS) Remove(id types.EntityID) {
	delete(ecs.Bodies, id)
	delete(ecs.Velocities, id)
	delete(ecs.Players, id)
	delete(ecs.Enemies, id)
	delete(ecs.Bosses, id)
	delete(ecs.Projectiles, id)
	delete(ecs.Explosions, id)
	delete(ecs.Items, id)
	delete(ecs.Renderables, id)
}

// Alive — сущность ещё существует.
func (ecs *ECS) Alive(id types.EntityID) bool {
	_, ok := ecs.Bodies[id]
	return ok
}

// Порядок обхода карт в Go случаен, а столкновения и случайные числа должны
// обрабатываться в одном и том же порядке. Все выборки возвращают ID по возрастанию,
// то есть в порядке появления сущностей.

// PlayerIDs возвращает игроков по их индексу.
func (ecs *ECS) PlayerIDs() []types.EntityID {
	ids := sortedKeys(ecs.Players)
	sort.SliceStable(ids, func(i, j int) bool {
		return ecs.Players[ids[i]].Index < ecs.Players[ids[j]].Index
	})
	return ids
}

// PlayerByIndex возвращает игрока с индексом index.
func (ecs *ECS) PlayerByIndex(index int) (types.EntityID, *component.Player, bool) {
	for id, p := range ecs.Players {
		if p.Index == index {
			return id, p, true
		}
	}
	return 0, nil, false
}

func (ecs *ECS) EnemyIDs() []types.EntityID      { return sortedKeys(ecs.Enemies) }
func (ecs *ECS) BossIDs() []types.EntityID       { return sortedKeys(ecs.Bosses) }
func (ecs *ECS) ProjectileIDs() []types.EntityID { return sortedKeys(ecs.Projectiles) }
func (ecs *ECS) ExplosionIDs() []types.EntityID  { return sortedKeys(ecs.Explosions) }
func (ecs *ECS) ItemIDs() []types.EntityID       { return sortedKeys(ecs.Items) }
func (ecs *ECS) RenderableIDs() []types.EntityID { return sortedKeys(ecs.Renderables) }

// ProjectilesOf возвращает снаряды одного вида.
func (ecs *ECS) ProjectilesOf(kind component.ProjectileKind) []types.EntityID {
	var ids []types.EntityID
	for _, id := range ecs.ProjectileIDs() {
		if ecs.Projectiles[id].Kind == kind {
			ids = append(ids, id)
		}
	}
	return ids
}

func sortedKeys[V any](m map[types.EntityID]V) []types.EntityID {
	ids := make([]types.EntityID, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}
