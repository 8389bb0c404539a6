package system

import (
	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/event"
	"go-kokaton-musou/internal/types"
	"go-kokaton-musou/internal/utils"
)

// world — пустой мир со всеми системами, но без игроков.
type world struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	spawner    *Spawner
	combat     *CombatSystem
	score      *ScoreSystem
	loot       *LootSystem
	events     *eventLog
}

type eventLog struct {
	types []event.EventType
}

func (l *eventLog) OnEvent(e event.Event) { l.types = append(l.types, e.Type) }

func (l *eventLog) count(t event.EventType) int {
	n := 0
	for _, x := range l.types {
		if x == t {
			n++
		}
	}
	return n
}

func newWorld() *world {
	ecs := entity.NewECS()
	d := event.NewDispatcher()
	sp := NewSpawner(ecs, utils.NewPRNGService(7), d)
	w := &world{
		ecs:        ecs,
		dispatcher: d,
		spawner:    sp,
		combat:     NewCombatSystem(ecs, sp, d, defs.Players),
		score:      NewScoreSystem(d),
		loot:       NewLootSystem(sp, d),
		events:     &eventLog{},
	}
	d.SubscribeAll(w.events,
		event.EnemyKilled, event.EnemyDamaged, event.BombDestroyed,
		event.BossDamaged, event.BossDefeated, event.ItemSpawned,
		event.ItemCollected, event.ItemExpired, event.BombDropped, event.BossBeamFired)
	return w
}

func (w *world) addPlayer(index int, cx, cy float64) types.EntityID {
	id := w.spawner.SpawnPlayer(defs.Players[index])
	w.ecs.Bodies[id].Rect.SetCenter(cx, cy)
	return id
}

func (w *world) addEnemy(kind defs.EnemyKind, cx, cy float64) types.EntityID {
	id := w.spawner.SpawnEnemy(kind)
	w.ecs.Bodies[id].Rect.SetCenter(cx, cy)
	return id
}

func (w *world) addProjectile(kind component.ProjectileKind, cx, cy, vx, vy float64) types.EntityID {
	id := w.ecs.NewEntity()
	w.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, 20, 20)}
	w.ecs.Velocities[id] = &component.Velocity{X: vx, Y: vy}
	w.ecs.Projectiles[id] = &component.Projectile{Kind: kind, Damage: 1}
	return id
}

func (w *world) addBeam(cx, cy float64) types.EntityID {
	return w.addProjectile(component.ProjectileBeam, cx, cy, 10, 0)
}

func (w *world) addBoss(cx, cy float64, health int) types.EntityID {
	id := w.spawner.SpawnBoss()
	w.ecs.Bodies[id].Rect.SetCenter(cx, cy)
	w.ecs.Bosses[id].Health = health
	return id
}

func (w *world) addItem(cx, cy float64, tick int) types.EntityID {
	return w.spawner.SpawnItem(cx, cy, tick)
}

func (w *world) countProjectiles(kind component.ProjectileKind) int {
	return len(w.ecs.ProjectilesOf(kind))
}
