// internal/system/spawn.go
package system

import (
	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/event"
	"go-kokaton-musou/internal/types"
	"go-kokaton-musou/internal/utils"
)

// Spawner создает сущности всех видов. Все случайные параметры берутся
// из общего PRNGService, поэтому порядок вызовов влияет на партию.
type Spawner struct {
	ecs             *entity.ECS
	rng             *utils.PRNGService
	eventDispatcher *event.Dispatcher
}

func NewSpawner(ecs *entity.ECS, rng *utils.PRNGService, eventDispatcher *event.Dispatcher) *Spawner {
	return &Spawner{ecs: ecs, rng: rng, eventDispatcher: eventDispatcher}
}

func (s *Spawner) SpawnPlayer(def defs.PlayerDefinition) types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{
		Rect: utils.RectFromCenter(def.SpawnX, def.SpawnY, config.PlayerWidth, config.PlayerHeight),
	}
	s.ecs.Players[id] = component.NewPlayer(def.Index)
	s.ecs.Renderables[id] = &component.Renderable{Sprite: def.Sprite, Layer: component.LayerPlayer}
	return id
}

// SpawnEnemy выпускает врага у правого края на случайной высоте.
func (s *Spawner) SpawnEnemy(kind defs.EnemyKind) types.EntityID {
	def := defs.EnemyDef(kind)

	sprite := def.Sprites[0]
	if len(def.Sprites) > 1 {
		sprite = def.Sprites[s.rng.Intn(len(def.Sprites))]
	}
	cy := float64(s.rng.IntRange(config.EnemySpawnMarginY, config.ScreenHeight-config.EnemySpawnMarginY))
	cx := config.ScreenWidth - def.SpawnOffsetX

	enemy := component.NewEnemy(def)
	if kind == defs.EnemyStandard {
		enemy.Bound = s.rng.IntRange(config.EnemyMinStopBound, config.ScreenHeight/2)
		enemy.Interval = s.rng.IntRange(config.EnemyMinInterval, config.EnemyMaxInterval)
	}

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, def.Width, def.Height)}
	s.ecs.Velocities[id] = &component.Velocity{X: def.VelocityX}
	s.ecs.Enemies[id] = enemy
	s.ecs.Renderables[id] = &component.Renderable{Sprite: sprite, Layer: component.LayerEnemy}
	return id
}

// SpawnBoss выпускает босса в центре правого края.
func (s *Spawner) SpawnBoss() types.EntityID {
	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{
		Rect: utils.RectFromCenter(config.ScreenWidth, config.ScreenHeight/2, config.BossWidth, config.BossHeight),
	}
	s.ecs.Velocities[id] = &component.Velocity{X: config.BossSpeedX}
	s.ecs.Bosses[id] = &component.Boss{
		Phase:        component.BossMoving,
		Health:       config.BossHealth,
		Bound:        config.ScreenWidth - config.BossBoundOffset,
		BeamInterval: config.BossBeamInterval,
	}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: defs.SpriteBoss, Layer: component.LayerBoss}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossArrived})
	return id
}

// SpawnBeam выпускает луч вправо из-под игрока. Центр луча сдвинут
// на ширину игрока вправо от его центра.
func (s *Spawner) SpawnBeam(playerID types.EntityID, charged bool) types.EntityID {
	body, ok := s.ecs.Bodies[playerID]
	player, isPlayer := s.ecs.Players[playerID]
	if !ok || !isPlayer {
		return 0
	}

	speed, damage := config.BeamSpeed, config.BeamDamage
	if charged {
		speed, damage = config.ChargedBeamSpeed, config.ChargedBeamDamage
	}
	const dirX, dirY = 1.0, 0.0
	cx, cy := body.Rect.Center()
	cx += body.Rect.W * dirX
	cy += body.Rect.H * dirY

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, config.BeamWidth, config.BeamHeight)}
	s.ecs.Velocities[id] = &component.Velocity{X: speed * dirX, Y: speed * dirY}
	s.ecs.Projectiles[id] = &component.Projectile{
		Kind:    component.ProjectileBeam,
		Owner:   player.Index,
		Damage:  damage,
		Charged: charged,
	}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: defs.SpriteBeam, Layer: component.LayerProjectile}

	evt := event.BeamFired
	if charged {
		evt = event.ChargeShotFired
	}
	s.eventDispatcher.Dispatch(event.Event{Type: evt, Data: event.ShotData{ID: id, Owner: player.Index}})
	return id
}

// SpawnBomb бросает бомбу из-под emitter в сторону target.
func (s *Spawner) SpawnBomb(emitterID, targetID types.EntityID) types.EntityID {
	emitter, ok := s.ecs.Bodies[emitterID]
	target, hasTarget := s.ecs.Bodies[targetID]
	if !ok || !hasTarget {
		return 0
	}

	radius := s.rng.IntRange(config.BombMinRadius, config.BombMaxRadius)
	clr := config.BombColors[s.rng.Intn(len(config.BombColors))]
	vx, vy := utils.CalcOrientation(emitter.Rect, target.Rect)

	cx, cy := emitter.Rect.Center()
	cy += float64(int(emitter.Rect.H) / 2)
	size := float64(2 * radius)

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, size, size)}
	s.ecs.Velocities[id] = &component.Velocity{X: vx * config.BombSpeed, Y: vy * config.BombSpeed}
	s.ecs.Projectiles[id] = &component.Projectile{Kind: component.ProjectileBomb}
	s.ecs.Renderables[id] = &component.Renderable{
		Color:  clr,
		Radius: float32(radius),
		Layer:  component.LayerProjectile,
	}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BombDropped, Data: event.ShotData{ID: id, Owner: -1}})
	return id
}

// SpawnBossBeam выпускает луч босса из его центра.
func (s *Spawner) SpawnBossBeam(bossID types.EntityID) types.EntityID {
	body, ok := s.ecs.Bodies[bossID]
	if !ok {
		return 0
	}
	cx, cy := body.Rect.Center()

	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, config.BossBeamWidth, config.BossBeamHeight)}
	s.ecs.Velocities[id] = &component.Velocity{X: config.BossBeamSpeedX}
	s.ecs.Projectiles[id] = &component.Projectile{Kind: component.ProjectileBossBeam}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: defs.SpriteBossBeam, Layer: component.LayerProjectile}
	s.eventDispatcher.Dispatch(event.Event{Type: event.BossBeamFired, Data: event.ShotData{ID: id, Owner: -1}})
	return id
}

// SpawnExplosion ставит вспышку в центр прямоугольника at.
func (s *Spawner) SpawnExplosion(at utils.Rect, life int) types.EntityID {
	cx, cy := at.Center()
	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, config.ExplosionSize, config.ExplosionSize)}
	s.ecs.Explosions[id] = &component.Explosion{Life: life}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: defs.SpriteExplosion, Layer: component.LayerExplosion}
	return id
}

// SpawnItem кладёт усиление в точку (cx, cy).
func (s *Spawner) SpawnItem(cx, cy float64, tick int) types.EntityID {
	drop := defs.SpeedItem
	id := s.ecs.NewEntity()
	s.ecs.Bodies[id] = &component.Body{Rect: utils.RectFromCenter(cx, cy, drop.Width, drop.Height)}
	s.ecs.Items[id] = &component.Item{SpawnTick: tick, Lifetime: drop.Lifetime, SpeedBonus: drop.SpeedBonus}
	s.ecs.Renderables[id] = &component.Renderable{Sprite: drop.Sprite, Layer: component.LayerItem}
	s.eventDispatcher.Dispatch(event.Event{Type: event.ItemSpawned, Data: event.ItemData{ID: id, Player: -1}})
	return id
}
