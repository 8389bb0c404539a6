// internal/system/combat.go
package system

import (
	"fmt"

	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/event"
	"go-kokaton-musou/internal/types"
)

// CollisionRule — одна пара групп сущностей и то, что происходит при пересечении.
// Effect вызывается до уничтожения, поэтому видит положение обеих сторон,
// и возвращает конечное состояние партии или PhasePlaying.
type CollisionRule struct {
	Name          string
	Sources       func() []types.EntityID
	Targets       func() []types.EntityID
	DestroySource bool
	DestroyTarget bool
	Effect        func(src types.EntityID, hits []types.EntityID) component.Phase
}

// CombatSystem проверяет правила столкновений строго по порядку.
// Первое правило, закончившее партию, прекращает проверку.
type CombatSystem struct {
	ecs             *entity.ECS
	spawner         *Spawner
	eventDispatcher *event.Dispatcher
	rules           []CollisionRule
	tick            int
}

func NewCombatSystem(ecs *entity.ECS, spawner *Spawner, eventDispatcher *event.Dispatcher, players []defs.PlayerDefinition) *CombatSystem {
	s := &CombatSystem{ecs: ecs, spawner: spawner, eventDispatcher: eventDispatcher}
	s.rules = s.buildRules(players)
	return s
}

// Rules возвращает правила в порядке проверки.
func (s *CombatSystem) Rules() []CollisionRule {
	return s.rules
}

// Resolve применяет все правила. Возвращает конечное состояние и имя правила,
// которое к нему привело, либо PhasePlaying и "".
func (s *CombatSystem) Resolve(tick int) (component.Phase, string) {
	s.tick = tick
	for _, rule := range s.rules {
		if phase := s.apply(rule); phase.Terminal() {
			return phase, rule.Name
		}
	}
	return component.PhasePlaying, ""
}

func (s *CombatSystem) apply(rule CollisionRule) component.Phase {
	targets := rule.Targets()
	if len(targets) == 0 {
		return component.PhasePlaying
	}
	for _, src := range rule.Sources() {
		srcBody, ok := s.ecs.Bodies[src]
		if !ok {
			continue
		}
		var hits []types.EntityID
		for _, dst := range targets {
			dstBody, alive := s.ecs.Bodies[dst]
			if alive && srcBody.Rect.Overlaps(dstBody.Rect) {
				hits = append(hits, dst)
			}
		}
		if len(hits) == 0 {
			continue
		}

		phase := component.PhasePlaying
		if rule.Effect != nil {
			phase = rule.Effect(src, hits)
		}
		if rule.DestroyTarget {
			for _, dst := range hits {
				s.ecs.Remove(dst)
			}
		}
		if rule.DestroySource {
			s.ecs.Remove(src)
		}
		if phase.Terminal() {
			return phase
		}
	}
	return component.PhasePlaying
}

func (s *CombatSystem) buildRules(players []defs.PlayerDefinition) []CollisionRule {
	beams := s.projectiles(component.ProjectileBeam)
	bombs := s.projectiles(component.ProjectileBomb)
	bossBeams := s.projectiles(component.ProjectileBossBeam)

	rules := []CollisionRule{
		{
			Name:          "standard enemy x beam",
			Sources:       s.enemies(defs.EnemyStandard),
			Targets:       beams,
			DestroySource: true,
			DestroyTarget: true,
			Effect:        s.killEnemy,
		},
		{
			Name:          "bomber x beam",
			Sources:       s.enemies(defs.EnemyBomber),
			Targets:       beams,
			DestroySource: true,
			DestroyTarget: true,
			Effect:        s.killEnemy,
		},
		{
			Name:          "elite x beam",
			Sources:       s.enemies(defs.EnemyElite),
			Targets:       beams,
			DestroyTarget: true,
			Effect:        s.damageElite,
		},
		{
			Name:          "bomb x beam",
			Sources:       bombs,
			Targets:       beams,
			DestroySource: true,
			DestroyTarget: true,
			Effect:        s.destroyBomb,
		},
	}

	for _, p := range players {
		if p.CollectsItems {
			rules = append(rules, CollisionRule{
				Name:          playerRuleName(p, "item"),
				Sources:       s.player(p.Index),
				Targets:       s.ecs.ItemIDs,
				DestroyTarget: true,
				Effect:        s.collectItems,
			})
		}
	}
	for _, p := range players {
		if hazards := s.hazardEnemies(p); hazards != nil {
			rules = append(rules, CollisionRule{
				Name:          playerRuleName(p, "enemy"),
				Sources:       s.player(p.Index),
				Targets:       hazards,
				DestroyTarget: true,
				Effect:        endWith(component.PhaseGameOver),
			})
		}
	}
	rules = append(rules, CollisionRule{
		Name:          "boss x beam",
		Sources:       s.ecs.BossIDs,
		Targets:       beams,
		DestroyTarget: true,
		Effect:        s.damageBoss,
	})

	for _, p := range players {
		if p.Hits(defs.HazardBossBeam) {
			rules = append(rules, CollisionRule{
				Name:          playerRuleName(p, "boss beam"),
				Sources:       s.player(p.Index),
				Targets:       bossBeams,
				DestroyTarget: true,
				Effect:        endWith(component.PhaseBossDefeat),
			})
		}
	}
	return rules
}

func playerRuleName(p defs.PlayerDefinition, what string) string {
	return fmt.Sprintf("player %d x %s", p.Index+1, what)
}

func endWith(phase component.Phase) func(types.EntityID, []types.EntityID) component.Phase {
	return func(types.EntityID, []types.EntityID) component.Phase { return phase }
}

// Выборки для правил.

func (s *CombatSystem) enemies(kind defs.EnemyKind) func() []types.EntityID {
	return func() []types.EntityID {
		var ids []types.EntityID
		for _, id := range s.ecs.EnemyIDs() {
			if s.ecs.Enemies[id].Kind == kind {
				ids = append(ids, id)
			}
		}
		return ids
	}
}

func (s *CombatSystem) hazardEnemies(p defs.PlayerDefinition) func() []types.EntityID {
	var kinds []defs.EnemyKind
	for _, kind := range []defs.EnemyKind{defs.EnemyStandard, defs.EnemyElite, defs.EnemyBomber} {
		if p.Hits(defs.HazardOf(kind)) {
			kinds = append(kinds, kind)
		}
	}
	if len(kinds) == 0 {
		return nil
	}
	return func() []types.EntityID {
		var ids []types.EntityID
		for _, id := range s.ecs.EnemyIDs() {
			for _, kind := range kinds {
				if s.ecs.Enemies[id].Kind == kind {
					ids = append(ids, id)
					break
				}
			}
		}
		return ids
	}
}

func (s *CombatSystem) projectiles(kind component.ProjectileKind) func() []types.EntityID {
	return func() []types.EntityID { return s.ecs.ProjectilesOf(kind) }
}

func (s *CombatSystem) player(index int) func() []types.EntityID {
	return func() []types.EntityID {
		if id, _, ok := s.ecs.PlayerByIndex(index); ok {
			return []types.EntityID{id}
		}
		return nil
	}
}

// Эффекты правил.

func (s *CombatSystem) killEnemy(src types.EntityID, _ []types.EntityID) component.Phase {
	enemy := s.ecs.Enemies[src]
	def := defs.EnemyDef(enemy.Kind)
	body := s.ecs.Bodies[src]

	s.spawner.SpawnExplosion(body.Rect, def.ExplosionLife)
	cx, cy := body.Rect.Center()
	s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyKilled, Data: event.KillData{
		ID:      src,
		Kind:    enemy.Kind.String(),
		Points:  def.Score,
		X:       cx,
		Y:       cy,
		Counted: def.CountsKills,
		Tick:    s.tick,
	}})
	return component.PhasePlaying
}

// damageElite снимает по единице здоровья за каждый попавший луч.
func (s *CombatSystem) damageElite(src types.EntityID, hits []types.EntityID) component.Phase {
	enemy := s.ecs.Enemies[src]
	for range hits {
		if enemy.Damage() {
			s.killEnemy(src, hits)
			s.ecs.Remove(src)
			return component.PhasePlaying
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.EnemyDamaged, Data: event.DamageData{ID: src, Remained: enemy.HP}})
	}
	return component.PhasePlaying
}

func (s *CombatSystem) destroyBomb(src types.EntityID, _ []types.EntityID) component.Phase {
	body := s.ecs.Bodies[src]
	s.spawner.SpawnExplosion(body.Rect, config.BombExplosionLife)
	cx, cy := body.Rect.Center()
	s.eventDispatcher.Dispatch(event.Event{Type: event.BombDestroyed, Data: event.KillData{
		ID:     src,
		Kind:   "bomb",
		Points: config.ScorePerBomb,
		X:      cx,
		Y:      cy,
		Tick:   s.tick,
	}})
	return component.PhasePlaying
}

func (s *CombatSystem) collectItems(src types.EntityID, hits []types.EntityID) component.Phase {
	player := s.ecs.Players[src]
	for _, id := range hits {
		player.Speed += s.ecs.Items[id].SpeedBonus
		s.eventDispatcher.Dispatch(event.Event{Type: event.ItemCollected, Data: event.ItemData{ID: id, Player: player.Index}})
	}
	return component.PhasePlaying
}

// damageBoss: каждый попавший луч взрывается и снимает единицу здоровья.
func (s *CombatSystem) damageBoss(src types.EntityID, hits []types.EntityID) component.Phase {
	boss := s.ecs.Bosses[src]
	body := s.ecs.Bodies[src]
	for _, beamID := range hits {
		s.spawner.SpawnExplosion(s.ecs.Bodies[beamID].Rect, config.ExplosionLife)
		if boss.Damage() {
			s.spawner.SpawnExplosion(body.Rect, config.ExplosionLife)
			cx, cy := body.Rect.Center()
			s.eventDispatcher.Dispatch(event.Event{Type: event.BossDefeated, Data: event.KillData{
				ID:     src,
				Kind:   "boss",
				Points: config.ScorePerBoss,
				X:      cx,
				Y:      cy,
				Tick:   s.tick,
			}})
			s.ecs.Remove(src)
			return component.PhaseGameClear
		}
		s.eventDispatcher.Dispatch(event.Event{Type: event.BossDamaged, Data: event.DamageData{ID: src, Remained: boss.Health}})
	}
	return component.PhasePlaying
}
