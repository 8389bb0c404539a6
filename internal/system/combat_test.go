package system

import (
	"testing"

	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/event"
)

func TestStandardEnemyBeamScenario(t *testing.T) {
	w := newWorld()
	enemy := w.addEnemy(defs.EnemyStandard, 500, 300)
	beam := w.addBeam(500, 300)

	phase, _ := w.combat.Resolve(10)
	if phase != component.PhasePlaying {
		t.Fatalf("Resolve() = %v, expected playing", phase)
	}
	if w.ecs.Alive(enemy) || w.ecs.Alive(beam) {
		t.Error("enemy and beam must both be destroyed")
	}
	if w.score.Score != config.ScorePerEnemy {
		t.Errorf("score = %d, expected %d", w.score.Score, config.ScorePerEnemy)
	}
	if len(w.ecs.Explosions) != 1 {
		t.Fatalf("explosions = %d, expected 1", len(w.ecs.Explosions))
	}
	for _, exp := range w.ecs.Explosions {
		if exp.Life != config.ExplosionLife {
			t.Errorf("explosion life = %d, expected %d", exp.Life, config.ExplosionLife)
		}
	}
	if w.loot.Kills != 1 {
		t.Errorf("kill counter = %d, expected 1", w.loot.Kills)
	}
}

func TestItemDropsOnEveryFifthKill(t *testing.T) {
	w := newWorld()
	for i := 1; i <= 10; i++ {
		cx, cy := float64(100+50*i), 200.0
		w.addEnemy(defs.EnemyStandard, cx, cy)
		w.addBeam(cx, cy)
		w.combat.Resolve(i)

		wantItems := i / 5
		if len(w.ecs.Items) != wantItems {
			t.Fatalf("after kill %d: items = %d, expected %d", i, len(w.ecs.Items), wantItems)
		}
		if i == 5 {
			for id := range w.ecs.Items {
				x, y := w.ecs.Bodies[id].Rect.Center()
				if x != cx || y != cy {
					t.Errorf("item at (%v, %v), expected killed enemy center (%v, %v)", x, y, cx, cy)
				}
				if w.ecs.Items[id].SpawnTick != 5 {
					t.Errorf("item spawn tick = %d, expected 5", w.ecs.Items[id].SpawnTick)
				}
			}
		}
	}
}

func TestCollisionRulesInIsolation(t *testing.T) {
	tests := []struct {
		name      string
		setup     func(w *world) (gone, kept []string)
		wantPhase component.Phase
		wantScore int
	}{
		{
			name: "bomber x beam",
			setup: func(w *world) ([]string, []string) {
				w.addEnemy(defs.EnemyBomber, 600, 300)
				w.addBeam(600, 300)
				return []string{"enemies", "beams"}, nil
			},
			wantScore: config.ScorePerEnemy,
		},
		{
			name: "bomb x beam",
			setup: func(w *world) ([]string, []string) {
				w.addProjectile(component.ProjectileBomb, 400, 400, 0, 0)
				w.addBeam(400, 400)
				return []string{"bombs", "beams"}, nil
			},
			wantScore: config.ScorePerBomb,
		},
		{
			name: "player 1 x standard enemy",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(0, 300, 200)
				w.addEnemy(defs.EnemyStandard, 310, 210)
				return []string{"enemies"}, []string{"players"}
			},
			wantPhase: component.PhaseGameOver,
		},
		{
			name: "player 1 x elite",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(0, 300, 200)
				w.addEnemy(defs.EnemyElite, 300, 200)
				return []string{"enemies"}, []string{"players"}
			},
			wantPhase: component.PhaseGameOver,
		},
		{
			name: "player 1 x bomber",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(0, 300, 200)
				w.addEnemy(defs.EnemyBomber, 300, 220)
				return []string{"enemies"}, []string{"players"}
			},
			wantPhase: component.PhaseGameOver,
		},
		{
			name: "player 2 x standard enemy",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(1, 300, 400)
				w.addEnemy(defs.EnemyStandard, 300, 400)
				return []string{"enemies"}, []string{"players"}
			},
			wantPhase: component.PhaseGameOver,
		},
		{
			name: "player 2 ignores elite",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(1, 300, 400)
				w.addEnemy(defs.EnemyElite, 300, 400)
				return nil, []string{"enemies", "players"}
			},
		},
		{
			name: "player 1 ignores bomb",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(0, 300, 200)
				w.addProjectile(component.ProjectileBomb, 300, 200, 0, 0)
				return nil, []string{"bombs", "players"}
			},
		},
		{
			name: "player 2 ignores bomb",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(1, 300, 400)
				w.addProjectile(component.ProjectileBomb, 300, 400, 0, 0)
				return nil, []string{"bombs", "players"}
			},
		},
		{
			name: "player 1 x boss beam",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(0, 300, 200)
				w.addProjectile(component.ProjectileBossBeam, 300, 200, -6, 0)
				return []string{"boss beams"}, []string{"players"}
			},
			wantPhase: component.PhaseBossDefeat,
		},
		{
			name: "player 2 ignores boss beam",
			setup: func(w *world) ([]string, []string) {
				w.addPlayer(1, 300, 400)
				w.addProjectile(component.ProjectileBossBeam, 300, 400, -6, 0)
				return nil, []string{"boss beams", "players"}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			w := newWorld()
			gone, kept := tc.setup(w)
			phase, _ := w.combat.Resolve(1)
			if phase != tc.wantPhase {
				t.Errorf("Resolve() phase = %v, expected %v", phase, tc.wantPhase)
			}
			if w.score.Score != tc.wantScore {
				t.Errorf("score = %d, expected %d", w.score.Score, tc.wantScore)
			}
			for _, g := range gone {
				if n := groupSize(w, g); n != 0 {
					t.Errorf("%s: %d left, expected none", g, n)
				}
			}
			for _, k := range kept {
				if n := groupSize(w, k); n != 1 {
					t.Errorf("%s: %d left, expected 1", k, n)
				}
			}
		})
	}
}

func groupSize(w *world, group string) int {
	switch group {
	case "enemies":
		return len(w.ecs.Enemies)
	case "players":
		return len(w.ecs.Players)
	case "beams":
		return w.countProjectiles(component.ProjectileBeam)
	case "bombs":
		return w.countProjectiles(component.ProjectileBomb)
	case "boss beams":
		return w.countProjectiles(component.ProjectileBossBeam)
	}
	panic("unknown group " + group)
}

func TestEliteTakesOneDamagePerBeam(t *testing.T) {
	w := newWorld()
	elite := w.addEnemy(defs.EnemyElite, 600, 300)

	w.addBeam(600, 300)
	w.combat.Resolve(1)
	if !w.ecs.Alive(elite) {
		t.Fatal("elite destroyed by the first beam")
	}
	if hp := w.ecs.Enemies[elite].HP; hp != config.EliteHP-1 {
		t.Errorf("elite HP = %d, expected %d", hp, config.EliteHP-1)
	}
	if w.countProjectiles(component.ProjectileBeam) != 0 {
		t.Error("beam must be destroyed on hit")
	}
	if w.score.Score != 0 || len(w.ecs.Explosions) != 0 {
		t.Errorf("wounded elite gave score %d and %d explosions", w.score.Score, len(w.ecs.Explosions))
	}

	w.addBeam(600, 300)
	w.combat.Resolve(2)
	if w.ecs.Alive(elite) {
		t.Fatal("elite survived at zero HP")
	}
	if w.score.Score != config.ScorePerElite {
		t.Errorf("score = %d, expected %d", w.score.Score, config.ScorePerElite)
	}
	if len(w.ecs.Explosions) != 1 {
		t.Errorf("explosions = %d, expected 1", len(w.ecs.Explosions))
	}
	if w.loot.Kills != 0 {
		t.Errorf("elite kill must not count toward item drops, kills = %d", w.loot.Kills)
	}
}

func TestEliteKilledByTwoBeamsInOneFrame(t *testing.T) {
	w := newWorld()
	elite := w.addEnemy(defs.EnemyElite, 600, 300)
	w.addBeam(590, 300)
	w.addBeam(610, 300)

	w.combat.Resolve(1)
	if w.ecs.Alive(elite) {
		t.Fatal("elite must die from two simultaneous beams")
	}
	if w.score.Score != config.ScorePerElite {
		t.Errorf("score = %d, expected %d", w.score.Score, config.ScorePerElite)
	}
	if w.countProjectiles(component.ProjectileBeam) != 0 {
		t.Error("both beams must be destroyed")
	}
}

func TestBossDefeatScenario(t *testing.T) {
	w := newWorld()
	boss := w.addBoss(800, 325, 1)
	w.addBeam(800, 325)

	phase, rule := w.combat.Resolve(900)
	if phase != component.PhaseGameClear {
		t.Fatalf("Resolve() = %v, expected game clear", phase)
	}
	if rule != "boss x beam" {
		t.Errorf("terminal rule = %q", rule)
	}
	if w.ecs.Alive(boss) {
		t.Error("boss must be destroyed")
	}
	if w.score.Score != config.ScorePerBoss {
		t.Errorf("score = %d, expected %d", w.score.Score, config.ScorePerBoss)
	}
	if w.events.count(event.BossDefeated) != 1 {
		t.Errorf("BossDefeated dispatched %d times", w.events.count(event.BossDefeated))
	}
}

func TestBossLosesOneHealthPerBeam(t *testing.T) {
	w := newWorld()
	boss := w.addBoss(800, 325, config.BossHealth)
	w.addBeam(780, 325)
	w.addBeam(820, 325)
	w.addBeam(100, 100) // мимо

	phase, _ := w.combat.Resolve(1)
	if phase != component.PhasePlaying {
		t.Fatalf("Resolve() = %v", phase)
	}
	if h := w.ecs.Bosses[boss].Health; h != config.BossHealth-2 {
		t.Errorf("boss health = %d, expected %d", h, config.BossHealth-2)
	}
	if n := w.countProjectiles(component.ProjectileBeam); n != 1 {
		t.Errorf("beams left = %d, expected only the one that missed", n)
	}
	if len(w.ecs.Explosions) != 2 {
		t.Errorf("explosions = %d, expected one per hitting beam", len(w.ecs.Explosions))
	}
	if w.score.Score != 0 {
		t.Errorf("score = %d, expected 0", w.score.Score)
	}
}

func TestPlayerCollectsItem(t *testing.T) {
	w := newWorld()
	p1 := w.addPlayer(0, 300, 200)
	p2 := w.addPlayer(1, 600, 400)
	w.addItem(300, 200, 0)
	other := w.addItem(600, 400, 0)

	w.combat.Resolve(1)
	if s := w.ecs.Players[p1].Speed; s != config.PlayerSpeed+config.ItemSpeedBonus {
		t.Errorf("player 1 speed = %v, expected %v", s, config.PlayerSpeed+config.ItemSpeedBonus)
	}
	if s := w.ecs.Players[p2].Speed; s != config.PlayerSpeed {
		t.Errorf("player 2 must not collect items, speed = %v", s)
	}
	if len(w.ecs.Items) != 1 || !w.ecs.Alive(other) {
		t.Error("only the item under player 1 must be collected")
	}
}

func TestFirstTerminalRuleWins(t *testing.T) {
	w := newWorld()
	w.addPlayer(0, 300, 200)
	w.addEnemy(defs.EnemyStandard, 300, 200)
	w.addProjectile(component.ProjectileBossBeam, 300, 200, -6, 0)

	phase, rule := w.combat.Resolve(1)
	if phase != component.PhaseGameOver {
		t.Fatalf("phase = %v, expected game over", phase)
	}
	if rule != "player 1 x enemy" {
		t.Errorf("terminal rule = %q, expected %q", rule, "player 1 x enemy")
	}
	if w.countProjectiles(component.ProjectileBossBeam) != 1 {
		t.Error("rules after the terminal one must not run")
	}
}

func TestRuleOrder(t *testing.T) {
	w := newWorld()
	want := []string{
		"standard enemy x beam",
		"bomber x beam",
		"elite x beam",
		"bomb x beam",
		"player 1 x item",
		"player 1 x enemy",
		"player 2 x enemy",
		"boss x beam",
		"player 1 x boss beam",
	}
	rules := w.combat.Rules()
	if len(rules) != len(want) {
		t.Fatalf("got %d rules, expected %d", len(rules), len(want))
	}
	for i, r := range rules {
		if r.Name != want[i] {
			t.Errorf("rule %d = %q, expected %q", i+1, r.Name, want[i])
		}
	}
}

func TestBeamHitsOnlyOneEnemy(t *testing.T) {
	w := newWorld()
	w.addEnemy(defs.EnemyStandard, 500, 300)
	w.addEnemy(defs.EnemyStandard, 520, 300)
	w.addBeam(510, 300)

	w.combat.Resolve(1)
	if len(w.ecs.Enemies) != 1 {
		t.Errorf("enemies left = %d, a beam must destroy a single enemy", len(w.ecs.Enemies))
	}
	if w.score.Score != config.ScorePerEnemy {
		t.Errorf("score = %d, expected %d", w.score.Score, config.ScorePerEnemy)
	}
}
