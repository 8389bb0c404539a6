package system

import (
	"testing"

	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/event"
	"go-kokaton-musou/internal/utils"
)

func TestExplosionLifetime(t *testing.T) {
	w := newWorld()
	vs := NewVisualEffectSystem(w.ecs, w.dispatcher)
	id := w.spawner.SpawnExplosion(utils.RectFromCenter(500, 300, 10, 10), config.ExplosionLife)

	for i := 1; i <= config.ExplosionLife; i++ {
		vs.Update(i)
		exp, ok := w.ecs.Explosions[id]
		if !ok {
			t.Fatalf("explosion removed after %d updates", i)
		}
		if want := (exp.Life / config.ExplosionFrameTicks) % 2; exp.Frame != want {
			t.Fatalf("life %d: frame = %d, expected %d", exp.Life, exp.Frame, want)
		}
		if flipped := w.ecs.Renderables[id].FlipX; flipped != (exp.Frame == 1) {
			t.Fatalf("life %d: flip = %v for frame %d", exp.Life, flipped, exp.Frame)
		}
	}
	vs.Update(config.ExplosionLife + 1)
	if w.ecs.Alive(id) {
		t.Error("explosion alive with negative life")
	}
}

func TestItemExpiresWithoutSideEffects(t *testing.T) {
	w := newWorld()
	vs := NewVisualEffectSystem(w.ecs, w.dispatcher)
	id := w.addItem(500, 300, 100)

	vs.Update(100 + config.ItemLifetimeTicks)
	if !w.ecs.Alive(id) {
		t.Fatal("item expired too early")
	}
	vs.Update(101 + config.ItemLifetimeTicks)
	if w.ecs.Alive(id) {
		t.Fatal("item outlived its lifetime")
	}
	if w.events.count(event.ItemExpired) != 1 {
		t.Errorf("ItemExpired dispatched %d times", w.events.count(event.ItemExpired))
	}
	if w.score.Score != 0 || w.loot.Kills != 0 {
		t.Errorf("expiry changed score=%d kills=%d", w.score.Score, w.loot.Kills)
	}
}
