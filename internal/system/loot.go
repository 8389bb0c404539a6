// internal/system/loot.go
package system

import (
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/event"
)

// LootSystem считает учитываемые убийства и роняет предмет на каждом N-м.
type LootSystem struct {
	Kills   int
	drop    defs.ItemDrop
	spawner *Spawner
}

func NewLootSystem(spawner *Spawner, eventDispatcher *event.Dispatcher) *LootSystem {
	s := &LootSystem{drop: defs.SpeedItem, spawner: spawner}
	eventDispatcher.Subscribe(event.EnemyKilled, s)
	return s
}

func (s *LootSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.KillData)
	if !ok || !data.Counted {
		return
	}
	s.Kills++
	if s.drop.DropsOn(s.Kills) {
		s.spawner.SpawnItem(data.X, data.Y, data.Tick)
	}
}
