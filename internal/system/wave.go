// internal/system/wave.go
package system

import (
	"go-kokaton-musou/internal/defs"
)

// WaveSystem выпускает врагов и босса по расписанию defs.SpawnSchedule.
type WaveSystem struct {
	spawner  *Spawner
	schedule []defs.SpawnRule
}

func NewWaveSystem(spawner *Spawner) *WaveSystem {
	return &WaveSystem{spawner: spawner, schedule: defs.SpawnSchedule}
}

func (s *WaveSystem) Update(tick int) {
	for _, rule := range s.schedule {
		if !rule.Due(tick) {
			continue
		}
		switch rule.Kind {
		case defs.SpawnStandard:
			s.spawner.SpawnEnemy(defs.EnemyStandard)
		case defs.SpawnBoss:
			s.spawner.SpawnBoss()
		case defs.SpawnElite:
			s.spawner.SpawnEnemy(defs.EnemyElite)
		case defs.SpawnBomber:
			s.spawner.SpawnEnemy(defs.EnemyBomber)
		}
	}
}
