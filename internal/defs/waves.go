// internal/defs/waves.go
package defs

import "go-kokaton-musou/internal/config"

// SpawnKind — что появляется по расписанию.
type SpawnKind int

const (
	SpawnStandard SpawnKind = iota
	SpawnBoss
	SpawnElite
	SpawnBomber
)

// SpawnRule — одна строка расписания: либо каждые Every кадров, либо один раз на кадре At.
type SpawnRule struct {
	Kind  SpawnKind
	Every int
	At    int
}

// Due сообщает, срабатывает ли правило на кадре tick.
func (r SpawnRule) Due(tick int) bool {
	if r.Every > 0 {
		return tick%r.Every == 0
	}
	return tick == r.At
}

// SpawnSchedule — расписание появлений. Порядок строк важен: он определяет
// порядок обращений к генератору случайных чисел.
var SpawnSchedule = []SpawnRule{
	{Kind: SpawnStandard, Every: config.EnemySpawnInterval},
	{Kind: SpawnBoss, At: config.BossSpawnTick},
	{Kind: SpawnElite, Every: config.EliteSpawnInterval},
	{Kind: SpawnBomber, Every: config.BomberSpawnInterval},
}
