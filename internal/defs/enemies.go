// internal/defs/enemies.go
package defs

import "go-kokaton-musou/internal/config"

// EnemyDefinition — поведение одного вида врага.
type EnemyDefinition struct {
	Kind   EnemyKind
	Width  float64
	Height float64

	// Центр при появлении: x = ScreenWidth - SpawnOffsetX, y случайный.
	SpawnOffsetX float64

	VelocityX       float64
	ActivationDelay int  // кадров до начала движения
	DropInterval    int  // 0 — не бросает бомбы
	StopsOnUpdate   bool // переходит в Stopped на первом же обновлении
	HP              int  // 0 — погибает от первого попадания
	Score           int
	ExplosionLife   int
	CountsKills     bool // учитывается в счётчике для выпадения предметов

	Sprites []SpriteID // вариант выбирается случайно при появлении
}

// EnemyLibrary — таблица поведения всех видов врагов.
var EnemyLibrary = map[EnemyKind]EnemyDefinition{
	EnemyStandard: {
		Kind:          EnemyStandard,
		Width:         config.EnemyWidth,
		Height:        config.EnemyHeight,
		VelocityX:     config.EnemySpeedX,
		Score:         config.ScorePerEnemy,
		ExplosionLife: config.ExplosionLife,
		CountsKills:   true,
		Sprites:       []SpriteID{SpriteAlien1, SpriteAlien2, SpriteAlien3},
	},
	EnemyBomber: {
		Kind:          EnemyBomber,
		Width:         config.EnemyWidth,
		Height:        config.EnemyHeight,
		SpawnOffsetX:  config.BomberSpawnOffsetX,
		DropInterval:  config.BomberDropInterval,
		StopsOnUpdate: true,
		Score:         config.ScorePerEnemy,
		ExplosionLife: config.ExplosionLife,
		Sprites:       []SpriteID{SpriteAlien1, SpriteAlien2, SpriteAlien3},
	},
	EnemyElite: {
		Kind:            EnemyElite,
		Width:           config.EliteSize,
		Height:          config.EliteSize,
		VelocityX:       config.EliteSpeedX,
		ActivationDelay: config.EliteActivationDelay,
		HP:              config.EliteHP,
		Score:           config.ScorePerElite,
		ExplosionLife:   config.ExplosionLife,
		Sprites:         []SpriteID{SpriteHorse},
	},
}

// EnemyDef возвращает определение врага; неизвестный вид — ошибка программиста.
func EnemyDef(kind EnemyKind) EnemyDefinition {
	def, ok := EnemyLibrary[kind]
	if !ok {
		panic("defs: unknown enemy kind " + kind.String())
	}
	return def
}
