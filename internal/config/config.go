// internal/config/config.go
package config

import (
	"image/color"
	"time"
)

const (
	ScreenWidth  = 1100
	ScreenHeight = 650
	TPS          = 50 // кадров симуляции в секунду
	MaxDeltaTime = 0.06
	WindowTitle  = "真！こうかとん無双"

	// Игроки
	PlayerSpeed      = 10.0
	PlayerWidth      = 96
	PlayerHeight     = 86
	ChargeThreshold  = 50 // тиков удержания, после которых отпускание даёт заряженный выстрел
	ChargeRadiusMax  = 50
	ChargeRingWidth  = 2.0
	AutoFireInterval = 50

	// Лучи игроков
	BeamSpeed         = 10.0
	ChargedBeamSpeed  = 20.0
	BeamDamage        = 1
	ChargedBeamDamage = 5
	BeamWidth         = 64
	BeamHeight        = 22

	// Обычный враг
	EnemyWidth        = 70
	EnemyHeight       = 60
	EnemySpeedX       = -6.0
	EnemySpawnMarginY = 100
	EnemyMinStopBound = 50
	EnemyMinInterval  = 50
	EnemyMaxInterval  = 300

	// Враг-бомбардировщик
	BomberSpawnOffsetX = 10
	BomberDropInterval = 5

	// Элитный враг
	EliteSize            = 200
	EliteSpeedX          = -20.0
	EliteHP              = 2
	EliteActivationDelay = 50

	// Бомбы
	BombSpeed     = 10.0
	BombMinRadius = 10
	BombMaxRadius = 50

	// Босс
	BossWidth        = 220
	BossHeight       = 180
	BossSpeedX       = -3.0
	BossHealth       = 20
	BossBoundOffset  = 300 // босс останавливается на ScreenWidth - BossBoundOffset
	BossBeamInterval = 100
	BossBeamSpeedX   = -6.0
	BossBeamWidth    = 120
	BossBeamHeight   = 36

	// Расписание появления
	EnemySpawnInterval  = 200
	EliteSpawnInterval  = 200
	BomberSpawnInterval = 300
	BossSpawnTick       = 600

	// Очки
	ScorePerBomb  = 1
	ScorePerEnemy = 10
	ScorePerElite = 50
	ScorePerBoss  = 100

	// Взрывы
	ExplosionSize       = 90
	ExplosionLife       = 100
	BombExplosionLife   = 50
	ExplosionFrameTicks = 10

	// Предметы
	ItemSize          = 40
	ItemDropEvery     = 5
	ItemSpeedBonus    = 5.0
	ItemLifetimeTicks = 10 * TPS // 10 секунд симуляции

	// Фон
	BackgroundScrollStep = 4
	BackgroundTileWidth  = 1600
	BackgroundPeriod     = 3200

	// HUD
	ScoreFontSize  = 36
	BannerFontSize = 58
	HintFontSize   = 20
	ScoreCenterX   = 100
	ScoreCenterY   = ScreenHeight - 50
	OverlayAlpha   = 155
)

// Задержки финальных экранов в реальном времени.
const (
	GameOverHold   = 5 * time.Second
	BossDefeatHold = 2 * time.Second
	GameClearHold  = 3 * time.Second
)

var (
	BackgroundColor = color.RGBA{18, 24, 48, 255}
	ScoreColor      = color.RGBA{0, 0, 255, 255}
	ChargeColor     = color.RGBA{255, 0, 255, 255}
	GameOverColor   = color.RGBA{255, 255, 255, 255}
	GameClearColor  = color.RGBA{0, 255, 0, 255}
	OverlayColor    = color.RGBA{0, 0, 0, OverlayAlpha}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	BombColors      = []color.RGBA{
		{255, 0, 0, 255},
		{0, 255, 0, 255},
		{0, 0, 255, 255},
		{255, 255, 0, 255},
		{255, 0, 255, 255},
		{0, 255, 255, 255},
	}
)
