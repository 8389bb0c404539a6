// internal/component/player.go
package component

import (
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/utils"
)

// Player — управляемая игроком こうかとん. Оба игрока устроены одинаково
// и отличаются только раскладкой и определением в defs.Players.
type Player struct {
	Index            int
	Speed            float64
	FacingX, FacingY int // последнее ненулевое направление движения

	Charging    bool
	ChargeTicks int // сколько кадров удерживается клавиша заряда
}

// NewPlayer создает игрока со стандартной скоростью, смотрящего вправо.
func NewPlayer(index int) *Player {
	return &Player{Index: index, Speed: config.PlayerSpeed, FacingX: 1}
}

// StartCharging начинает заряд выстрела, счётчик сбрасывается.
func (p *Player) StartCharging() {
	p.Charging = true
	p.ChargeTicks = 0
}

// StopCharging завершает заряд. true — заряд накоплен и нужно выпустить
// усиленный луч; короткое нажатие выстрела не даёт.
func (p *Player) StopCharging() bool {
	p.Charging = false
	return p.ChargeTicks > config.ChargeThreshold
}

// ChargeRadius — радиус кольца заряда вокруг игрока.
func (p *Player) ChargeRadius() int {
	if !p.Charging {
		return 0
	}
	return utils.MinInt(config.ChargeRadiusMax, p.ChargeTicks)
}
