// internal/ui/boss_health_indicator.go
package ui

import (
	"image/color"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"

	"go-kokaton-musou/internal/config"
)

const (
	HealthCols          = 10
	HealthCircleRadius  = 7.0
	HealthCircleSpacing = 4.0
)

var (
	healthFullColor  = color.RGBA{220, 40, 40, 255}
	healthLowColor   = color.RGBA{255, 160, 0, 255}
	healthEmptyColor = color.RGBA{0, 0, 0, 255}
	healthRimColor   = color.RGBA{255, 255, 255, 255}
)

// BossHealthIndicator отображает здоровье босса сеткой кружков.
type BossHealthIndicator struct {
	X, Y float32 // левый верхний угол сетки
	face font.Face
}

// NewBossHealthIndicator создает индикатор в правом верхнем углу экрана.
func NewBossHealthIndicator(face font.Face) *BossHealthIndicator {
	width := float32(HealthCols * (HealthCircleRadius*2 + HealthCircleSpacing))
	return &BossHealthIndicator{
		X:    float32(config.ScreenWidth) - width - 20,
		Y:    40,
		face: face,
	}
}

// Draw рисует health из maxHealth. Когда осталось не больше четверти, кружки желтеют.
func (i *BossHealthIndicator) Draw(screen *ebiten.Image, health, maxHealth int) {
	if maxHealth <= 0 {
		return
	}
	fill := healthFullColor
	if health*4 <= maxHealth {
		fill = healthLowColor
	}

	step := float32(HealthCircleRadius*2 + HealthCircleSpacing)
	for j := 0; j < maxHealth; j++ {
		row, col := j/HealthCols, j%HealthCols
		cx := i.X + float32(col)*step + HealthCircleRadius
		cy := i.Y + float32(row)*step + HealthCircleRadius

		c := healthEmptyColor
		if j < health {
			c = fill
		}
		vector.DrawFilledCircle(screen, cx, cy, HealthCircleRadius, c, true)
		vector.StrokeCircle(screen, cx, cy, HealthCircleRadius, 1, healthRimColor, true)
	}

	label := "BOSS " + strconv.Itoa(health) + "/" + strconv.Itoa(maxHealth)
	width := float32(HealthCols) * step
	DrawCentered(screen, label, i.face, int(i.X+width/2), int(i.Y)-16, healthRimColor)
}
