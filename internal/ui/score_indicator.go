// internal/ui/score_indicator.go
package ui

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"

	"go-kokaton-musou/internal/config"
)

// ScoreIndicator отображает текущий счёт.
type ScoreIndicator struct {
	X, Y  int // центр надписи
	Color color.RGBA
	face  font.Face
}

// NewScoreIndicator создает индикатор счёта в левом нижнем углу.
func NewScoreIndicator(face font.Face) *ScoreIndicator {
	return &ScoreIndicator{
		X:     config.ScoreCenterX,
		Y:     config.ScoreCenterY,
		Color: config.ScoreColor,
		face:  face,
	}
}

// Text — надпись индикатора.
func (i *ScoreIndicator) Text(score int) string {
	return fmt.Sprintf("Score: %d", score)
}

// Draw отрисовывает индикатор на экране.
func (i *ScoreIndicator) Draw(screen *ebiten.Image, score int) {
	DrawCentered(screen, i.Text(score), i.face, i.X, i.Y, i.Color)
}
