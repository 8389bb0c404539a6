// internal/ui/banner.go
package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
)

// SpriteDrawer рисует спрайт с центром в точке.
type SpriteDrawer interface {
	SpriteAt(screen *ebiten.Image, id defs.SpriteID, cx, cy, scale float64)
}

// Banner рисует финальные экраны поверх замершего мира.
type Banner struct {
	fonts   *Fonts
	sprites SpriteDrawer
	score   *ScoreIndicator
}

func NewBanner(fonts *Fonts, sprites SpriteDrawer, score *ScoreIndicator) *Banner {
	return &Banner{fonts: fonts, sprites: sprites, score: score}
}

// Draw рисует экран для конечного состояния phase.
func (b *Banner) Draw(screen *ebiten.Image, phase component.Phase, score int) {
	switch phase {
	case component.PhaseGameOver:
		vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
		DrawCentered(screen, "GAME OVER", b.fonts.Banner, config.ScreenWidth/2, config.ScreenHeight/2, config.GameOverColor)
		b.sprites.SpriteAt(screen, defs.SpritePlayerSad, 350, 350, 0.9)
		b.sprites.SpriteAt(screen, defs.SpritePlayerSad, 780, 350, 0.9)
	case component.PhaseBossDefeat:
		// Луч босса: грустная こうかとん и итоговый счёт.
		b.sprites.SpriteAt(screen, defs.SpritePlayerSad, config.ScreenWidth/2, config.ScreenHeight/2, 1.5)
		b.score.Draw(screen, score)
	case component.PhaseGameClear:
		DrawCentered(screen, "GAME CLEAR!", b.fonts.Banner, config.ScreenWidth/2, config.ScreenHeight/2, config.GameClearColor)
	}
}

// DrawPause затемняет экран и пишет подсказку.
func (b *Banner) DrawPause(screen *ebiten.Image, hint string) {
	vector.DrawFilledRect(screen, 0, 0, config.ScreenWidth, config.ScreenHeight, config.OverlayColor, false)
	DrawCentered(screen, "PAUSED", b.fonts.Banner, config.ScreenWidth/2, config.ScreenHeight/2, config.TextLightColor)
	DrawCentered(screen, hint, b.fonts.Hint, config.ScreenWidth/2, config.ScreenHeight/2+60, config.TextLightColor)
}
