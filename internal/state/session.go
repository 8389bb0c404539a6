// internal/state/session.go
package state

import (
	"github.com/charmbracelet/log"

	"go-kokaton-musou/internal/app"
	"go-kokaton-musou/internal/sound"
	"go-kokaton-musou/internal/ui"
	"go-kokaton-musou/pkg/render"
)

// Session — общие для всех состояний ресурсы окна.
type Session struct {
	Bindings Bindings
	Renderer *render.Renderer
	Fonts    *ui.Fonts
	Score    *ui.ScoreIndicator
	BossHP   *ui.BossHealthIndicator
	Banner   *ui.Banner
	Sound    *sound.Cues
	Logger   *log.Logger
	Seed     int64

	game *app.Game
}

// NewSession собирает HUD поверх рендерера и шрифтов.
func NewSession(bindings Bindings, renderer *render.Renderer, fonts *ui.Fonts, snd *sound.Cues, logger *log.Logger, seed int64) *Session {
	score := ui.NewScoreIndicator(fonts.Score)
	return &Session{
		Bindings: bindings,
		Renderer: renderer,
		Fonts:    fonts,
		Score:    score,
		BossHP:   ui.NewBossHealthIndicator(fonts.Hint),
		Banner:   ui.NewBanner(fonts, renderer, score),
		Sound:    snd,
		Logger:   logger,
		Seed:     seed,
	}
}

// NewGame начинает партию и подключает к ней звук.
func (s *Session) NewGame() *app.Game {
	g := app.NewGame(app.Options{Seed: s.Seed, Logger: s.Logger})
	if s.Sound != nil {
		s.Sound.Attach(g.EventDispatcher)
	}
	s.game = g
	return g
}

// Game — текущая партия, nil если игра ещё не начиналась.
func (s *Session) Game() *app.Game {
	return s.game
}
