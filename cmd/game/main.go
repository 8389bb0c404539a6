// kokaton — двухпользовательский горизонтальный шутер.
//
// Usage:
//
//	kokaton              - play
//	kokaton scores       - show the best finished sessions
//	kokaton controls     - print the resolved key bindings
//
// Global flags:
//
//	--seed <value>     - RNG seed for a reproducible session (0 = time based)
//	--db <path>        - session history database (default: ~/.kokaton/sessions.db)
//	--controls <path>  - key bindings YAML
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/cobra"

	"go-kokaton-musou/internal/app"
	"go-kokaton-musou/internal/assets"
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/sound"
	"go-kokaton-musou/internal/sound/speaker"
	"go-kokaton-musou/internal/state"
	"go-kokaton-musou/internal/storage"
	"go-kokaton-musou/internal/ui"
	"go-kokaton-musou/pkg/render"
)

var (
	flagSeed     int64
	flagDBPath   string
	flagControls string
	flagSprites  string
	flagLogLevel string
	flagTitle    bool
	flagMute     bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "kokaton",
	Short: "真！こうかとん無双 - two players against waves of aliens",
	Long: `Two kokatons hold the line against aliens, bombers, elite horses
and the boss. Player 1 collects speed items; player 2 only fears plain aliens.

Examples:
  kokaton
  kokaton --seed 42 --title
  kokaton --controls ./my-controls.yaml
  kokaton scores`,
	SilenceUsage: true,
	RunE:         runPlay,
}

func init() {
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to session history database")
	rootCmd.PersistentFlags().StringVar(&flagControls, "controls", "", "Path to key bindings YAML")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.Flags().StringVar(&flagSprites, "sprites", "", "Directory with PNG sprites (default: generated)")
	rootCmd.Flags().BoolVar(&flagTitle, "title", false, "Show the title screen before the session")
	rootCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")

	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(controlsCmd)
}

func newLogger() (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "kokaton",
		Level:           level,
	})
	return logger, nil
}

// AppGame адаптирует машину состояний к ebiten.Game.
type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		return ebiten.Termination
	}
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	return a.stateMachine.Update(deltaTime)
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.ScreenWidth, config.ScreenHeight
}

func runPlay(cmd *cobra.Command, args []string) error {
	logger, err := newLogger()
	if err != nil {
		return err
	}

	controls, err := config.LoadControls(flagControls)
	if err != nil {
		return err
	}
	bindings, err := state.ResolveBindings(controls)
	if err != nil {
		return err
	}

	sprites := assets.NewSpriteManager()
	if flagSprites != "" {
		if err := sprites.LoadDir(flagSprites); err != nil {
			return err
		}
	} else {
		sprites.LoadProcedural()
	}

	fonts, err := ui.LoadFonts(config.ScoreFontSize, config.BannerFontSize, config.HintFontSize)
	if err != nil {
		return err
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open session history", "error", err)
	}
	if store != nil {
		defer store.Close()
	}

	var out sound.Output
	if !flagMute {
		out = speaker.New()
	}
	cues := sound.NewCues(out, flagMute)

	session := state.NewSession(bindings, render.NewRenderer(sprites), fonts, cues, logger, flagSeed)

	sm := state.NewStateMachine()
	if flagTitle {
		high := 0
		if store != nil {
			if high, err = store.HighScore(); err != nil {
				logger.Warn("could not read high score", "error", err)
			}
		}
		sm.SetState(state.NewTitleState(sm, session, high))
	} else {
		sm.SetState(state.NewPlayState(sm, session))
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)
	ebiten.SetWindowClosingHandled(true)

	game := &AppGame{stateMachine: sm, lastUpdateTime: time.Now()}
	if err := ebiten.RunGame(game); err != nil {
		return fmt.Errorf("game loop: %w", err)
	}

	if g := session.Game(); g != nil {
		saveSummary(store, g.Summary(), logger)
	}
	return nil
}

// saveSummary записывает итог партии; ошибки хранилища игру не останавливают.
func saveSummary(store *storage.Store, s app.Summary, logger *log.Logger) {
	logger.Info("session summary", "outcome", s.Outcome, "score", s.Score, "kills", s.Kills, "ticks", s.Ticks, "seed", s.Seed)
	if store == nil {
		return
	}
	_, err := store.SaveSession(storage.Session{
		Outcome: s.Outcome,
		Reason:  s.Reason,
		Score:   s.Score,
		Kills:   s.Kills,
		Ticks:   s.Ticks,
		Seed:    s.Seed,
	})
	if err != nil {
		logger.Warn("could not save session", "error", err)
	}
}
