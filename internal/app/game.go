// internal/app/game.go
package app

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"go-kokaton-musou/internal/component"
	"go-kokaton-musou/internal/config"
	"go-kokaton-musou/internal/defs"
	"go-kokaton-musou/internal/entity"
	"go-kokaton-musou/internal/event"
	"go-kokaton-musou/internal/input"
	"go-kokaton-musou/internal/system"
	"go-kokaton-musou/internal/utils"
)

// Options — параметры новой партии.
type Options struct {
	Seed   int64       // 0 — случайный сид
	Logger *log.Logger // nil — без журнала
}

// Game holds the main game state and logic. Ebiten сюда не импортируется:
// партия целиком управляется вызовами Step.
type Game struct {
	ECS             *entity.ECS
	EventDispatcher *event.Dispatcher
	Rng             *utils.PRNGService

	Spawner            *system.Spawner
	PlayerSystem       *system.PlayerSystem
	WaveSystem         *system.WaveSystem
	BomberSystem       *system.BomberSystem
	CombatSystem       *system.CombatSystem
	BossSystem         *system.BossSystem
	MovementSystem     *system.MovementSystem
	ProjectileSystem   *system.ProjectileSystem
	VisualEffectSystem *system.VisualEffectSystem
	ScoreSystem        *system.ScoreSystem
	LootSystem         *system.LootSystem
	StateSystem        *system.StateSystem

	logger *log.Logger
	tick   int
	scroll int
}

// NewGame initializes a new game instance с двумя игроками в стартовых позициях.
func NewGame(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ecs := entity.NewECS()
	eventDispatcher := event.NewDispatcher()
	rng := utils.NewPRNGService(opts.Seed)
	spawner := system.NewSpawner(ecs, rng, eventDispatcher)

	g := &Game{
		ECS:                ecs,
		EventDispatcher:    eventDispatcher,
		Rng:                rng,
		Spawner:            spawner,
		PlayerSystem:       system.NewPlayerSystem(ecs, spawner),
		WaveSystem:         system.NewWaveSystem(spawner),
		BomberSystem:       system.NewBomberSystem(ecs, spawner),
		CombatSystem:       system.NewCombatSystem(ecs, spawner, eventDispatcher, defs.Players),
		BossSystem:         system.NewBossSystem(ecs, spawner),
		MovementSystem:     system.NewMovementSystem(ecs),
		ProjectileSystem:   system.NewProjectileSystem(ecs),
		VisualEffectSystem: system.NewVisualEffectSystem(ecs, eventDispatcher),
		ScoreSystem:        system.NewScoreSystem(eventDispatcher),
		LootSystem:         system.NewLootSystem(spawner, eventDispatcher),
		StateSystem:        system.NewStateSystem(eventDispatcher),
		logger:             logger,
	}

	listener := &GameEventListener{logger: logger}
	eventDispatcher.SubscribeAll(listener, loggedEvents...)

	for _, def := range defs.Players {
		spawner.SpawnPlayer(def)
	}

	logger.Info("session started", "seed", rng.Seed())
	return g
}

// Step выполняет один кадр симуляции. После перехода в конечное состояние
// вызовы ничего не меняют.
func (g *Game) Step(frame input.Frame) {
	if g.StateSystem.Current().Terminal() {
		return
	}

	g.PlayerSystem.HandleInput(frame, g.tick)
	g.WaveSystem.Update(g.tick)
	g.BomberSystem.Update(g.tick)

	if phase, rule := g.CombatSystem.Resolve(g.tick); phase.Terminal() {
		g.StateSystem.End(phase, rule, g.tick, g.Score())
		return
	}

	g.PlayerSystem.Move(frame)
	g.BossSystem.Update(g.tick)
	g.MovementSystem.Update()
	g.ProjectileSystem.Update()
	g.VisualEffectSystem.Update(g.tick)

	g.tick++
	g.scroll += config.BackgroundScrollStep
}

// Tick — номер текущего кадра.
func (g *Game) Tick() int { return g.tick }

// Scroll — счётчик прокрутки фона.
func (g *Game) Scroll() int { return g.scroll }

func (g *Game) Score() int { return g.ScoreSystem.Score }

// Kills — учитываемые для выпадения предметов убийства.
func (g *Game) Kills() int { return g.LootSystem.Kills }

func (g *Game) Phase() component.Phase { return g.StateSystem.Current() }

func (g *Game) Seed() int64 { return g.Rng.Seed() }

// Summary — итог партии для истории результатов.
type Summary struct {
	Outcome string
	Reason  string
	Score   int
	Kills   int
	Ticks   int
	Seed    int64
}

// Summary возвращает итог партии. Незавершённая партия (закрыли окно)
// получает исход "quit".
func (g *Game) Summary() Summary {
	outcome := g.Phase().String()
	if !g.Phase().Terminal() {
		outcome = OutcomeQuit
	}
	return Summary{
		Outcome: outcome,
		Reason:  g.StateSystem.Reason(),
		Score:   g.Score(),
		Kills:   g.Kills(),
		Ticks:   g.tick,
		Seed:    g.Seed(),
	}
}

// OutcomeQuit — исход партии, прерванной закрытием окна.
const OutcomeQuit = "quit"

// TerminalHold — сколько показывать финальный экран перед закрытием окна.
func TerminalHold(phase component.Phase) time.Duration {
	switch phase {
	case component.PhaseGameOver:
		return config.GameOverHold
	case component.PhaseBossDefeat:
		return config.BossDefeatHold
	case component.PhaseGameClear:
		return config.GameClearHold
	}
	return 0
}
