// internal/app/game.go
package app

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/config"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/interfaces"
	"go-lane-defense/internal/system"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/logger"

	"github.com/google/uuid"
)

var _ interfaces.Scoreboard = (*Game)(nil)

// Game holds the main game state and runs turns. It is not safe for
// concurrent use: the presentation layer calls one method per user action.
type Game struct {
	id              string
	rules           config.Rules
	board           *entity.Board
	player          *component.PlayerState
	turn            int
	log             *logger.Logger
	EventDispatcher *event.Dispatcher

	CombatSystem   *system.CombatSystem
	MovementSystem *system.MovementSystem
	CleanupSystem  *system.CleanupSystem
	WaveSystem     *system.WaveSystem
	StateSystem    *system.StateSystem
	PlayerSystem   *system.PlayerSystem
}

// TurnReport describes one resolved turn.
type TurnReport struct {
	Turn   int // the turn that was just played
	Events []event.Event
	Phase  component.Phase
}

type options struct {
	rules      config.Rules
	rng        utils.RandomSource
	dispatcher *event.Dispatcher
	log        *logger.Logger
}

// Option configures NewGame.
type Option func(*options)

// WithRules replaces the default rules. Invalid rules are ignored in favour
// of the defaults; validate with Rules.Validate first.
func WithRules(r config.Rules) Option {
	return func(o *options) {
		if r.Validate() == nil {
			o.rules = r
		}
	}
}

// WithRandom sets the source used to pick wave monsters.
func WithRandom(src utils.RandomSource) Option {
	return func(o *options) { o.rng = src }
}

// WithDispatcher lets the caller subscribe to game events before the game starts.
func WithDispatcher(d *event.Dispatcher) Option {
	return func(o *options) { o.dispatcher = d }
}

func WithLogger(l *logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// NewGame initializes a new game in WAVE_PENDING at wave 1. Call Start or
// EndTurn to bring in the first wave.
func NewGame(opts ...Option) *Game {
	o := options{rules: config.DefaultRules()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = utils.NewPRNGService(0)
	}
	if o.dispatcher == nil {
		o.dispatcher = event.NewDispatcher()
	}
	if o.log == nil {
		o.log = logger.Discard()
	}

	board := entity.NewBoard(o.rules.Lanes, o.rules.Width)
	player := &component.PlayerState{Gold: o.rules.StartingGold, Lives: o.rules.StartingLives}

	g := &Game{
		id:              uuid.NewString(),
		rules:           o.rules,
		board:           board,
		player:          player,
		turn:            config.StartingTurn,
		log:             o.log,
		EventDispatcher: o.dispatcher,
	}
	g.PlayerSystem = system.NewPlayerSystem(player, o.dispatcher)
	g.CombatSystem = system.NewCombatSystem(board, o.dispatcher)
	g.MovementSystem = system.NewMovementSystem(board)
	g.CleanupSystem = system.NewCleanupSystem(board, o.dispatcher, o.rules.Bounty)
	g.WaveSystem = system.NewWaveSystem(board, o.rng, o.dispatcher, o.log)
	g.StateSystem = system.NewStateSystem(board, player, g.WaveSystem, o.dispatcher, o.log,
		config.StartingWave, o.rules.MaxWaves)

	g.log.Info("new game %s: %dx%d board, %d gold, %d lives, %d waves",
		g.id, o.rules.Lanes, o.rules.Width, player.Gold, player.Lives, o.rules.MaxWaves)
	return g
}

// Start spawns the first pending wave. Calling it again is a no-op.
func (g *Game) Start() []event.Event {
	return g.StateSystem.SwitchToWaveState()
}

// RunAttackPhase lets every tower hit at most one monster.
func (g *Game) RunAttackPhase() []event.Event {
	return g.CombatSystem.Update()
}

// RunMovementPhase advances every live monster.
func (g *Game) RunMovementPhase() {
	g.MovementSystem.Update()
}

// RunCleanupPhase removes escaped and defeated monsters and settles lives and gold.
func (g *Game) RunCleanupPhase() []event.Event {
	return g.CleanupSystem.Update()
}

// ResolveTurnEnd checks for loss, wave clear, win and spawns the next wave.
func (g *Game) ResolveTurnEnd() []event.Event {
	return g.StateSystem.Resolve()
}

// EndTurn plays a full turn: attack, movement, cleanup, then the
// termination check. It does nothing once the game is over.
func (g *Game) EndTurn() TurnReport {
	if g.IsGameOver() {
		return TurnReport{Turn: g.turn, Phase: g.Phase()}
	}
	var events []event.Event
	events = append(events, g.Start()...)
	events = append(events, g.RunAttackPhase()...)
	g.RunMovementPhase()
	events = append(events, g.RunCleanupPhase()...)
	events = append(events, g.ResolveTurnEnd()...)

	report := TurnReport{Turn: g.turn, Events: events, Phase: g.Phase()}
	g.turn++
	return report
}

// Forfeit abandons the game. It counts as a loss.
func (g *Game) Forfeit() []event.Event {
	return g.StateSystem.Forfeit()
}

// IsGameOver reports whether the game is won or lost. Lives at zero count
// as lost even before ResolveTurnEnd runs.
func (g *Game) IsGameOver() bool {
	return g.Phase().IsTerminal() || g.player.Lives <= 0
}

// WaveCleared reports whether the current wave has no monsters left and
// the player is still alive.
func (g *Game) WaveCleared() bool {
	if g.Phase() == component.WavePending || g.player.Lives <= 0 || g.Phase() == component.GameLost {
		return false
	}
	return len(g.board.Monsters()) == 0
}

func (g *Game) Won() bool  { return g.Phase() == component.GameWon }
func (g *Game) Lost() bool { return g.Phase() == component.GameLost || g.player.Lives <= 0 }

func (g *Game) ID() string                  { return g.id }
func (g *Game) Rules() config.Rules         { return g.rules }
func (g *Game) Phase() component.Phase      { return g.StateSystem.Current() }
func (g *Game) Gold() int                   { return g.player.Gold }
func (g *Game) Lives() int                  { return g.player.Lives }
func (g *Game) Wave() int                   { return g.StateSystem.Wave() }
func (g *Game) MaxWaves() int               { return g.StateSystem.MaxWaves() }
func (g *Game) Turn() int                   { return g.turn }
func (g *Game) Board() entity.BoardSnapshot { return g.board.Snapshot() }
func (g *Game) RenderState() [][]rune       { return g.board.RenderState() }
