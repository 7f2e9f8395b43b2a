package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/pkg/logger"
)

// StateSystem owns the phase and wave counter and drives the transitions
// WAVE_PENDING -> WAVE_ACTIVE -> WAVE_CLEARED -> next wave | GAME_WON | GAME_LOST.
type StateSystem struct {
	board      *entity.Board
	player     *component.PlayerState
	waves      *WaveSystem
	dispatcher *event.Dispatcher
	log        *logger.Logger

	phase    component.Phase
	wave     int
	maxWaves int
}

func NewStateSystem(board *entity.Board, player *component.PlayerState, waves *WaveSystem,
	dispatcher *event.Dispatcher, log *logger.Logger, startWave, maxWaves int) *StateSystem {
	return &StateSystem{
		board:      board,
		player:     player,
		waves:      waves,
		dispatcher: dispatcher,
		log:        log,
		phase:      component.WavePending,
		wave:       startWave,
		maxWaves:   maxWaves,
	}
}

func (s *StateSystem) Current() component.Phase { return s.phase }
func (s *StateSystem) Wave() int                { return s.wave }
func (s *StateSystem) MaxWaves() int            { return s.maxWaves }

// SwitchToWaveState spawns the pending wave. It does nothing outside WAVE_PENDING.
func (s *StateSystem) SwitchToWaveState() []event.Event {
	if s.phase != component.WavePending {
		return nil
	}
	s.log.Info("wave %d of %d incoming", s.wave, s.maxWaves)
	events := s.waves.SpawnWave(s.wave)
	s.phase = component.WaveActive
	return events
}

// Resolve runs the end-of-turn check: loss first, then wave clear, which
// either wins the game or starts the next wave.
func (s *StateSystem) Resolve() []event.Event {
	if s.phase.IsTerminal() {
		return nil
	}
	if s.player.Lives <= 0 {
		return s.finish(component.GameLost, event.GameLost)
	}
	if len(s.board.Monsters()) > 0 {
		return nil
	}

	s.phase = component.WaveCleared
	cleared := event.Event{Type: event.WaveEnded, Data: event.WaveData{Wave: s.wave}}
	s.dispatcher.Dispatch(cleared)
	events := []event.Event{cleared}

	if s.wave >= s.maxWaves {
		return append(events, s.finish(component.GameWon, event.GameWon)...)
	}
	s.wave++
	s.phase = component.WavePending
	return append(events, s.SwitchToWaveState()...)
}

// Forfeit ends the game as lost without touching lives.
func (s *StateSystem) Forfeit() []event.Event {
	if s.phase.IsTerminal() {
		return nil
	}
	s.log.Info("game forfeited on wave %d", s.wave)
	return s.finish(component.GameLost, event.GameLost)
}

func (s *StateSystem) finish(phase component.Phase, t event.EventType) []event.Event {
	s.phase = phase
	s.log.Info("%s on wave %d with %d lives", phase, s.wave, s.player.Lives)
	e := event.Event{Type: t, Data: event.WaveData{Wave: s.wave}}
	s.dispatcher.Dispatch(e)
	return []event.Event{e}
}
