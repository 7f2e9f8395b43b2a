// internal/system/wave.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
	"go-lane-defense/internal/utils"
	"go-lane-defense/pkg/logger"
)

// WaveSystem spawns one monster per lane at the start of every wave.
type WaveSystem struct {
	board      *entity.Board
	rng        utils.RandomSource
	dispatcher *event.Dispatcher
	log        *logger.Logger
}

func NewWaveSystem(board *entity.Board, rng utils.RandomSource, dispatcher *event.Dispatcher, log *logger.Logger) *WaveSystem {
	return &WaveSystem{
		board:      board,
		rng:        rng,
		dispatcher: dispatcher,
		log:        log,
	}
}

// SpawnWave adds a new monster, chosen uniformly among the kinds, to the
// start of every lane.
func (s *WaveSystem) SpawnWave(waveNumber int) []event.Event {
	for lane := 0; lane < s.board.Lanes; lane++ {
		kind := utils.ChooseMonster(s.rng)
		s.board.AddMonster(component.NewMonster(kind, lane), lane)
		s.log.Debug("wave %d: %s enters lane %d", waveNumber, kind, lane+1)
	}
	e := event.Event{Type: event.WaveSpawned, Data: event.WaveData{Wave: waveNumber}}
	s.dispatcher.Dispatch(e)
	return []event.Event{e}
}
