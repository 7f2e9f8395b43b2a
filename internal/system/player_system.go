// internal/system/player_system.go
package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/event"
)

// PlayerSystem отвечает за ресурсы игрока: награда за убийство и потеря жизней.
type PlayerSystem struct {
	player *component.PlayerState
}

func NewPlayerSystem(player *component.PlayerState, dispatcher *event.Dispatcher) *PlayerSystem {
	s := &PlayerSystem{player: player}
	dispatcher.Subscribe(event.MonsterDefeated, s)
	dispatcher.Subscribe(event.MonsterEscaped, s)
	return s
}

// OnEvent обрабатывает события, на которые подписана система.
func (s *PlayerSystem) OnEvent(e event.Event) {
	data, ok := e.Data.(event.MonsterData)
	if !ok {
		return
	}
	switch e.Type {
	case event.MonsterDefeated:
		s.player.Gold += data.Gold
	case event.MonsterEscaped:
		s.player.LoseLife()
	}
}
