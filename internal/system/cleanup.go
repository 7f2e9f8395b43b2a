package system

import (
	"go-lane-defense/internal/component"
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// CleanupSystem removes escaped and defeated monsters.
type CleanupSystem struct {
	board      *entity.Board
	dispatcher *event.Dispatcher
	bounty     int
}

func NewCleanupSystem(board *entity.Board, dispatcher *event.Dispatcher, bounty int) *CleanupSystem {
	return &CleanupSystem{board: board, dispatcher: dispatcher, bounty: bounty}
}

// Update walks the monsters in order. Escape is checked before death, so a
// dead monster past the last column still costs a life.
func (s *CleanupSystem) Update() []event.Event {
	var events []event.Event
	remaining := make([]*component.Monster, 0, len(s.board.Monsters()))
	for _, monster := range s.board.Monsters() {
		var e event.Event
		switch {
		case monster.Escaped(s.board.Width):
			e = event.Event{Type: event.MonsterEscaped, Data: event.MonsterData{
				MonsterID:   monster.ID,
				MonsterName: monster.Name,
				Lane:        monster.Lane,
			}}
		case !monster.IsAlive():
			e = event.Event{Type: event.MonsterDefeated, Data: event.MonsterData{
				MonsterID:   monster.ID,
				MonsterName: monster.Name,
				Lane:        monster.Lane,
				Gold:        s.bounty,
			}}
		default:
			remaining = append(remaining, monster)
			continue
		}
		s.dispatcher.Dispatch(e)
		events = append(events, e)
	}
	s.board.SetMonsters(remaining)
	return events
}
