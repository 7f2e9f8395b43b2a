package system

import (
	"go-lane-defense/internal/entity"
	"go-lane-defense/internal/event"
)

// CombatSystem управляет атакой башен
type CombatSystem struct {
	board      *entity.Board
	dispatcher *event.Dispatcher
}

func NewCombatSystem(board *entity.Board, dispatcher *event.Dispatcher) *CombatSystem {
	return &CombatSystem{board: board, dispatcher: dispatcher}
}

// Update lets every tower, in placement order, hit the first live monster
// in its lane and range. Monsters are scanned in insertion order, not by
// distance or health, and each tower fires at most once.
func (s *CombatSystem) Update() []event.Event {
	var events []event.Event
	for _, tower := range s.board.Towers() {
		for _, monster := range s.board.Monsters() {
			if !tower.CanHit(monster) {
				continue
			}
			monster.TakeDamage(tower.Damage)
			e := event.Event{Type: event.TowerAttacked, Data: event.AttackData{
				TowerName:   tower.Name,
				MonsterID:   monster.ID,
				MonsterName: monster.Name,
				Damage:      tower.Damage,
				Lane:        tower.Lane,
			}}
			s.dispatcher.Dispatch(e)
			events = append(events, e)
			break
		}
	}
	return events
}
