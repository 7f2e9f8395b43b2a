// internal/system/movement.go
package system

import "go-lane-defense/internal/entity"

// MovementSystem двигает живых монстров вперёд на их скорость.
// No pathing and no blocking: towers never stop a monster.
type MovementSystem struct {
	board *entity.Board
}

func NewMovementSystem(board *entity.Board) *MovementSystem {
	return &MovementSystem{board: board}
}

func (s *MovementSystem) Update() {
	for _, monster := range s.board.Monsters() {
		if monster.IsAlive() {
			monster.Move()
		}
	}
}
