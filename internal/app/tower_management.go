// internal/app/tower_management.go
package app

import (
	"errors"
	"fmt"

	"go-lane-defense/internal/component"
	"go-lane-defense/internal/defs"
	"go-lane-defense/internal/event"
)

// ErrInvalidPlacement matches every rejected placement via errors.Is.
var ErrInvalidPlacement = errors.New("invalid placement")

var (
	ErrUnknownTower     = errors.New("unknown tower kind")
	ErrInsufficientGold = errors.New("not enough gold")
	ErrOutOfBounds      = errors.New("out of bounds")
	ErrCellOccupied     = errors.New("tower already there")
	ErrGameOver         = errors.New("game is over")
)

// PlacementError is returned for a rejected tower placement. Nothing in
// the game changes when it is returned.
type PlacementError struct {
	Lane   int
	Column int
	Kind   defs.TowerKind
	Err    error
}

func (e *PlacementError) Error() string {
	return fmt.Sprintf("cannot place %s at lane %d, column %d: %v", e.Kind, e.Lane+1, e.Column+1, e.Err)
}

func (e *PlacementError) Unwrap() error { return e.Err }

func (e *PlacementError) Is(target error) bool { return target == ErrInvalidPlacement }

// PlaceTower attempts to build a tower of kind at (lane, col) and pays for it.
func (g *Game) PlaceTower(lane, col int, kind defs.TowerKind) error {
	if err := g.canPlaceTower(lane, col, kind); err != nil {
		g.log.Debug("%v", err)
		return err
	}

	tower := component.NewTower(kind, lane, col)
	g.player.Spend(tower.Cost)
	g.board.PlaceTower(lane, col, tower)

	g.log.Debug("%s placed at lane %d, column %d; %d gold left", tower.Name, lane+1, col+1, g.player.Gold)
	g.EventDispatcher.Dispatch(event.Event{Type: event.TowerPlaced, Data: event.TowerData{
		TowerName: tower.Name,
		Lane:      lane,
		Column:    col,
		Cost:      tower.Cost,
	}})
	return nil
}

// TryPlaceTower is PlaceTower reporting only success.
func (g *Game) TryPlaceTower(lane, col int, kind defs.TowerKind) bool {
	return g.PlaceTower(lane, col, kind) == nil
}

// CanAfford reports whether the player has gold for kind.
func (g *Game) CanAfford(kind defs.TowerKind) bool {
	def, ok := defs.LookupTower(kind)
	return ok && g.player.CanAfford(def.Cost)
}

// canPlaceTower checks in the same order as the placement menu: tower
// kind, gold, bounds, then the cell itself.
func (g *Game) canPlaceTower(lane, col int, kind defs.TowerKind) error {
	reject := func(err error) error {
		return &PlacementError{Lane: lane, Column: col, Kind: kind, Err: err}
	}
	if g.IsGameOver() {
		return reject(ErrGameOver)
	}
	def, ok := defs.LookupTower(kind)
	if !ok {
		return reject(ErrUnknownTower)
	}
	if !g.player.CanAfford(def.Cost) {
		return reject(ErrInsufficientGold)
	}
	if !g.board.InBounds(lane, col) {
		return reject(ErrOutOfBounds)
	}
	if g.board.HasTower(lane, col) {
		return reject(ErrCellOccupied)
	}
	return nil
}

// FriendlyMessage turns a placement error into the short text shown to the player.
func FriendlyMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrInsufficientGold):
		return "Not enough gold."
	case errors.Is(err, ErrOutOfBounds):
		return "Out of bounds."
	case errors.Is(err, ErrCellOccupied):
		return "Tower already there."
	case errors.Is(err, ErrUnknownTower):
		return "Unknown tower."
	case errors.Is(err, ErrGameOver):
		return "The game is over."
	}
	return err.Error()
}
