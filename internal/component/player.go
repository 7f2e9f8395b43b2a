// internal/component/player.go
package component

// PlayerState хранит ресурсы игрока: золото и жизни.
type PlayerState struct {
	Gold  int
	Lives int
}

// CanAfford reports whether cost can be paid without going negative.
func (p *PlayerState) CanAfford(cost int) bool {
	return cost >= 0 && p.Gold >= cost
}

// Spend deducts cost. It returns false and changes nothing if gold is short.
func (p *PlayerState) Spend(cost int) bool {
	if !p.CanAfford(cost) {
		return false
	}
	p.Gold -= cost
	return true
}

// LoseLife takes one life, never going below zero.
func (p *PlayerState) LoseLife() {
	if p.Lives > 0 {
		p.Lives--
	}
}
