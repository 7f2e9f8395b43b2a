package interfaces

// Scoreboard is the read-only part of a game that the HUD shows.
type Scoreboard interface {
	Wave() int
	MaxWaves() int
	Gold() int
	Lives() int
}
