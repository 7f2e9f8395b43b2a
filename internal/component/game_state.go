package component

// Phase is the stage of the game loop.
type Phase int

const (
	WavePending Phase = iota
	WaveActive
	WaveCleared
	GameWon
	GameLost
)

func (p Phase) String() string {
	switch p {
	case WavePending:
		return "WAVE_PENDING"
	case WaveActive:
		return "WAVE_ACTIVE"
	case WaveCleared:
		return "WAVE_CLEARED"
	case GameWon:
		return "GAME_WON"
	case GameLost:
		return "GAME_LOST"
	default:
		return "UNKNOWN"
	}
}

// IsTerminal reports whether no further turns can be played.
func (p Phase) IsTerminal() bool {
	return p == GameWon || p == GameLost
}
