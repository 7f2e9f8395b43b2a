package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
)

// ErrInvalidRules is wrapped by every Rules.Validate failure.
var ErrInvalidRules = errors.New("invalid rules")

// Rules are the tunable numbers of a game. Zero values are not defaults:
// start from DefaultRules.
type Rules struct {
	StartingGold  int `json:"starting_gold"`
	StartingLives int `json:"starting_lives"`
	Lanes         int `json:"lanes"`
	Width         int `json:"width"`
	MaxWaves      int `json:"max_waves"`
	Bounty        int `json:"bounty"`
}

// DefaultRules returns the standard 3x6 board, 150 gold, 10 lives, 5 waves.
func DefaultRules() Rules {
	return Rules{
		StartingGold:  StartingGold,
		StartingLives: StartingLives,
		Lanes:         DefaultLanes,
		Width:         DefaultWidth,
		MaxWaves:      MaxWaves,
		Bounty:        DefeatBounty,
	}
}

// Validate checks that every field is usable.
func (r Rules) Validate() error {
	switch {
	case r.StartingGold < 0:
		return fmt.Errorf("%w: starting_gold %d is negative", ErrInvalidRules, r.StartingGold)
	case r.StartingLives <= 0:
		return fmt.Errorf("%w: starting_lives must be positive, got %d", ErrInvalidRules, r.StartingLives)
	case r.Lanes <= 0:
		return fmt.Errorf("%w: lanes must be positive, got %d", ErrInvalidRules, r.Lanes)
	case r.Width <= 0:
		return fmt.Errorf("%w: width must be positive, got %d", ErrInvalidRules, r.Width)
	case r.MaxWaves <= 0:
		return fmt.Errorf("%w: max_waves must be positive, got %d", ErrInvalidRules, r.MaxWaves)
	case r.Bounty < 0:
		return fmt.Errorf("%w: bounty %d is negative", ErrInvalidRules, r.Bounty)
	}
	return nil
}

// ParseRules decodes JSON on top of DefaultRules, so missing fields keep defaults.
func ParseRules(data []byte) (Rules, error) {
	rules := DefaultRules()
	if err := json.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("failed to unmarshal rules: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, err
	}
	return rules, nil
}

// LoadRules reads a rules file. An empty path yields DefaultRules.
func LoadRules(path string) (Rules, error) {
	if path == "" {
		return DefaultRules(), nil
	}
	file, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("failed to read rules file: %w", err)
	}
	return ParseRules(file)
}
