package app

import "go-lane-defense/internal/event"

// Factory builds a fresh game wired to d. Adapters use it to restart.
type Factory func(d *event.Dispatcher) *Game

// NewFactory returns a Factory applying opts to every game it builds.
func NewFactory(opts ...Option) Factory {
	return func(d *event.Dispatcher) *Game {
		all := make([]Option, 0, len(opts)+1)
		all = append(all, opts...)
		all = append(all, WithDispatcher(d))
		return NewGame(all...)
	}
}
