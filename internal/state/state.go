// internal/state/state.go
package state

import (
	"go-lane-defense/internal/app"
	"go-lane-defense/internal/assets"
	"go-lane-defense/pkg/logger"

	"github.com/hajimehoshi/ebiten/v2"
)

// State is one screen of the window.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Resources are shared by every screen.
type Resources struct {
	Factory app.Factory
	Fonts   *assets.Fonts
	Log     *logger.Logger
}

// StateMachine переключает экраны.
type StateMachine struct {
	current State
	quit    bool
	res     Resources
}

// NewStateMachine создаёт новую машину состояний без начального состояния
func NewStateMachine(res Resources) *StateMachine {
	if res.Log == nil {
		res.Log = logger.Discard()
	}
	return &StateMachine{res: res}
}

func (sm *StateMachine) Resources() Resources { return sm.res }
func (sm *StateMachine) Current() State       { return sm.current }

// SetState устанавливает новое состояние
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit() // Выход из текущего состояния, если оно есть
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter() // Вход в новое состояние, только если оно не nil
	}
}

// RequestQuit asks the window loop to close after this frame.
func (sm *StateMachine) RequestQuit() { sm.quit = true }

func (sm *StateMachine) ShouldQuit() bool { return sm.quit }

// Update обновляет текущее состояние
func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

// Draw отрисовывает текущее состояние
func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
