// internal/state/game_over_state.go
package state

// GameOverState — симуляция остановлена, тики больше не идут.
type GameOverState struct {
	// AtTick is the tick on which the last life was lost.
	AtTick int
}

func NewGameOverState(atTick int) *GameOverState {
	return &GameOverState{AtTick: atTick}
}

func (g *GameOverState) Enter()  {}
func (g *GameOverState) Update() {}
func (g *GameOverState) Exit()   {}
