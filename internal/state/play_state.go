// internal/state/play_state.go
package state

import "go-stg-engine/internal/system"

// Session is the simulation driven by PlayState.
type Session interface {
	Tick(in system.Input)
	Over() bool
}

// InputSource supplies the input for a given tick.
type InputSource func(tick int) system.Input

// PlayState — идёт игра: один Update равен одному тику симуляции.
type PlayState struct {
	sm      *StateMachine
	session Session
	input   InputSource
	tick    int
}

func NewPlayState(sm *StateMachine, session Session, input InputSource) *PlayState {
	return &PlayState{sm: sm, session: session, input: input}
}

func (p *PlayState) Enter() {}

func (p *PlayState) Update() {
	var in system.Input
	if p.input != nil {
		in = p.input(p.tick)
	}
	p.session.Tick(in)
	p.tick++
	if p.session.Over() {
		p.sm.SetState(NewGameOverState(p.tick))
	}
}

func (p *PlayState) Exit() {}

// Ticks returns how many ticks were played.
func (p *PlayState) Ticks() int {
	return p.tick
}
