// internal/script/stage.go
package script

import (
	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/interfaces"
)

// Stage is one wave of a pack. tick counts from 1 after OnStart.
type Stage interface {
	OnStart(ctx interfaces.GameContext)
	Update(tick int, ctx interfaces.GameContext)
}

// StageFactory builds a stage from its pack entry.
type StageFactory func(def defs.StageDefinition) Stage

var stageRegistry = map[string]StageFactory{}

// RegisterStage binds a stage script id.
func RegisterStage(id string, f StageFactory) {
	stageRegistry[id] = f
}

// NewStage instantiates the script named by def.Script.
func NewStage(def defs.StageDefinition) (Stage, bool) {
	f, ok := stageRegistry[def.Script]
	if !ok {
		return nil, false
	}
	return f(def), true
}

// stageFuncs is a Stage built from two optional functions.
type stageFuncs struct {
	start  func(ctx interfaces.GameContext)
	update func(tick int, ctx interfaces.GameContext)
}

func (s stageFuncs) OnStart(ctx interfaces.GameContext) {
	if s.start != nil {
		s.start(ctx)
	}
}

func (s stageFuncs) Update(tick int, ctx interfaces.GameContext) {
	if s.update != nil {
		s.update(tick, ctx)
	}
}
