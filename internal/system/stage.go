// internal/system/stage.go
package system

import (
	"fmt"
	"log/slog"

	"go-stg-engine/internal/defs"
	"go-stg-engine/internal/event"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/script"
	"go-stg-engine/pkg/terrain"
)

// StageSystem ведёт волны пака: таймер, переход к следующей волне после
// duration, смена рельефа и порога.
type StageSystem struct {
	pack            *defs.Pack
	field           *terrain.Field
	eventDispatcher *event.Dispatcher
	logger          *slog.Logger

	index   int
	timer   int
	current script.Stage
}

func NewStageSystem(pack *defs.Pack, field *terrain.Field, eventDispatcher *event.Dispatcher, logger *slog.Logger) *StageSystem {
	return &StageSystem{
		pack:            pack,
		field:           field,
		eventDispatcher: eventDispatcher,
		logger:          logger,
	}
}

// Start begins the first wave.
func (s *StageSystem) Start(ctx interfaces.GameContext) {
	s.index = 0
	s.timer = 0
	s.begin(ctx)
}

// Update advances the wave timer and runs the current script. The last
// wave never ends.
func (s *StageSystem) Update(ctx interfaces.GameContext) {
	if len(s.pack.Stages) == 0 {
		return
	}
	s.timer++
	def := s.pack.Stages[s.index]
	if s.timer > def.Duration && s.index < len(s.pack.Stages)-1 {
		s.index++
		s.timer = 0
		s.begin(ctx)
	}
	if s.current != nil {
		s.current.Update(s.timer, ctx)
	}
}

// Wave returns the zero-based index of the running wave.
func (s *StageSystem) Wave() int {
	return s.index
}

// Timer returns ticks since the running wave started.
func (s *StageSystem) Timer() int {
	return s.timer
}

func (s *StageSystem) begin(ctx interfaces.GameContext) {
	if len(s.pack.Stages) == 0 {
		return
	}
	def := s.pack.Stages[s.index]
	s.configureTerrain(def)

	st, ok := script.NewStage(def)
	if !ok {
		s.logger.Warn("unknown stage script", "script", def.Script, "wave", s.index+1)
	}
	s.current = st
	if st != nil {
		st.OnStart(ctx)
	}

	s.logger.Debug("wave started", "wave", s.index+1, "script", def.Script, "terrain", def.Terrain)
	s.eventDispatcher.Dispatch(event.Event{Type: event.WaveStarted, Data: s.index + 1})
	s.eventDispatcher.Dispatch(event.Event{Type: event.StatusText, Data: fmt.Sprintf("WAVE %d", s.index+1)})
}

func (s *StageSystem) configureTerrain(def defs.StageDefinition) {
	if s.field == nil {
		return
	}
	cfg := s.pack.Terrains[def.Terrain]
	if def.TerrainThreshold > 0 {
		cfg.Ground.Threshold = def.TerrainThreshold
	}
	s.field.Configure(cfg)
}
