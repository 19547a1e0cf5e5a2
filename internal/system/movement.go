// internal/system/movement.go
package system

import (
	"log/slog"
	"math"

	"go-stg-engine/internal/config"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/interfaces"
	"go-stg-engine/internal/script"
	"go-stg-engine/internal/types"
)

// MovementSystem двигает все объекты, кроме игрока: возраст, скорость,
// AI-скрипт и самонаведение, в этом порядке.
type MovementSystem struct {
	arena  *entity.Arena
	logger *slog.Logger
	// missing запоминает неизвестные AI, чтобы не засорять лог каждый тик
	missing map[string]bool
}

func NewMovementSystem(arena *entity.Arena, logger *slog.Logger) *MovementSystem {
	return &MovementSystem{arena: arena, logger: logger, missing: make(map[string]bool)}
}

func (s *MovementSystem) Update(ctx interfaces.GameContext) {
	for _, o := range s.arena.Objects() {
		if !o.Active || o.Kind == types.KindPlayer {
			continue
		}
		o.Age++
		o.Local.Pos[0] += o.Velocity[0]
		o.Local.Pos[1] += o.Velocity[1]

		if o.AI != "" {
			if ai, ok := script.LookupAI(o.AI); ok {
				ai.Update(o, ctx)
			} else if !s.missing[o.AI] {
				s.missing[o.AI] = true
				s.logger.Warn("unknown ai", "ai", o.AI, "archetype", o.Archetype)
			}
		}

		if o.Homing {
			p := ctx.PlayerPosition()
			angle := math.Atan2(p[1]-o.World.Pos[1], p[0]-o.World.Pos[0])
			o.Velocity[0] = o.Velocity[0]*config.HomingDecay + math.Cos(angle)*config.HomingPull
			o.Velocity[1] = o.Velocity[1]*config.HomingDecay + math.Sin(angle)*config.HomingPull
		}
	}
}
