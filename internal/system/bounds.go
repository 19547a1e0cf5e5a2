// internal/system/bounds.go
package system

import (
	"go-stg-engine/internal/config"
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"
)

// BoundsSystem removes root objects that left the playfield by more than
// config.OutOfBoundsMargin. The player, bosses and effects are never culled;
// children follow their parent.
type BoundsSystem struct {
	arena *entity.Arena
}

func NewBoundsSystem(arena *entity.Arena) *BoundsSystem {
	return &BoundsSystem{arena: arena}
}

func (s *BoundsSystem) Update() {
	for _, o := range s.arena.Roots() {
		if !o.Active {
			continue
		}
		switch o.Kind {
		case types.KindPlayer, types.KindBoss, types.KindEffect:
			continue
		}
		if OutOfBounds(o.World.Pos[0], o.World.Pos[1]) {
			o.Deactivate()
		}
	}
}

// OutOfBounds reports whether (x, y) is past the cull margin.
func OutOfBounds(x, y float64) bool {
	m := config.OutOfBoundsMargin
	return x < -m || x > config.ScreenWidth+m || y < -m || y > config.ScreenHeight+m
}
