// internal/system/visual_effect.go
package system

import (
	"go-stg-engine/internal/entity"
	"go-stg-engine/internal/types"
)

// VisualEffectSystem отсчитывает время жизни эффектов (вспышка бомбы и т.п.).
type VisualEffectSystem struct {
	arena *entity.Arena
}

// NewVisualEffectSystem создает новую систему визуальных эффектов.
func NewVisualEffectSystem(arena *entity.Arena) *VisualEffectSystem {
	return &VisualEffectSystem{arena: arena}
}

// Update уменьшает Life; эффект гаснет, когда Life доходит до нуля.
func (s *VisualEffectSystem) Update() {
	for _, o := range s.arena.Objects() {
		if !o.Active || o.Kind != types.KindEffect || o.Life <= 0 {
			continue
		}
		o.Life--
		if o.Life == 0 {
			o.Deactivate()
		}
	}
}
