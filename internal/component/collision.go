// internal/component/collision.go
package component

import (
	"go-stg-engine/internal/types"
	"go-stg-engine/pkg/collide"
)

// CollisionProfile — что объект есть (Layer) и против чего он действует (Mask).
type CollisionProfile struct {
	Layer    types.Layer
	Mask     types.LayerMask
	Shape    collide.Shape
	Behavior *Behavior
}

// Targets reports whether this profile may act against an object on layer l.
func (p *CollisionProfile) Targets(l types.Layer) bool {
	return p != nil && p.Mask.Has(l)
}

// Clone deep-copies the profile including behavior counters.
func (p *CollisionProfile) Clone() *CollisionProfile {
	if p == nil {
		return nil
	}
	c := *p
	c.Behavior = p.Behavior.Clone()
	return &c
}
