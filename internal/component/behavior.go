// internal/component/behavior.go
package component

import (
	"slices"

	"go-stg-engine/internal/types"
)

// BehaviorKind — реакция объекта на собственное попадание.
type BehaviorKind int

const (
	BehaviorNone BehaviorKind = iota
	BehaviorDestroy
	BehaviorPierce
	BehaviorReflect
	BehaviorSplit
)

// ReflectAxis selects which velocity component a Reflect behavior mirrors.
type ReflectAxis int

const (
	AxisAuto ReflectAxis = iota
	// AxisHorizontal mirrors the horizontal velocity component.
	AxisHorizontal
	// AxisVertical mirrors the vertical velocity component.
	AxisVertical
)

// EffectKind — эффект, применяемый к поражённому объекту.
type EffectKind int

const (
	EffectDamage EffectKind = iota
	EffectModify
)

// OnHitEffect is applied to the struck object.
type OnHitEffect struct {
	Kind       EffectKind
	Amount     int     // Damage
	Property   string  // Modify
	Multiplier float64 // Modify
}

// Behavior is mutable per-instance state; counters only ever decrease.
type Behavior struct {
	Kind BehaviorKind

	// Pierce
	Remaining int
	// Struck lists objects a piercing shot already went through; they are
	// not hit again while the shot is still inside them.
	Struck []types.Handle

	// Reflect
	Axis        ReflectAxis
	BouncesLeft int
	Dampen      float64

	// Split
	SpawnArchetype string
	Count          int
	SpreadAngle    float64
	Speed          float64

	OnHit []OnHitEffect
}

// Clone returns a copy that shares no mutable state with b.
func (b *Behavior) Clone() *Behavior {
	if b == nil {
		return nil
	}
	c := *b
	if b.OnHit != nil {
		c.OnHit = make([]OnHitEffect, len(b.OnHit))
		copy(c.OnHit, b.OnHit)
	}
	c.Struck = slices.Clone(b.Struck)
	return &c
}

// AlreadyStruck reports whether a piercing shot went through h before.
func (b *Behavior) AlreadyStruck(h types.Handle) bool {
	return b != nil && b.Kind == BehaviorPierce && slices.Contains(b.Struck, h)
}

// MarkStruck records h for a piercing shot.
func (b *Behavior) MarkStruck(h types.Handle) {
	if b != nil && b.Kind == BehaviorPierce {
		b.Struck = append(b.Struck, h)
	}
}
