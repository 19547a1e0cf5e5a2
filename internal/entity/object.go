// internal/entity/object.go
package entity

import (
	"math"

	"go-stg-engine/internal/component"
	"go-stg-engine/internal/types"

	"golang.org/x/image/math/f64"
)

// Object — любая сущность симуляции, участвующая в столкновениях.
type Object struct {
	Handle    types.Handle
	Kind      types.Kind
	Archetype string
	AI        string

	Local    component.Transform
	World    component.WorldTransform
	Velocity f64.Vec2

	Parent   types.Handle
	Children []types.Handle

	HP    int
	HasHP bool
	Age   int
	// Active=false — надгробие; объект удаляется в конце тика.
	Active bool

	Profile *component.CollisionProfile
	Grid    *component.BossGrid

	Radius   float64
	Score    int
	Color    string
	Homing   bool
	Life     int // тики до исчезновения эффекта, 0 — без ограничения
	ItemType string
}

// New returns an active object of the given kind at (x, y).
func New(kind types.Kind, x, y float64) *Object {
	o := &Object{
		Kind:   kind,
		Local:  component.NewTransform(x, y, 0),
		Active: true,
	}
	o.World.Pos = o.Local.Pos
	o.World.Matrix = o.Local.Matrix()
	return o
}

// Heading returns the direction of travel in radians.
func (o *Object) Heading() float64 {
	return math.Atan2(o.Velocity[1], o.Velocity[0])
}

// Speed returns the velocity magnitude.
func (o *Object) Speed() float64 {
	return math.Hypot(o.Velocity[0], o.Velocity[1])
}

// Deactivate tombstones the object.
func (o *Object) Deactivate() {
	o.Active = false
}
