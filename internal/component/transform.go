// internal/component/transform.go
package component

import (
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// Transform — локальное положение объекта относительно родителя.
type Transform struct {
	Pos   f64.Vec2
	Angle float64
	Scale f64.Vec2
}

// NewTransform returns a unit-scale transform at (x, y).
func NewTransform(x, y, angle float64) Transform {
	return Transform{Pos: f64.Vec2{x, y}, Angle: angle, Scale: f64.Vec2{1, 1}}
}

// Matrix composes Translate · Rotate · Scale.
func (t Transform) Matrix() ebiten.GeoM {
	var m ebiten.GeoM
	m.Scale(t.Scale[0], t.Scale[1])
	m.Rotate(t.Angle)
	m.Translate(t.Pos[0], t.Pos[1])
	return m
}

// WorldTransform — кэш мировой матрицы и мировой точки начала координат.
type WorldTransform struct {
	Matrix ebiten.GeoM
	Pos    f64.Vec2
}
