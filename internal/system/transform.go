// internal/system/transform.go
package system

import (
	"math"

	"go-stg-engine/internal/config"
	"go-stg-engine/internal/entity"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/math/f64"
)

// TransformSystem пересчитывает мировые матрицы: корни в порядке арены,
// затем дети в глубину. world = parentWorld · T·R·S.
type TransformSystem struct {
	arena *entity.Arena
}

func NewTransformSystem(arena *entity.Arena) *TransformSystem {
	return &TransformSystem{arena: arena}
}

func (s *TransformSystem) Update() {
	for _, root := range s.arena.Roots() {
		s.propagate(root, ebiten.GeoM{})
	}
}

func (s *TransformSystem) propagate(o *entity.Object, parent ebiten.GeoM) {
	m := o.Local.Matrix()
	m.Concat(parent)
	o.World.Matrix = m
	x, y := m.Apply(0, 0)
	o.World.Pos = f64.Vec2{x, y}
	for _, h := range o.Children {
		if c := s.arena.Get(h); c != nil {
			s.propagate(c, m)
		}
	}
}

// InverseTransform maps a world point into o's local space. ok is false
// when the world matrix is singular.
func InverseTransform(o *entity.Object, p f64.Vec2) (f64.Vec2, bool) {
	m := o.World.Matrix
	det := m.Element(0, 0)*m.Element(1, 1) - m.Element(0, 1)*m.Element(1, 0)
	if math.Abs(det) < config.SingularEpsilon {
		return f64.Vec2{}, false
	}
	m.Invert()
	x, y := m.Apply(p[0], p[1])
	return f64.Vec2{x, y}, true
}
