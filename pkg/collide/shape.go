// pkg/collide/shape.go
package collide

import (
	"math"

	"golang.org/x/image/math/f64"
)

// ShapeKind selects the primitive a Shape describes.
type ShapeKind uint8

const (
	Circle ShapeKind = iota
	Rect
)

// Shape is a collision primitive centred on its owner's world origin.
// Rects are axis-aligned; the owner's rotation is not applied.
type Shape struct {
	Kind       ShapeKind
	Radius     float64
	HalfWidth  float64
	HalfHeight float64
}

// NewCircle returns a circle of radius r.
func NewCircle(r float64) Shape {
	return Shape{Kind: Circle, Radius: r}
}

// NewRect returns an axis-aligned rectangle with the given half extents.
func NewRect(halfWidth, halfHeight float64) Shape {
	return Shape{Kind: Rect, HalfWidth: halfWidth, HalfHeight: halfHeight}
}

// Extents returns the half size of the shape's bounding box.
func (s Shape) Extents() (float64, float64) {
	if s.Kind == Circle {
		return s.Radius, s.Radius
	}
	return s.HalfWidth, s.HalfHeight
}

// Scaled returns s with every dimension multiplied by k.
func (s Shape) Scaled(k float64) Shape {
	s.Radius *= k
	s.HalfWidth *= k
	s.HalfHeight *= k
	return s
}

// Overlaps reports whether shape a placed at pa touches shape b placed at pb.
// The test is symmetric: Overlaps(a, pa, b, pb) == Overlaps(b, pb, a, pa).
func Overlaps(a Shape, pa f64.Vec2, b Shape, pb f64.Vec2) bool {
	switch {
	case a.Kind == Circle && b.Kind == Circle:
		dx := pb[0] - pa[0]
		dy := pb[1] - pa[1]
		r := a.Radius + b.Radius
		return dx*dx+dy*dy < r*r
	case a.Kind == Rect && b.Kind == Rect:
		dx := math.Abs(pb[0] - pa[0])
		dy := math.Abs(pb[1] - pa[1])
		return dx < a.HalfWidth+b.HalfWidth && dy < a.HalfHeight+b.HalfHeight
	case a.Kind == Circle:
		return circleRect(a, pa, b, pb)
	default:
		return circleRect(b, pb, a, pa)
	}
}

// circleRect clamps the circle centre offset into the rectangle and compares
// the remaining distance with the radius.
func circleRect(c Shape, pc f64.Vec2, r Shape, pr f64.Vec2) bool {
	dx := math.Abs(pc[0] - pr[0])
	dy := math.Abs(pc[1] - pr[1])
	ex := dx - math.Min(dx, r.HalfWidth)
	ey := dy - math.Min(dy, r.HalfHeight)
	if ex == 0 && ey == 0 {
		return true
	}
	return ex*ex+ey*ey < c.Radius*c.Radius
}

// Penetration returns how deep the bounding boxes of a and b overlap on each
// axis. Negative values mean the boxes are separated on that axis.
func Penetration(a Shape, pa f64.Vec2, b Shape, pb f64.Vec2) (float64, float64) {
	ahw, ahh := a.Extents()
	bhw, bhh := b.Extents()
	px := ahw + bhw - math.Abs(pb[0]-pa[0])
	py := ahh + bhh - math.Abs(pb[1]-pa[1])
	return px, py
}
