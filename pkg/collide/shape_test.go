package collide

import (
	"testing"

	"golang.org/x/image/math/f64"
	"pgregory.net/rapid"
)

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    Shape
		pa   f64.Vec2
		b    Shape
		pb   f64.Vec2
		want bool
	}{
		{"circles touching inside radius sum", NewCircle(5), f64.Vec2{0, 0}, NewCircle(12), f64.Vec2{10, 0}, true},
		{"circles exactly at radius sum", NewCircle(5), f64.Vec2{0, 0}, NewCircle(5), f64.Vec2{10, 0}, false},
		{"circles apart", NewCircle(1), f64.Vec2{0, 0}, NewCircle(1), f64.Vec2{0, 3}, false},
		{"rects overlap", NewRect(2, 8), f64.Vec2{0, 0}, NewRect(10, 10), f64.Vec2{11, 0}, true},
		{"rects apart on y", NewRect(2, 8), f64.Vec2{0, 0}, NewRect(10, 10), f64.Vec2{0, 18}, false},
		{"rects edge to edge", NewRect(1, 1), f64.Vec2{0, 0}, NewRect(1, 1), f64.Vec2{2, 0}, false},
		{"circle centre inside rect", NewCircle(1), f64.Vec2{0, 0}, NewRect(5, 5), f64.Vec2{1, 1}, true},
		{"circle beside rect face", NewCircle(3), f64.Vec2{7, 0}, NewRect(5, 5), f64.Vec2{0, 0}, true},
		{"circle off rect face", NewCircle(1), f64.Vec2{7, 0}, NewRect(5, 5), f64.Vec2{0, 0}, false},
		{"circle near corner", NewCircle(2), f64.Vec2{6, 6}, NewRect(5, 5), f64.Vec2{0, 0}, true},
		{"circle past corner", NewCircle(1.4), f64.Vec2{6, 6}, NewRect(5, 5), f64.Vec2{0, 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Overlaps(tt.a, tt.pa, tt.b, tt.pb); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			if got := Overlaps(tt.b, tt.pb, tt.a, tt.pa); got != tt.want {
				t.Errorf("Overlaps() swapped = %v, want %v", got, tt.want)
			}
		})
	}
}

func genShape(t *rapid.T, label string) Shape {
	if rapid.Bool().Draw(t, label+"_circle") {
		return NewCircle(rapid.Float64Range(0, 50).Draw(t, label+"_r"))
	}
	return NewRect(
		rapid.Float64Range(0, 50).Draw(t, label+"_hw"),
		rapid.Float64Range(0, 50).Draw(t, label+"_hh"),
	)
}

func genPoint(t *rapid.T, label string) f64.Vec2 {
	return f64.Vec2{
		rapid.Float64Range(-200, 200).Draw(t, label+"_x"),
		rapid.Float64Range(-200, 200).Draw(t, label+"_y"),
	}
}

func TestOverlapsSymmetric(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a, b := genShape(t, "a"), genShape(t, "b")
		pa, pb := genPoint(t, "pa"), genPoint(t, "pb")
		if Overlaps(a, pa, b, pb) != Overlaps(b, pb, a, pa) {
			t.Fatalf("asymmetric result for %+v@%v vs %+v@%v", a, pa, b, pb)
		}
	})
}

func TestPenetration(t *testing.T) {
	px, py := Penetration(NewCircle(4), f64.Vec2{0, 0}, NewRect(5, 5), f64.Vec2{8, 2})
	if px != 1 || py != 7 {
		t.Errorf("Penetration() = (%v, %v), want (1, 7)", px, py)
	}
}
