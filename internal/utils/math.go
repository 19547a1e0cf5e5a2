// internal/utils/math.go
package utils

import (
	"math"

	"golang.org/x/image/math/f64"
)

// NormalizeAngle нормализует угол в диапазон [-π, π]
func NormalizeAngle(angle float64) float64 {
	for angle > math.Pi {
		angle -= 2 * math.Pi
	}
	for angle < -math.Pi {
		angle += 2 * math.Pi
	}
	return angle
}

// SpreadHeadings returns n headings evenly spaced across spread and centred
// on center. A single heading is center itself.
func SpreadHeadings(center, spread float64, n int) []float64 {
	if n <= 0 {
		return nil
	}
	if n == 1 {
		return []float64{center}
	}
	out := make([]float64, n)
	start := center - spread/2
	step := spread / float64(n-1)
	for i := range out {
		out[i] = start + float64(i)*step
	}
	return out
}

// Polar returns a vector of the given length pointing at angle.
func Polar(angle, length float64) f64.Vec2 {
	return f64.Vec2{math.Cos(angle) * length, math.Sin(angle) * length}
}

// Clamp ограничивает v отрезком [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
