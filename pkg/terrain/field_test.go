package terrain

import (
	"math"
	"testing"

	"golang.org/x/image/math/f64"
	"pgregory.net/rapid"
)

func groundOnly() Config {
	return Config{Ground: LayerConfig{Type: AlgorithmHash, Threshold: 0.7}}
}

func TestDensityDeterministic(t *testing.T) {
	a := NewField(groundOnly(), 42, 10, 600)
	b := NewField(groundOnly(), 42, 10, 600)
	for x := -50.0; x < 50; x += 3.3 {
		for y := -50.0; y < 50; y += 4.1 {
			if a.Density(x, y) != b.Density(x, y) {
				t.Fatalf("Density(%v, %v) differs between equal-seed fields", x, y)
			}
			if a.Density(x, y) != a.Density(x, y) {
				t.Fatalf("Density(%v, %v) not stable across calls", x, y)
			}
		}
	}
}

func TestDensitySameCell(t *testing.T) {
	f := NewField(groundOnly(), 7, 10, 600)
	if f.Density(10, 10) != f.Density(19.9, 19.9) {
		t.Error("points in one cell should share density")
	}
	if f.Quantize(-0.1, 0) != (Cell{X: -1, Y: 0}) {
		t.Errorf("Quantize(-0.1, 0) = %v, want {-1 0}", f.Quantize(-0.1, 0))
	}
}

func TestDensityRange(t *testing.T) {
	for _, algo := range []string{AlgorithmHash, "value", "perlin", "worley", "simplex", "sin_plasma", "perlin_ridge", "unknown"} {
		cfg := Config{Ground: LayerConfig{Type: algo, Scale: 0.05, Threshold: 0.5}}
		f := NewField(cfg, 13.37, 10, 600)
		rapid.Check(t, func(t *rapid.T) {
			x := rapid.Float64Range(-1e5, 1e5).Draw(t, "x")
			y := rapid.Float64Range(-1e5, 1e5).Draw(t, "y")
			d := f.Density(x, y)
			if d < 0 || d >= 1 {
				t.Fatalf("%s: Density(%v, %v) = %v, want [0,1)", algo, x, y, d)
			}
		})
	}
}

func TestOverridePersists(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		f := NewField(groundOnly(), rapid.Float64Range(0, 100).Draw(t, "seed"), 10, 600)
		x := rapid.Float64Range(-1000, 1000).Draw(t, "x")
		y := rapid.Float64Range(-1000, 1000).Draw(t, "y")
		v := rapid.Float64Range(0, 0.999).Draw(t, "v")
		f.SetOverride(x, y, v)

		base := f.Quantize(x, y)
		for i := 0; i < 5; i++ {
			qx := (float64(base.X) + rapid.Float64Range(0, 0.999).Draw(t, "fx")) * 10
			qy := (float64(base.Y) + rapid.Float64Range(0, 0.999).Draw(t, "fy")) * 10
			if f.Quantize(qx, qy) != base {
				continue
			}
			if got := f.Density(qx, qy); got != v {
				t.Fatalf("Density(%v, %v) = %v after override, want %v", qx, qy, got, v)
			}
		}
	})
}

func TestCarveAtWorldUsesScroll(t *testing.T) {
	f := NewField(groundOnly(), 1, 10, 600)
	f.Scroll(25)
	p := f64.Vec2{33, 47}
	f.CarveAtWorld(p)
	if f.SolidAtWorld(p) {
		t.Error("carved cell should not be solid")
	}
	if d := f.Density(33, 22); d != 0 {
		t.Errorf("Density at field point = %v, want 0", d)
	}
	if d := f.Drift(); d != (f64.Vec2{0, 25}) {
		t.Errorf("Drift() = %v, want [0 25]", d)
	}
}

func TestWalls(t *testing.T) {
	cfg := Config{
		Ground: LayerConfig{Type: AlgorithmNone},
		Walls: []WallConfig{
			{Side: SideLeft, Amplitude: 0, Offset: 30},
			{Side: SideRight, Amplitude: 0, Offset: 50},
		},
	}
	f := NewField(cfg, 3, 10, 600)
	tests := []struct {
		x    float64
		want bool
	}{
		{10, true}, {29.9, true}, {30.1, false}, {300, false}, {549, false}, {551, true},
	}
	for _, tt := range tests {
		if got := f.Solid(tt.x, 123); got != tt.want {
			t.Errorf("Solid(%v) = %v, want %v", tt.x, got, tt.want)
		}
	}
}

func TestWallWidthStaysWithinAmplitude(t *testing.T) {
	f := NewField(Config{}, 9, 10, 600)
	w := WallConfig{Side: SideLeft, Amplitude: 20, Frequency: 0.02, Offset: 50}
	for y := -500.0; y < 500; y += 7 {
		got := f.wallWidth(w, y)
		if got < 30 || got > 70 || math.IsNaN(got) {
			t.Fatalf("wallWidth(%v) = %v, want within [30,70]", y, got)
		}
	}
}

func TestWallEdgeConstantWithinRow(t *testing.T) {
	f := NewField(Config{}, 5, 10, 600)
	w := WallConfig{Side: SideLeft, Amplitude: 40, Frequency: 0.3, Offset: 60}
	for row := -20.0; row < 20; row++ {
		base := f.wallWidth(w, row*10)
		for _, dy := range []float64{0.5, 3, 9.99} {
			if got := f.wallWidth(w, row*10+dy); got != base {
				t.Fatalf("wallWidth(%v) = %v, want %v (row start)", row*10+dy, got, base)
			}
		}
	}
}

func TestThresholdFallback(t *testing.T) {
	f := NewField(Config{}, 0, 10, 600)
	if f.Threshold() != defaultThreshold {
		t.Errorf("Threshold() = %v, want %v", f.Threshold(), defaultThreshold)
	}
}
