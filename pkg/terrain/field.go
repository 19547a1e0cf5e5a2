// pkg/terrain/field.go
package terrain

import (
	"math"

	"golang.org/x/image/math/f64"
)

const (
	// AlgorithmHash is the quantized per-cell hash; it is also used for
	// unknown algorithm names.
	AlgorithmHash = "noise2d"
	// AlgorithmNone disables a layer.
	AlgorithmNone = "none"

	defaultThreshold = 0.7
)

// LayerConfig describes one noise layer of a stage.
type LayerConfig struct {
	Type      string  `json:"type"`
	Scale     float64 `json:"scale"`
	Threshold float64 `json:"threshold"`
	Color     string  `json:"color"`
}

// Side is the playfield edge a wall grows from.
type Side string

const (
	SideLeft  Side = "left"
	SideRight Side = "right"
)

// WallConfig describes a wall hugging one side of the playfield.
type WallConfig struct {
	Side      Side    `json:"side"`
	Amplitude float64 `json:"amplitude"`
	Frequency float64 `json:"frequency"`
	Offset    float64 `json:"offset"`
	Color     string  `json:"color"`
}

// Config is the per-stage terrain description.
type Config struct {
	Background LayerConfig  `json:"Background"`
	Ground     LayerConfig  `json:"Ground"`
	Walls      []WallConfig `json:"Walls"`
}

// Cell is a quantized field coordinate.
type Cell struct {
	X, Y int
}

// Field is a deterministic density function over the plane with point
// overrides for destructible terrain. Coordinates passed to Density and
// SetOverride are field coordinates; the *World helpers subtract the scroll
// offset first.
type Field struct {
	seed      float64
	cellSize  float64
	width     float64
	cfg       Config
	overrides map[Cell]float64
	scroll    float64
	step      float64
}

// NewField creates a field. seed is fixed for the whole session; width is the
// playfield width used by right-hand walls.
func NewField(cfg Config, seed, cellSize, width float64) *Field {
	if cellSize <= 0 {
		cellSize = 10
	}
	return &Field{
		seed:      seed,
		cellSize:  cellSize,
		width:     width,
		cfg:       cfg,
		overrides: make(map[Cell]float64),
	}
}

// Configure switches to another stage's terrain. Overrides and scroll persist.
func (f *Field) Configure(cfg Config) {
	f.cfg = cfg
}

// Quantize maps a field point to its cell.
func (f *Field) Quantize(x, y float64) Cell {
	return Cell{X: int(math.Floor(x / f.cellSize)), Y: int(math.Floor(y / f.cellSize))}
}

// Density returns the ground density in [0,1) at a field point.
func (f *Field) Density(x, y float64) float64 {
	c := f.Quantize(x, y)
	if v, ok := f.overrides[c]; ok {
		return v
	}
	return f.sample(f.cfg.Ground, c)
}

// SetOverride pins the density of the cell containing (x, y) to v for the
// rest of the session.
func (f *Field) SetOverride(x, y, v float64) {
	f.overrides[f.Quantize(x, y)] = v
}

// Threshold returns the ground solidity threshold.
func (f *Field) Threshold() float64 {
	if f.cfg.Ground.Threshold <= 0 {
		return defaultThreshold
	}
	return f.cfg.Ground.Threshold
}

// Solid reports whether a field point is inside ground or a wall.
func (f *Field) Solid(x, y float64) bool {
	if f.cfg.Ground.Type != AlgorithmNone && f.Density(x, y) > f.Threshold() {
		return true
	}
	return f.inWall(x, y)
}

// Scroll advances the field under the playfield by dy.
func (f *Field) Scroll(dy float64) {
	f.scroll += dy
	f.step = dy
}

// Drift returns how far the field moved in world space during the last
// Scroll. A world velocity minus Drift is the velocity relative to the ground.
func (f *Field) Drift() f64.Vec2 {
	return f64.Vec2{0, f.step}
}

// SolidAtWorld reports whether a world point is solid.
func (f *Field) SolidAtWorld(p f64.Vec2) bool {
	return f.Solid(p[0], p[1]-f.scroll)
}

// CarveAtWorld clears the ground cell under a world point.
func (f *Field) CarveAtWorld(p f64.Vec2) {
	f.SetOverride(p[0], p[1]-f.scroll, 0)
}

// wallWidth returns how far a wall reaches into the playfield at field y.
// The width is constant within a terrain row.
func (f *Field) wallWidth(w WallConfig, y float64) float64 {
	row := math.Floor(y/f.cellSize) * f.cellSize
	n := f.noise1D(row * w.Frequency)
	return w.Offset + w.Amplitude*(2*n-1)
}

func (f *Field) inWall(x, y float64) bool {
	for _, w := range f.cfg.Walls {
		width := f.wallWidth(w, y)
		switch w.Side {
		case SideLeft:
			if x < width {
				return true
			}
		case SideRight:
			if x > f.width-width {
				return true
			}
		}
	}
	return false
}

func (f *Field) sample(layer LayerConfig, c Cell) float64 {
	switch layer.Type {
	case AlgorithmNone:
		return 0
	case "", AlgorithmHash:
		return f.cellHash(c)
	}
	fn, ok := LookupNoise(layer.Type)
	if !ok {
		return f.cellHash(c)
	}
	scale := layer.Scale
	if scale <= 0 {
		scale = 1
	}
	cx := (float64(c.X) + 0.5) * f.cellSize * scale
	cy := (float64(c.Y) + 0.5) * f.cellSize * scale
	return unit(fn(cx+f.seed, cy+f.seed))
}

func (f *Field) cellHash(c Cell) float64 {
	s := math.Sin(float64(c.X)*12.9898+float64(c.Y)*78.233+f.seed) * 43758.5453
	return unit(s - math.Floor(s))
}

// noise1D is smooth value noise along one axis, in [0,1).
func (f *Field) noise1D(t float64) float64 {
	i := math.Floor(t)
	return unit(mix(hash2(i, f.seed), hash2(i+1, f.seed), smoothstep(t-i)))
}

// unit folds v into [0,1).
func unit(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	if v >= 1 {
		return math.Nextafter(1, 0)
	}
	return v
}
