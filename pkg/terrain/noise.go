// pkg/terrain/noise.go
package terrain

import "math"

// NoiseFunc samples a 2D noise at (x, y). Results are nominally in [0, 1].
type NoiseFunc func(x, y float64) float64

var algorithms = map[string]NoiseFunc{}

// RegisterNoise makes a noise algorithm available to layer configs by name.
func RegisterNoise(name string, fn NoiseFunc) {
	algorithms[name] = fn
}

// LookupNoise returns the algorithm registered under name.
func LookupNoise(name string) (NoiseFunc, bool) {
	fn, ok := algorithms[name]
	return fn, ok
}

func fract(x float64) float64 {
	return x - math.Floor(x)
}

func mix(a, b, t float64) float64 {
	return a*(1-t) + b*t
}

func smoothstep(t float64) float64 {
	return t * t * (3 - 2*t)
}

// hash2 is the classic shader hash; deterministic for equal inputs.
func hash2(x, y float64) float64 {
	return fract(math.Sin(x*12.9898+y*78.233) * 43758.5453)
}

func grad(x, y float64) (float64, float64) {
	h := hash2(x, y) * 2 * math.Pi
	return math.Cos(h), math.Sin(h)
}

func valueNoise(x, y float64) float64 {
	i, j := math.Floor(x), math.Floor(y)
	ux, uy := smoothstep(x-i), smoothstep(y-j)
	return mix(
		mix(hash2(i, j), hash2(i+1, j), ux),
		mix(hash2(i, j+1), hash2(i+1, j+1), ux),
		uy,
	)
}

func perlinNoise(x, y float64) float64 {
	i, j := math.Floor(x), math.Floor(y)
	fx, fy := x-i, y-j
	ux, uy := smoothstep(fx), smoothstep(fy)
	dot := func(ix, iy, dx, dy float64) float64 {
		gx, gy := grad(ix, iy)
		return gx*dx + gy*dy
	}
	return mix(
		mix(dot(i, j, fx, fy), dot(i+1, j, fx-1, fy), ux),
		mix(dot(i, j+1, fx, fy-1), dot(i+1, j+1, fx-1, fy-1), ux),
		uy,
	)*0.5 + 0.5
}

func worleyNoise(x, y float64) float64 {
	i, j := math.Floor(x), math.Floor(y)
	fx, fy := x-i, y-j
	minDist := 1.0
	for yOff := -1.0; yOff <= 1; yOff++ {
		for xOff := -1.0; xOff <= 1; xOff++ {
			px := xOff + hash2(i+xOff, j+yOff)
			py := yOff + hash2(i+xOff+5, j+yOff+7)
			minDist = math.Min(minDist, math.Hypot(px-fx, py-fy))
		}
	}
	return 1 - minDist
}

func simplexNoise(x, y float64) float64 {
	f2 := 0.5 * (math.Sqrt(3) - 1)
	g2 := (3 - math.Sqrt(3)) / 6
	s := (x + y) * f2
	i, j := math.Floor(x+s), math.Floor(y+s)
	t := (i + j) * g2
	x0, y0 := x-(i-t), y-(j-t)
	i1, j1 := 0.0, 1.0
	if x0 > y0 {
		i1, j1 = 1, 0
	}
	x1, y1 := x0-i1+g2, y0-j1+g2
	x2, y2 := x0-1+2*g2, y0-1+2*g2
	contrib := func(ix, iy, dx, dy float64) float64 {
		t := 0.5 - dx*dx - dy*dy
		if t < 0 {
			return 0
		}
		t *= t
		gx, gy := grad(ix, iy)
		return t * t * (gx*dx + gy*dy)
	}
	n := contrib(i, j, x0, y0) + contrib(i+i1, j+j1, x1, y1) + contrib(i+1, j+1, x2, y2)
	return 40*n*0.5 + 0.5
}

func octaves(x, y float64, shape func(float64) float64) float64 {
	v, a, f := 0.0, 0.5, 1.0
	for i := 0; i < 4; i++ {
		v += shape(perlinNoise(x*f, y*f)) * a
		a *= 0.5
		f *= 2
	}
	return v
}

func init() {
	RegisterNoise("value", valueNoise)
	RegisterNoise("perlin", perlinNoise)
	RegisterNoise("worley", worleyNoise)
	RegisterNoise("simplex", simplexNoise)
	RegisterNoise("sin_basic", func(x, _ float64) float64 { return math.Sin(x)*0.5 + 0.5 })
	RegisterNoise("sin_plasma", func(x, y float64) float64 {
		v := math.Sin(x) + math.Sin(y) + math.Sin((x+y)*0.5) + math.Sin(math.Hypot(x, y))
		return v/4*0.5 + 0.5
	})
	RegisterNoise("sin_lattice", func(x, y float64) float64 { return math.Sin(x)*math.Cos(y)*0.5 + 0.5 })
	RegisterNoise("sin_interference", func(x, y float64) float64 {
		v1 := math.Sin(x*0.5 + y*0.5)
		v2 := math.Sin(x*0.6 - y*0.4 + 2)
		return (v1+v2)/2*0.5 + 0.5
	})
	RegisterNoise("sin_rings", func(x, y float64) float64 { return math.Sin(math.Hypot(x, y))*0.5 + 0.5 })
	RegisterNoise("trig_warp", func(x, y float64) float64 {
		qx, qy := x+math.Sin(y), y+math.Cos(x)
		return math.Sin(qx+qy)*0.5 + 0.5
	})
	RegisterNoise("moire", func(x, y float64) float64 { return math.Sin(x*10)*math.Sin(y*8)*0.5 + 0.5 })
	RegisterNoise("perlin_fbm", func(x, y float64) float64 {
		return octaves(x, y, func(n float64) float64 { return n }) * 0.8
	})
	RegisterNoise("perlin_turbulence", func(x, y float64) float64 {
		return octaves(x, y, func(n float64) float64 { return math.Abs(n*2 - 1) })
	})
	RegisterNoise("perlin_ridge", func(x, y float64) float64 {
		return octaves(x, y, func(n float64) float64 {
			r := 1 - math.Abs(n*2-1)
			return r * r
		})
	})
}
