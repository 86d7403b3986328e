package dither

import (
	"log/slog"
	"math/rand/v2"

	"stipple/pixel"
)

const (
	// FadeSpeed is how many reveal-time units elapse per second.
	FadeSpeed = 350.0
	// AlphaFadeWidth is the number of reveal-time units a pixel takes to go
	// from transparent to opaque.
	AlphaFadeWidth = 140
	// CeilingSeconds caps how long a full reveal may take on screen. Larger
	// fields are played back faster.
	CeilingSeconds = 2.5
	// SpreadPasses is the number of spreading iterations.
	SpreadPasses = 50
)

// Rand is the only source of nondeterminism in a field build.
// *rand.Rand from math/rand/v2 satisfies it.
type Rand interface {
	IntN(n int) int
}

// NewRand returns a generator whose output is fully determined by seed.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

func coin(rng Rand) bool {
	return rng.IntN(2) == 1
}

// Field holds the reveal time of every pixel of an image.
type Field struct {
	Width   int
	Height  int
	Times   []uint32
	MaxTime uint32
}

func (f *Field) At(x, y int) uint32 {
	return f.Times[y*f.Width+x]
}

// Builder turns images into reveal fields. The zero value uses the alpha
// gradient, a left-to-right sweep and a randomly seeded generator.
type Builder struct {
	Metric    Metric
	Direction Direction
	Rand      Rand
	// OnPass, if set, is called after every spreading pass.
	OnPass func(pass int, maxTime uint32)
}

// Build computes the reveal field of img. Every pixel with non-zero alpha
// ends with a reveal time in (0, MaxTime]; fully transparent pixels stay at 0.
func (b Builder) Build(img *pixel.Image) *Field {
	f := &Field{
		Width:  img.Width,
		Height: img.Height,
		Times:  make([]uint32, img.Width*img.Height),
	}
	if img.Empty() {
		return f
	}

	rng := b.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}

	grad := make([]uint32, len(f.Times))
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			grad[y*f.Width+x] = b.Metric.Score(img, x, y)
		}
	}

	f.seed(img, grad, b.Direction, rng)
	f.spread(img, rng, b.OnPass)

	// Transparent border seeds only served as spreading sources.
	for i := range f.Times {
		if img.Pix[i*4+3] == 0 {
			f.Times[i] = 0
		}
	}

	dead := f.fillDeadSpots(img)

	slog.Debug("reveal field built", "width", f.Width, "height", f.Height,
		"max_time", f.MaxTime, "dead_spots", dead)
	return f
}

// seed starts the reveal on the image border and on local gradient maxima.
func (f *Field) seed(img *pixel.Image, grad []uint32, dir Direction, rng Rand) {
	w, h := f.Width, f.Height
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			i := y*w + x
			val := uint32(dir.Value(x, y, w, h)) + uint32(rng.IntN(100))

			if x == 0 || x == w-1 || y == 0 || y == h-1 {
				f.set(img, i, val)
				continue
			}

			g := grad[i]
			if g > grad[i+1] && g > grad[i-1] && coin(rng) {
				f.set(img, i, val)
				continue
			}
			if g > grad[i+w] && g > grad[i-w] && coin(rng) {
				f.set(img, i, val)
			}
		}
	}
}

func (f *Field) set(img *pixel.Image, i int, val uint32) {
	f.Times[i] = val
	if img.Pix[i*4+3] != 0 {
		f.MaxTime = max(f.MaxTime, val+AlphaFadeWidth)
	}
}

// spread grows revealed regions into unrevealed visible pixels. Each pass
// reads only the previous pass's field.
func (f *Field) spread(img *pixel.Image, rng Rand, onPass func(int, uint32)) {
	w, h := f.Width, f.Height
	prev := f.Times
	next := make([]uint32, len(prev))
	around := make([]uint32, 0, 12)

	for pass := 0; pass < SpreadPasses; pass++ {
		copy(next, prev)

		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				i := y*w + x
				if img.Pix[i*4+3] == 0 || prev[i] != 0 {
					continue
				}

				around = around[:0]
				for dy := -1; dy <= 2; dy++ {
					ny := y + dy
					if ny < 0 || ny >= h {
						continue
					}
					for dx := -1; dx <= 1; dx++ {
						nx := x + dx
						if nx < 0 || nx >= w {
							continue
						}
						if v := prev[ny*w+nx]; v > 0 {
							around = append(around, v)
						}
					}
				}
				if len(around) == 0 || coin(rng) {
					continue
				}

				val := around[rng.IntN(len(around))] + uint32(20+rng.IntN(20))
				next[i] = val
				f.MaxTime = max(f.MaxTime, val+AlphaFadeWidth)
			}
		}

		prev, next = next, prev
		if onPass != nil {
			onPass(pass, f.MaxTime)
		}
	}

	f.Times = prev
}

// fillDeadSpots reveals visible pixels the spreading never reached at the
// very end and returns how many there were.
func (f *Field) fillDeadSpots(img *pixel.Image) int {
	var dead []int
	for i, t := range f.Times {
		if t == 0 && img.Pix[i*4+3] != 0 {
			dead = append(dead, i)
		}
	}
	if len(dead) == 0 {
		return 0
	}

	if f.MaxTime == 0 {
		f.MaxTime = AlphaFadeWidth
	}
	for _, i := range dead {
		f.Times[i] = f.MaxTime
	}
	return len(dead)
}
