package pattern

import "math"

// Perlin buckets the pattern's own cells into len(thresholds)+1
// sub-patterns by a deterministic multi-octave value-noise field sampled
// at frequency freq with depth octaves, returning a MultiPattern ordered
// from lowest to highest noise band. thresholds must be strictly
// increasing values in (0, 1).
func (p Pattern) Perlin(freq float64, depth int, thresholds []float64) (MultiPattern, error) {
	if freq <= 0 || depth <= 0 {
		return nil, ErrInvalidArgument
	}
	for i := 1; i < len(thresholds); i++ {
		if thresholds[i] <= thresholds[i-1] {
			return nil, ErrInvalidArgument
		}
	}

	buckets := make([]*Builder, len(thresholds)+1)
	for i := range buckets {
		buckets[i] = NewBuilder().WithChars(p.onChar, p.offChar)
	}

	for _, c := range p.CellList() {
		n := fbm(float64(c.X), float64(c.Y), freq, depth)
		idx := len(thresholds)
		for i, t := range thresholds {
			if n < t {
				idx = i
				break
			}
		}
		buckets[idx].InsertCell(c)
	}

	out := make(MultiPattern, len(buckets))
	for i, b := range buckets {
		out[i] = b.Build()
	}
	return out, nil
}

// fbm sums depth octaves of valueNoise2D at frequency freq, each
// successive octave at half amplitude and double frequency, normalised
// to [0, 1].
func fbm(x, y, freq float64, depth int) float64 {
	amp, total, ampSum := 1.0, 0.0, 0.0
	f := freq
	for i := 0; i < depth; i++ {
		total += amp * valueNoise2D(x*f, y*f)
		ampSum += amp
		amp *= 0.5
		f *= 2
	}
	// valueNoise2D ranges over [-1,1]; remap the normalised sum to [0,1].
	return (total/ampSum + 1) / 2
}

// valueNoise2D is a deterministic bilinear value-noise field in [-1, 1],
// built from an integer-hash gradient (no external noise dependency: see
// DESIGN.md for why this stays on stdlib math).
func valueNoise2D(x, y float64) float64 {
	x0, y0 := math.Floor(x), math.Floor(y)
	tx, ty := x-x0, y-y0
	sx, sy := smoothstep(tx), smoothstep(ty)

	ix0, iy0 := int64(x0), int64(y0)
	v00 := hashGrad(ix0, iy0)
	v10 := hashGrad(ix0+1, iy0)
	v01 := hashGrad(ix0, iy0+1)
	v11 := hashGrad(ix0+1, iy0+1)

	a := lerp(v00, v10, sx)
	b := lerp(v01, v11, sx)
	return lerp(a, b, sy)
}

func smoothstep(t float64) float64 { return t * t * (3 - 2*t) }

func lerp(a, b, t float64) float64 { return a + t*(b-a) }

// hashGrad hashes an integer lattice point to a pseudo-random value in
// [-1, 1], deterministic across runs and platforms.
func hashGrad(x, y int64) float64 {
	h := x*374761393 + y*668265263
	h = (h ^ (h >> 13)) * 1274126177
	h = h ^ (h >> 16)
	// Map the low 24 bits to [-1, 1].
	frac := float64(h&0xFFFFFF) / float64(0xFFFFFF)
	return frac*2 - 1
}
