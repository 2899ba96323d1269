package vmath

import "math"

// --- Scalar helpers ---

// Normalize maps x from the range [a, b] onto [c, d] linearly
func Normalize(x, a, b, c, d float64) float64 {
	return c + (x-a)*(d-c)/(b-a)
}

// Distance returns the Euclidean distance between two points
func Distance(x1, y1, x2, y2 float64) float64 {
	dx := x2 - x1
	dy := y2 - y1
	return math.Sqrt(dx*dx + dy*dy)
}

// Round1 rounds to one decimal place
func Round1(v float64) float64 {
	return math.Round(v*10) / 10
}

// Clamp restricts v to [lo, hi]
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// --- Randomness ---

// FastRand is a xorshift64 generator; deterministic for a given seed
type FastRand struct {
	state uint64
}

func NewFastRand(seed uint64) *FastRand {
	if seed == 0 {
		seed = 1
	}
	return &FastRand{state: seed}
}

func (r *FastRand) Next() uint64 {
	x := r.state
	x ^= x << 13
	x ^= x >> 17
	x ^= x << 5
	r.state = x
	return x
}

// Float64 returns a value in [0, 1) built from the top 53 bits
func (r *FastRand) Float64() float64 {
	return float64(r.Next()>>11) / (1 << 53)
}

// Between returns a uniform value in [a, b)
func (r *FastRand) Between(a, b float64) float64 {
	return Normalize(r.Float64(), 0, 1, a, b)
}

// RandBetween returns a uniform value in [a, b] rounded to the nearest integer
func (r *FastRand) RandBetween(a, b float64) float64 {
	return math.Round(r.Between(a, b))
}
