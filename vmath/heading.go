package vmath

import "math"

// Headings are in degrees, clockwise from straight up, in [0, 360).
// Screen y grows downward, so heading 0 points toward decreasing y.

const degPerRad = 180 / math.Pi

// HedTo returns the heading from (x, y) toward (tx, ty)
// Coincident points yield heading 0
func HedTo(x, y, tx, ty float64) float64 {
	leny := ty - y
	lenx := tx - x
	hyp := math.Sqrt(lenx*lenx + leny*leny)
	if hyp == 0 {
		return 0
	}

	var ret float64
	switch {
	case ty >= y && tx >= x:
		ret = math.Asin(leny/hyp)*degPerRad + 90
	case ty >= y && tx < x:
		ret = math.Asin(leny/-hyp)*degPerRad - 90
	case ty < y && tx > x:
		ret = math.Asin(leny/hyp)*degPerRad + 90
	default:
		ret = math.Asin(-leny/hyp)*degPerRad - 90
	}
	return WrapHeading(ret)
}

// HedToVec returns the velocity vector of magnitude max along heading
func HedToVec(heading, max float64) (x, y float64) {
	rad := heading / degPerRad
	return max * math.Sin(rad), -max * math.Cos(rad)
}

// WrapHeading folds any heading into [0, 360)
func WrapHeading(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if h >= 360 {
		h = 0
	}
	return h
}

// WithinBand reports whether an absolute heading difference lies within band degrees,
// accounting for wrap-around near 360
func WithinBand(diff, band float64) bool {
	return diff < band || (diff > 360-band && diff < 360)
}
