package physics

import "github.com/lixenwraith/planet-offline/vmath"

// Hit describes a circle overlap from the point of view of the first circle
type Hit struct {
	DX, DY   float64 // First center minus second center
	Distance float64
}

// Overlap tests two circles; touching edges do not count
func Overlap(x1, y1, r1, x2, y2, r2 float64) (Hit, bool) {
	d := vmath.Distance(x1, y1, x2, y2)
	if d < r1+r2 {
		return Hit{DX: x1 - x2, DY: y1 - y2, Distance: d}, true
	}
	return Hit{}, false
}
