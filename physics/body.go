package physics

import (
	"math"

	"github.com/lixenwraith/planet-offline/vmath"
)

// velocitySnap zeroes residual drift once friction has nearly stopped a body
const velocitySnap = 0.001

// Default motion parameters shared by every body unless overridden
const (
	DefaultMaxSpeed = 4
	DefaultRadius   = 10
	DefaultMaxTurn  = 1
	DefaultAccel    = 0.2
	DefaultDecel    = 0.05
)

// Body is a circular point mass steered by heading
// Velocities are in pixels per frame, headings in degrees
type Body struct {
	X, Y   float64
	VX, VY float64

	Heading float64
	Turn    float64 // Heading change applied on the next Integrate
	MaxTurn float64

	Accel    float64
	Decel    float64
	MaxSpeed float64
	Radius   float64

	accelerating bool
}

// NewBody returns a body at rest with default parameters
func NewBody(x, y float64) Body {
	return Body{
		X:        x,
		Y:        y,
		MaxTurn:  DefaultMaxTurn,
		Accel:    DefaultAccel,
		Decel:    DefaultDecel,
		MaxSpeed: DefaultMaxSpeed,
		Radius:   DefaultRadius,
	}
}

// Accelerate moves velocity one Accel step toward MaxSpeed along the current heading
func (b *Body) Accelerate() {
	mx, my := vmath.HedToVec(b.Heading, b.MaxSpeed)
	b.VX = approach(b.VX, mx, b.Accel)
	b.VY = approach(b.VY, my, b.Accel)
	b.accelerating = true
}

// Decelerate moves velocity one Decel step toward rest
func (b *Body) Decelerate() {
	b.VX = approach(b.VX, 0, b.Decel)
	b.VY = approach(b.VY, 0, b.Decel)
	if math.Abs(b.VX) < velocitySnap {
		b.VX = 0
	}
	if math.Abs(b.VY) < velocitySnap {
		b.VY = 0
	}
}

// TurnLeft requests a full counter-clockwise turn this frame
func (b *Body) TurnLeft() {
	b.Turn = -b.MaxTurn
}

// TurnRight requests a full clockwise turn this frame
func (b *Body) TurnRight() {
	b.Turn = b.MaxTurn
}

// HedTo returns the heading from the body toward a point
func (b *Body) HedTo(x, y float64) float64 {
	return vmath.HedTo(b.X, b.Y, x, y)
}

// HeadingOffset returns the absolute difference between the current heading and the heading toward a point
func (b *Body) HeadingOffset(x, y float64) float64 {
	return math.Abs(b.Heading - b.HedTo(x, y))
}

// PointAt snaps the heading toward a point
func (b *Body) PointAt(x, y float64) {
	b.Heading = b.HedTo(x, y)
}

// TurnTowards requests a turn along the shorter arc toward a point
func (b *Body) TurnTowards(x, y float64) {
	h := b.HedTo(x, y)
	short := math.Abs(b.Heading-h) < 180
	if b.Heading <= h {
		if short {
			b.TurnRight()
		} else {
			b.TurnLeft()
		}
		return
	}
	if short {
		b.TurnLeft()
	} else {
		b.TurnRight()
	}
}

// Integrate advances position and heading by one frame
// Friction applies only when the body did not accelerate this frame
func (b *Body) Integrate() {
	b.X += b.VX
	b.Y += b.VY
	b.Heading = vmath.WrapHeading(b.Heading + b.Turn)
	b.Turn = 0
	if !b.accelerating {
		b.Decelerate()
	}
	b.accelerating = false
}

// DistanceTo returns the distance from the body center to a point
func (b *Body) DistanceTo(x, y float64) float64 {
	return vmath.Distance(b.X, b.Y, x, y)
}

// approach steps v by step toward target without snapping
func approach(v, target, step float64) float64 {
	if v < target {
		return v + step
	}
	if v > target {
		return v - step
	}
	return v
}
