package systems

import (
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

// SpawnBand returns the horizontal range an arrival may appear in for a location code
func SpawnBand(loc components.Location) (lo, hi float64) {
	const w = constants.ScreenWidth
	switch loc {
	case components.LocationLeft:
		return 25, 226
	case components.LocationRight:
		return w - 225, w - 25
	case components.LocationAll:
		return 50, 750
	default:
		return w/2 - 100, w/2 + 100
	}
}

// StepSpawner releases one queued air enemy every SpawnInterval frames
// The interval restarts whenever the queue drains
func StepSpawner(ctx *engine.GameContext) {
	s := ctx.State
	w := ctx.World
	if w.PendingSpawns() == 0 {
		s.SpawnFrame = 0
		return
	}
	if s.SpawnFrame < constants.SpawnInterval {
		s.SpawnFrame++
		return
	}

	req, _ := w.NextSpawn()
	lo, hi := SpawnBand(req.Location)
	a := NewAir(ctx, req.Tier, ctx.Rand.RandBetween(lo, hi), constants.SpawnY)
	a.VY = constants.SpawnVelocityY
	a.Heading = constants.SpawnHeading
	w.Add(a)
	s.SpawnFrame = 0
}
