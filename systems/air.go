package systems

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/vmath"
)

// NewAir creates an air enemy of the given tier, clamped to the known tiers
func NewAir(ctx *engine.GameContext, tier int, x, y float64) *components.Actor {
	tier = max(1, min(tier, constants.MaxAirTier))
	a := components.NewActor(components.KindAir, x, y)
	a.Tier = tier
	a.HP = constants.AirHP[tier]
	a.MaxSpeed = constants.AirMaxSpeed[tier]
	a.MaxTurn = constants.AirMaxTurn[tier]
	a.Anim = ctx.Anim(asset.AirAnim(tier))
	return a
}

// airAI chases the player once below the chase line, dives away when old and self-destructs when older
func airAI(ctx *engine.GameContext, a *components.Actor) {
	pl := ctx.Player
	switch {
	case a.F > constants.AirExpireFrames:
		Explode(ctx, a)
	case a.F > constants.AirDiveFrames:
		a.Heading = 180
		a.Accelerate()
	case a.Y > constants.AirChaseLine:
		a.TurnTowards(pl.X, pl.Y)
		if a.DistanceTo(pl.X, pl.Y) > constants.AirChaseMinDist &&
			vmath.WithinBand(a.HeadingOffset(pl.X, pl.Y), constants.AirChaseBand) {
			a.Accelerate()
		}
	default:
		a.Accelerate()
	}
}

func updateAir(ctx *engine.GameContext, a *components.Actor) {
	step(ctx, a, airAI)
	pl := ctx.Player
	if _, ok := Collide(ctx, a, pl.X, pl.Y, constants.PlayerContactRadius); ok {
		ctx.Play(asset.SoundHit)
		Explode(ctx, a)
		Damage(ctx, pl, constants.AirDamage[a.Tier])
	}
}

// damageAir flashes the hull for a few frames on every hit that does not destroy it
func damageAir(ctx *engine.GameContext, a *components.Actor, n int) bool {
	if damageDefault(ctx, a, n) {
		return true
	}
	a.Anim = ctx.Anim(asset.AirDamagedAnim(a.Tier))
	ctx.Scheduler.Parallel(constants.DamageFlashFrames, func() {
		if !a.Destroyed {
			a.Anim = ctx.Anim(asset.AirAnim(a.Tier))
		}
	})
	return false
}

func explodeAir(ctx *engine.GameContext, a *components.Actor) {
	explodeDefault(ctx, a)
	ctx.Play(asset.SoundExplodeAir)
	ctx.AddPoints(a.Tier * constants.AirPointsPerTier)
}
