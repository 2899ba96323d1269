package systems

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/vmath"
)

// newGround anchors an actor of an anchored kind to tile (tx, ty)
func newGround(ctx *engine.GameContext, kind components.Kind, tx, ty int) *components.Actor {
	a := components.NewActor(kind, GroundX(tx), GroundY(ctx, ty))
	a.Radius = constants.GroundRadius
	a.MaxTurn = constants.GroundMaxTurn
	a.Ground = &components.GroundState{TX: tx, TY: ty}
	return a
}

// NewTurret creates a gun emplacement of tier 1 to 3
func NewTurret(ctx *engine.GameContext, tx, ty, tier int) *components.Actor {
	tier = max(1, min(tier, constants.MaxTurretTier))
	a := newGround(ctx, components.KindTurret, tx, ty)
	a.Tier = tier
	a.HP = constants.TurretHP[tier]
	g := a.Ground
	g.Base = asset.GroundAnim(tier)
	g.Damaged = asset.GroundDamagedAnim(tier)
	g.DeadAnim = asset.AnimGroundDead
	g.Turret = ctx.Anim(asset.TurretAnim(tier))
	g.FireRate = constants.TurretFireRate[tier]
	a.Anim = ctx.Anim(g.Base)
	return a
}

// NewCache creates a supply cache that releases reward when destroyed
func NewCache(ctx *engine.GameContext, tx, ty, hp int, reward components.Reward) *components.Actor {
	a := newGround(ctx, components.KindCache, tx, ty)
	a.HP = hp
	g := a.Ground
	g.Base = asset.AnimCache
	g.Damaged = asset.AnimCacheDamaged
	g.DeadAnim = asset.AnimCacheDead
	g.Reward = reward
	a.Anim = ctx.Anim(g.Base)
	return a
}

// NewPlug creates an uplink socket that completes an upload after holding a tether for seconds
func NewPlug(ctx *engine.GameContext, tx, ty, seconds int) *components.Actor {
	a := newGround(ctx, components.KindPlug, tx, ty)
	a.Radius = constants.PlugRadius
	g := a.Ground
	g.Base = asset.AnimPlug
	g.DeadAnim = asset.AnimPlugDead
	g.UploadFrames = seconds * constants.FrameRate
	a.Anim = ctx.Anim(g.Base)
	return a
}

// NewControl creates an invisible level marker on row ty
func NewControl(ctx *engine.GameContext, ty int, c components.ControlState) *components.Actor {
	a := newGround(ctx, components.KindControl, constants.ControlColumn, ty)
	a.Control = &c
	a.Explosion = asset.AnimNone
	return a
}

// MarkDead leaves an anchored actor on the map in its wrecked state
func MarkDead(ctx *engine.GameContext, a *components.Actor) {
	a.Ground.Dead = true
	a.Anim = ctx.Anim(a.Ground.DeadAnim)
}

func updateGround(ctx *engine.GameContext, a *components.Actor) {
	step(ctx, a, nil)
}

func updateTurret(ctx *engine.GameContext, a *components.Actor) {
	step(ctx, a, turretAI)
}

// turretAI tracks the player while on screen and opens fire when roughly aligned
func turretAI(ctx *engine.GameContext, a *components.Actor) {
	if a.Ground.Dead || a.Y <= constants.TurretMinY || a.Y >= constants.ScreenHeight {
		return
	}
	pl := ctx.Player
	a.TurnTowards(pl.X, pl.Y)
	if !vmath.WithinBand(a.HeadingOffset(pl.X, pl.Y), constants.TurretAimBand) {
		return
	}
	if ctx.State.Frame%a.Ground.FireRate == 0 {
		fireVolley(ctx, a)
	}
}

// fireVolley schedules a burst of bullets a few frames apart
// Shots still queued when the turret dies are dropped
func fireVolley(ctx *engine.GameContext, a *components.Actor) {
	for i := 0; i < constants.TurretVolleySize; i++ {
		ctx.Scheduler.Parallel(i*constants.TurretVolleySpacing+1, func() {
			if a.Ground.Dead || a.Removed {
				return
			}
			fireBullet(ctx, a)
		})
	}
}

func fireBullet(ctx *engine.GameContext, a *components.Actor) {
	h := a.Heading - constants.TurretSpread/2 + ctx.Rand.Float64()*constants.TurretSpread
	b := NewBullet(ctx, a.Tier, h)
	dx, dy := vmath.HedToVec(a.Heading, constants.TurretMuzzle)
	b.X = a.X + dx
	b.Y = a.Y + dy
	ctx.World.Add(b)
	if p := AddParticle(ctx, asset.AnimFlash, b.X, b.Y); p != nil {
		p.Heading = a.Heading
	}
	ctx.Play(asset.SoundBullet)
}

// damageGround flashes the hull while the target survives
func damageGround(ctx *engine.GameContext, a *components.Actor, n int) bool {
	destroyed := damageDefault(ctx, a, n)
	g := a.Ground
	if g.Dead || g.Damaged == asset.AnimNone {
		return destroyed
	}
	a.Anim = ctx.Anim(g.Damaged)
	ctx.Scheduler.Parallel(constants.DamageFlashFrames, func() {
		if !g.Dead {
			a.Anim = ctx.Anim(g.Base)
		}
	})
	return destroyed
}

// explodeGround scatters debris over the target and leaves the wreck in place
func explodeGround(ctx *engine.GameContext, a *components.Actor) {
	const spread = constants.GroundDebrisSpread
	for i := 0; i < constants.GroundDebrisCount; i++ {
		x := a.X - spread/2 + ctx.Rand.Float64()*spread
		y := a.Y - spread/2 + ctx.Rand.Float64()*spread
		AddParticle(ctx, a.Explosion, x, y)
	}
	MarkDead(ctx, a)
}

func explodeTurret(ctx *engine.GameContext, a *components.Actor) {
	explodeGround(ctx, a)
	if !ctx.State.NoControl {
		ctx.Play(asset.SoundExplodeGround)
	}
	ctx.AddPoints(a.Tier * constants.TurretPointsPerTier)
}

func explodeCache(ctx *engine.GameContext, a *components.Actor) {
	explodeGround(ctx, a)
	releaseReward(ctx, a)
	ctx.AddPoints(constants.CachePoints)
}

func releaseReward(ctx *engine.GameContext, a *components.Actor) {
	r := a.Ground.Reward
	switch r.Kind {
	case components.RewardHP:
		AddPowerup(ctx, components.PowerupHP, a.X, a.Y, 0, 1)
	case components.RewardLazer:
		AddPowerup(ctx, components.PowerupLazer, a.X, a.Y, 0, 1)
	case components.RewardDouble:
		AddPowerup(ctx, components.PowerupDouble, a.X, a.Y, 0, 1)
	case components.RewardCoins:
		for i := 0; i < r.Count; i++ {
			vx := ctx.Rand.Between(-constants.CoinScatter, constants.CoinScatter)
			vy := ctx.Rand.Between(-constants.CoinScatter, constants.CoinScatter)
			AddPowerup(ctx, components.PowerupCoin, a.X, a.Y, vx, vy)
		}
	}
}

func drawGround(ctx *engine.GameContext, r engine.Renderer, a *components.Actor) {
	g := a.Ground
	y := GroundY(ctx, g.TY)
	if !GroundVisible(y) {
		return
	}
	x := GroundX(g.TX)
	drawAnim(r, a.Anim, x, y, 0)
	if !g.Dead && g.Turret != nil {
		drawAnim(r, g.Turret, x, y, a.Heading)
	}
}

// ===== Level Markers =====

// updateControl fires the marker once it scrolls into view; begin markers stay for camera lookups
func updateControl(ctx *engine.GameContext, a *components.Actor) {
	if !GroundVisible(a.Y) {
		return
	}
	c := a.Control
	if c.Action == components.ActionBeginLevel {
		return
	}
	a.Removed = true

	switch c.Action {
	case components.ActionPause:
		ctx.State.ScrollSpeed = 0
		ctx.Scheduler.Parallel(c.PauseSeconds*constants.FrameRate, func() {
			ctx.State.ScrollSpeed = constants.ScrollSpeed
		})
	case components.ActionWaitSpawn:
		ctx.Scheduler.Parallel(c.WaitSeconds*constants.FrameRate, func() {
			queueWave(ctx, c)
		})
	case components.ActionEndLevel:
		ctx.EndLevel()
	default:
		queueWave(ctx, c)
	}
}

func queueWave(ctx *engine.GameContext, c *components.ControlState) {
	for i := 0; i < c.Amount; i++ {
		ctx.World.QueueSpawn(engine.SpawnRequest{Location: c.Location, Tier: c.Tier})
	}
}
