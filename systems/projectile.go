package systems

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/vmath"
)

// ===== Lazer =====

// NewLazer creates a player shot that launches from the ship once its delay expires
func NewLazer(ctx *engine.GameContext, tier int, st components.LazerState, vx, vy float64) *components.Actor {
	a := components.NewActor(components.KindLazer, 0, 0)
	a.Tier = tier
	a.VX, a.VY = vx, vy
	a.Explosion = asset.AnimExplosionLazer
	a.Anim = ctx.Anim(asset.LazerAnim(tier))
	st.Delayed = true
	a.Lazer = &st
	return a
}

// updateLazer flies straight and hits the first air enemy it overlaps
// A delayed shot neither moves nor collides
func updateLazer(ctx *engine.GameContext, a *components.Actor) {
	l := a.Lazer
	a.F++
	if l.Delayed {
		if a.F <= l.Delay {
			return
		}
		l.Delayed = false
		a.X = ctx.Player.X + l.OffsetX
		a.Y = ctx.Player.Y
		if l.Sound {
			ctx.Play(asset.SoundLazer)
		}
	}

	a.X += a.VX
	a.Y += a.VY
	for _, t := range ctx.World.Actors() {
		if t.Kind != components.KindAir {
			continue
		}
		if _, ok := CollideActors(ctx, a, t); ok {
			Explode(ctx, a)
			Damage(ctx, t, l.Damage)
			break
		}
	}

	if a.F > constants.LazerLifetime {
		a.Removed = true
	}
}

func drawLazer(_ *engine.GameContext, r engine.Renderer, a *components.Actor) {
	if !a.Lazer.Delayed {
		drawAnim(r, a.Anim, a.X, a.Y, 0)
	}
}

// ===== Bullet =====

// NewBullet creates a turret shot traveling along heading
func NewBullet(ctx *engine.GameContext, tier int, heading float64) *components.Actor {
	a := components.NewActor(components.KindBullet, 0, 0)
	a.Tier = tier
	a.Heading = heading
	a.MaxSpeed = constants.BulletMaxSpeed
	a.Accel = 1
	a.Radius = constants.BulletRadius
	a.VX, a.VY = vmath.HedToVec(heading, a.MaxSpeed)
	a.Anim = ctx.Anim(asset.BulletAnim(tier))
	a.Bullet = &components.BulletState{Damage: 1}
	return a
}

func updateBullet(ctx *engine.GameContext, a *components.Actor) {
	a.F++
	if a.F > constants.BulletLifetime {
		a.Removed = true
	}
	a.X += a.VX
	a.Y += a.VY

	pl := ctx.Player
	if _, ok := Collide(ctx, a, pl.X, pl.Y, pl.Radius); ok {
		ctx.Play(asset.SoundHit)
		Damage(ctx, pl, a.Bullet.Damage)
		Explode(ctx, a)
	}
}

// ===== Bomb =====

// NewBomb creates a bomb aimed at the reticle offset reach; it is released later by the player
func NewBomb(ctx *engine.GameContext, x, y, reach float64) *components.Actor {
	a := components.NewActor(components.KindBomb, x, y)
	a.Radius = constants.BombRadius
	a.Explosion = asset.AnimExplosionBomb
	a.Anim = ctx.Anim(asset.AnimBomb)
	a.Bomb = &components.BombState{
		StartY:  y - constants.BombStartOffset,
		TargetY: reach,
		Frames:  constants.BombFlight,
	}
	return a
}

// updateBomb follows a fixed arc drifting with the terrain and strikes the first live ground target on landing
func updateBomb(ctx *engine.GameContext, a *components.Actor) {
	b := a.Bomb
	f := float64(a.F)
	a.Y = b.StartY + vmath.Normalize(f, 0, float64(b.Frames), 0, b.TargetY) + f*ctx.State.ScrollSpeed
	a.F++
	if a.F != b.Frames {
		return
	}

	for _, t := range ctx.World.Actors() {
		if t.Kind != components.KindTurret && t.Kind != components.KindCache {
			continue
		}
		if t.GroundDead() {
			continue
		}
		if _, ok := CollideActors(ctx, a, t); ok {
			ctx.Play(asset.SoundSand)
			Damage(ctx, t, 1)
			break
		}
	}
	ctx.Play(asset.SoundBombGround)
	Explode(ctx, a)
}

func explodeBomb(ctx *engine.GameContext, a *components.Actor) {
	a.Removed = true
	AddGroundParticle(ctx, a.Explosion, a.X, a.Y)
}

// ===== Harpoon =====

// NewHarpoon creates the uplink tether head
func NewHarpoon(ctx *engine.GameContext, x, y float64) *components.Actor {
	a := components.NewActor(components.KindHarpoon, x, y)
	a.VY = constants.HarpoonSpeed
	a.Radius = constants.HarpoonRadius
	a.Explosion = asset.AnimExplosionBomb
	a.Anim = ctx.Anim(asset.AnimHarpoon)
	a.Harpoon = &components.HarpoonState{
		Frames:  constants.HarpoonFlight,
		MaxDist: constants.HarpoonMaxDist,
	}
	return a
}

// updateHarpoon flies until it latches onto a live plug, then uploads while the ship stays in range
func updateHarpoon(ctx *engine.GameContext, a *components.Actor) {
	h := a.Harpoon
	pl := ctx.Player
	a.F++
	a.X += a.VX
	a.Y += a.VY

	if a.F == h.Frames {
		if h.Connected {
			ctx.Play(asset.SoundUpload)
			AddText(ctx, constants.UploadedText, asset.Success)
			MarkDead(ctx, h.Plug)
			ctx.AddPoints(constants.UploadPoints)
		}
		Explode(ctx, a)
		return
	}

	if h.Connected {
		a.Y += ctx.State.ScrollSpeed
		if a.F%constants.HarpoonBlip == 0 {
			ctx.Play(asset.SoundBlip)
		}
		if a.DistanceTo(pl.X, pl.Y) > h.MaxDist {
			ctx.Play(asset.SoundUploadFail)
			Explode(ctx, a)
			AddText(ctx, constants.DisconnectText, asset.Failure)
		}
		return
	}

	for _, t := range ctx.World.Actors() {
		if t.Kind != components.KindPlug || t.GroundDead() {
			continue
		}
		if _, ok := CollideActors(ctx, a, t); ok {
			AddText(ctx, constants.UploadingText, asset.White)
			h.Connected = true
			a.VX, a.VY = 0, 0
			a.F = 0
			a.X, a.Y = t.X, t.Y
			h.Frames = t.Ground.UploadFrames
			h.Plug = t
			break
		}
	}
}

func drawHarpoon(ctx *engine.GameContext, r engine.Renderer, a *components.Actor) {
	h := a.Harpoon
	pl := ctx.Player
	drawAnim(r, a.Anim, a.X, a.Y, 0)
	r.DrawLine(a.X, a.Y, pl.X, pl.Y, asset.Tether)
	if !h.Connected {
		return
	}
	r.DrawLine(a.X+3, a.Y, pl.X, pl.Y, asset.Uplink)
	r.DrawLine(a.X-3, a.Y, pl.X, pl.Y, asset.Uplink)
	if a.F%10 < 5 {
		r.DrawLine(a.X, a.Y, pl.X, pl.Y, asset.Shadow)
	}
	r.StrokeCircle(a.X, a.Y, h.MaxDist, asset.White)
}
