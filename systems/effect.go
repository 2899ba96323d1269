package systems

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

// ===== Particles =====

// AddParticle spawns a one-shot animation; returns nil for AnimNone
func AddParticle(ctx *engine.GameContext, id asset.AnimID, x, y float64) *components.Actor {
	return addParticle(ctx, components.KindParticle, id, x, y)
}

// AddGroundParticle spawns a one-shot animation that scrolls with the terrain
func AddGroundParticle(ctx *engine.GameContext, id asset.AnimID, x, y float64) *components.Actor {
	return addParticle(ctx, components.KindGroundParticle, id, x, y)
}

func addParticle(ctx *engine.GameContext, kind components.Kind, id asset.AnimID, x, y float64) *components.Actor {
	if id == asset.AnimNone {
		return nil
	}
	a := components.NewActor(kind, x, y)
	a.Explosion = asset.AnimNone
	a.Anim = ctx.Anim(id)
	ctx.World.Add(a)
	return a
}

func updateParticle(ctx *engine.GameContext, a *components.Actor) {
	step(ctx, a, nil)
	if a.Anim == nil || a.Anim.Done() {
		a.Removed = true
	}
}

func updateGroundParticle(ctx *engine.GameContext, a *components.Actor) {
	updateParticle(ctx, a)
	a.Y += ctx.State.ScrollSpeed
}

// ===== Text =====

// AddText floats a centered notification up from the top of the screen
func AddText(ctx *engine.GameContext, text string, color asset.RGB) *components.Actor {
	x := constants.ScreenWidth/2 - float64(len(text)*constants.NotificationCharPx)
	a := components.NewActor(components.KindText, x, constants.NotificationY)
	a.VY = -1
	a.Decel = 0
	a.Explosion = asset.AnimNone
	a.Text = &components.TextState{
		Text:      text,
		Color:     color,
		Size:      constants.TextSize,
		MaxFrames: constants.TextLifetime,
	}
	ctx.World.Add(a)
	return a
}

// NewGroundText creates a label that scrolls with the terrain until it leaves the bottom edge
func NewGroundText(ctx *engine.GameContext, text string, tx, ty int) *components.Actor {
	a := components.NewActor(components.KindText, GroundX(tx), GroundY(ctx, ty))
	a.Decel = 0
	a.Explosion = asset.AnimNone
	a.Text = &components.TextState{
		Text:     text,
		Color:    asset.White,
		Size:     constants.GroundTextSize,
		Grounded: true,
		TX:       tx,
		TY:       ty,
	}
	return a
}

func updateText(ctx *engine.GameContext, a *components.Actor) {
	t := a.Text
	if t.Grounded {
		a.F++
		a.Y = GroundY(ctx, t.TY)
		if a.Y > constants.ScreenHeight {
			a.Removed = true
		}
		return
	}
	step(ctx, a, nil)
	if a.F > t.MaxFrames {
		a.Removed = true
	}
}

func drawTextActor(_ *engine.GameContext, r engine.Renderer, a *components.Actor) {
	t := a.Text
	if t.Grounded && !GroundVisible(a.Y) {
		return
	}
	r.DrawText(t.Text, a.X, a.Y, engine.TextStyle{Size: t.Size, Color: t.Color})
}

// ===== Powerups =====

// AddPowerup drops a pickup with an initial velocity
func AddPowerup(ctx *engine.GameContext, typ components.PowerupType, x, y, vx, vy float64) *components.Actor {
	a := components.NewActor(components.KindPowerup, x, y)
	a.VX, a.VY = vx, vy
	a.Accel = constants.PowerupAccel
	a.MaxTurn = constants.PowerupMaxTurn
	a.MaxSpeed = constants.PowerupMaxSpeed
	a.Radius = constants.PowerupRadius
	a.Explosion = asset.AnimNone
	a.Anim = ctx.Anim(typ.Anim())
	a.Powerup = &components.PowerupState{Type: typ, Frames: constants.PowerupLifetime}
	ctx.World.Add(a)
	return a
}

// powerupAI homes in on a nearby ship; otherwise non-coin pickups wander in circles
func powerupAI(ctx *engine.GameContext, a *components.Actor) {
	pl := ctx.Player
	if a.DistanceTo(pl.X, pl.Y) < constants.PowerupAttract {
		a.PointAt(pl.X, pl.Y)
		a.Accelerate()
		return
	}
	if a.Powerup.Type == components.PowerupCoin {
		return
	}
	a.TurnLeft()
	if ctx.Rand.Float64() > 0.5 {
		a.Accelerate()
	}
}

func updatePowerup(ctx *engine.GameContext, a *components.Actor) {
	step(ctx, a, powerupAI)
	if a.F == a.Powerup.Frames {
		a.Removed = true
	}
	pl := ctx.Player
	if _, ok := Collide(ctx, a, pl.X, pl.Y, pl.Radius); !ok {
		return
	}
	a.Removed = true
	collect(ctx, a.Powerup.Type)
}

// collect applies a pickup to the player
func collect(ctx *engine.GameContext, typ components.PowerupType) {
	pl := ctx.Player
	switch typ {
	case components.PowerupHP:
		PlusHP(pl, constants.PowerupHeal)
		ctx.Play(asset.SoundHP)
	case components.PowerupLazer:
		pl.Player.LazerLevel = min(pl.Player.LazerLevel+1, constants.PlayerMaxLazerLevel)
		ctx.Play(asset.SoundPowerup)
	case components.PowerupCoin:
		ctx.AddPoints(constants.CoinPoints)
		ctx.Play(asset.SoundCoin)
	case components.PowerupDouble:
		AddText(ctx, constants.DoublePtsText, asset.Bonus)
		ctx.State.Multiplier *= 2
		ctx.Play(asset.SoundPowerup)
	}
}

// drawPowerup blinks during the second half of the pickup's life
func drawPowerup(_ *engine.GameContext, r engine.Renderer, a *components.Actor) {
	p := a.Powerup
	if a.F > p.Frames/2 && a.F%constants.PowerupBlinkCycle < constants.PowerupBlinkCycle/2 {
		return
	}
	drawAnim(r, a.Anim, a.X, a.Y, 0)
}
