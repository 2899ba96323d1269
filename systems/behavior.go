package systems

import (
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/physics"
)

// Behavior is the capability set of one actor kind
// Nil entries fall back to the shared defaults
type Behavior struct {
	Update  func(ctx *engine.GameContext, a *components.Actor)
	Draw    func(ctx *engine.GameContext, r engine.Renderer, a *components.Actor)
	Damage  func(ctx *engine.GameContext, a *components.Actor, n int) bool
	Explode func(ctx *engine.GameContext, a *components.Actor)
}

var behaviors [components.KindCount]Behavior

func init() {
	behaviors = [components.KindCount]Behavior{
		components.KindPlayer:         {Update: updatePlayer, Draw: drawPlayer, Explode: explodePlayer},
		components.KindAir:            {Update: updateAir, Damage: damageAir, Explode: explodeAir},
		components.KindTurret:         {Update: updateTurret, Draw: drawGround, Damage: damageGround, Explode: explodeTurret},
		components.KindCache:          {Update: updateGround, Draw: drawGround, Damage: damageGround, Explode: explodeCache},
		components.KindControl:        {Update: updateControl, Draw: drawNothing},
		components.KindPlug:           {Update: updateGround, Draw: drawGround, Damage: damageGround, Explode: explodeGround},
		components.KindParticle:       {Update: updateParticle},
		components.KindGroundParticle: {Update: updateGroundParticle},
		components.KindText:           {Update: updateText, Draw: drawTextActor},
		components.KindLazer:          {Update: updateLazer, Draw: drawLazer},
		components.KindBullet:         {Update: updateBullet},
		components.KindBomb:           {Update: updateBomb, Explode: explodeBomb},
		components.KindHarpoon:        {Update: updateHarpoon, Draw: drawHarpoon},
		components.KindPowerup:        {Update: updatePowerup, Draw: drawPowerup},
	}
}

// Update advances one actor by a frame
// Anchored actors are first placed on their tile row at the current scroll
func Update(ctx *engine.GameContext, a *components.Actor) {
	if !a.Alive() || a.Kind >= components.KindCount {
		return
	}
	if a.Kind.Anchored() {
		a.Y = GroundY(ctx, a.Ground.TY)
	}
	if fn := behaviors[a.Kind].Update; fn != nil {
		fn(ctx, a)
		return
	}
	step(ctx, a, nil)
}

// Draw renders one actor
func Draw(ctx *engine.GameContext, r engine.Renderer, a *components.Actor) {
	if !a.Alive() || a.Kind >= components.KindCount {
		return
	}
	if fn := behaviors[a.Kind].Draw; fn != nil {
		fn(ctx, r, a)
		return
	}
	drawDefault(r, a)
}

// Damage removes n hit points and reports whether the hit destroyed the actor
// Actors already destroyed ignore further damage
func Damage(ctx *engine.GameContext, a *components.Actor, n int) bool {
	if a.Removed || a.Destroyed || a.Kind >= components.KindCount {
		return false
	}
	if fn := behaviors[a.Kind].Damage; fn != nil {
		return fn(ctx, a, n)
	}
	return damageDefault(ctx, a, n)
}

// Explode destroys an actor; the kind's explosion effects run at most once
func Explode(ctx *engine.GameContext, a *components.Actor) {
	if a.Destroyed || a.Kind >= components.KindCount {
		return
	}
	a.Destroyed = true
	if fn := behaviors[a.Kind].Explode; fn != nil {
		fn(ctx, a)
		return
	}
	explodeDefault(ctx, a)
}

// Collide tests a against a circle; nothing collides while control is suspended
func Collide(ctx *engine.GameContext, a *components.Actor, x, y, r float64) (physics.Hit, bool) {
	if ctx.State.NoControl || !a.Alive() {
		return physics.Hit{}, false
	}
	return physics.Overlap(a.X, a.Y, a.Radius, x, y, r)
}

// CollideActors tests two live actors against each other
func CollideActors(ctx *engine.GameContext, a, b *components.Actor) (physics.Hit, bool) {
	if !b.Alive() {
		return physics.Hit{}, false
	}
	return Collide(ctx, a, b.X, b.Y, b.Radius)
}

// ===== Shared Defaults =====

// step runs the AI unless control is suspended, then integrates the body
func step(ctx *engine.GameContext, a *components.Actor, ai func(*engine.GameContext, *components.Actor)) {
	if ai != nil && !ctx.State.NoControl {
		ai(ctx, a)
	}
	a.Integrate()
	a.F++
}

func damageDefault(ctx *engine.GameContext, a *components.Actor, n int) bool {
	a.HP -= n
	if a.HP <= 0 {
		Explode(ctx, a)
		return true
	}
	return false
}

func explodeDefault(ctx *engine.GameContext, a *components.Actor) {
	a.Removed = true
	AddParticle(ctx, a.Explosion, a.X, a.Y)
}

func drawDefault(r engine.Renderer, a *components.Actor) {
	drawAnim(r, a.Anim, a.X, a.Y, a.Heading)
}

func drawNothing(*engine.GameContext, engine.Renderer, *components.Actor) {}
