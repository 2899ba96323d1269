package systems

import (
	"fmt"
	"math"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/vmath"
)

// NewPlayer creates the ship at the center of the screen
// The player is owned by the context, not the world
func NewPlayer(ctx *engine.GameContext) *components.Actor {
	a := components.NewActor(components.KindPlayer, constants.PlayerStartX, constants.PlayerStartY)
	a.Radius = constants.PlayerRadius
	a.HP = constants.PlayerMaxHP
	a.Player = &components.PlayerState{
		Speed:         constants.PlayerSpeed,
		Reach:         constants.PlayerMaxReach,
		MaxReach:      constants.PlayerMaxReach,
		LazerCooldown: constants.PlayerLazerCooldown,
		LazerFrame:    constants.PlayerLazerCooldown,
		LazerLevel:    1,
		MaxHP:         constants.PlayerMaxHP,
	}
	a.Anim = ctx.Anim(components.PoseDefault.Anim())
	return a
}

// SetPose switches the banking animation; re-entering the current pose keeps it playing
func SetPose(ctx *engine.GameContext, a *components.Actor, pose components.Pose) {
	p := a.Player
	if p.Pose == pose {
		return
	}
	p.Pose = pose
	a.Anim = ctx.Anim(pose.Anim())
}

// PlusHP heals the player up to max HP
func PlusHP(a *components.Actor, n int) {
	a.HP = min(a.HP+n, a.Player.MaxHP)
}

// updatePlayer applies held controls, then releases queued bombs
// Without control only the bomb queue and tether bookkeeping run
func updatePlayer(ctx *engine.GameContext, a *components.Actor) {
	p := a.Player
	if !ctx.State.NoControl {
		steerPlayer(ctx, a)
	}

	if p.Tether != nil && p.Tether.Removed {
		p.Tether = nil
	}

	if len(p.Bombs) > 0 {
		if p.BombFrame <= 0 {
			p.BombFrame = constants.PlayerBombSpacing
			ctx.Play(asset.SoundBomb)
			ctx.World.Add(p.Bombs[0])
			p.Bombs[0] = nil
			p.Bombs = p.Bombs[1:]
		} else {
			p.BombFrame--
		}
	}
}

func steerPlayer(ctx *engine.GameContext, a *components.Actor) {
	p := a.Player
	turning := false
	if ctx.Held(engine.KeyLeft) {
		turning = true
		a.X -= p.Speed
	}
	if ctx.Held(engine.KeyRight) {
		turning = true
		a.X += p.Speed
	}
	if ctx.Held(engine.KeyUp) {
		a.Y -= p.Speed
	}
	if ctx.Held(engine.KeyDown) {
		a.Y += p.Speed
	} else {
		p.Reach = max(p.Reach-constants.PlayerReachStep, p.MaxReach)
	}
	if ctx.Held(engine.KeyLazer) {
		FireLazer(ctx, a)
	}

	if !turning {
		switch p.Pose {
		case components.PoseLeft:
			SetPose(ctx, a, components.PoseFromLeft)
		case components.PoseRight:
			SetPose(ctx, a, components.PoseFromRight)
		}
	}
	if (p.Pose == components.PoseFromLeft || p.Pose == components.PoseFromRight) && (a.Anim == nil || a.Anim.Done()) {
		SetPose(ctx, a, components.PoseDefault)
	}

	// Axes clamp independently; pushing against the bottom edge pulls the reticle in
	a.X = vmath.Clamp(a.X, 0, constants.ScreenWidth)
	if a.Y < 0 {
		a.Y = 0
	}
	if a.Y > constants.ScreenHeight {
		a.Y = constants.ScreenHeight
		if ctx.Held(engine.KeyDown) {
			p.Reach = min(p.Reach+constants.PlayerReachStep, 0)
		}
	}

	p.LazerFrame++
}

func explodePlayer(ctx *engine.GameContext, a *components.Actor) {
	if ctx.State.NoControl {
		return
	}
	ctx.Play(asset.SoundLevelFail)
	ctx.EndRound(false)
}

// ===== Weapons =====

// FireLazer launches a volley for the current weapon level once the cooldown has elapsed
// Each volley costs points
func FireLazer(ctx *engine.GameContext, a *components.Actor) {
	p := a.Player
	if p.LazerFrame <= p.LazerCooldown {
		return
	}
	p.LazerFrame = 0

	switch p.LazerLevel {
	case 1:
		for i := 0; i < 3; i++ {
			delay := i * constants.LazerVolleyGap
			ctx.World.Add(
				NewLazer(ctx, 1, components.LazerState{Damage: 1, Delay: delay, OffsetX: -5, Sound: true}, 0, -9),
				NewLazer(ctx, 1, components.LazerState{Damage: 1, Delay: delay, OffsetX: 5}, 0, -9),
			)
		}
	case 2:
		for i := 0; i < 4; i++ {
			for x := -10; x <= 10; x += 10 {
				st := components.LazerState{Damage: 3, Delay: i * constants.LazerVolleyGap, OffsetX: float64(x), Sound: x == -10}
				ctx.World.Add(NewLazer(ctx, 2, st, 0, -14))
			}
		}
	default:
		for j := 0; j < 4; j++ {
			for i := 1; i < 6; i++ {
				vx := vmath.Normalize(float64(i), 0, 6, -3, 3)
				st := components.LazerState{Damage: 5, Delay: j * constants.LazerVolleyGap, OffsetX: vx, Sound: i == 1}
				ctx.World.Add(NewLazer(ctx, 3, st, vx, -10))
			}
		}
	}
	ctx.State.Spend(constants.LazerVolleyCost)
}

// DropBombs queues a salvo sized by the current level; ignored while a salvo is still dropping
func DropBombs(ctx *engine.GameContext, a *components.Actor) {
	p := a.Player
	if len(p.Bombs) > 0 {
		return
	}
	lvl := ctx.State.Level
	if lvl < 0 || lvl >= len(constants.BombsPerLevel) {
		lvl = len(constants.BombsPerLevel) - 1
	}
	for i := 0; i < constants.BombsPerLevel[lvl]; i++ {
		p.Bombs = append(p.Bombs, NewBomb(ctx, a.X, a.Y, p.Reach))
	}
}

// LaunchHarpoon fires the uplink tether; only one may be out at a time
func LaunchHarpoon(ctx *engine.GameContext, a *components.Actor) {
	p := a.Player
	if p.Tether != nil {
		return
	}
	h := NewHarpoon(ctx, a.X, a.Y)
	p.Tether = h
	ctx.Play(asset.SoundHarpoon)
	ctx.World.Add(h)
}

// ===== Drawing =====

func drawPlayer(ctx *engine.GameContext, r engine.Renderer, a *components.Actor) {
	drawAnim(r, a.Anim, a.X, a.Y, 0)
	if s := ctx.Sprite(asset.AnimTarget); s != nil {
		r.DrawSprite(s, a.X, a.Y+a.Player.Reach, 0)
	}
	drawHPBar(r, a)
}

// drawHPBar draws the health gauge in the bottom right corner
func drawHPBar(r engine.Renderer, a *components.Actor) {
	const (
		w = constants.HPBarWidth
		h = constants.HPBarHeight
		x = constants.ScreenWidth - w - constants.HPBarMargin
		y = constants.ScreenHeight - h - 2 - h/2
	)
	fill := vmath.Clamp(vmath.Normalize(float64(a.HP), 0, float64(a.Player.MaxHP), 0, w), 0, w)
	r.FillRect(x, y, w, h, asset.Red, 1)
	r.FillRect(x, y, fill, h, asset.Blue, 1)

	pct := fmt.Sprintf("%d%%", int(math.Round(float64(max(a.HP, 0))*100/float64(a.Player.MaxHP))))
	r.DrawText(pct, x+w/2-float64(len(pct))*6.5, y, engine.TextStyle{Size: 24, Color: asset.White})
}
