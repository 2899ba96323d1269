package game

import (
	"log"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/level"
	"github.com/lixenwraith/planet-offline/systems"
	"github.com/lixenwraith/planet-offline/vmath"
)

// Game is the orchestrator: it owns the round state machine and steps the simulation
// All methods run on the main loop goroutine
type Game struct {
	ctx    *engine.GameContext
	store  engine.ScoreStore
	script string
	jitter *vmath.FastRand // Banner shake; kept apart from the simulation RNG
}

// New creates a game on the title screen and loads the stored high score
func New(ctx *engine.GameContext, store engine.ScoreStore, script string) *Game {
	g := &Game{
		ctx:    ctx,
		store:  store,
		script: script,
		jitter: vmath.NewFastRand(ctx.Rand.Next()),
	}
	ctx.Hooks = engine.Hooks{
		EndRound: g.end,
		EndLevel: g.endLevel,
	}

	if store != nil {
		hs, err := store.LoadHighScore()
		if err != nil {
			log.Printf("high score unavailable: %v", err)
		}
		ctx.State.HighScore = hs
	}
	return g
}

// Err returns the fatal error that halted the simulation, if any
func (g *Game) Err() error {
	return g.ctx.State.Err
}

// LoadPending reports whether a round is waiting for CompleteLoad
func (g *Game) LoadPending() bool {
	return g.ctx.State.Loading
}

// AcceptsInput reports whether key presses should be recorded; cutscenes ignore the keyboard
func (g *Game) AcceptsInput() bool {
	s := g.ctx.State
	return !s.NoControl && s.Err == nil
}

// KeyDown handles a key press edge
func (g *Game) KeyDown(k engine.Key) {
	ctx := g.ctx
	s := ctx.State
	if s.NoControl || s.Loading || s.Err != nil {
		return
	}
	if !s.Started {
		g.start()
		return
	}

	switch k {
	case engine.KeyMute:
		if ctx.Audio != nil {
			ctx.Audio.ToggleMute()
		}
	case engine.KeyPause:
		s.Paused = !s.Paused
	}
	if s.Paused {
		return
	}

	pl := ctx.Player
	switch k {
	case engine.KeyLeft:
		systems.SetPose(ctx, pl, components.PoseLeft)
	case engine.KeyRight:
		systems.SetPose(ctx, pl, components.PoseRight)
	case engine.KeyLazer:
		systems.FireLazer(ctx, pl)
	case engine.KeyBomb:
		systems.DropBombs(ctx, pl)
	case engine.KeyTether:
		systems.LaunchHarpoon(ctx, pl)
	}
}

// Step runs one tick of the fixed-step loop and reports whether the frame should be redrawn
// A paused game redraws without simulating; without control only every third tick simulates
func (g *Game) Step() bool {
	s := g.ctx.State
	if s.Err != nil {
		return false
	}
	s.AdvanceFrame()

	if s.Loading || s.Paused {
		return true
	}
	if s.NoControl && s.Frame%constants.NoControlFrameStride != 0 {
		return false
	}
	g.update()
	return true
}

// update advances callbacks, the player, every actor, the spawner and the scroll, in that order
func (g *Game) update() {
	ctx := g.ctx
	s := ctx.State

	ctx.Scheduler.Tick()
	if !s.Started || s.Err != nil {
		return
	}

	systems.Update(ctx, ctx.Player)
	ctx.World.Update(func(a *components.Actor) {
		systems.Update(ctx, a)
	})
	systems.StepSpawner(ctx)
	s.Scroll(ctx.Terrain.Height() - constants.ScreenHeight)
}

// start plays the start jingle and enters the loading blackout
// The caller finishes the load with CompleteLoad once the blackout has elapsed
func (g *Game) start() {
	g.ctx.Play(asset.SoundLevelStart)
	g.ctx.State.Loading = true
}

// CompleteLoad builds a fresh round: new player, level actors, camera on level 1, fade in
func (g *Game) CompleteLoad() {
	ctx := g.ctx
	s := ctx.State
	if !s.Loading {
		return
	}

	ctx.World.Reset()
	s.BeginRound(0)
	ctx.Player = systems.NewPlayer(ctx)

	levels, err := level.Load(ctx, g.script)
	if err != nil {
		ctx.Fail(err)
		return
	}
	s.LevelCount = levels
	g.camToLevel(s.Level)
	g.fade(true)
	log.Printf("round started: %d levels, high score %d", levels, s.HighScore)
}

// camToLevel jumps the scroll to a level's begin marker
func (g *Game) camToLevel(lvl int) {
	scroll, err := level.BeginScroll(g.ctx.World, lvl)
	if err != nil {
		g.ctx.Fail(err)
		return
	}
	g.ctx.State.ScrollOffset = scroll
}
