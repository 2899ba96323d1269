package engine

import (
	"log"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/vmath"
)

// Hooks lets actor behaviors trigger orchestrator flows without importing the game package
type Hooks struct {
	EndRound func(victory bool)
	EndLevel func()
}

// GameContext is passed explicitly to every behavior
type GameContext struct {
	State     *GameState
	World     *World
	Scheduler *Scheduler
	Player    *components.Actor

	Assets  *asset.Registry
	Audio   Audio
	Input   Input
	Terrain Terrain
	Rand    *vmath.FastRand

	Hooks Hooks
}

// NewGameContext wires a context with fresh state, world and scheduler
func NewGameContext(assets *asset.Registry, audio Audio, input Input, terrain Terrain, rng *vmath.FastRand) *GameContext {
	return &GameContext{
		State:     NewGameState(),
		World:     NewWorld(),
		Scheduler: NewScheduler(),
		Assets:    assets,
		Audio:     audio,
		Input:     input,
		Terrain:   terrain,
		Rand:      rng,
	}
}

// Play plays a sound if audio is attached
func (c *GameContext) Play(id asset.SoundID) {
	if c.Audio != nil {
		c.Audio.Play(id)
	}
}

// Held reports whether a key is held; always false without input
func (c *GameContext) Held(k Key) bool {
	return c.Input != nil && c.Input.Held(k)
}

// AddPoints adds multiplied points to the score
func (c *GameContext) AddPoints(p int) {
	c.State.AddPoints(p)
}

// Anim instantiates an animation; a missing definition is fatal and yields nil
func (c *GameContext) Anim(id asset.AnimID) *asset.Animation {
	if id == asset.AnimNone {
		return nil
	}
	a, err := c.Assets.New(id)
	if err != nil {
		c.Fail(err)
		return nil
	}
	return a
}

// Sprite resolves the first sprite of an animation for static drawing
func (c *GameContext) Sprite(id asset.AnimID) *asset.Sprite {
	s, err := c.Assets.Sprite(id)
	if err != nil {
		c.Fail(err)
		return nil
	}
	return s
}

// Fail records the first fatal error; the orchestrator stops stepping once set
func (c *GameContext) Fail(err error) {
	if err == nil || c.State.Err != nil {
		return
	}
	log.Printf("simulation halted: %v", err)
	c.State.Err = err
}

// EndRound ends the current round
func (c *GameContext) EndRound(victory bool) {
	if c.Hooks.EndRound != nil {
		c.Hooks.EndRound(victory)
	}
}

// EndLevel runs the level completion flow
func (c *GameContext) EndLevel() {
	if c.Hooks.EndLevel != nil {
		c.Hooks.EndLevel()
	}
}
