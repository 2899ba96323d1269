package components

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/physics"
)

// Kind tags an Actor with the behavior set that drives it
type Kind uint8

const (
	KindPlayer Kind = iota
	KindAir
	KindTurret
	KindCache
	KindControl
	KindPlug
	KindParticle
	KindGroundParticle
	KindText
	KindLazer
	KindBullet
	KindBomb
	KindHarpoon
	KindPowerup

	KindCount
)

var kindNames = [KindCount]string{
	KindPlayer:         "player",
	KindAir:            "air",
	KindTurret:         "turret",
	KindCache:          "cache",
	KindControl:        "control",
	KindPlug:           "plug",
	KindParticle:       "particle",
	KindGroundParticle: "ground-particle",
	KindText:           "text",
	KindLazer:          "lazer",
	KindBullet:         "bullet",
	KindBomb:           "bomb",
	KindHarpoon:        "harpoon",
	KindPowerup:        "powerup",
}

func (k Kind) String() string {
	if k < KindCount {
		return kindNames[k]
	}
	return "kind?"
}

// Anchored reports whether the kind is fixed to a terrain tile
func (k Kind) Anchored() bool {
	switch k {
	case KindTurret, KindCache, KindControl, KindPlug:
		return true
	}
	return false
}

// Actor is a single simulated entity
// Kind-specific data lives in exactly one of the payload pointers, matching Kind
type Actor struct {
	physics.Body

	Kind      Kind
	Tier      int          // Strength tier, 1-based; 0 when the kind has none
	F         int          // Frames lived
	HP        int          // Hit points
	Removed   bool         // Dropped from the world at the end of the frame
	Destroyed bool         // Explosion already ran; further damage is ignored
	Explosion asset.AnimID // Particle spawned on explosion, AnimNone for none
	Anim      *asset.Animation

	Player  *PlayerState
	Ground  *GroundState
	Control *ControlState
	Text    *TextState
	Lazer   *LazerState
	Bullet  *BulletState
	Bomb    *BombState
	Harpoon *HarpoonState
	Powerup *PowerupState
}

// NewActor returns an actor with default body parameters and one hit point
func NewActor(kind Kind, x, y float64) *Actor {
	return &Actor{
		Body:      physics.NewBody(x, y),
		Kind:      kind,
		HP:        1,
		Explosion: asset.AnimExplosionAir,
	}
}

// Alive reports whether the actor still takes part in the simulation
func (a *Actor) Alive() bool {
	return !a.Removed
}

// GroundDead reports whether an anchored actor has been destroyed in place
func (a *Actor) GroundDead() bool {
	return a.Ground != nil && a.Ground.Dead
}
