package components

import "github.com/lixenwraith/planet-offline/asset"

// TextState is a floating notification or a label pinned to the terrain
type TextState struct {
	Text      string
	Color     asset.RGB
	Size      int
	MaxFrames int  // Lifetime of floating text
	Grounded  bool // Pinned to tile TX, TY and scrolls with the terrain
	TX, TY    int
}

// PowerupType is the effect applied when the player collects a pickup
type PowerupType uint8

const (
	PowerupHP PowerupType = iota
	PowerupLazer
	PowerupCoin
	PowerupDouble
)

var powerupAnims = [...]asset.AnimID{
	PowerupHP:     asset.AnimPowerupHP,
	PowerupLazer:  asset.AnimPowerupLazer,
	PowerupCoin:   asset.AnimPowerupCoin,
	PowerupDouble: asset.AnimPowerup2x,
}

// Anim returns the pickup's animation
func (p PowerupType) Anim() asset.AnimID {
	if int(p) < len(powerupAnims) {
		return powerupAnims[p]
	}
	return asset.AnimNone
}

// PowerupState is a collectible pickup
type PowerupState struct {
	Type   PowerupType
	Frames int // Lifetime
}
