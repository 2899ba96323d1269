package components

import "github.com/lixenwraith/planet-offline/asset"

// Pose is the player's banking state
type Pose uint8

const (
	PoseDefault Pose = iota
	PoseLeft
	PoseRight
	PoseFromLeft
	PoseFromRight
)

var poseAnims = [...]asset.AnimID{
	PoseDefault:   asset.AnimPlayerDefault,
	PoseLeft:      asset.AnimPlayerLeft,
	PoseRight:     asset.AnimPlayerRight,
	PoseFromLeft:  asset.AnimPlayerFromLeft,
	PoseFromRight: asset.AnimPlayerFromRight,
}

// Anim returns the animation shown for the pose
func (p Pose) Anim() asset.AnimID {
	if int(p) < len(poseAnims) {
		return poseAnims[p]
	}
	return asset.AnimPlayerDefault
}

// PlayerState holds the player ship's weapons and controls
type PlayerState struct {
	Speed         float64 // Pixels moved per frame per held arrow
	Reach         float64 // Bomb reticle offset from the ship, negative is above
	MaxReach      float64 // Furthest reticle offset
	LazerCooldown int     // Frames between volleys
	LazerFrame    int     // Frames since the last volley
	LazerLevel    int     // Weapon upgrade level, 1 to 3
	MaxHP         int
	Pose          Pose
	Tether        *Actor   // Active harpoon, nil when none
	Bombs         []*Actor // Bombs waiting to be released
	BombFrame     int      // Frames until the next queued bomb drops
}
