package asset

// AnimID names a registered animation; every drawable in the game is one
type AnimID uint8

const (
	AnimNone AnimID = iota

	AnimPlayerDefault
	AnimPlayerLeft
	AnimPlayerRight
	AnimPlayerFromLeft
	AnimPlayerFromRight
	AnimTarget

	AnimAir1
	AnimAir2
	AnimAir3
	AnimAir4
	AnimAir1Damaged
	AnimAir2Damaged
	AnimAir3Damaged
	AnimAir4Damaged

	AnimGround1
	AnimGround2
	AnimGround3
	AnimGround1Damaged
	AnimGround2Damaged
	AnimGround3Damaged
	AnimGroundDead
	AnimTurret1
	AnimTurret2
	AnimTurret3

	AnimCache
	AnimCacheDamaged
	AnimCacheDead
	AnimPlug
	AnimPlugDead

	AnimExplosionAir
	AnimExplosionLazer
	AnimExplosionBomb
	AnimFlash

	AnimLazer1
	AnimLazer2
	AnimLazer3
	AnimBullet1
	AnimBullet2
	AnimBullet3
	AnimBomb
	AnimHarpoon

	AnimPowerupHP
	AnimPowerupLazer
	AnimPowerupCoin
	AnimPowerup2x

	AnimCount
)

var animNames = [AnimCount]string{
	AnimNone:            "none",
	AnimPlayerDefault:   "pl_default",
	AnimPlayerLeft:      "pl_left",
	AnimPlayerRight:     "pl_right",
	AnimPlayerFromLeft:  "pl_from_left",
	AnimPlayerFromRight: "pl_from_right",
	AnimTarget:          "target",
	AnimAir1:            "air1",
	AnimAir2:            "air2",
	AnimAir3:            "air3",
	AnimAir4:            "air4",
	AnimAir1Damaged:     "air1dmg",
	AnimAir2Damaged:     "air2dmg",
	AnimAir3Damaged:     "air3dmg",
	AnimAir4Damaged:     "air4dmg",
	AnimGround1:         "ground1",
	AnimGround2:         "ground2",
	AnimGround3:         "ground3",
	AnimGround1Damaged:  "ground1dmg",
	AnimGround2Damaged:  "ground2dmg",
	AnimGround3Damaged:  "ground3dmg",
	AnimGroundDead:      "grounddead",
	AnimTurret1:         "turret1",
	AnimTurret2:         "turret2",
	AnimTurret3:         "turret3",
	AnimCache:           "cache",
	AnimCacheDamaged:    "cachedmg",
	AnimCacheDead:       "cachedead",
	AnimPlug:            "plug",
	AnimPlugDead:        "plugdead",
	AnimExplosionAir:    "expl_air",
	AnimExplosionLazer:  "expl_lazer",
	AnimExplosionBomb:   "expl_bomb",
	AnimFlash:           "flash",
	AnimLazer1:          "lazer1",
	AnimLazer2:          "lazer2",
	AnimLazer3:          "lazer3",
	AnimBullet1:         "bullet1",
	AnimBullet2:         "bullet2",
	AnimBullet3:         "bullet3",
	AnimBomb:            "bomb",
	AnimHarpoon:         "harpoon",
	AnimPowerupHP:       "pwrhp",
	AnimPowerupLazer:    "pwrlazer",
	AnimPowerupCoin:     "pwrcoin",
	AnimPowerup2x:       "pwr2x",
}

func (id AnimID) String() string {
	if id < AnimCount {
		return animNames[id]
	}
	return "anim?"
}

// Tiered lookups; tiers start at 1
var (
	airAnims           = [...]AnimID{AnimNone, AnimAir1, AnimAir2, AnimAir3, AnimAir4}
	airDamagedAnims    = [...]AnimID{AnimNone, AnimAir1Damaged, AnimAir2Damaged, AnimAir3Damaged, AnimAir4Damaged}
	groundAnims        = [...]AnimID{AnimNone, AnimGround1, AnimGround2, AnimGround3}
	groundDamagedAnims = [...]AnimID{AnimNone, AnimGround1Damaged, AnimGround2Damaged, AnimGround3Damaged}
	turretAnims        = [...]AnimID{AnimNone, AnimTurret1, AnimTurret2, AnimTurret3}
	lazerAnims         = [...]AnimID{AnimNone, AnimLazer1, AnimLazer2, AnimLazer3}
	bulletAnims        = [...]AnimID{AnimNone, AnimBullet1, AnimBullet2, AnimBullet3}
)

func tiered(table []AnimID, tier int) AnimID {
	if tier < 1 || tier >= len(table) {
		return AnimNone
	}
	return table[tier]
}

func AirAnim(tier int) AnimID           { return tiered(airAnims[:], tier) }
func AirDamagedAnim(tier int) AnimID    { return tiered(airDamagedAnims[:], tier) }
func GroundAnim(tier int) AnimID        { return tiered(groundAnims[:], tier) }
func GroundDamagedAnim(tier int) AnimID { return tiered(groundDamagedAnims[:], tier) }
func TurretAnim(tier int) AnimID        { return tiered(turretAnims[:], tier) }
func LazerAnim(tier int) AnimID         { return tiered(lazerAnims[:], tier) }
func BulletAnim(tier int) AnimID        { return tiered(bulletAnims[:], tier) }

// Sprite is a block of glyphs drawn centered on a world position
type Sprite struct {
	Glyphs []string
	Color  RGB
	// Rotates selects a directional arrow glyph from the draw heading instead of Glyphs
	Rotates bool
}

// Step shows one sprite for a number of frames
type Step struct {
	Sprite Sprite
	Frames int
}

// Definition is an immutable animation template
type Definition struct {
	Loop  bool
	Steps []Step
}

// Animation is a playing instance of a Definition
type Animation struct {
	ID    AnimID
	def   *Definition
	step  int
	frame int
	done  bool
}

// Sprite returns the sprite of the current step
func (a *Animation) Sprite() *Sprite {
	return &a.def.Steps[a.step].Sprite
}

// Advance counts one displayed frame; non-looping animations hold their last step once done
func (a *Animation) Advance() {
	a.frame++
	if a.frame < a.def.Steps[a.step].Frames {
		return
	}
	a.frame = 0
	a.step++
	if a.step >= len(a.def.Steps) {
		a.done = true
		if a.def.Loop {
			a.step = 0
		} else {
			a.step = len(a.def.Steps) - 1
		}
	}
}

// Done reports whether the last step has completed at least once
func (a *Animation) Done() bool {
	return a.done
}

// Duration returns the number of frames in one pass
func (a *Animation) Duration() int {
	n := 0
	for _, s := range a.def.Steps {
		n += s.Frames
	}
	return n
}
