package asset

// SoundID names a sound effect
type SoundID uint8

const (
	SoundSand SoundID = iota
	SoundBomb
	SoundCoin
	SoundExplodeAir
	SoundExplodeGround
	SoundBombGround
	SoundBullet
	SoundLazer
	SoundUpload
	SoundHP
	SoundBlip
	SoundHarpoon
	SoundUploadFail
	SoundLevelFail
	SoundLevelComplete
	SoundHit
	SoundPowerup
	SoundLevelStart

	SoundCount
)

var soundNames = [SoundCount]string{
	SoundSand:          "sand",
	SoundBomb:          "bomb",
	SoundCoin:          "coin",
	SoundExplodeAir:    "expa",
	SoundExplodeGround: "expg",
	SoundBombGround:    "bombg",
	SoundBullet:        "bullet",
	SoundLazer:         "lz",
	SoundUpload:        "upl",
	SoundHP:            "hp",
	SoundBlip:          "blip",
	SoundHarpoon:       "har",
	SoundUploadFail:    "uplf",
	SoundLevelFail:     "lvlf",
	SoundLevelComplete: "lvlc",
	SoundHit:           "hit",
	SoundPowerup:       "sp",
	SoundLevelStart:    "lvls",
}

func (s SoundID) String() string {
	if s < SoundCount {
		return soundNames[s]
	}
	return "sound?"
}
