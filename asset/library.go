package asset

// Frame counts shared by the built-in animations
const (
	stillFrames     = 2
	playerFrames    = 5
	explosionFrames = 6
	cycleFrames     = 4
)

func spr(color RGB, glyphs ...string) Sprite {
	return Sprite{Glyphs: glyphs, Color: color}
}

// still is a single-sprite animation that finishes after two frames and holds
func still(s Sprite) Definition {
	return Definition{Steps: []Step{{Sprite: s, Frames: stillFrames}}}
}

func sequence(loop bool, frames int, sprites ...Sprite) Definition {
	steps := make([]Step, len(sprites))
	for i, s := range sprites {
		steps[i] = Step{Sprite: s, Frames: frames}
	}
	return Definition{Loop: loop, Steps: steps}
}

// flashed returns a copy of s drawn in white, used for hit feedback
func flashed(s Sprite) Sprite {
	return Sprite{Glyphs: s.Glyphs, Color: White, Rotates: s.Rotates}
}

func registerLibrary(r *Registry) {
	// Player banking poses, hard left to hard right
	shipColor := Hex("#5CF")
	pose := [5]Sprite{
		spr(shipColor, " ^ ", "<#|"),
		spr(shipColor, " ^ ", "<#\\"),
		spr(shipColor, " ^ ", "/#\\"),
		spr(shipColor, " ^ ", "/#>"),
		spr(shipColor, " ^ ", "|#>"),
	}
	r.Register(AnimPlayerDefault, sequence(false, playerFrames, pose[2]))
	r.Register(AnimPlayerLeft, sequence(false, playerFrames, pose[1], pose[0]))
	r.Register(AnimPlayerRight, sequence(false, playerFrames, pose[3], pose[4]))
	r.Register(AnimPlayerFromLeft, sequence(false, playerFrames, pose[1], pose[2]))
	r.Register(AnimPlayerFromRight, sequence(false, playerFrames, pose[3], pose[2]))
	r.Register(AnimTarget, still(spr(Hex("#0F0"), "x")))

	air := [4]Sprite{
		spr(Hex("#D55"), "\\v/"),
		spr(Hex("#DA5"), "\\V/"),
		spr(Hex("#D5D"), "{W}"),
		spr(Hex("#F33"), "<M>", " V "),
	}
	for tier := 1; tier <= 4; tier++ {
		r.Register(AirAnim(tier), still(air[tier-1]))
		r.Register(AirDamagedAnim(tier), still(flashed(air[tier-1])))
	}

	hull := [3]Sprite{
		spr(Hex("#774"), "[=]", "[_]"),
		spr(Hex("#576"), "[#]", "[_]"),
		spr(Hex("#667"), "[@]", "[_]"),
	}
	turret := [3]RGB{Hex("#BB8"), Hex("#8BB"), Hex("#B8B")}
	for tier := 1; tier <= 3; tier++ {
		r.Register(GroundAnim(tier), still(hull[tier-1]))
		r.Register(GroundDamagedAnim(tier), still(flashed(hull[tier-1])))
		r.Register(TurretAnim(tier), still(Sprite{Color: turret[tier-1], Rotates: true}))
	}
	r.Register(AnimGroundDead, still(spr(Hex("#333"), "x.x", "...")))

	cache := [3]Sprite{
		spr(Hex("#599"), "/$\\", "\\$/"),
		spr(Hex("#6A9"), "/$\\", "\\$/"),
		spr(Hex("#6AA"), "/$\\", "\\$/"),
	}
	r.Register(AnimCache, Definition{Loop: true, Steps: []Step{
		{Sprite: cache[0], Frames: cycleFrames},
		{Sprite: cache[1], Frames: cycleFrames},
		{Sprite: cache[2], Frames: cycleFrames},
		{Sprite: cache[1], Frames: cycleFrames},
	}})
	r.Register(AnimCacheDamaged, still(flashed(cache[0])))
	r.Register(AnimCacheDead, still(spr(Hex("#222"), "/.\\", "\\./")))

	plug := [3]Sprite{
		spr(Hex("#AAA"), "(O)"),
		spr(Hex("#AAF"), "(O)"),
		spr(Hex("#AFF"), "(O)"),
	}
	r.Register(AnimPlug, Definition{Loop: true, Steps: []Step{
		{Sprite: plug[0], Frames: cycleFrames},
		{Sprite: plug[1], Frames: cycleFrames},
		{Sprite: plug[2], Frames: cycleFrames},
		{Sprite: plug[1], Frames: 2 * cycleFrames},
	}})
	r.Register(AnimPlugDead, Definition{Steps: []Step{{Sprite: spr(Hex("#777"), "(.)"), Frames: 2 * cycleFrames}}})

	r.Register(AnimExplosionAir, sequence(false, explosionFrames,
		spr(Hex("#FF5"), "·"),
		spr(Hex("#FD4"), "+"),
		spr(Hex("#FA3"), "*"),
		spr(Hex("#F73"), "\\|/", "-*-", "/|\\"),
		spr(Hex("#A33"), ". .", " . ", ". ."),
	))
	r.Register(AnimExplosionBomb, sequence(false, explosionFrames,
		spr(Hex("#DA5"), "o"),
		spr(Hex("#DA5"), "O"),
		spr(Hex("#C85"), "(O)"),
		spr(Hex("#964"), "( )"),
		spr(Hex("#643"), "."),
	))
	r.Register(AnimExplosionLazer, sequence(false, explosionFrames,
		spr(Hex("#AFF"), "'"),
		spr(Hex("#8DF"), "*"),
		spr(Hex("#58A"), "."),
	))
	r.Register(AnimFlash, Definition{Steps: []Step{{Sprite: spr(White, "*"), Frames: 5}}})

	r.Register(AnimLazer1, still(spr(Hex("#F55"), "|")))
	r.Register(AnimLazer2, still(spr(Hex("#5F5"), "|")))
	r.Register(AnimLazer3, still(spr(Hex("#5FF"), "!")))
	r.Register(AnimBullet1, still(spr(Hex("#F88"), "•")))
	r.Register(AnimBullet2, still(spr(Hex("#FF8"), "•")))
	r.Register(AnimBullet3, still(spr(Hex("#F8F"), "•")))
	r.Register(AnimBomb, still(spr(Hex("#AAA"), "o")))
	r.Register(AnimHarpoon, still(spr(Gray, "Y")))

	r.Register(AnimPowerupHP, still(spr(Hex("#55F"), "(+)")))
	r.Register(AnimPowerupLazer, still(spr(Hex("#F92"), "(L)")))
	coin := [3]Sprite{
		spr(Hex("#FF0"), "o"),
		spr(Hex("#FF0"), "c"),
		spr(Hex("#FF0"), "O"),
	}
	r.Register(AnimPowerupCoin, Definition{Loop: true, Steps: []Step{
		{Sprite: coin[0], Frames: cycleFrames},
		{Sprite: coin[1], Frames: cycleFrames},
		{Sprite: coin[2], Frames: cycleFrames},
		{Sprite: coin[1], Frames: 2 * cycleFrames},
	}})
	r.Register(AnimPowerup2x, still(spr(Hex("#F2F"), "2x")))
}
