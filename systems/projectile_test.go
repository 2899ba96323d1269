package systems

import (
	"testing"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

func TestFireLazerVolleys(t *testing.T) {
	tests := []struct {
		level  int
		lazers int
	}{
		{1, 6},
		{2, 12},
		{3, 20},
	}
	for _, tt := range tests {
		ctx, _, _ := newSim(t)
		ctx.Player.Player.LazerLevel = tt.level
		ctx.Player.Player.LazerFrame = constants.PlayerLazerCooldown + 1

		FireLazer(ctx, ctx.Player)
		FireLazer(ctx, ctx.Player) // still cooling down

		if n := countKind(ctx, components.KindLazer); n != tt.lazers {
			t.Errorf("level %d: lazers = %d, want %d", tt.level, n, tt.lazers)
		}
		if ctx.State.Score != -constants.LazerVolleyCost {
			t.Errorf("level %d: score = %d, want %d", tt.level, ctx.State.Score, -constants.LazerVolleyCost)
		}
	}
}

func TestDelayedLazerHoldsStill(t *testing.T) {
	ctx, audio, _ := newSim(t)
	l := NewLazer(ctx, 1, components.LazerState{Damage: 1, Delay: 3, Sound: true}, 0, -9)
	ctx.World.Add(l)

	// An air enemy parked at the origin must not be hit by the hidden shot
	air := NewAir(ctx, 4, 0, 0)
	ctx.World.Add(air)
	air.F = -1000 // keep it from diving during the test

	runFrames(ctx, 3)
	if !l.Lazer.Delayed || l.X != 0 || l.Y != 0 {
		t.Fatalf("delayed lazer moved to (%v, %v)", l.X, l.Y)
	}
	if air.HP != constants.AirHP[4] {
		t.Fatalf("delayed lazer hit: HP %d", air.HP)
	}

	runFrames(ctx, 1)
	if l.Lazer.Delayed {
		t.Fatal("lazer still delayed")
	}
	if l.X != ctx.Player.X || l.Y != ctx.Player.Y-9 {
		t.Errorf("launched at (%v, %v), want (%v, %v)", l.X, l.Y, ctx.Player.X, ctx.Player.Y-9)
	}
	if audio.Count(asset.SoundLazer) != 1 {
		t.Error("launch sound not played")
	}
}

func TestLazerHitsAir(t *testing.T) {
	ctx, _, _ := newSim(t)
	pl := ctx.Player
	air := NewAir(ctx, 3, pl.X, pl.Y-60)
	ctx.World.Add(air)
	l := NewLazer(ctx, 1, components.LazerState{Damage: 2}, 0, -9)
	ctx.World.Add(l)

	for i := 0; i < 10 && !l.Removed; i++ {
		runFrames(ctx, 1)
	}

	if !l.Removed {
		t.Error("lazer not consumed by the hit")
	}
	if air.HP != constants.AirHP[3]-2 {
		t.Errorf("air HP = %d, want %d", air.HP, constants.AirHP[3]-2)
	}
}

func TestBulletHitsPlayer(t *testing.T) {
	ctx, audio, _ := newSim(t)
	pl := ctx.Player
	b := NewBullet(ctx, 1, 180)
	b.X, b.Y = pl.X, pl.Y-30
	ctx.World.Add(b)

	runFrames(ctx, 1)

	if !b.Removed {
		t.Error("bullet survived the hit")
	}
	if pl.HP != constants.PlayerMaxHP-1 {
		t.Errorf("player HP = %d, want %d", pl.HP, constants.PlayerMaxHP-1)
	}
	if audio.Count(asset.SoundHit) != 1 {
		t.Error("hit sound not played")
	}
}

func TestBulletExpires(t *testing.T) {
	ctx, _, _ := newSim(t)
	b := NewBullet(ctx, 1, 0)
	b.X, b.Y = 100, 5000
	ctx.World.Add(b)
	runFrames(ctx, constants.BulletLifetime)
	if b.Removed {
		t.Fatal("bullet expired early")
	}
	runFrames(ctx, 1)
	if !b.Removed {
		t.Error("bullet outlived its lifetime")
	}
}

func TestBombDamagesTurret(t *testing.T) {
	ctx, audio, _ := newSim(t)
	ctx.State.ScrollSpeed = 0
	ctx.State.Frame = 1 // off the firing cadence
	tur := NewTurret(ctx, 16, 5, 1)
	ctx.World.Add(tur)

	bomb := NewBomb(ctx, tur.X, tur.Y+constants.BombStartOffset, 0)
	ctx.World.Add(bomb)

	runFrames(ctx, constants.BombFlight-1)
	if bomb.Removed {
		t.Fatal("bomb landed early")
	}
	runFrames(ctx, 1)

	if !bomb.Removed {
		t.Fatal("bomb did not land")
	}
	if tur.HP != constants.TurretHP[1]-1 {
		t.Errorf("turret HP = %d, want %d", tur.HP, constants.TurretHP[1]-1)
	}
	if audio.Count(asset.SoundSand) != 1 || audio.Count(asset.SoundBombGround) != 1 {
		t.Errorf("sounds = %v", audio.Played)
	}
	if countKind(ctx, components.KindGroundParticle) != 1 {
		t.Error("bomb left no crater")
	}
}

func TestBombSalvo(t *testing.T) {
	ctx, audio, _ := newSim(t)
	ctx.State.Level = 3
	pl := ctx.Player

	DropBombs(ctx, pl)
	DropBombs(ctx, pl) // ignored while the salvo drops
	if len(pl.Player.Bombs) != constants.BombsPerLevel[3] {
		t.Fatalf("queued %d bombs, want %d", len(pl.Player.Bombs), constants.BombsPerLevel[3])
	}

	updatePlayer(ctx, pl)
	if countKind(ctx, components.KindBomb) != 1 {
		t.Fatal("first bomb not released immediately")
	}
	for i := 0; i < constants.PlayerBombSpacing; i++ {
		updatePlayer(ctx, pl)
	}
	if countKind(ctx, components.KindBomb) != 1 {
		t.Fatal("second bomb released early")
	}
	updatePlayer(ctx, pl)
	if countKind(ctx, components.KindBomb) != 2 {
		t.Error("second bomb not released")
	}
	if audio.Count(asset.SoundBomb) != 2 {
		t.Errorf("bomb sounds = %d, want 2", audio.Count(asset.SoundBomb))
	}
}

func TestHarpoonUpload(t *testing.T) {
	ctx, audio, _ := newSim(t)
	ctx.State.ScrollSpeed = 0
	pl := ctx.Player
	plug := NewPlug(ctx, 16, 5, 1)
	ctx.World.Add(plug)
	pl.X, pl.Y = plug.X, plug.Y-40

	LaunchHarpoon(ctx, pl)
	h := pl.Player.Tether
	LaunchHarpoon(ctx, pl) // one tether at a time
	if countKind(ctx, components.KindHarpoon) != 1 {
		t.Fatal("second tether launched")
	}

	runFrames(ctx, 10)
	if !h.Harpoon.Connected {
		t.Fatal("harpoon did not latch onto the plug")
	}
	if !hasText(ctx, constants.UploadingText) {
		t.Error("no uploading notification")
	}

	runFrames(ctx, constants.FrameRate)
	if !h.Removed {
		t.Fatal("upload did not finish")
	}
	if !plug.GroundDead() {
		t.Error("plug still live after upload")
	}
	if ctx.State.Score != constants.UploadPoints {
		t.Errorf("score = %d, want %d", ctx.State.Score, constants.UploadPoints)
	}
	if audio.Count(asset.SoundUpload) != 1 || audio.Count(asset.SoundHarpoon) != 1 {
		t.Errorf("sounds = %v", audio.Played)
	}

	updatePlayer(ctx, pl)
	if pl.Player.Tether != nil {
		t.Error("finished tether not released")
	}
}

func TestHarpoonDisconnect(t *testing.T) {
	ctx, audio, _ := newSim(t)
	ctx.State.ScrollSpeed = 0
	pl := ctx.Player
	plug := NewPlug(ctx, 16, 5, 3)
	ctx.World.Add(plug)
	pl.X, pl.Y = plug.X, plug.Y-40

	LaunchHarpoon(ctx, pl)
	h := pl.Player.Tether
	runFrames(ctx, 10)
	if !h.Harpoon.Connected {
		t.Fatal("harpoon did not connect")
	}

	pl.Y = 0
	runFrames(ctx, 1)

	if !h.Removed {
		t.Fatal("tether survived leaving range")
	}
	if !hasText(ctx, constants.DisconnectText) {
		t.Error("no disconnect notification")
	}
	if audio.Count(asset.SoundUploadFail) != 1 {
		t.Error("failure sound not played")
	}
	if plug.GroundDead() {
		t.Error("plug consumed by a failed upload")
	}
}

func TestHarpoonMissExpires(t *testing.T) {
	ctx, _, _ := newSim(t)
	LaunchHarpoon(ctx, ctx.Player)
	h := ctx.Player.Player.Tether
	runFrames(ctx, constants.HarpoonFlight)
	if !h.Removed {
		t.Error("missed harpoon still flying")
	}
}

func TestHarpoonDrawsTether(t *testing.T) {
	ctx, _, _ := newSim(t)
	r := &engine.NopRenderer{}
	LaunchHarpoon(ctx, ctx.Player)
	Draw(ctx, r, ctx.Player.Player.Tether)
	if r.Sprites != 1 {
		t.Errorf("sprites = %d, want 1", r.Sprites)
	}
}
