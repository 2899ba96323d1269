package systems

import (
	"testing"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

func TestPowerupPickup(t *testing.T) {
	tests := []struct {
		name  string
		typ   components.PowerupType
		sound asset.SoundID
		check func(t *testing.T, ctx *engine.GameContext)
	}{
		{"hp", components.PowerupHP, asset.SoundHP, func(t *testing.T, ctx *engine.GameContext) {
			if ctx.Player.HP != 90 {
				t.Errorf("HP = %d, want 90", ctx.Player.HP)
			}
		}},
		{"lazer", components.PowerupLazer, asset.SoundPowerup, func(t *testing.T, ctx *engine.GameContext) {
			if lvl := ctx.Player.Player.LazerLevel; lvl != 2 {
				t.Errorf("lazer level = %d, want 2", lvl)
			}
		}},
		{"coin", components.PowerupCoin, asset.SoundCoin, func(t *testing.T, ctx *engine.GameContext) {
			if ctx.State.Score != constants.CoinPoints {
				t.Errorf("score = %d, want %d", ctx.State.Score, constants.CoinPoints)
			}
		}},
		{"double", components.PowerupDouble, asset.SoundPowerup, func(t *testing.T, ctx *engine.GameContext) {
			if ctx.State.Multiplier != 2 {
				t.Errorf("multiplier = %d, want 2", ctx.State.Multiplier)
			}
			if !hasText(ctx, constants.DoublePtsText) {
				t.Error("no multiplier notification")
			}
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, audio, _ := newSim(t)
			ctx.Player.HP = 40
			p := AddPowerup(ctx, tt.typ, ctx.Player.X, ctx.Player.Y, 0, 0)

			runFrames(ctx, 1)

			if !p.Removed {
				t.Error("pickup not collected")
			}
			if audio.Count(tt.sound) != 1 {
				t.Errorf("sound %s played %d times", tt.sound, audio.Count(tt.sound))
			}
			tt.check(t, ctx)
		})
	}
}

func TestHPAndLazerCaps(t *testing.T) {
	ctx, _, _ := newSim(t)
	pl := ctx.Player
	pl.HP = 90
	pl.Player.LazerLevel = constants.PlayerMaxLazerLevel

	collect(ctx, components.PowerupHP)
	collect(ctx, components.PowerupLazer)

	if pl.HP != constants.PlayerMaxHP {
		t.Errorf("HP = %d, want %d", pl.HP, constants.PlayerMaxHP)
	}
	if pl.Player.LazerLevel != constants.PlayerMaxLazerLevel {
		t.Errorf("lazer level = %d, want %d", pl.Player.LazerLevel, constants.PlayerMaxLazerLevel)
	}
}

func TestDoubleMultipliesLaterPoints(t *testing.T) {
	ctx, _, _ := newSim(t)
	collect(ctx, components.PowerupDouble)
	collect(ctx, components.PowerupDouble)
	ctx.AddPoints(50)
	if ctx.State.Score != 200 {
		t.Errorf("score = %d, want 200", ctx.State.Score)
	}
}

func TestPowerupExpires(t *testing.T) {
	ctx, _, _ := newSim(t)
	p := AddPowerup(ctx, components.PowerupCoin, 50, 50, 0, 0)
	runFrames(ctx, constants.PowerupLifetime-1)
	if p.Removed {
		t.Fatal("pickup expired early")
	}
	runFrames(ctx, 1)
	if !p.Removed {
		t.Error("pickup outlived its lifetime")
	}
}

func TestPowerupBlinks(t *testing.T) {
	ctx, _, _ := newSim(t)
	p := AddPowerup(ctx, components.PowerupCoin, 50, 50, 0, 0)
	r := &engine.NopRenderer{}

	p.F = 90
	Draw(ctx, r, p)
	p.F = 184 // second half, dark phase
	Draw(ctx, r, p)
	p.F = 188 // second half, lit phase
	Draw(ctx, r, p)

	if r.Sprites != 2 {
		t.Errorf("sprites = %d, want 2", r.Sprites)
	}
}

func TestTextNotification(t *testing.T) {
	ctx, _, _ := newSim(t)
	txt := AddText(ctx, "Hello", asset.White)
	wantX := constants.ScreenWidth/2 - float64(len("Hello")*constants.NotificationCharPx)
	if txt.X != wantX || txt.Y != constants.NotificationY {
		t.Errorf("text at (%v, %v), want (%v, %v)", txt.X, txt.Y, wantX, constants.NotificationY)
	}

	runFrames(ctx, constants.TextLifetime)
	if txt.Removed {
		t.Fatal("text removed early")
	}
	if txt.Y != constants.NotificationY-constants.TextLifetime {
		t.Errorf("text y = %v, want steady rise to %v", txt.Y, constants.NotificationY-constants.TextLifetime)
	}
	runFrames(ctx, 1)
	if !txt.Removed {
		t.Error("text outlived its lifetime")
	}
}

func TestGroundTextScrollsAway(t *testing.T) {
	ctx, _, _ := newSim(t)
	txt := NewGroundText(ctx, "Press 'X' to bomb.", 10, 2)
	ctx.World.Add(txt)

	runFrames(ctx, 1)
	if txt.Removed || txt.Y != 800-2*constants.TileHeight {
		t.Fatalf("ground text at y %v removed=%v", txt.Y, txt.Removed)
	}

	ctx.State.ScrollOffset = 3 * constants.TileHeight
	runFrames(ctx, 1)
	if !txt.Removed {
		t.Error("ground text kept after leaving the screen")
	}
}

func TestParticleRemovedWhenAnimationEnds(t *testing.T) {
	ctx, _, _ := newSim(t)
	p := AddParticle(ctx, asset.AnimFlash, 10, 10)
	r := &engine.NopRenderer{}
	for i := 0; i < p.Anim.Duration(); i++ {
		runFrames(ctx, 1)
		if p.Removed {
			t.Fatalf("particle removed after %d frames", i+1)
		}
		Draw(ctx, r, p)
	}
	runFrames(ctx, 1)
	if !p.Removed {
		t.Error("finished particle kept")
	}
}

func TestAddParticleNone(t *testing.T) {
	ctx, _, _ := newSim(t)
	if AddParticle(ctx, asset.AnimNone, 0, 0) != nil || ctx.World.Len() != 0 {
		t.Error("AnimNone particle created")
	}
}
