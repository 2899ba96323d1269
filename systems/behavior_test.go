package systems

import (
	"testing"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

func TestEveryKindHasUpdate(t *testing.T) {
	for k := components.Kind(0); k < components.KindCount; k++ {
		if behaviors[k].Update == nil {
			t.Errorf("kind %s has no update behavior", k)
		}
	}
}

func TestDamageAfterDestroyIsIgnored(t *testing.T) {
	ctx, audio, _ := newSim(t)
	air := NewAir(ctx, 1, 100, 100)
	ctx.World.Add(air)

	if !Damage(ctx, air, 1) {
		t.Fatal("first hit should destroy a tier 1 air enemy")
	}
	if Damage(ctx, air, 1) {
		t.Error("second hit reported a kill")
	}
	Explode(ctx, air)

	if ctx.State.Score != 50 {
		t.Errorf("score = %d, want 50", ctx.State.Score)
	}
	if n := audio.Count(asset.SoundExplodeAir); n != 1 {
		t.Errorf("explosion sound played %d times, want 1", n)
	}
	if !air.Removed {
		t.Error("destroyed air enemy not removed")
	}
}

func TestAirDamageFlashReverts(t *testing.T) {
	ctx, _, _ := newSim(t)
	air := NewAir(ctx, 3, 100, 100)
	ctx.World.Add(air)

	if Damage(ctx, air, 1) {
		t.Fatal("tier 3 air enemy destroyed by one hit")
	}
	if air.Anim.ID != asset.AirDamagedAnim(3) {
		t.Fatalf("anim = %s, want damaged", air.Anim.ID)
	}
	for i := 0; i < 6; i++ {
		ctx.Scheduler.Tick()
	}
	if air.Anim.ID != asset.AirAnim(3) {
		t.Errorf("anim = %s after flash, want %s", air.Anim.ID, asset.AirAnim(3))
	}
}

func TestAirRamsPlayer(t *testing.T) {
	ctx, audio, _ := newSim(t)
	pl := ctx.Player
	air := NewAir(ctx, 2, pl.X, pl.Y)
	ctx.World.Add(air)

	runFrames(ctx, 1)

	if !air.Removed {
		t.Error("air enemy survived ramming")
	}
	if pl.HP != 95 {
		t.Errorf("player HP = %d, want 95", pl.HP)
	}
	if ctx.State.Score != 100 {
		t.Errorf("score = %d, want 100", ctx.State.Score)
	}
	if audio.Count(asset.SoundHit) != 1 {
		t.Error("hit sound not played")
	}
}

func TestAirLifecycle(t *testing.T) {
	tests := []struct {
		name        string
		age         int
		wantHeading float64
		wantRemoved bool
	}{
		{"entering", 0, 0, false},
		{"diving away", constants.AirDiveFrames + 1, 180, false},
		{"self destruct", constants.AirExpireFrames + 1, 0, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newSim(t)
			air := NewAir(ctx, 4, 50, 50)
			air.F = tt.age
			ctx.World.Add(air)

			runFrames(ctx, 1)

			if air.Removed != tt.wantRemoved {
				t.Fatalf("removed = %v, want %v", air.Removed, tt.wantRemoved)
			}
			if !tt.wantRemoved && air.Heading != tt.wantHeading {
				t.Errorf("heading = %v, want %v", air.Heading, tt.wantHeading)
			}
			if !tt.wantRemoved && air.VY == 0 && tt.wantHeading == 180 {
				t.Error("diving air enemy did not accelerate")
			}
		})
	}
}

func TestCollision(t *testing.T) {
	tests := []struct {
		name      string
		ax, bx    float64
		noControl bool
		want      bool
	}{
		{"overlapping", 100, 115, false, true},
		{"touching", 100, 120, false, false},
		{"apart", 100, 200, false, false},
		{"suppressed while ending", 100, 100, true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := newSim(t)
			ctx.State.NoControl = tt.noControl
			a := components.NewActor(components.KindAir, tt.ax, 50)
			b := components.NewActor(components.KindAir, tt.bx, 50)

			_, ab := CollideActors(ctx, a, b)
			_, ba := CollideActors(ctx, b, a)
			if ab != tt.want || ba != tt.want {
				t.Errorf("collide a-b %v b-a %v, want %v", ab, ba, tt.want)
			}
		})
	}
}

func TestCollideIgnoresRemoved(t *testing.T) {
	ctx, _, _ := newSim(t)
	a := components.NewActor(components.KindAir, 0, 0)
	b := components.NewActor(components.KindAir, 0, 0)
	b.Removed = true
	if _, ok := CollideActors(ctx, a, b); ok {
		t.Error("collided with a removed actor")
	}
	if _, ok := CollideActors(ctx, b, a); ok {
		t.Error("removed actor collided")
	}
}

func TestPlayerExplodeEndsRoundOnce(t *testing.T) {
	ctx, audio, _ := newSim(t)
	var ends []bool
	ctx.Hooks.EndRound = func(victory bool) { ends = append(ends, victory) }

	if !Damage(ctx, ctx.Player, 100) {
		t.Fatal("lethal damage did not destroy the player")
	}
	Damage(ctx, ctx.Player, 10)

	if len(ends) != 1 || ends[0] {
		t.Fatalf("EndRound calls = %v, want [false]", ends)
	}
	if audio.Count(asset.SoundLevelFail) != 1 {
		t.Error("failure sound not played once")
	}
}

func TestPlayerExplodeIgnoredWithoutControl(t *testing.T) {
	ctx, _, _ := newSim(t)
	called := false
	ctx.Hooks.EndRound = func(bool) { called = true }
	ctx.State.NoControl = true

	Damage(ctx, ctx.Player, 200)
	if called {
		t.Error("round ended twice")
	}
}

func TestDrawSkipsRemoved(t *testing.T) {
	ctx, _, _ := newSim(t)
	r := &engine.NopRenderer{}
	a := NewAir(ctx, 1, 10, 10)
	Draw(ctx, r, a)
	a.Removed = true
	Draw(ctx, r, a)
	if r.Sprites != 1 {
		t.Errorf("sprites drawn = %d, want 1", r.Sprites)
	}
}
