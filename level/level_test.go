package level

import (
	"errors"
	"testing"

	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

const minimal = "bl,1,1|"

func load(t *testing.T, script string) (*engine.GameContext, int) {
	t.Helper()
	ctx, _, _ := engine.NewTestGameContext(7)
	n, err := Load(ctx, script)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return ctx, n
}

func only(t *testing.T, ctx *engine.GameContext, kind components.Kind) *components.Actor {
	t.Helper()
	var found *components.Actor
	for _, a := range ctx.World.Actors() {
		if a.Kind != kind {
			continue
		}
		if found != nil {
			t.Fatalf("more than one %s", kind)
		}
		found = a
	}
	if found == nil {
		t.Fatalf("no %s", kind)
	}
	return found
}

func TestLoadTurret(t *testing.T) {
	ctx, _ := load(t, minimal+"g,11,316,2")
	a := only(t, ctx, components.KindTurret)
	if a.Tier != 2 || a.Ground.TX != 11 || a.Ground.TY != 316 {
		t.Errorf("turret tier %d at (%d, %d), want tier 2 at (11, 316)", a.Tier, a.Ground.TX, a.Ground.TY)
	}
	if a.HP != constants.TurretHP[2] {
		t.Errorf("HP = %d, want %d", a.HP, constants.TurretHP[2])
	}
	if a.X != 11*constants.TileWidth {
		t.Errorf("x = %v, want %v", a.X, 11*constants.TileWidth)
	}
}

func TestLoadCache(t *testing.T) {
	ctx, _ := load(t, minimal+"c,20,305,10,lazer")
	a := only(t, ctx, components.KindCache)
	if a.HP != 10 {
		t.Errorf("HP = %d, want 10", a.HP)
	}
	if a.Ground.Reward.Kind != components.RewardLazer {
		t.Errorf("reward = %v, want lazer", a.Ground.Reward)
	}
}

func TestLoadMarkers(t *testing.T) {
	tests := []struct {
		record string
		want   components.ControlState
		row    int
	}{
		{"s,38,c,a,1,15", components.ControlState{Action: components.ActionSpawn, Location: 'c', Tier: 1, Amount: 15}, 38},
		{"w,78,5,s,78,l,a,3,4", components.ControlState{Action: components.ActionWaitSpawn, Location: 'l', Tier: 3, Amount: 4, WaitSeconds: 5}, 78},
		{"p,80,15", components.ControlState{Action: components.ActionPause, PauseSeconds: 15}, 80},
		{"sl,275,1", components.ControlState{Action: components.ActionEndLevel, Level: 1}, 275},
	}
	for _, tt := range tests {
		t.Run(tt.record, func(t *testing.T) {
			ctx, _ := load(t, minimal+tt.record)
			var got *components.Actor
			for _, a := range ctx.World.Actors() {
				if a.Control != nil && a.Control.Action != components.ActionBeginLevel {
					got = a
				}
			}
			if got == nil {
				t.Fatal("no marker")
			}
			if *got.Control != tt.want {
				t.Errorf("marker = %+v, want %+v", *got.Control, tt.want)
			}
			if got.Ground.TY != tt.row || got.Ground.TX != constants.ControlColumn {
				t.Errorf("marker at (%d, %d), want (%d, %d)", got.Ground.TX, got.Ground.TY, constants.ControlColumn, tt.row)
			}
		})
	}
}

func TestLoadUplinkAndText(t *testing.T) {
	ctx, _ := load(t, minimal+"u,10,57,4|t,19,15,Press 'C' to uplink.")
	plug := only(t, ctx, components.KindPlug)
	if plug.Ground.UploadFrames != 4*constants.FrameRate {
		t.Errorf("upload frames = %d, want %d", plug.Ground.UploadFrames, 4*constants.FrameRate)
	}
	text := only(t, ctx, components.KindText)
	if text.Text.Text != "Press 'C' to uplink." || !text.Text.Grounded {
		t.Errorf("label = %+v", *text.Text)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		want   error
	}{
		{"unknown opcode", "bl,1,1|x,1,2", ErrUnknownOpcode},
		{"short record", "bl,1,1|g,11,316", ErrMalformed},
		{"long record", "bl,1,1|p,1,2,3", ErrMalformed},
		{"bad number", "bl,1,1|g,11,abc,2", ErrMalformed},
		{"bad tier", "bl,1,1|g,11,316,4", ErrMalformed},
		{"bad location", "bl,1,1|s,38,z,a,1,15", ErrMalformed},
		{"bad enemy type", "bl,1,1|s,38,c,q,1,15", ErrMalformed},
		{"bad reward", "bl,1,1|c,20,305,10,gold", ErrMalformed},
		{"zero upload", "bl,1,1|u,10,57,0", ErrMalformed},
		{"no begin marker", "g,11,316,2", ErrNoBeginMarker},
		{"level gap", "bl,1,1|bl,5,3", ErrNoBeginMarker},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx, _, _ := engine.NewTestGameContext(1)
			_, err := Load(ctx, tt.script)
			if !errors.Is(err, tt.want) {
				t.Errorf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseSkipsEmptyRecords(t *testing.T) {
	recs, err := Parse("bl,1,1||p,2,3|")
	if err != nil {
		t.Fatal(err)
	}
	if len(recs) != 2 || recs[1].Op != OpPause || recs[1].Index != 2 {
		t.Errorf("records = %+v", recs)
	}
}

func TestTextMayContainCommas(t *testing.T) {
	recs, err := Parse("t,1,2,Left, then right")
	if err != nil {
		t.Fatal(err)
	}
	if got := recs[0].Tokens[2]; got != "Left, then right" {
		t.Errorf("label = %q", got)
	}
}

func TestAuthoredScript(t *testing.T) {
	ctx, levels := load(t, Script)
	if levels != 3 {
		t.Fatalf("levels = %d, want 3", levels)
	}

	rows := map[int]int{1: 1, 2: 279, 3: 538}
	for lvl, want := range rows {
		got, err := BeginRow(ctx.World, lvl)
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("level %d begins at row %d, want %d", lvl, got, want)
		}
	}
	if _, err := BeginRow(ctx.World, 4); !errors.Is(err, ErrNoBeginMarker) {
		t.Errorf("BeginRow(4) err = %v", err)
	}

	recs, err := Parse(Script)
	if err != nil {
		t.Fatal(err)
	}
	if ctx.World.Len() != len(recs) {
		t.Errorf("actors = %d, want one per record (%d)", ctx.World.Len(), len(recs))
	}
	if n := ctx.World.Count(components.KindTurret); n != countOp(recs, OpGround) {
		t.Errorf("turrets = %d, want %d", n, countOp(recs, OpGround))
	}
}

func TestBeginScroll(t *testing.T) {
	ctx, _ := load(t, "bl,1,1|bl,279,2")
	got, err := BeginScroll(ctx.World, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != 279*constants.TileHeight {
		t.Errorf("scroll = %v, want %v", got, 279*constants.TileHeight)
	}
}

func countOp(recs []Record, op Opcode) int {
	n := 0
	for _, r := range recs {
		if r.Op == op {
			n++
		}
	}
	return n
}
