package components

import (
	"errors"
	"testing"

	"github.com/lixenwraith/planet-offline/asset"
)

func TestParseReward(t *testing.T) {
	tests := []struct {
		tag     string
		want    Reward
		wantErr bool
	}{
		{"hp", Reward{Kind: RewardHP}, false},
		{"lazer", Reward{Kind: RewardLazer}, false},
		{"2x", Reward{Kind: RewardDouble}, false},
		{"coin5", Reward{Kind: RewardCoins, Count: 5}, false},
		{"coin", Reward{}, true},
		{"coinx", Reward{}, true},
		{"shield", Reward{}, true},
	}
	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			got, err := ParseReward(tt.tag)
			if tt.wantErr {
				if !errors.Is(err, ErrUnknownReward) {
					t.Fatalf("expected ErrUnknownReward, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseReward(%q) = %+v, want %+v", tt.tag, got, tt.want)
			}
			if got.String() != tt.tag {
				t.Errorf("String() = %q, want %q", got.String(), tt.tag)
			}
		})
	}
}

func TestNewActorDefaults(t *testing.T) {
	a := NewActor(KindAir, 10, 20)
	if a.X != 10 || a.Y != 20 {
		t.Errorf("position = (%v, %v)", a.X, a.Y)
	}
	if a.HP != 1 || a.MaxSpeed != 4 || a.Radius != 10 || a.MaxTurn != 1 {
		t.Errorf("unexpected defaults: %+v", a.Body)
	}
	if a.Explosion != asset.AnimExplosionAir {
		t.Errorf("Explosion = %s", a.Explosion)
	}
	if !a.Alive() {
		t.Error("new actor should be alive")
	}
}

func TestKindAnchored(t *testing.T) {
	for k := Kind(0); k < KindCount; k++ {
		want := k == KindTurret || k == KindCache || k == KindControl || k == KindPlug
		if k.Anchored() != want {
			t.Errorf("%s.Anchored() = %v", k, k.Anchored())
		}
	}
}

func TestPoseAnim(t *testing.T) {
	if PoseLeft.Anim() != asset.AnimPlayerLeft {
		t.Errorf("PoseLeft.Anim() = %s", PoseLeft.Anim())
	}
	if PoseFromRight.Anim() != asset.AnimPlayerFromRight {
		t.Errorf("PoseFromRight.Anim() = %s", PoseFromRight.Anim())
	}
}
