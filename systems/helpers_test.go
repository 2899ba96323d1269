package systems

import (
	"testing"

	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/engine"
)

func newSim(t *testing.T) (*engine.GameContext, *engine.RecordingAudio, engine.KeyMap) {
	t.Helper()
	ctx, audio, keys := engine.NewTestGameContext(42)
	ctx.Player = NewPlayer(ctx)
	return ctx, audio, keys
}

// runFrames advances callbacks and world actors without touching the player or scroll
func runFrames(ctx *engine.GameContext, n int) {
	for i := 0; i < n; i++ {
		ctx.Scheduler.Tick()
		ctx.World.Update(func(a *components.Actor) {
			Update(ctx, a)
		})
	}
}

func countKind(ctx *engine.GameContext, kind components.Kind) int {
	return ctx.World.Count(kind)
}

func hasText(ctx *engine.GameContext, text string) bool {
	return ctx.World.Find(func(a *components.Actor) bool {
		return a.Kind == components.KindText && a.Text.Text == text
	}) != nil
}
