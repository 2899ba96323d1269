package game

import (
	"log"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/components"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/systems"
	"github.com/lixenwraith/planet-offline/vmath"
)

// end finishes the round in victory or defeat and returns to the title after the closing fade
func (g *Game) end(victory bool) {
	ctx := g.ctx
	s := ctx.State
	ctx.Scheduler.Clear()
	s.NoControl = true

	if victory {
		ctx.Play(asset.SoundLevelComplete)
		for _, a := range ctx.World.Actors() {
			if a.Kind == components.KindTurret {
				systems.Explode(ctx, a)
			}
		}
		s.Victory = true
		ctx.Scheduler.Sequence(constants.VictoryHoldFrames, func() {})
		log.Printf("victory: score %d", s.Score)
	} else {
		const spread = 50
		pl := ctx.Player
		for i := 0; i < 8; i++ {
			x := pl.X - spread/2 + ctx.Rand.Float64()*spread
			y := pl.Y - spread/2 + ctx.Rand.Float64()*spread
			systems.AddParticle(ctx, asset.AnimExplosionAir, x, y)
		}
		log.Printf("game over: level %d, score %d", s.Level, s.Score)
	}

	g.fade(false)
	if s.Score > s.HighScore {
		ctx.Play(asset.SoundUpload)
		s.HighScore = s.Score
		s.NewHighScore = true
		g.saveHighScore(s.Score)
	}

	ctx.Scheduler.Sequence(constants.RoundEndFrames, func() {
		s.NewHighScore = false
		s.NoControl = false
		s.Started = false
		s.Victory = false
	})
}

func (g *Game) saveHighScore(score int) {
	if g.store == nil {
		return
	}
	if err := g.store.SaveHighScore(score); err != nil {
		log.Printf("saving high score: %v", err)
		return
	}
	log.Printf("high score %d written", score)
}

// endLevel stops the scroll, chimes and fades out, then moves the camera to the next level
// Completing the last level ends the round in victory instead
func (g *Game) endLevel() {
	ctx := g.ctx
	s := ctx.State
	s.ScrollSpeed = 0
	for i := 0; i < constants.LevelChimeCount; i++ {
		ctx.Scheduler.Sequence(constants.LevelChimeFrames, func() {
			ctx.Play(asset.SoundLevelComplete)
		})
	}
	g.fade(false)
	log.Printf("level %d complete: score %d", s.Level, s.Score)

	if s.LastLevel() {
		g.end(true)
		return
	}

	ctx.Scheduler.Sequence(constants.LevelIntermissionFrames, func() {
		s.Level++
		g.fade(true)
		g.camToLevel(s.Level)
		s.ScrollSpeed = constants.ScrollSpeed
		ctx.Play(asset.SoundLevelStart)
	})
}

// fade queues a ten-step overlay ramp on the sequential queue
// Fading in blacks the screen out immediately and then clears it
func (g *Game) fade(in bool) {
	s := g.ctx.State
	if in {
		s.FadeOpacity = 1
	}
	last := float64(constants.FadeSteps - 1)
	for i := 0; i < constants.FadeSteps; i++ {
		g.ctx.Scheduler.Sequence(constants.FadeStepFrames, func() {
			if in {
				s.FadeOpacity = vmath.Round1((last - float64(i)) / last)
			} else {
				s.FadeOpacity = vmath.Round1(float64(i) / last)
			}
		})
	}
}
