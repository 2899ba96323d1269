package game

import (
	"strconv"

	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
	"github.com/lixenwraith/planet-offline/systems"
)

var (
	bannerStyle = engine.TextStyle{Size: 42, Color: asset.White}
	helpStyle   = engine.TextStyle{Size: 16, Color: asset.White}
)

// Draw renders one full frame and presents it
func (g *Game) Draw(r engine.Renderer) {
	r.Clear()
	defer r.Show()

	ctx := g.ctx
	s := ctx.State
	if s.Loading {
		return
	}
	if !s.Started {
		g.drawTitle(r)
		return
	}

	ctx.Terrain.Draw(r, s.ScrollOffset)
	for _, a := range ctx.World.Actors() {
		systems.Draw(ctx, r, a)
	}

	if s.FadeOpacity > 0 {
		r.FillRect(0, 0, constants.ScreenWidth, constants.ScreenHeight, asset.Black, s.FadeOpacity)
	}
	if s.NewHighScore {
		r.DrawText(constants.NewHighScore, 220, 120+g.jitter.Float64()*3, engine.TextStyle{Size: 42, Color: asset.Cyan})
	}
	if s.Victory {
		r.DrawText(constants.VictoryText, 307, 220+g.jitter.Float64()*3, engine.TextStyle{Size: 42, Color: asset.Green})
	}
	if !s.NoControl && ctx.Player != nil {
		systems.Draw(ctx, r, ctx.Player)
	}

	r.DrawText(constants.HelpText, 20, 20, helpStyle)
	r.DrawText(scoreLine(s), constants.ScreenWidth-260, 20, helpStyle)

	if s.Paused {
		r.FillRect(0, 0, constants.ScreenWidth, constants.ScreenHeight, asset.Black, 0.3)
		r.DrawText(constants.PausedText, 356, 400, engine.TextStyle{Size: 28, Color: asset.White})
		r.DrawText(constants.UnpauseText, 341, 450, helpStyle)
	}
}

func (g *Game) drawTitle(r engine.Renderer) {
	s := g.ctx.State
	r.DrawText(constants.HighScoreLabel+strconv.Itoa(s.HighScore), 50, 50, engine.TextStyle{Size: 25, Color: asset.Gold})
	r.DrawText(constants.TitleText, 222, 400, bannerStyle)
	r.DrawText(constants.PressAnyKey, 288, 600, engine.TextStyle{Size: 28, Color: asset.White})
}

func scoreLine(s *engine.GameState) string {
	return "SCORE: " + strconv.Itoa(s.Score) + " x" + strconv.Itoa(s.Multiplier)
}
