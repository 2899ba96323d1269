package systems

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

// drawAnim draws the current frame and counts it; animations only progress while drawn
func drawAnim(r engine.Renderer, anim *asset.Animation, x, y, heading float64) {
	if anim == nil {
		return
	}
	r.DrawSprite(anim.Sprite(), x, y, heading)
	anim.Advance()
}

// GroundX converts a tile column to a world x
func GroundX(tx int) float64 {
	return float64(tx * constants.TileWidth)
}

// GroundY converts a tile row to the current screen y; rows count up from the bottom of the map
func GroundY(ctx *engine.GameContext, ty int) float64 {
	return float64((constants.MapRows-ty)*constants.TileHeight) + ctx.Terrain.YOffset(ctx.State.ScrollOffset)
}

// GroundVisible reports whether a screen y is on screen, with a margin for large sprites
func GroundVisible(y float64) bool {
	return y >= -constants.GroundVisibleMargin && y <= constants.ScreenHeight+constants.GroundVisibleMargin
}
