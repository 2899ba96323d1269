package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/planet-offline/asset"
)

// RGB is an alias to asset.RGB so the compositor and the asset tables share one color type
type RGB = asset.RGB

// Predefined default colors
var (
	RGBBlack      = RGB{0, 0, 0}
	RgbBackground = RGB{10, 12, 16}
)

// Blend optimizes alpha blending
// If alpha is 1.0 or 0.0, we return early to save math
func Blend(c, src RGB, alpha float64) RGB {
	if alpha >= 1.0 {
		return src
	}
	if alpha <= 0.0 {
		return c
	}

	inv := 1.0 - alpha
	return RGB{
		R: uint8(float64(src.R)*alpha + float64(c.R)*inv),
		G: uint8(float64(src.G)*alpha + float64(c.G)*inv),
		B: uint8(float64(src.B)*alpha + float64(c.B)*inv),
	}
}

// Color converts to a tcell true color
func Color(c RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
