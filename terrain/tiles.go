package terrain

import "github.com/lixenwraith/planet-offline/asset"

// TileKind is a terrain biome
type TileKind uint8

const (
	TileNone TileKind = iota
	TileTrees
	TileGrass
	TileDirt
	TileMountain
	TileHighland
	TileWater
	TileShore
	TileRock
	TileLava
	TileLavaShore
	TileWall
)

// palette lists the glyphs and colors a biome draws from
type palette struct {
	glyphs []rune
	fg     []asset.RGB
	bg     []asset.RGB
}

func hexes(s ...string) []asset.RGB {
	out := make([]asset.RGB, len(s))
	for i, h := range s {
		out[i] = asset.Hex(h)
	}
	return out
}

var palettes = [...]palette{
	TileNone:      {[]rune(" "), hexes("#FFF"), hexes("#000")},
	TileTrees:     {[]rune(" "), hexes("#373", "#363"), hexes("#031", "#040", "#121")},
	TileGrass:     {[]rune(" "), hexes("#3A3", "#5D5"), hexes("#464", "#252", "#151")},
	TileDirt:      {[]rune(".,,\"`'"), hexes("#3DD", "#394"), hexes("#584", "#871", "#662")},
	TileMountain:  {[]rune("/\\^#"), hexes("#773"), hexes("#330")},
	TileHighland:  {[]rune("  ^"), hexes("#98A"), hexes("#546", "#557")},
	TileWater:     {[]rune("~ "), hexes("#3FF", "#4FF"), hexes("#005", "#004")},
	TileShore:     {[]rune("  _."), hexes("#EB8"), hexes("#765", "#764", "#775")},
	TileRock:      {[]rune("~."), hexes("#F22", "#F33", "#F44"), hexes("#111", "#112", "#122", "#222")},
	TileLava:      {[]rune("~*  "), hexes("#F82", "#FA3"), hexes("#611", "#511")},
	TileLavaShore: {[]rune("  _."), hexes("#CB8"), hexes("#755", "#855")},
	TileWall:      {[]rune("#@"), hexes("#111", "#222"), hexes("#622", "#722", "#822")},
}

// Tile is one generated map cell
type Tile struct {
	Kind  TileKind
	Glyph rune
	FG    asset.RGB
	BG    asset.RGB
}
