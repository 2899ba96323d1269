package terrain

import (
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/engine"
)

// Map is the generated scrolling background
type Map struct {
	tiles  []Tile
	height float64
}

// New generates the map for seed
func New(seed float64) *Map {
	return &Map{
		tiles:  Generate(seed),
		height: constants.TerrainHeight,
	}
}

// Height returns the map height in pixels
func (m *Map) Height() float64 {
	return m.height
}

// YOffset returns the screen y of the map's top edge for a scroll offset
func (m *Map) YOffset(scroll float64) float64 {
	return -m.height + constants.ScreenHeight + scroll
}

// Tile returns the tile at a column and row counted from the bottom
func (m *Map) Tile(x, y int) (Tile, bool) {
	if x < 0 || x >= constants.MapColumns || y < 0 || y >= constants.MapRows {
		return Tile{}, false
	}
	return m.tiles[y*constants.MapColumns+x], true
}

// RowScreenY returns the screen y of the top of tile row y
func (m *Map) RowScreenY(y int, scroll float64) float64 {
	return m.height - constants.TileHeight - float64(y*constants.TileHeight) + m.YOffset(scroll)
}

// Draw paints the rows visible at the given scroll offset
func (m *Map) Draw(r engine.Renderer, scroll float64) {
	// Row y is drawn at base - y*TileHeight; row 0 sits at the bottom of the map
	base := m.RowScreenY(0, scroll)
	lo := int((base-constants.ScreenHeight)/constants.TileHeight) - 1
	hi := int((base+constants.TileHeight)/constants.TileHeight) + 1

	for y := max(lo, 0); y <= min(hi, constants.MapRows-1); y++ {
		sy := m.RowScreenY(y, scroll)
		if sy < -constants.TileHeight || sy > constants.ScreenHeight {
			continue
		}
		for x := 0; x < constants.MapColumns; x++ {
			t := m.tiles[y*constants.MapColumns+x]
			r.DrawTile(float64(x*constants.TileWidth), sy, constants.TileWidth, constants.TileHeight, t.Glyph, t.FG, t.BG)
		}
	}
}
