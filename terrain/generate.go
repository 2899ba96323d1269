package terrain

import (
	"math"

	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/vmath"
)

// DefaultSeed reproduces the shipped map
const DefaultSeed = 123456

// Biome bands, in tile rows from the bottom of the map
const (
	bandForestStart = 266
	bandRockStart   = 533
	wallRows        = 3
)

// sineRand is the map's deterministic noise source
type sineRand struct {
	seed float64
}

func (r *sineRand) next() float64 {
	x := math.Sin(r.seed) * 10000
	r.seed++
	return x - math.Floor(x)
}

// between returns a rounded value in [a, b]
func (r *sineRand) between(a, b float64) int {
	return int(math.Round(vmath.Normalize(r.next(), 0, 1, a, b)))
}

func pick[T any](r *sineRand, items []T) T {
	return items[int(r.next()*float64(len(items)))]
}

type generator struct {
	rnd   sineRand
	tiles []Tile
	w, h  int
}

func (g *generator) inBounds(x, y int) bool {
	return y >= 0 && y < g.h && x >= 0 && x < g.w
}

func (g *generator) set(kind TileKind, x, y int) {
	p := &palettes[kind]
	g.tiles[y*g.w+x] = Tile{
		Kind:  kind,
		Glyph: pick(&g.rnd, p.glyphs),
		FG:    pick(&g.rnd, p.fg),
		BG:    pick(&g.rnd, p.bg),
	}
}

// adjacentTo reports whether a tile not of kind touches one that is
func (g *generator) adjacentTo(x, y int, kind TileKind) bool {
	if g.tiles[y*g.w+x].Kind == kind || x < 1 || y < 1 || x > g.w-1 {
		return false
	}
	for _, d := range [4][2]int{{1, 0}, {-1, 0}, {0, -1}, {0, 1}} {
		nx, ny := x+d[0], y+d[1]
		if g.inBounds(nx, ny) && g.tiles[ny*g.w+nx].Kind == kind {
			return true
		}
	}
	return false
}

// clump paints a rough square of random size with ragged edges
func (g *generator) clump(ix, iy int, kinds ...TileKind) {
	size := g.rnd.between(8, 15)
	for y := iy; y < iy+size; y++ {
		for x := ix; x < ix+size; x++ {
			if !g.inBounds(x, y) {
				continue
			}
			g.set(pick(&g.rnd, kinds), x, y)
			n := g.rnd.between(1, 4)

			var mx, my int
			switch {
			case y == iy:
				my = -1
			case x == ix:
				mx = -1
			case x == ix+size-1:
				mx = 1
			case y == iy+size-1:
				my = 1
			default:
				continue
			}
			for i := 1; i <= n; i++ {
				nx, ny := x+i*mx, y+i*my
				if g.inBounds(nx, ny) {
					g.set(pick(&g.rnd, kinds), nx, ny)
				}
			}
		}
	}
}

// outline rings every patch of find near row iy with repl
func (g *generator) outline(iy int, find, repl TileKind) {
	for y := iy - g.w; y < iy+g.w; y++ {
		if y < 0 || y >= g.h {
			continue
		}
		for x := 0; x < g.w; x++ {
			if g.adjacentTo(x, y, find) {
				g.set(repl, x, y)
			}
		}
	}
}

func (g *generator) lake(ix, iy int, fill, shore TileKind) {
	g.clump(ix, iy, fill)
	g.outline(iy, fill, shore)
}

// wall paints a three-row barrier centered on row y
func (g *generator) wall(y int) {
	for dy := -1; dy <= 1; dy++ {
		for x := 0; x < g.w; x++ {
			if g.inBounds(x, y+dy) {
				g.set(TileWall, x, y+dy)
			}
		}
	}
}

func (g *generator) scatter(count int, x0, x1, y0, y1 float64, paint func(x, y int)) {
	for i := 0; i < count; i++ {
		x := g.rnd.between(x0, x1)
		y := g.rnd.between(y0, y1)
		paint(x, y)
	}
}

// Generate builds the tile map; the same seed always yields the same map
func Generate(seed float64) []Tile {
	g := &generator{
		rnd:   sineRand{seed: seed},
		w:     constants.MapColumns,
		h:     constants.MapRows,
		tiles: make([]Tile, constants.MapColumns*constants.MapRows),
	}

	for y := 0; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.set(TileNone, x, y)
		}
	}
	for y := 0; y < bandForestStart; y++ {
		for x := 0; x < g.w; x++ {
			if g.rnd.next() > 0.5 {
				g.set(TileTrees, x, y)
			} else {
				g.set(TileGrass, x, y)
			}
		}
	}
	for y := bandForestStart; y < bandRockStart; y++ {
		for x := 0; x < g.w; x++ {
			g.set(TileTrees, x, y)
		}
	}
	for y := bandRockStart; y < g.h; y++ {
		for x := 0; x < g.w; x++ {
			g.set(TileRock, x, y)
		}
	}

	clumpOf := func(kinds ...TileKind) func(x, y int) {
		return func(x, y int) { g.clump(x, y, kinds...) }
	}
	lakeOf := func(fill, shore TileKind) func(x, y int) {
		return func(x, y int) { g.lake(x, y, fill, shore) }
	}

	g.scatter(6, 0, 31, 50, 266, clumpOf(TileDirt))
	g.scatter(24, 0, 31, 50, 400, clumpOf(TileMountain))
	g.scatter(20, 0, 31, 50, 400, lakeOf(TileWater, TileShore))
	g.scatter(10, 0, 31, 50, 400, clumpOf(TileTrees))
	g.scatter(10, 0, 5, 0, 266, clumpOf(TileGrass))
	g.scatter(40, 0, 20, 266, 533, clumpOf(TileMountain, TileHighland))
	g.scatter(20, 0, 20, 420, 800, clumpOf(TileHighland))
	g.scatter(30, 0, 25, 566, 770, lakeOf(TileLava, TileLavaShore))

	g.wall(0)
	g.wall(276)
	g.wall(bandRockStart)

	return g.tiles
}
