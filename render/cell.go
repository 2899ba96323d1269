package render

// Cell is one composited terminal cell
type Cell struct {
	Rune rune
	Fg   RGB
	Bg   RGB
	Bold bool
}

var emptyCell = Cell{Rune: ' ', Fg: RgbBackground, Bg: RgbBackground}
