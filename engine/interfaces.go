package engine

import "github.com/lixenwraith/planet-offline/asset"

// TextStyle controls how a string is drawn
type TextStyle struct {
	Size  int // Nominal pixel height; backends map it to emphasis
	Color asset.RGB
}

// Renderer draws in world pixels on an 800x800 virtual screen
// Positions are sprite centers except for text, rectangles and tiles, which use the top-left corner
type Renderer interface {
	Clear()
	DrawSprite(s *asset.Sprite, x, y, heading float64)
	DrawText(text string, x, y float64, style TextStyle)
	FillRect(x, y, w, h float64, c asset.RGB, alpha float64)
	StrokeCircle(x, y, r float64, c asset.RGB)
	DrawLine(x1, y1, x2, y2 float64, c asset.RGB)
	DrawTile(x, y, w, h float64, glyph rune, fg, bg asset.RGB)
	Show()
}

// Audio plays fire-and-forget sound effects
type Audio interface {
	Play(id asset.SoundID)
	ToggleMute() bool
	Muted() bool
}

// Input reports which game keys are currently held
type Input interface {
	Held(k Key) bool
}

// Terrain is the scrolling ground the map is painted on
type Terrain interface {
	// Height is the full map height in pixels
	Height() float64
	// YOffset converts a scroll offset into the screen y of the map's top edge
	YOffset(scroll float64) float64
	Draw(r Renderer, scroll float64)
}

// Key is a normalized, lowercase key name
type Key string

const (
	KeyLeft   Key = "arrowleft"
	KeyRight  Key = "arrowright"
	KeyUp     Key = "arrowup"
	KeyDown   Key = "arrowdown"
	KeyLazer  Key = "z"
	KeyBomb   Key = "x"
	KeyTether Key = "c"
	KeyMute   Key = "m"
	KeyPause  Key = "escape"
)

// ScoreStore persists the single high score
type ScoreStore interface {
	LoadHighScore() (int, error)
	SaveHighScore(score int) error
}
