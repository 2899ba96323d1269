package engine

import (
	"github.com/lixenwraith/planet-offline/asset"
	"github.com/lixenwraith/planet-offline/constants"
	"github.com/lixenwraith/planet-offline/vmath"
)

// NopRenderer discards drawing but records text and sprite counts for assertions
type NopRenderer struct {
	Texts   []string
	Sprites int
	Rects   int
	Frames  int
}

func (r *NopRenderer) Clear() {
	r.Texts = r.Texts[:0]
	r.Sprites = 0
	r.Rects = 0
}
func (r *NopRenderer) DrawSprite(*asset.Sprite, float64, float64, float64) { r.Sprites++ }
func (r *NopRenderer) DrawText(text string, _, _ float64, _ TextStyle) { r.Texts = append(r.Texts, text) }
func (r *NopRenderer) FillRect(float64, float64, float64, float64, asset.RGB, float64) { r.Rects++ }
func (r *NopRenderer) StrokeCircle(float64, float64, float64, asset.RGB) {}
func (r *NopRenderer) DrawLine(float64, float64, float64, float64, asset.RGB) {}
func (r *NopRenderer) DrawTile(float64, float64, float64, float64, rune, asset.RGB, asset.RGB) {}
func (r *NopRenderer) Show() { r.Frames++ }

// HasText reports whether text was drawn since the last Clear
func (r *NopRenderer) HasText(text string) bool {
	for _, t := range r.Texts {
		if t == text {
			return true
		}
	}
	return false
}

// RecordingAudio records every sound played
type RecordingAudio struct {
	Played []asset.SoundID
	muted  bool
}

func (a *RecordingAudio) Play(id asset.SoundID) {
	if !a.muted {
		a.Played = append(a.Played, id)
	}
}

func (a *RecordingAudio) ToggleMute() bool {
	a.muted = !a.muted
	return a.muted
}

func (a *RecordingAudio) Muted() bool { return a.muted }

// Count returns how many times id was played
func (a *RecordingAudio) Count(id asset.SoundID) int {
	n := 0
	for _, p := range a.Played {
		if p == id {
			n++
		}
	}
	return n
}

// KeyMap is an Input backed by a plain map
type KeyMap map[Key]bool

func (m KeyMap) Held(k Key) bool { return m[k] }

// FlatTerrain is a blank map of the standard height
type FlatTerrain struct{}

func (FlatTerrain) Height() float64 { return constants.TerrainHeight }

func (FlatTerrain) YOffset(scroll float64) float64 {
	return -constants.TerrainHeight + constants.ScreenHeight + scroll
}

func (FlatTerrain) Draw(Renderer, float64) {}

// NewTestGameContext builds a context with the default asset table, recording audio,
// an empty key map and a fixed seed
func NewTestGameContext(seed uint64) (*GameContext, *RecordingAudio, KeyMap) {
	assets, err := asset.Default()
	if err != nil {
		panic(err)
	}
	audio := &RecordingAudio{}
	keys := KeyMap{}
	ctx := NewGameContext(assets, audio, keys, FlatTerrain{}, vmath.NewFastRand(seed))
	return ctx, audio, keys
}
