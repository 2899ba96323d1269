package engine

import "github.com/lixenwraith/planet-offline/constants"

// GameState holds the round-level flags and counters shared by the simulation
// All access happens on the main loop goroutine
type GameState struct {
	// ===== Score =====
	Score      int
	Multiplier int
	HighScore  int

	// ===== Campaign =====
	Level      int // Current level, 1-based
	LevelCount int

	// ===== Scroll =====
	ScrollOffset float64 // Pixels scrolled from the bottom of the map
	ScrollSpeed  float64 // Pixels per frame, 0 while paused by a marker
	Scrolling    bool

	// ===== Flow =====
	Started      bool // A round is in progress
	Loading      bool // Start requested, waiting for the loading delay
	Paused       bool // Player pause; simulation frozen, drawing continues
	NoControl    bool // Round is ending; input ignored, simulation slowed
	Victory      bool
	NewHighScore bool
	FadeOpacity  float64 // Black overlay opacity, 0 to 1

	// ===== Counters =====
	Frame      int // Global frame counter, wraps at FrameCounterWrap
	SpawnFrame int // Frames since the last air spawn

	// Err is the first fatal error raised during the simulation; Step halts once set
	Err error
}

// NewGameState returns the title-screen state
func NewGameState() *GameState {
	return &GameState{
		Multiplier:  1,
		Level:       1,
		ScrollSpeed: constants.ScrollSpeed,
		Paused:      true,
	}
}

// BeginRound resets everything except the high score
func (s *GameState) BeginRound(levelCount int) {
	*s = GameState{
		HighScore:   s.HighScore,
		Frame:       s.Frame,
		LevelCount:  levelCount,
		Multiplier:  1,
		Level:       1,
		ScrollSpeed: constants.ScrollSpeed,
		Scrolling:   true,
		Started:     true,
		FadeOpacity: 1,
	}
}

// AddPoints adds p scaled by the score multiplier
func (s *GameState) AddPoints(p int) {
	s.Score += p * s.Multiplier
}

// Spend subtracts unscaled points
func (s *GameState) Spend(p int) {
	s.Score -= p
}

// AdvanceFrame steps the global frame counter
func (s *GameState) AdvanceFrame() {
	s.Frame = (s.Frame + 1) % constants.FrameCounterWrap
}

// Scroll moves the terrain one frame, clamped to limit
func (s *GameState) Scroll(limit float64) {
	if !s.Scrolling {
		return
	}
	s.ScrollOffset += s.ScrollSpeed
	if s.ScrollOffset > limit {
		s.ScrollOffset = limit
	}
}

// LastLevel reports whether the current level is the final one
func (s *GameState) LastLevel() bool {
	return s.Level >= s.LevelCount
}
