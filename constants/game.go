package constants

import "time"

// Game Loop Timing Constants
const (
	// FrameRate is the fixed simulation rate; every duration in the game is counted in frames at this rate
	FrameRate = 60

	// FrameUpdateInterval is the wall-clock interval between simulation frames
	FrameUpdateInterval = time.Second / FrameRate

	// FrameCounterWrap is the modulus of the global frame counter used for firing cadences
	FrameCounterWrap = 720

	// NoControlFrameStride advances the simulation on every Nth frame while control is suspended
	NoControlFrameStride = 3

	// LoadingDelay is the wall-clock pause between the start key and the first playable frame
	LoadingDelay = 100 * time.Millisecond
)

// World Geometry Constants (world pixels)
const (
	ScreenWidth  = 800
	ScreenHeight = 800

	// TileWidth and TileHeight convert ground tile coordinates to world pixels
	TileWidth  = 25
	TileHeight = 32

	MapColumns = 32
	MapRows    = 800

	// TerrainHeight is the full scroll extent of the map in pixels
	TerrainHeight = MapRows * TileHeight

	// GroundVisibleMargin is how far outside the screen a ground actor still counts as visible
	GroundVisibleMargin = 100
)

// Scrolling Constants
const (
	// ScrollSpeed is the terrain scroll rate in pixels per frame
	ScrollSpeed = 0.9
)

// Spawn Queue Constants
const (
	// SpawnInterval is the number of frames between two air spawns
	SpawnInterval = 10

	// SpawnY is the vertical position of freshly spawned air enemies, just above the screen
	SpawnY = -20

	// SpawnVelocityY and SpawnHeading start arrivals moving down the screen
	SpawnVelocityY = 2
	SpawnHeading   = 180
)

// Level Flow Constants
const (
	// FadeSteps is the number of opacity steps in a fade
	FadeSteps = 10

	// FadeStepFrames is the number of frames between two fade steps
	FadeStepFrames = 8

	// LevelChimeCount is how many completion chimes play at the end of a level
	LevelChimeCount = 5

	// LevelChimeFrames is the spacing of the completion chimes
	LevelChimeFrames = 10

	// LevelIntermissionFrames is the pause between a completed level and the next one
	LevelIntermissionFrames = 300

	// VictoryHoldFrames holds the victory screen before the closing fade
	VictoryHoldFrames = 60

	// RoundEndFrames is the delay between the closing fade and the return to the title
	RoundEndFrames = 60
)
