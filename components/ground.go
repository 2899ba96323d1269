package components

import "github.com/lixenwraith/planet-offline/asset"

// GroundState anchors an actor to a terrain tile
type GroundState struct {
	TX, TY   int  // Tile column and row; rows count up from the bottom of the map
	Dead     bool // Destroyed in place; stays on the map showing DeadAnim
	Base     asset.AnimID
	Damaged  asset.AnimID
	DeadAnim asset.AnimID

	Turret   *asset.Animation // Rotating barrel, turrets only
	FireRate int              // Frames between volleys, turrets only

	Reward       Reward // Cache payout
	UploadFrames int    // Frames a tether must hold to finish an upload, plugs only
}

// Location selects the horizontal band for a spawned wave
type Location byte

const (
	LocationLeft   Location = 'l'
	LocationRight  Location = 'r'
	LocationAll    Location = 'a'
	LocationCenter Location = 'c'
)

// ControlAction is what a level marker does when it scrolls into view
type ControlAction uint8

const (
	ActionSpawn ControlAction = iota
	ActionWaitSpawn
	ActionPause
	ActionEndLevel
	ActionBeginLevel
)

// ControlState is a level marker riding the terrain
type ControlState struct {
	Action       ControlAction
	Location     Location
	Tier         int // Air tier of spawned enemies
	Amount       int // Number of enemies spawned
	WaitSeconds  int
	PauseSeconds int
	Level        int // Level number for begin and end markers
}
