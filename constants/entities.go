package constants

// Player Constants
const (
	PlayerStartX        = 400
	PlayerStartY        = 400
	PlayerRadius        = 25
	PlayerSpeed         = 6
	PlayerMaxHP         = 100
	PlayerMaxReach      = -150 // Bomb reticle offset above the ship
	PlayerReachStep     = 4
	PlayerLazerCooldown = 20
	PlayerMaxLazerLevel = 3
	PlayerBombSpacing   = 4 // Frames between queued bomb releases, exclusive
	LazerVolleyCost     = 10

	// PlayerContactRadius is the ship's radius as seen by ramming air enemies
	PlayerContactRadius = 35
)

// BombsPerLevel is the size of one bomb salvo, indexed by level
var BombsPerLevel = [...]int{0, 1, 2, 4}

// Air Enemy Constants (indexed by tier, 1-based)
var (
	AirDamage   = [...]int{0, 3, 5, 8, 10}
	AirMaxSpeed = [...]float64{0, 4, 5, 6, 7}
	AirHP       = [...]int{0, 1, 5, 15, 20}
	AirMaxTurn  = [...]float64{0, 1, 1, 1.5, 2}
)

const (
	MaxAirTier = 4

	// AirDiveFrames is the age after which an air enemy stops chasing and dives off screen
	AirDiveFrames = 7 * FrameRate
	// AirExpireFrames is the age at which an air enemy self-destructs
	AirExpireFrames = 9 * FrameRate
	// AirChaseLine is the screen y below which air enemies steer toward the player
	AirChaseLine     = 200
	AirChaseMinDist  = 40
	AirChaseBand     = 90
	AirPointsPerTier = 50
)

// Ground Target Constants (indexed by tier, 1-based)
var (
	TurretHP       = [...]int{0, 6, 12, 16}
	TurretFireRate = [...]int{0, 170, 130, 100}
)

const (
	MaxTurretTier       = 3
	GroundWidth         = 75
	GroundRadius        = GroundWidth / 2.0
	GroundMaxTurn       = 2
	GroundDebrisCount   = 5
	GroundDebrisSpread  = 50
	TurretAimBand       = 25
	TurretMinY          = 50
	TurretVolleySize    = 8
	TurretVolleySpacing = 5
	TurretSpread        = 40
	TurretMuzzle        = 25
	TurretPointsPerTier = 200
	CachePoints         = 100
	PlugRadius          = 25
	ControlColumn       = 10
	DamageFlashFrames   = 6
)

// Projectile Constants
const (
	LazerLifetime   = 3 * FrameRate
	LazerVolleyGap  = 3
	BulletMaxSpeed  = 4
	BulletRadius    = 6
	BulletLifetime  = 120
	BombFlight      = 40
	BombRadius      = 7
	BombStartOffset = 20
	HarpoonRadius   = 7
	HarpoonSpeed    = 5
	HarpoonFlight   = 40
	HarpoonMaxDist  = 300
	HarpoonBlip     = 20
	UploadPoints    = 5000
)

// Pickup Constants
const (
	PowerupLifetime   = 6 * FrameRate
	PowerupAccel      = 0.2
	PowerupMaxTurn    = 3
	PowerupMaxSpeed   = 8
	PowerupRadius     = 15
	PowerupAttract    = 100
	PowerupBlinkCycle = 8
	PowerupHeal       = 50
	CoinPoints        = 1000
	CoinScatter       = 3
)

// Effect Constants
const (
	TextLifetime       = 60
	TextSize           = 30
	GroundTextSize     = 20
	NotificationY      = 90
	NotificationCharPx = 7
)
