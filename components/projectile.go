package components

// LazerState is a player shot; it stays hidden until its delay expires
type LazerState struct {
	Damage  int
	Delay   int     // Frames before the shot launches from the ship
	Delayed bool    // Still waiting to launch
	OffsetX float64 // Horizontal offset from the ship at launch
	Sound   bool    // Plays the firing sound at launch
}

// BulletState is a turret shot
type BulletState struct {
	Damage int
}

// BombState follows a fixed drop arc from the ship to the reticle
type BombState struct {
	StartY  float64
	TargetY float64 // Reticle offset captured at release
	Frames  int     // Flight time
}

// HarpoonState is the uplink tether
type HarpoonState struct {
	Connected bool
	Frames    int // Flight time, then upload time once connected
	MaxDist   float64
	Plug      *Actor
}
