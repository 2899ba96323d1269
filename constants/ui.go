package constants

// HUD Text
const (
	TitleText      = "PLANET: OFFLINE"
	PressAnyKey    = "Press any key..."
	HighScoreLabel = "High Score "
	HelpText       = `ESC to pause, "m" to mute`
	PausedText     = "PAUSED"
	UnpauseText    = "ESC to unpause"
	NewHighScore   = "NEW HIGH SCORE!"
	VictoryText    = "VICTORY!"
)

// Notification Text
const (
	UploadingText  = "Uploading..."
	UploadedText   = "Uploaded! (+5000)"
	DisconnectText = "Disconnect!"
	DoublePtsText  = "2x Points!"
)

// HUD Layout (world pixels)
const (
	HPBarWidth  = 160
	HPBarHeight = 10
	HPBarMargin = 20
)
