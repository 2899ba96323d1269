package audio

// AudioConfig holds the sound settings
type AudioConfig struct {
	Enabled      bool
	Muted        bool    // Start muted
	MasterVolume float64 // 0.0 to 1.0
	SampleRate   int
	MaxVoices    int // Effects playing at once; extra effects are dropped
}

// DefaultAudioConfig returns the built-in sound settings
func DefaultAudioConfig() *AudioConfig {
	return &AudioConfig{
		Enabled:      true,
		MasterVolume: 0.8,
		SampleRate:   44100,
		MaxVoices:    16,
	}
}

// WithVolume returns a copy with the master volume set from a 0-100 percentage
func (c AudioConfig) WithVolume(percent int) *AudioConfig {
	c.MasterVolume = min(max(float64(percent)/100, 0), 1)
	return &c
}
