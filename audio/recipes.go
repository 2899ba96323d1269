package audio

import (
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/planet-offline/asset"
)

const ms = time.Millisecond

// tone is one shaped oscillator voice of a sound effect
type tone struct {
	at       time.Duration // Start offset within the effect
	from, to float64       // Pitch slide in Hz; ignored for noise
	dur      time.Duration
	wave     WaveType
	gain     float64
}

// recipe voices overlap freely; gains of a recipe sum to at most 1
type recipe []tone

func note(at time.Duration, freq float64, dur time.Duration, wave WaveType, gain float64) tone {
	return tone{at: at, from: freq, to: freq, dur: dur, wave: wave, gain: gain}
}

func slide(from, to float64, dur time.Duration, wave WaveType, gain float64) tone {
	return tone{from: from, to: to, dur: dur, wave: wave, gain: gain}
}

func noise(at, dur time.Duration, gain float64) tone {
	return tone{at: at, dur: dur, wave: WaveNoise, gain: gain}
}

// arpeggio plays notes back to back
func arpeggio(step time.Duration, wave WaveType, gain float64, freqs ...float64) recipe {
	r := make(recipe, len(freqs))
	for i, f := range freqs {
		r[i] = note(time.Duration(i)*step, f, step, wave, gain)
	}
	return r
}

var recipes = [asset.SoundCount]recipe{
	asset.SoundSand:          {noise(0, 60*ms, 0.4)},
	asset.SoundBomb:          {slide(600, 200, 150*ms, WaveSquare, 0.3)},
	asset.SoundCoin:          {note(0, 987.77, 80*ms, WaveSquare, 0.3), note(80*ms, 1318.51, 250*ms, WaveSquare, 0.3)},
	asset.SoundExplodeAir:    {noise(0, 250*ms, 0.5), slide(180, 60, 250*ms, WaveSine, 0.3)},
	asset.SoundExplodeGround: {noise(0, 400*ms, 0.5), slide(120, 40, 400*ms, WaveSine, 0.4)},
	asset.SoundBombGround:    {noise(0, 200*ms, 0.4), note(0, 90, 200*ms, WaveSine, 0.4)},
	asset.SoundBullet:        {slide(900, 700, 50*ms, WaveSquare, 0.2)},
	asset.SoundLazer:         {slide(1400, 800, 80*ms, WaveSaw, 0.25)},
	asset.SoundUpload:        arpeggio(60*ms, WaveSquare, 0.3, 523.25, 659.25, 783.99, 1046.5),
	asset.SoundHP:            {slide(523.25, 1046.5, 200*ms, WaveSine, 0.5)},
	asset.SoundBlip:          {note(0, 1200, 30*ms, WaveSquare, 0.2)},
	asset.SoundHarpoon:       {slide(300, 900, 120*ms, WaveSaw, 0.3)},
	asset.SoundUploadFail:    {slide(400, 150, 300*ms, WaveSquare, 0.3)},
	asset.SoundLevelFail:     arpeggio(150*ms, WaveSquare, 0.3, 392, 329.63, 261.63),
	asset.SoundLevelComplete: {note(0, 1318.51, 120*ms, WaveSine, 0.5)},
	asset.SoundHit:           {note(0, 150, 80*ms, WaveSquare, 0.3), noise(0, 80*ms, 0.3)},
	asset.SoundPowerup:       {slide(660, 1320, 150*ms, WaveSine, 0.5)},
	asset.SoundLevelStart:    arpeggio(100*ms, WaveSquare, 0.3, 523.25, 783.99, 1046.5),
}

// length returns the duration of a sound effect, the end of its last tone
func length(id asset.SoundID) time.Duration {
	var end time.Duration
	if id < asset.SoundCount {
		for _, t := range recipes[id] {
			end = max(end, t.at+t.dur)
		}
	}
	return end
}

// GetSoundEffect builds a fresh streamer for a sound at the given volume, nil for an unknown id
func GetSoundEffect(id asset.SoundID, cfg *AudioConfig) beep.Streamer {
	if id >= asset.SoundCount || len(recipes[id]) == 0 {
		return nil
	}
	rate := beep.SampleRate(cfg.SampleRate)

	voices := make([]beep.Streamer, 0, len(recipes[id]))
	for _, t := range recipes[id] {
		attack := min(5*ms, t.dur/4)
		release := t.dur / 2
		osc := NewSweep(t.from, t.to, t.dur, t.wave, rate)
		shaped := newVolume(NewEnvelope(osc, t.dur, attack, release, rate), t.gain)
		if t.at > 0 {
			shaped = beep.Seq(beep.Silence(rate.N(t.at)), shaped)
		}
		voices = append(voices, shaped)
	}
	// Mix keeps streaming while any voice does; Take bounds the effect to its recipe
	return newVolume(beep.Take(rate.N(length(id)), beep.Mix(voices...)), cfg.MasterVolume)
}
