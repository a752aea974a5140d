package config

// SoundID represents a logical sound effect
type SoundID int

const (
	SoundNone SoundID = iota
	// Jet engine sounds
	SoundJetStart
	SoundJetStop
	SoundJetCabin
	// Combat sounds
	SoundExplosion
	SoundEnemyDown
	// UI sounds
	SoundMenuNavigate
	SoundMenuSelect
)

// AudioConfig contains audio-related configuration values
type AudioConfig struct {
	SampleRate    int
	DefaultSFXVol float64
}

// ToneConfig describes a synthesized sound effect
type ToneConfig struct {
	StartFreq float64 // Hz
	EndFreq   float64 // Hz, linear sweep from StartFreq
	Duration  float64 // seconds
	Noise     float64 // 0.0 - 1.0 mix of white noise
	Volume    float64 // 0.0 - 1.0
}

// SoundConfig maps sound IDs to synthesized tones
type SoundConfig struct {
	Tones map[SoundID]ToneConfig
}

var Audio AudioConfig
var Sound SoundConfig

func init() {
	Audio = AudioConfig{
		SampleRate:    44100,
		DefaultSFXVol: 0.8,
	}

	Sound = SoundConfig{
		Tones: map[SoundID]ToneConfig{
			SoundJetStart:     {StartFreq: 90, EndFreq: 220, Duration: 0.6, Noise: 0.5, Volume: 0.4},
			SoundJetStop:      {StartFreq: 220, EndFreq: 70, Duration: 0.6, Noise: 0.5, Volume: 0.4},
			SoundJetCabin:     {StartFreq: 140, EndFreq: 140, Duration: 1.0, Noise: 0.6, Volume: 0.25},
			SoundExplosion:    {StartFreq: 120, EndFreq: 30, Duration: 0.9, Noise: 0.9, Volume: 0.8},
			SoundEnemyDown:    {StartFreq: 600, EndFreq: 150, Duration: 0.2, Noise: 0.3, Volume: 0.5},
			SoundMenuNavigate: {StartFreq: 880, EndFreq: 880, Duration: 0.05, Volume: 0.3},
			SoundMenuSelect:   {StartFreq: 660, EndFreq: 1320, Duration: 0.12, Volume: 0.35},
		},
	}
}
