package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/automoto/skyraid/config"
	"github.com/hajimehoshi/ebiten/v2/audio"
)

// attackTime is the linear fade-in at the start of every tone, in seconds.
const attackTime = 0.005

// Synthesize renders a tone as 16-bit little-endian stereo PCM, the format
// ebiten's audio players expect.
func Synthesize(tone config.ToneConfig, sampleRate int) []byte {
	n := int(tone.Duration * float64(sampleRate))
	if n <= 0 {
		return nil
	}

	buf := make([]byte, n*4)
	noise := rand.New(rand.NewPCG(uint64(tone.StartFreq), uint64(tone.EndFreq)))
	phase := 0.0
	for i := 0; i < n; i++ {
		t := float64(i) / float64(n)
		freq := tone.StartFreq + (tone.EndFreq-tone.StartFreq)*t
		phase += 2 * math.Pi * freq / float64(sampleRate)

		s := (1-tone.Noise)*math.Sin(phase) + tone.Noise*(noise.Float64()*2-1)
		s *= tone.Volume * envelope(float64(i)/float64(sampleRate), tone.Duration)

		v := uint16(int16(math.Max(-1, math.Min(1, s)) * math.MaxInt16))
		binary.LittleEndian.PutUint16(buf[i*4:], v)
		binary.LittleEndian.PutUint16(buf[i*4+2:], v)
	}
	return buf
}

// envelope is a short linear attack followed by an exponential decay that
// reaches about 2% at the end of the tone.
func envelope(at, duration float64) float64 {
	if at < attackTime {
		return at / attackTime
	}
	return math.Exp(-4 * (at - attackTime) / duration)
}

// AudioLoader handles synthesis and caching of sound effects
type AudioLoader struct {
	sfxCache map[config.SoundID][]byte
	context  *audio.Context
}

// NewAudioLoader creates a new audio loader with the given context
func NewAudioLoader(ctx *audio.Context) *AudioLoader {
	return &AudioLoader{
		sfxCache: make(map[config.SoundID][]byte),
		context:  ctx,
	}
}

// PreloadSFX synthesizes a sound effect and caches it without creating a player.
func (l *AudioLoader) PreloadSFX(id config.SoundID) error {
	_, err := l.pcm(id)
	return err
}

// LoadSFX returns a new player for a cached sound effect.
func (l *AudioLoader) LoadSFX(id config.SoundID) (*audio.Player, error) {
	data, err := l.pcm(id)
	if err != nil {
		return nil, err
	}
	return l.context.NewPlayer(bytes.NewReader(data))
}

func (l *AudioLoader) pcm(id config.SoundID) ([]byte, error) {
	if data, ok := l.sfxCache[id]; ok {
		return data, nil
	}

	tone, ok := config.Sound.Tones[id]
	if !ok {
		return nil, fmt.Errorf("no tone configured for sound %d", id)
	}
	data := Synthesize(tone, l.context.SampleRate())
	if len(data) == 0 {
		return nil, fmt.Errorf("sound %d has no samples", id)
	}

	l.sfxCache[id] = data
	return data, nil
}
