package entities

import "github.com/automoto/skyraid/config"

//go:generate go tool mockgen -destination=./mocks/sound_mock.go -package=mocks . SoundPlayer

// SoundPlayer triggers sound effects. Play must not block.
type SoundPlayer interface {
	Play(id config.SoundID)
}
