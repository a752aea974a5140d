package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional on-disk override file. Only fields present in the
// file replace the compiled-in defaults.
type FileConfig struct {
	Player *struct {
		StartX        *float64 `yaml:"startX"`
		StartY        *float64 `yaml:"startY"`
		MoveIncrement *float64 `yaml:"moveIncrement"`
		ShootCooldown *string  `yaml:"shootCooldown"` // e.g. "200ms"
		StartingLives *int     `yaml:"startingLives"`
	} `yaml:"player"`

	Bullet *struct {
		Speed *float64 `yaml:"speed"`
	} `yaml:"bullet"`

	Wave *struct {
		EnemyCount    *int     `yaml:"enemyCount"`
		EnemiesPerRow *int     `yaml:"enemiesPerRow"`
		OriginX       *float64 `yaml:"originX"`
		OriginY       *float64 `yaml:"originY"`
		SpacingX      *float64 `yaml:"spacingX"`
		SpacingY      *float64 `yaml:"spacingY"`
		FireInterval  *string  `yaml:"fireInterval"` // e.g. "1s"
	} `yaml:"wave"`

	Explosion *struct {
		TicksPerFrame *int `yaml:"ticksPerFrame"`
	} `yaml:"explosion"`

	Audio *struct {
		SFXVolume *float64 `yaml:"sfxVolume"`
	} `yaml:"audio"`
}

// LoadFile reads a YAML override file and applies it to the global configuration.
func LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}
	return Apply(data)
}

// Apply decodes YAML override data and applies it to the global configuration.
// Nothing is changed when the data is invalid.
func Apply(data []byte) error {
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("failed to parse config YAML: %w", err)
	}

	player, bullet, wave, explosion, audio := Player, Bullet, Wave, Explosion, Audio

	if p := fc.Player; p != nil {
		setFloat(&player.StartX, p.StartX)
		setFloat(&player.StartY, p.StartY)
		setFloat(&player.MoveIncrement, p.MoveIncrement)
		setInt(&player.StartingLives, p.StartingLives)
		if err := setDuration(&player.ShootCooldown, p.ShootCooldown); err != nil {
			return fmt.Errorf("player.shootCooldown: %w", err)
		}
	}

	if b := fc.Bullet; b != nil {
		setFloat(&bullet.Speed, b.Speed)
	}

	if w := fc.Wave; w != nil {
		setInt(&wave.EnemyCount, w.EnemyCount)
		setInt(&wave.EnemiesPerRow, w.EnemiesPerRow)
		setFloat(&wave.OriginX, w.OriginX)
		setFloat(&wave.OriginY, w.OriginY)
		setFloat(&wave.SpacingX, w.SpacingX)
		setFloat(&wave.SpacingY, w.SpacingY)
		if err := setDuration(&wave.FireInterval, w.FireInterval); err != nil {
			return fmt.Errorf("wave.fireInterval: %w", err)
		}
	}

	if e := fc.Explosion; e != nil {
		setInt(&explosion.TicksPerFrame, e.TicksPerFrame)
	}

	if a := fc.Audio; a != nil {
		setFloat(&audio.DefaultSFXVol, a.SFXVolume)
	}

	if err := validate(player, bullet, wave, explosion, audio); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	Player, Bullet, Wave, Explosion, Audio = player, bullet, wave, explosion, audio
	return nil
}

func validate(player PlayerConfig, bullet BulletConfig, wave WaveConfig, explosion ExplosionConfig, audio AudioConfig) error {
	if player.StartingLives <= 0 {
		return fmt.Errorf("player.startingLives must be positive, got %d", player.StartingLives)
	}
	if player.ShootCooldown < 0 {
		return fmt.Errorf("player.shootCooldown cannot be negative")
	}
	if bullet.Speed <= 0 {
		return fmt.Errorf("bullet.speed must be positive, got %v", bullet.Speed)
	}
	if wave.EnemyCount <= 0 {
		return fmt.Errorf("wave.enemyCount must be positive, got %d", wave.EnemyCount)
	}
	if wave.EnemiesPerRow <= 0 {
		return fmt.Errorf("wave.enemiesPerRow must be positive, got %d", wave.EnemiesPerRow)
	}
	if explosion.TicksPerFrame <= 0 {
		return fmt.Errorf("explosion.ticksPerFrame must be positive, got %d", explosion.TicksPerFrame)
	}
	if audio.DefaultSFXVol < 0 || audio.DefaultSFXVol > 1 {
		return fmt.Errorf("audio.sfxVolume must be within [0, 1], got %v", audio.DefaultSFXVol)
	}
	return nil
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setDuration(dst *time.Duration, v *string) error {
	if v == nil {
		return nil
	}
	d, err := time.ParseDuration(*v)
	if err != nil {
		return err
	}
	*dst = d
	return nil
}
