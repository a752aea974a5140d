package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func restoreDefaults(t *testing.T) {
	player, bullet, wave, explosion, audio := Player, Bullet, Wave, Explosion, Audio
	t.Cleanup(func() {
		Player, Bullet, Wave, Explosion, Audio = player, bullet, wave, explosion, audio
	})
}

func TestApply_OverridesOnlyNamedFields(t *testing.T) {
	restoreDefaults(t)

	data := []byte(`
player:
  startingLives: 5
  shootCooldown: 150ms
wave:
  enemyCount: 16
  fireInterval: 2s
`)
	if err := Apply(data); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if Player.StartingLives != 5 {
		t.Errorf("Expected StartingLives = 5, got %d", Player.StartingLives)
	}
	if Player.ShootCooldown != 150*time.Millisecond {
		t.Errorf("Expected ShootCooldown = 150ms, got %v", Player.ShootCooldown)
	}
	if Wave.EnemyCount != 16 {
		t.Errorf("Expected EnemyCount = 16, got %d", Wave.EnemyCount)
	}
	if Wave.FireInterval != 2*time.Second {
		t.Errorf("Expected FireInterval = 2s, got %v", Wave.FireInterval)
	}

	// Untouched values keep their defaults
	if Player.MoveIncrement != 0.7 {
		t.Errorf("Expected MoveIncrement = 0.7, got %v", Player.MoveIncrement)
	}
	if Wave.EnemiesPerRow != 8 {
		t.Errorf("Expected EnemiesPerRow = 8, got %d", Wave.EnemiesPerRow)
	}
	if Bullet.Speed != 300 {
		t.Errorf("Expected Bullet.Speed = 300, got %v", Bullet.Speed)
	}
}

func TestApply_InvalidValuesLeaveConfigUntouched(t *testing.T) {
	restoreDefaults(t)

	tests := []struct {
		name string
		data string
	}{
		{"zero lives", "player:\n  startingLives: 0\n"},
		{"bad duration", "player:\n  shootCooldown: soon\n"},
		{"negative speed", "bullet:\n  speed: -1\n"},
		{"empty row", "wave:\n  enemiesPerRow: 0\n"},
		{"loud", "audio:\n  sfxVolume: 3\n"},
		{"not yaml", "player: [1, 2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := Apply([]byte(tt.data)); err == nil {
				t.Fatalf("expected error for %q", tt.data)
			}
			if Player.StartingLives != 3 {
				t.Errorf("Expected StartingLives to stay 3, got %d", Player.StartingLives)
			}
			if Bullet.Speed != 300 {
				t.Errorf("Expected Bullet.Speed to stay 300, got %v", Bullet.Speed)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	restoreDefaults(t)

	path := filepath.Join(t.TempDir(), "skyraid.yaml")
	if err := os.WriteFile(path, []byte("bullet:\n  speed: 450\n"), 0o644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if err := LoadFile(path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if Bullet.Speed != 450 {
		t.Errorf("Expected Bullet.Speed = 450, got %v", Bullet.Speed)
	}

	if err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
