package systems

import (
	"encoding/json"
	"log"

	cfg "github.com/automoto/skyraid/config"
	"github.com/quasilyte/gdata"
)

const (
	highScoreKey = "highscore"
	settingsKey  = "settings"
)

// SavedSettings represents the settings data stored on disk
type SavedSettings struct {
	SFXVolume     float64 `json:"sfxVolume"`
	StartingLives int     `json:"startingLives"`
}

// SavedHighScore is the best run stored on disk
type SavedHighScore struct {
	Score int `json:"score"`
	Wave  int `json:"wave"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for high score storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "skyraid",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadHighScore loads the stored high score. A missing or unreadable record
// yields the zero value.
func LoadHighScore() SavedHighScore {
	if !gdataInitialized || gdataManager == nil {
		return SavedHighScore{}
	}

	data, err := gdataManager.LoadItem(highScoreKey)
	if err != nil {
		log.Printf("Warning: Could not load high score: %v", err)
		return SavedHighScore{}
	}

	saved, err := decodeHighScore(data)
	if err != nil {
		log.Printf("Warning: Could not parse saved high score: %v", err)
	}
	return saved
}

// SaveHighScore stores the run if it beats the current record. It reports
// whether a new record was written.
func SaveHighScore(run SavedHighScore) bool {
	if !gdataInitialized || gdataManager == nil {
		return false
	}

	if !isNewRecord(LoadHighScore(), run) {
		return false
	}

	data, err := json.Marshal(run)
	if err != nil {
		log.Printf("Warning: Could not serialize high score: %v", err)
		return false
	}

	if err := gdataManager.SaveItem(highScoreKey, data); err != nil {
		log.Printf("Warning: Could not save high score: %v", err)
		return false
	}
	return true
}

func decodeHighScore(data []byte) (SavedHighScore, error) {
	if len(data) == 0 {
		// No saved score yet
		return SavedHighScore{}, nil
	}

	var saved SavedHighScore
	if err := json.Unmarshal(data, &saved); err != nil {
		return SavedHighScore{}, err
	}
	if saved.Score < 0 {
		saved.Score = 0
	}
	return saved, nil
}

func isNewRecord(best, run SavedHighScore) bool {
	return run.Score > best.Score
}

// ClearHighScore removes the stored high score
func ClearHighScore() error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	// Save empty data to clear the record
	if err := gdataManager.SaveItem(highScoreKey, nil); err != nil {
		log.Printf("Warning: Could not clear high score: %v", err)
		return err
	}
	return nil
}

// CurrentSettings returns the settings in effect right now
func CurrentSettings() SavedSettings {
	return SavedSettings{
		SFXVolume:     GetSFXVolume(),
		StartingLives: cfg.Player.StartingLives,
	}
}

// LoadSettings loads settings from disk
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(settingsKey)
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if len(data) == 0 {
		// No saved settings yet, use defaults
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves settings to disk
func SaveSettings(s SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(settingsKey, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// ApplySettingsGlobal applies settings without needing an ECS reference.
// Out-of-range values are clamped.
func ApplySettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}

	setGlobalSFXVolume(min(max(saved.SFXVolume, 0), 1))
	cfg.Player.StartingLives = min(max(saved.StartingLives, cfg.Settings.MinLives), cfg.Settings.MaxLives)
}
