package systems

import (
	"encoding/json"
	"fmt"
	"log"

	cfg "github.com/automoto/ironsight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the settings data stored on disk.
// Key bindings are not persisted.
type SavedSettings struct {
	Fullscreen       bool    `json:"fullscreen"`
	StickDeadzone    float64 `json:"stickDeadzone"`
	TriggerThreshold float64 `json:"triggerThreshold"`
}

var gdataManager *gdata.Manager

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	if !cfg.Settings.Enabled {
		return nil
	}
	m, err := gdata.Open(gdata.Config{
		AppName: cfg.Settings.AppName,
	})
	if err != nil {
		return fmt.Errorf("open settings storage: %w", err)
	}
	gdataManager = m
	return nil
}

// LoadSettings loads settings from disk. It returns nil without an error
// when nothing has been saved yet.
func LoadSettings() (*SavedSettings, error) {
	if gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem(cfg.Settings.Key)
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
func SaveSettings(s *SavedSettings) error {
	if gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(cfg.Settings.Key, data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// CurrentSettings captures the live settings.
func CurrentSettings() *SavedSettings {
	return &SavedSettings{
		Fullscreen:       ebiten.IsFullscreen(),
		StickDeadzone:    cfg.Input.StickDeadzone,
		TriggerThreshold: cfg.Input.TriggerThreshold,
	}
}

// SaveCurrentSettings saves the live settings, logging any failure.
func SaveCurrentSettings() {
	_ = SaveSettings(CurrentSettings())
}

// ApplySavedSettings applies loaded settings. Input tuning must be applied
// before the input manager is created.
func ApplySavedSettings(saved *SavedSettings) {
	if saved == nil {
		return
	}

	ebiten.SetFullscreen(saved.Fullscreen)

	if saved.StickDeadzone > 0 && saved.StickDeadzone < 1 {
		cfg.Input.StickDeadzone = saved.StickDeadzone
	}
	if saved.TriggerThreshold > 0 && saved.TriggerThreshold < 1 {
		cfg.Input.TriggerThreshold = saved.TriggerThreshold
	}
}
