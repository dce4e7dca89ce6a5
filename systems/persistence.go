package systems

import (
	"encoding/json"
	"log"

	"github.com/fairwaylab/discflight/components"
	cfg "github.com/fairwaylab/discflight/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/quasilyte/gdata"
)

// SavedSettings represents the display preferences stored on disk. Throw
// parameters are deliberately not persisted; every session starts from the
// configured defaults.
type SavedSettings struct {
	ScaleIndex int  `json:"scaleIndex"`
	ShowCharts bool `json:"showCharts"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for settings storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "discflight",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadSettings loads display settings from disk. A nil result means no
// saved settings exist and defaults apply.
func LoadSettings() (*SavedSettings, error) {
	if !gdataInitialized || gdataManager == nil {
		return nil, nil
	}

	data, err := gdataManager.LoadItem("settings")
	if err != nil {
		log.Printf("Warning: Could not load settings: %v", err)
		return nil, nil
	}
	if data == nil {
		return nil, nil
	}

	var settings SavedSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		log.Printf("Warning: Could not parse saved settings: %v", err)
		return nil, err
	}

	return &settings, nil
}

// SaveSettings saves display settings to disk
func SaveSettings(s *SavedSettings) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(s)
	if err != nil {
		log.Printf("Warning: Could not serialize settings: %v", err)
		return err
	}

	if err := gdataManager.SaveItem("settings", data); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
		return err
	}
	return nil
}

// SaveCurrentSettings persists the live settings component.
func SaveCurrentSettings(s *components.SettingsData) {
	if err := SaveSettings(&SavedSettings{
		ScaleIndex: s.ScaleIndex,
		ShowCharts: s.ShowCharts,
	}); err != nil {
		log.Printf("Warning: Could not save settings: %v", err)
	}
}

// startupScaleIndex holds the scale chosen before any scene exists, so the
// simulator scene can seed its settings component from it.
var startupScaleIndex = -1

// ApplySavedSettingsGlobal applies persisted display settings at startup,
// before the first scene is created.
func ApplySavedSettingsGlobal(saved *SavedSettings) {
	if saved == nil {
		return
	}
	if saved.ScaleIndex >= 0 && saved.ScaleIndex < len(cfg.Settings.Scales) {
		startupScaleIndex = saved.ScaleIndex
	}
	startupShowCharts = saved.ShowCharts
}

var startupShowCharts bool

// StartupSettings returns the settings state to seed a new scene with.
func StartupSettings() components.SettingsData {
	idx := cfg.Settings.DefaultScaleIndex
	if startupScaleIndex >= 0 {
		idx = startupScaleIndex
	}
	return components.SettingsData{
		ScaleIndex: idx,
		ShowCharts: startupShowCharts,
	}
}

// CycleWindowScale advances to the next window size option, resizes the
// window, and persists the choice.
func CycleWindowScale(s *components.SettingsData) {
	s.ScaleIndex = (s.ScaleIndex + 1) % len(cfg.Settings.Scales)
	applyWindowScale(s.ScaleIndex)
	SaveCurrentSettings(s)
}

// ApplyWindowScale resizes the window for the given option index.
func ApplyWindowScale(index int) {
	if index < 0 || index >= len(cfg.Settings.Scales) {
		index = cfg.Settings.DefaultScaleIndex
	}
	applyWindowScale(index)
}

func applyWindowScale(index int) {
	f := cfg.Settings.Scales[index].Factor
	ebiten.SetWindowSize(cfg.C.Width*f, cfg.C.Height*f)
}

// ScaleLabel returns the display label for a window size option.
func ScaleLabel(index int) string {
	if index < 0 || index >= len(cfg.Settings.Scales) {
		return ""
	}
	return cfg.Settings.Scales[index].Label
}
