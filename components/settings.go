package components

import (
	"github.com/yohamta/donburi"
)

// SettingsData holds display preferences. ScaleIndex persists between
// sessions; everything else is per-session state.
type SettingsData struct {
	ScaleIndex int
	ShowCharts bool
}

var Settings = donburi.NewComponentType[SettingsData]()
