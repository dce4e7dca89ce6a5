package config

// WindowScale represents a selectable window size option.
type WindowScale struct {
	Factor int
	Label  string
}

// SettingsConfig contains display settings options. Only display
// preferences persist between sessions; throw parameters are transient.
type SettingsConfig struct {
	Scales            []WindowScale
	DefaultScaleIndex int
}

// Settings is the global display settings configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		Scales: []WindowScale{
			{Factor: 1, Label: "960 x 540"},
			{Factor: 2, Label: "1920 x 1080"},
		},
		DefaultScaleIndex: 1,
	}
}
