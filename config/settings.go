package config

// SettingsConfig names where user settings are stored
type SettingsConfig struct {
	AppName string
	Key     string
	Enabled bool // Cleared by --no-persist
}

// Settings is the global settings storage configuration
var Settings SettingsConfig

func init() {
	Settings = SettingsConfig{
		AppName: "ironsight",
		Key:     "settings",
		Enabled: true,
	}
}
