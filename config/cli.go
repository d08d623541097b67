package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// CLI holds command-line flags. Values may also come from a JSON, YAML or
// TOML config file; flags override the file.
type CLI struct {
	Config           string        `help:"Path to a JSON, YAML or TOML config file" type:"path" env:"IRONSIGHT_CONFIG"`
	Fullscreen       bool          `help:"Start in fullscreen"`
	NoPersist        bool          `help:"Do not load or save settings" name:"no-persist"`
	PollInterval     time.Duration `help:"How often the steering poller runs" default:"4ms"`
	StickDeadzone    float64       `help:"Analog stick deadzone, 0 keeps the saved value"`
	TriggerThreshold float64       `help:"Trigger release threshold, 0 keeps the saved value"`
}

// Validate is called by kong after parsing.
func (c *CLI) Validate() error {
	if c.PollInterval <= 0 {
		return errors.New("poll-interval must be positive")
	}
	if c.StickDeadzone < 0 || c.StickDeadzone >= 1 {
		return errors.New("stick-deadzone must be in [0, 1)")
	}
	if c.TriggerThreshold < 0 || c.TriggerThreshold >= 1 {
		return errors.New("trigger-threshold must be in [0, 1)")
	}
	return nil
}

// Apply copies the parsed flags into the global configuration. It runs
// after saved settings are applied so explicit flags win.
func (c *CLI) Apply() {
	Settings.Enabled = !c.NoPersist
	Input.PollInterval = c.PollInterval
	if c.StickDeadzone > 0 {
		Input.StickDeadzone = c.StickDeadzone
	}
	if c.TriggerThreshold > 0 {
		Input.TriggerThreshold = c.TriggerThreshold
	}
}

// FindUserConfig returns the --config value from args, or the
// IRONSIGHT_CONFIG environment variable, before kong has parsed anything.
func FindUserConfig(args []string) string {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if strings.HasPrefix(a, "--config=") {
			return a[len("--config="):]
		}
		if a == "--config" && i+1 < len(args) {
			return args[i+1]
		}
	}
	return os.Getenv("IRONSIGHT_CONFIG")
}

// ConfigCandidatePaths builds candidate config file paths per format.
// userPath comes first and is routed to the loader matching its extension.
func ConfigCandidatePaths(userPath string) (jsonPaths, yamlPaths, tomlPaths []string) {
	add := func(slice *[]string, p string) { *slice = append(*slice, p) }

	if userPath != "" {
		switch filepath.Ext(userPath) {
		case ".yaml", ".yml":
			add(&yamlPaths, userPath)
		case ".toml":
			add(&tomlPaths, userPath)
		default:
			add(&jsonPaths, userPath)
		}
	}

	var dirs []string
	if wd, err := os.Getwd(); err == nil {
		dirs = append(dirs, wd)
	}
	if dir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, filepath.Join(dir, Settings.AppName))
	}
	for _, dir := range dirs {
		base := filepath.Join(dir, Settings.AppName)
		add(&jsonPaths, base+".json")
		add(&yamlPaths, base+".yaml")
		add(&yamlPaths, base+".yml")
		add(&tomlPaths, base+".toml")
	}
	return
}
