package config

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindUserConfig(t *testing.T) {
	t.Setenv("IRONSIGHT_CONFIG", "")

	assert.Equal(t, "a.yaml", FindUserConfig([]string{"--fullscreen", "--config=a.yaml"}))
	assert.Equal(t, "b.toml", FindUserConfig([]string{"--config", "b.toml"}))
	assert.Empty(t, FindUserConfig([]string{"--config"}))

	t.Setenv("IRONSIGHT_CONFIG", "env.json")
	assert.Equal(t, "env.json", FindUserConfig(nil))
}

func TestConfigCandidatePathsRoutesUserPath(t *testing.T) {
	jsonPaths, yamlPaths, tomlPaths := ConfigCandidatePaths("custom.yml")
	require.NotEmpty(t, yamlPaths)
	assert.Equal(t, "custom.yml", yamlPaths[0])
	assert.NotContains(t, jsonPaths, "custom.yml")

	for _, p := range tomlPaths {
		assert.Equal(t, ".toml", filepath.Ext(p))
	}
}

func TestCLIValidate(t *testing.T) {
	ok := CLI{PollInterval: time.Millisecond}
	assert.NoError(t, ok.Validate())

	bad := []CLI{
		{PollInterval: 0},
		{PollInterval: time.Millisecond, StickDeadzone: 1},
		{PollInterval: time.Millisecond, TriggerThreshold: -0.1},
	}
	for _, c := range bad {
		assert.Error(t, c.Validate())
	}
}

func TestCLIApplyKeepsUnsetValues(t *testing.T) {
	saved := Input
	savedSettings := Settings
	t.Cleanup(func() {
		Input = saved
		Settings = savedSettings
	})

	Input.StickDeadzone = 0.3
	c := CLI{PollInterval: 2 * time.Millisecond, TriggerThreshold: 0.2, NoPersist: true}
	c.Apply()

	assert.Equal(t, 0.3, Input.StickDeadzone)
	assert.Equal(t, 0.2, Input.TriggerThreshold)
	assert.Equal(t, 2*time.Millisecond, Input.PollInterval)
	assert.False(t, Settings.Enabled)
}
