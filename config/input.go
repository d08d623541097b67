package config

import "time"

// InputConfig holds device tuning and the background poll rate
type InputConfig struct {
	// Deadzone for analog stick input (0.0 to 1.0)
	StickDeadzone float64
	// Trigger values below this read as released
	TriggerThreshold float64
	// How often the steering poller integrates movement
	PollInterval time.Duration
}

// Input is the global input configuration
var Input InputConfig

func init() {
	Input = InputConfig{
		StickDeadzone:    0.25,
		TriggerThreshold: 0.1,
		PollInterval:     4 * time.Millisecond,
	}
}
