package testutil

import (
	"testing"
	"time"

	"github.com/spf13/viper"

	"github.com/lepinkainen/bookexplorer/internal/config"
)

// ConfigState holds the state of the config package variables.
type ConfigState struct {
	BaseURL          string
	CoverBaseURL     string
	Timeout          time.Duration
	UserAgent        string
	ServerAddr       string
	DescriptionLimit int
}

// SaveConfigState captures the current state of config package variables.
func SaveConfigState() ConfigState {
	return ConfigState{
		BaseURL:          config.BaseURL,
		CoverBaseURL:     config.CoverBaseURL,
		Timeout:          config.Timeout,
		UserAgent:        config.UserAgent,
		ServerAddr:       config.ServerAddr,
		DescriptionLimit: config.DescriptionLimit,
	}
}

// RestoreConfigState restores the config package variables to a saved state.
func RestoreConfigState(state ConfigState) {
	config.BaseURL = state.BaseURL
	config.CoverBaseURL = state.CoverBaseURL
	config.Timeout = state.Timeout
	config.UserAgent = state.UserAgent
	config.ServerAddr = state.ServerAddr
	config.DescriptionLimit = state.DescriptionLimit
}

// ResetConfig saves the current config state and schedules restoration
// when the test completes. It also resets viper.
func ResetConfig(t *testing.T) {
	t.Helper()

	state := SaveConfigState()
	viper.Reset()

	t.Cleanup(func() {
		RestoreConfigState(state)
		viper.Reset()
	})
}

// SetTestConfig points the config at test servers. Empty URLs keep the
// defaults. The previous state is restored when the test completes.
func SetTestConfig(t *testing.T, baseURL, coverBaseURL string) {
	t.Helper()

	ResetConfig(t)
	config.InitConfig()
	config.Timeout = 5 * time.Second

	if baseURL != "" {
		config.BaseURL = baseURL
	}
	if coverBaseURL != "" {
		config.CoverBaseURL = coverBaseURL
	}
}
