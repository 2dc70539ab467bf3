package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestValidateDefaultConfig(t *testing.T) {
	warnings, err := Validate(Default())
	require.NoError(t, err)
	require.Empty(t, warnings)
}

func TestValidateErrorMatrix(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "empty pattern",
			mutate:  func(c *Config) { c.Companion.Pattern = " " },
			wantErr: "companion.pattern must not be empty",
		},
		{
			name:    "unknown backend",
			mutate:  func(c *Config) { c.Companion.Backend = "ps" },
			wantErr: "companion.backend must be one of",
		},
		{
			name:    "negative timeout",
			mutate:  func(c *Config) { c.WM.Timeout = -time.Second },
			wantErr: "wm.timeout must be >= 0",
		},
		{
			name:    "empty i3 config path",
			mutate:  func(c *Config) { c.Paths.I3Config = "" },
			wantErr: "paths.i3_config must not be empty",
		},
		{
			name:    "empty script path",
			mutate:  func(c *Config) { c.Paths.Script = "" },
			wantErr: "paths.script must not be empty",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.Log.Level = "chatty" },
			wantErr: "log.level",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := Default()
			tc.mutate(&cfg)

			_, err := Validate(cfg)
			require.Error(t, err)
			require.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestValidateWarnings(t *testing.T) {
	cfg := Default()
	cfg.WM.Timeout = 0
	cfg.Paths.Script = "/opt/layouts/run.py"

	warnings, err := Validate(cfg)
	require.NoError(t, err)
	require.Len(t, warnings, 2)
	require.Contains(t, warnings[0].Message, "block indefinitely")
	require.Contains(t, warnings[1].Message, "does not contain companion.pattern")
}
