package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

var validBackends = map[string]struct{}{
	"pgrep":  {},
	"procfs": {},
}

// Validate enforces config invariants and returns non-fatal warnings.
func Validate(cfg Config) ([]Warning, error) {
	warnings := make([]Warning, 0)

	if strings.TrimSpace(cfg.Companion.Pattern) == "" {
		return nil, fmt.Errorf("companion.pattern must not be empty")
	}
	backend := strings.ToLower(strings.TrimSpace(cfg.Companion.Backend))
	if _, ok := validBackends[backend]; !ok {
		return nil, fmt.Errorf("companion.backend must be one of: pgrep, procfs")
	}
	if cfg.WM.Timeout < 0 {
		return nil, fmt.Errorf("wm.timeout must be >= 0")
	}
	if strings.TrimSpace(cfg.Paths.I3Config) == "" {
		return nil, fmt.Errorf("paths.i3_config must not be empty")
	}
	if strings.TrimSpace(cfg.Paths.Script) == "" {
		return nil, fmt.Errorf("paths.script must not be empty")
	}
	if _, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(cfg.Log.Level))); err != nil {
		return nil, fmt.Errorf("log.level: %w", err)
	}

	if cfg.WM.Timeout == 0 {
		warnings = append(warnings, Warning{Message: "wm.timeout is 0; IPC calls may block indefinitely"})
	}
	if !strings.Contains(cfg.Paths.Script, cfg.Companion.Pattern) {
		warnings = append(warnings, Warning{
			Message: fmt.Sprintf("paths.script %q does not contain companion.pattern %q", cfg.Paths.Script, cfg.Companion.Pattern),
		})
	}

	return warnings, nil
}
