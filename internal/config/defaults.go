package config

import (
	"time"

	"github.com/spf13/viper"
)

const (
	DefaultPattern  = "alternating_layouts.py"
	DefaultI3Config = "~/.config/i3/config"
	DefaultScript   = "/home/super/Documents/i3-alternating-layout/alternating_layouts.py"
)

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		WM: WMConfig{
			SocketPath: "",
			Timeout:    2 * time.Second,
		},
		Companion: CompanionConfig{
			Pattern: DefaultPattern,
			Backend: "pgrep",
		},
		Paths: PathsConfig{
			I3Config: DefaultI3Config,
			Script:   DefaultScript,
		},
		Log: LogConfig{Level: "info"},
	}
}

// setDefaults registers every key so env overrides apply even without a file.
func setDefaults(v *viper.Viper) {
	d := Default()
	v.SetDefault("wm.socket_path", d.WM.SocketPath)
	v.SetDefault("wm.timeout", d.WM.Timeout)
	v.SetDefault("companion.pattern", d.Companion.Pattern)
	v.SetDefault("companion.backend", d.Companion.Backend)
	v.SetDefault("paths.i3_config", d.Paths.I3Config)
	v.SetDefault("paths.script", d.Paths.Script)
	v.SetDefault("log.level", d.Log.Level)
}
