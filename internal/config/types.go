// Package config resolves, loads, validates, and defaults layoutcheck configuration.
package config

import "time"

// Config is the fully materialized runtime configuration.
type Config struct {
	WM        WMConfig        `mapstructure:"wm"`
	Companion CompanionConfig `mapstructure:"companion"`
	Paths     PathsConfig     `mapstructure:"paths"`
	Log       LogConfig       `mapstructure:"log"`
}

// WMConfig controls how the window manager IPC socket is reached.
type WMConfig struct {
	SocketPath string        `mapstructure:"socket_path"`
	Timeout    time.Duration `mapstructure:"timeout"`
}

// CompanionConfig describes how the layout script process is found.
type CompanionConfig struct {
	Pattern string `mapstructure:"pattern"`
	Backend string `mapstructure:"backend"`
}

// PathsConfig holds the locations printed for operator reference.
type PathsConfig struct {
	I3Config string `mapstructure:"i3_config"`
	Script   string `mapstructure:"script"`
}

// LogConfig controls the JSONL log file.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Warning is a non-fatal load/validation message.
type Warning struct {
	Message string
}
