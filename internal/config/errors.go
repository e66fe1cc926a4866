package config

import "errors"

// ErrConfigLoad wraps any failure reading, parsing, or binding configuration.
var ErrConfigLoad = errors.New("config: load failed")
