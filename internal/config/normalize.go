package config

import "strings"

// Normalize fills an empty mode and canonicalizes case.
func Normalize(cfg *Config) {
	cfg.UI.Mode = strings.ToLower(strings.TrimSpace(cfg.UI.Mode))
	if cfg.UI.Mode == "" {
		cfg.UI.Mode = UIModeAuto
	}
	cfg.Log.Path = strings.TrimSpace(cfg.Log.Path)
}
