// config/overlay.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

type providersFile struct {
	Providers []ProviderPatterns `yaml:"providers"`
}

// OverlayProviders replaces the provider table from a standalone file so
// new boards can be added without touching the main config.
func OverlayProviders(cfg *Config, providersPath string) error {
	b, err := os.ReadFile(providersPath)
	if err != nil {
		// Missing providers file should not kill startup
		return nil
	}

	var pf providersFile
	if err := yaml.Unmarshal(b, &pf); err != nil {
		return err
	}

	if len(pf.Providers) > 0 {
		cfg.Providers = pf.Providers
	}
	return nil
}
