package navigator

import (
	"fmt"

	"jobscout/internal/config"
)

// NewNavigator creates the navigator configured by navigator.engine.
func NewNavigator(cfg *config.Config) (Navigator, error) {
	switch cfg.Navigator.Engine {
	case "rod", "":
		return NewRodNavigator(cfg), nil
	case "firecrawl":
		return NewFirecrawlNavigator(cfg)
	default:
		return nil, fmt.Errorf("unsupported navigator engine: %s", cfg.Navigator.Engine)
	}
}

// SupportedEngines returns the engines NewNavigator accepts.
func SupportedEngines() []string {
	return []string{"rod", "firecrawl"}
}
