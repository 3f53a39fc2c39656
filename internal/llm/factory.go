package llm

import (
	"fmt"

	"jobscout/internal/config"
	"jobscout/internal/llm/providers"
)

// AdvisorFactory creates advisor provider instances
type AdvisorFactory struct {
	config *config.Config
}

// NewAdvisorFactory creates a new advisor factory instance
func NewAdvisorFactory(cfg *config.Config) *AdvisorFactory {
	return &AdvisorFactory{
		config: cfg,
	}
}

// CreateProvider creates an advisor provider based on the configuration
func (f *AdvisorFactory) CreateProvider() (AdvisorProvider, error) {
	switch f.config.Advisor.Provider {
	case "claude":
		return providers.NewClaudeAdvisor(f.config), nil
	default:
		return nil, fmt.Errorf("unsupported advisor provider: %s", f.config.Advisor.Provider)
	}
}

// GetSupportedProviders returns a list of supported advisor providers
func (f *AdvisorFactory) GetSupportedProviders() []string {
	return []string{"claude"}
}
