package llm

import (
	"context"
	"fmt"
	"sync"

	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/pkg/models"
)

// Manager manages advisor providers and their lifecycle. A failed
// health check disables the advisor instead of failing startup; the
// pipeline runs on heuristics alone in that case.
type Manager struct {
	config   *config.Config
	factory  *AdvisorFactory
	provider AdvisorProvider
	logger   logging.Logger
	mu       sync.RWMutex
	healthy  bool
}

// NewManager creates a new advisor manager instance
func NewManager(cfg *config.Config) *Manager {
	return &Manager{
		config:  cfg,
		factory: NewAdvisorFactory(cfg),
		logger:  logging.GetGlobalLogger(),
	}
}

// Start initializes the advisor manager and creates the provider
func (m *Manager) Start() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Starting advisor manager", map[string]interface{}{
		"provider": m.config.Advisor.Provider,
	})

	provider, err := m.factory.CreateProvider()
	if err != nil {
		return fmt.Errorf("failed to create advisor provider: %w", err)
	}

	m.provider = provider

	ctx, cancel := context.WithTimeout(context.Background(), m.config.Advisor.Timeout)
	defer cancel()

	if err := m.provider.IsHealthy(ctx); err != nil {
		m.logger.Warn("Advisor health check failed, pipeline will run on heuristics only", map[string]interface{}{
			"error": err.Error(),
		})
		m.healthy = false
	} else {
		m.healthy = true
		m.logger.Info("Advisor manager started successfully", map[string]interface{}{
			"provider": m.provider.GetProviderName(),
		})
	}

	return nil
}

// Stop shuts down the advisor manager
func (m *Manager) Stop() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.logger.Info("Stopping advisor manager")
	m.provider = nil
	m.healthy = false
	return nil
}

// DecideCareersAction asks the configured provider for a navigation
// decision. Errors here are advisory; callers fall back to heuristic
// discovery rather than failing the run.
func (m *Manager) DecideCareersAction(ctx context.Context, html, jobTitle string) (*models.AdvisorDecision, error) {
	m.mu.RLock()
	provider := m.provider
	healthy := m.healthy
	m.mu.RUnlock()

	if provider == nil {
		return nil, fmt.Errorf("advisor manager not started or provider not available")
	}

	if !healthy {
		return nil, fmt.Errorf("advisor provider is not available, check API key configuration (ADVISOR_API_KEY)")
	}

	return provider.DecideCareersAction(ctx, html, jobTitle)
}

// IsHealthy checks if the advisor manager and provider are healthy
func (m *Manager) IsHealthy() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.healthy && m.provider != nil
}

// GetProviderName returns the name of the current advisor provider
func (m *Manager) GetProviderName() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.provider != nil {
		return m.provider.GetProviderName()
	}
	return "none"
}

// CheckHealth performs a health check on the advisor provider
func (m *Manager) CheckHealth(ctx context.Context) error {
	m.mu.RLock()
	provider := m.provider
	m.mu.RUnlock()

	if provider == nil {
		return fmt.Errorf("advisor provider not available")
	}

	err := provider.IsHealthy(ctx)

	m.mu.Lock()
	m.healthy = (err == nil)
	m.mu.Unlock()

	return err
}
