package workers

import (
	"context"
	"fmt"
	"sync"

	"jobscout/internal/config"
	"jobscout/internal/heuristics"
	"jobscout/internal/llm"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/internal/navigator"
	"jobscout/pkg/models"
)

// PoolManager owns the worker pool and the engines behind it.
type PoolManager struct {
	config         *config.Config
	pool           *WorkerPool
	navigator      navigator.Navigator
	advisorManager *llm.Manager
	tables         *heuristics.Tables
	weights        heuristics.Weights
	logger         types.Logger
	mu             sync.RWMutex
	initialized    bool
}

// PoolManagerStats is a health snapshot of the pool.
type PoolManagerStats struct {
	Pool    PoolStats                         `json:"pool"`
	Domains map[string]map[string]interface{} `json:"domains"`
	Engine  string                            `json:"engine"`
}

// NewPoolManager creates a new worker pool manager
func NewPoolManager(cfg *config.Config, advisorManager *llm.Manager) *PoolManager {
	return &PoolManager{
		config:         cfg,
		advisorManager: advisorManager,
		tables:         config.BuildTables(cfg),
		weights:        config.BuildWeights(cfg),
		logger:         logging.GetGlobalLogger().WithField("component", "pool_manager"),
	}
}

// Initialize creates the navigator and starts the worker pool.
func (pm *PoolManager) Initialize() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if pm.initialized {
		return fmt.Errorf("worker pool already initialized")
	}

	pm.logger.Info("Initializing worker pool", map[string]interface{}{
		"engine": pm.config.Navigator.Engine,
	})

	nav, err := navigator.NewNavigator(pm.config)
	if err != nil {
		return fmt.Errorf("failed to create navigator: %w", err)
	}
	pm.navigator = nav

	pm.pool = NewWorkerPool(pm.config, pm.navigator, pm.advisorManager, pm.tables, pm.weights)
	if err := pm.pool.Start(); err != nil {
		return fmt.Errorf("failed to start worker pool: %w", err)
	}

	pm.initialized = true
	pm.logger.Info("Worker pool initialized successfully")
	return nil
}

// Shutdown gracefully shuts down the worker pool and the navigator.
func (pm *PoolManager) Shutdown() error {
	pm.mu.Lock()
	defer pm.mu.Unlock()

	if !pm.initialized || pm.pool == nil {
		return nil
	}

	pm.logger.Info("Shutting down worker pool")

	if err := pm.pool.Stop(); err != nil {
		pm.logger.Warn("Worker pool stop failed", map[string]interface{}{
			"error": err.Error(),
		})
	}
	if pm.navigator != nil {
		if err := pm.navigator.Close(); err != nil {
			pm.logger.Warn("Navigator close failed", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	pm.initialized = false
	pm.logger.Info("Worker pool shut down")
	return nil
}

// SubmitJob submits a locate request to the pool.
func (pm *PoolManager) SubmitJob(ctx context.Context, req *models.LocateRequest) (*JobResult, error) {
	pm.mu.RLock()
	pool := pm.pool
	pm.mu.RUnlock()

	if pool == nil {
		return nil, fmt.Errorf("worker pool not initialized")
	}

	return pool.SubmitJob(ctx, req)
}

// GetStats returns a snapshot of pool and per-domain statistics.
func (pm *PoolManager) GetStats() (*PoolManagerStats, error) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if pm.pool == nil {
		return nil, fmt.Errorf("worker pool not initialized")
	}

	return &PoolManagerStats{
		Pool:    pm.pool.GetStats(),
		Domains: pm.pool.rateLimiter.GetAllStats(),
		Engine:  pm.navigator.Engine(),
	}, nil
}

// IsHealthy returns whether the pool can accept jobs.
func (pm *PoolManager) IsHealthy() bool {
	pm.mu.RLock()
	defer pm.mu.RUnlock()
	return pm.initialized && pm.pool != nil && pm.pool.IsRunning()
}

// GetDomainStats returns rate limiter statistics for one domain.
func (pm *PoolManager) GetDomainStats(domain string) (map[string]interface{}, error) {
	pm.mu.RLock()
	defer pm.mu.RUnlock()

	if pm.pool == nil {
		return nil, fmt.Errorf("worker pool not initialized")
	}
	return pm.pool.rateLimiter.GetDomainStats(domain), nil
}
