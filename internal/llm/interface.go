package llm

import (
	"context"

	"jobscout/pkg/models"
)

// AdvisorProvider decides how to get from a careers page to job
// listings. Providers return an error when they cannot produce a
// decision; callers fall back to heuristic discovery in that case.
type AdvisorProvider interface {
	// DecideCareersAction analyzes careers-page HTML and recommends the
	// next navigation action for the given job title.
	DecideCareersAction(ctx context.Context, html, jobTitle string) (*models.AdvisorDecision, error)

	// IsHealthy checks if the provider is reachable and configured.
	IsHealthy(ctx context.Context) error

	// GetProviderName returns the name of the provider.
	GetProviderName() string
}
