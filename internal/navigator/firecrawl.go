package navigator

import (
	"context"
	"fmt"
	"time"

	"github.com/mendableai/firecrawl-go"

	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/pkg/utils"
)

// FirecrawlNavigator fetches rendered pages through the Firecrawl API.
// It is fetch-only: there is no live page to type into, so SearchJobs
// reports an interaction failure and the pipeline falls back to
// heuristic discovery.
type FirecrawlNavigator struct {
	config *config.Config
	app    *firecrawl.FirecrawlApp
	logger types.Logger
}

// NewFirecrawlNavigator creates a new Firecrawl-backed navigator
func NewFirecrawlNavigator(cfg *config.Config) (*FirecrawlNavigator, error) {
	logger := logging.GetGlobalLogger()

	app, err := firecrawl.NewFirecrawlApp(
		cfg.Firecrawl.APIKey,
		cfg.Firecrawl.APIURL,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firecrawl: %w", err)
	}

	logger.Info("Firecrawl navigator initialized", map[string]interface{}{
		"api_url": cfg.Firecrawl.APIURL,
	})

	return &FirecrawlNavigator{
		config: cfg,
		app:    app,
		logger: logger,
	}, nil
}

// NewSession returns a fetch-only session.
func (fn *FirecrawlNavigator) NewSession(ctx context.Context) (Session, error) {
	return &firecrawlSession{navigator: fn}, nil
}

// Engine returns the engine name.
func (fn *FirecrawlNavigator) Engine() string {
	return "firecrawl"
}

// Close is a no-op; the API client holds no resources.
func (fn *FirecrawlNavigator) Close() error {
	return nil
}

// firecrawlSession tracks the last fetched page so CurrentHTML and
// CurrentURL behave like a browser session.
type firecrawlSession struct {
	navigator *FirecrawlNavigator
	lastURL   string
	lastHTML  string
	lastTitle string
}

func (s *firecrawlSession) Navigate(ctx context.Context, url string) (*PageResult, error) {
	startTime := time.Now()

	document, err := s.navigator.app.ScrapeURL(url, &firecrawl.ScrapeParams{
		Formats: []string{"html"},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: firecrawl scrape failed: %v", utils.ErrNavigationFailed, err)
	}
	if document == nil || document.HTML == "" {
		return nil, fmt.Errorf("%w: firecrawl returned empty content for %s", utils.ErrNavigationFailed, url)
	}

	s.lastURL = url
	s.lastHTML = document.HTML
	if document.Metadata != nil && document.Metadata.Title != nil {
		s.lastTitle = *document.Metadata.Title
	}

	return &PageResult{
		URL:      s.lastURL,
		Title:    s.lastTitle,
		HTML:     s.lastHTML,
		LoadTime: time.Since(startTime),
	}, nil
}

func (s *firecrawlSession) SearchJobs(ctx context.Context, term string) (*PageResult, error) {
	return nil, fmt.Errorf("%w: firecrawl engine cannot interact with pages", utils.ErrInteractionFailed)
}

func (s *firecrawlSession) CurrentHTML() (string, error) {
	if s.lastHTML == "" {
		return "", fmt.Errorf("%w: no page fetched yet", utils.ErrNavigationFailed)
	}
	return s.lastHTML, nil
}

func (s *firecrawlSession) CurrentURL() string {
	return s.lastURL
}

func (s *firecrawlSession) Close() error {
	return nil
}
