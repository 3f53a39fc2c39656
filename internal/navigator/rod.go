package navigator

import (
	"context"
	"fmt"
	"time"

	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/pkg/utils"
)

// RodNavigator drives a real Chromium via rod. This is the default
// engine: it renders JavaScript-heavy careers pages and supports
// in-page interaction.
type RodNavigator struct {
	config         *config.Config
	browserManager *BrowserManager
	logger         types.Logger
}

// NewRodNavigator creates a new rod-backed navigator
func NewRodNavigator(cfg *config.Config) *RodNavigator {
	return &RodNavigator{
		config:         cfg,
		browserManager: NewBrowserManager(cfg),
		logger:         logging.GetGlobalLogger(),
	}
}

// NewSession acquires a browser page for one pipeline run.
func (rn *RodNavigator) NewSession(ctx context.Context) (Session, error) {
	instance, err := rn.browserManager.GetBrowser(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrNavigationFailed, err)
	}

	return &rodSession{
		navigator: rn,
		instance:  instance,
	}, nil
}

// Engine returns the engine name.
func (rn *RodNavigator) Engine() string {
	return "rod"
}

// Close shuts down every managed browser.
func (rn *RodNavigator) Close() error {
	rn.browserManager.Cleanup()
	return nil
}

// rodSession is a single page progressing through a pipeline run.
type rodSession struct {
	navigator *RodNavigator
	instance  *BrowserInstance
}

func (s *rodSession) Navigate(ctx context.Context, url string) (*PageResult, error) {
	startTime := time.Now()

	err := s.instance.Navigate(ctx, url, s.navigator.config.Navigator.RequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrNavigationFailed, err)
	}

	if err := s.settle(ctx); err != nil {
		return nil, err
	}

	return s.pageResult(startTime)
}

func (s *rodSession) CurrentHTML() (string, error) {
	return s.instance.GetPageHTML()
}

func (s *rodSession) CurrentURL() string {
	return s.instance.GetPageURL()
}

func (s *rodSession) Close() error {
	s.instance.Release()
	return nil
}

// settle waits for late-rendering content after a load event. Dynamic
// careers pages routinely populate listings after onload.
func (s *rodSession) settle(ctx context.Context) error {
	delay := s.navigator.config.Navigator.SettleDelay
	if delay <= 0 {
		return nil
	}

	select {
	case <-time.After(delay):
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (s *rodSession) pageResult(startTime time.Time) (*PageResult, error) {
	html, err := s.instance.GetPageHTML()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrNavigationFailed, err)
	}
	html = s.appendFrameHTML(html)

	return &PageResult{
		URL:      s.instance.GetPageURL(),
		Title:    s.instance.GetPageTitle(),
		HTML:     html,
		LoadTime: time.Since(startTime),
	}, nil
}
