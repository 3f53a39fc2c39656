package navigator

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"jobscout/internal/config"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
)

// BrowserManager owns the shared browser instances behind rod sessions.
type BrowserManager struct {
	config       *config.Config
	launcher     *launcher.Launcher
	browsers     []*rod.Browser
	mu           sync.RWMutex
	maxInstances int
	logger       types.Logger
}

// BrowserInstance is one page in one managed browser.
type BrowserInstance struct {
	Browser   *rod.Browser
	Page      *rod.Page
	manager   *BrowserManager
	createdAt time.Time
}

// NewBrowserManager creates a new browser manager
func NewBrowserManager(cfg *config.Config) *BrowserManager {
	logger := logging.GetGlobalLogger()

	l := launcher.New().
		Headless(cfg.Navigator.HeadlessMode).
		NoSandbox(true).
		Set("disable-blink-features", "AutomationControlled").
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-gpu").
		Set("disable-dev-shm-usage")

	// Use system-installed Chrome/Chromium instead of downloading
	if chromePath := getSystemChromePath(); chromePath != "" {
		l = l.Bin(chromePath)
		logger.Info("Using system Chrome browser", map[string]interface{}{
			"chrome_path": chromePath,
		})
	} else {
		logger.Warn("System Chrome not found, Rod will download browser", map[string]interface{}{})
	}

	if cfg.Navigator.UserAgent != "" {
		l = l.Set("user-agent", cfg.Navigator.UserAgent)
	}

	return &BrowserManager{
		config:       cfg,
		launcher:     l,
		browsers:     make([]*rod.Browser, 0),
		maxInstances: cfg.Navigator.MaxInstances,
		logger:       logger,
	}
}

// GetBrowser returns a fresh page on a healthy browser, creating a new
// browser when none is available and the pool is under its limit.
func (bm *BrowserManager) GetBrowser(ctx context.Context) (*BrowserInstance, error) {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	for _, browser := range bm.browsers {
		if !bm.isBrowserHealthy(browser) {
			continue
		}
		page, err := bm.createPage(browser)
		if err != nil {
			bm.logger.Warn("Failed to create page from existing browser", map[string]interface{}{
				"error": err.Error(),
			})
			continue
		}
		return &BrowserInstance{
			Browser:   browser,
			Page:      page,
			manager:   bm,
			createdAt: time.Now(),
		}, nil
	}

	if len(bm.browsers) < bm.maxInstances {
		browser, err := bm.createBrowser(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to create browser: %w", err)
		}

		page, err := bm.createPage(browser)
		if err != nil {
			browser.MustClose()
			return nil, fmt.Errorf("failed to create page: %w", err)
		}

		bm.browsers = append(bm.browsers, browser)

		return &BrowserInstance{
			Browser:   browser,
			Page:      page,
			manager:   bm,
			createdAt: time.Now(),
		}, nil
	}

	return nil, fmt.Errorf("browser pool exhausted, max instances: %d", bm.maxInstances)
}

func (bm *BrowserManager) createBrowser(ctx context.Context) (*rod.Browser, error) {
	url, err := bm.launcher.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	bm.logger.Info("New browser instance created", map[string]interface{}{})
	return browser, nil
}

// createPage creates a page, with stealth mode when configured.
func (bm *BrowserManager) createPage(browser *rod.Browser) (*rod.Page, error) {
	var page *rod.Page
	var err error

	if bm.config.Navigator.StealthMode {
		page, err = stealth.Page(browser)
	} else {
		page, err = browser.Page(proto.TargetCreateTarget{})
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create page: %w", err)
	}

	if err := page.SetViewport(&proto.EmulationSetDeviceMetricsOverride{
		Width:             1920,
		Height:            1080,
		DeviceScaleFactor: 1,
	}); err != nil {
		bm.logger.Warn("Failed to set viewport", map[string]interface{}{
			"error": err.Error(),
		})
	}

	if bm.config.Navigator.UserAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{
			UserAgent: bm.config.Navigator.UserAgent,
		}); err != nil {
			bm.logger.Warn("Failed to set user agent", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}

	return page, nil
}

// Release closes the instance's page. The underlying browser stays in
// the pool for reuse.
func (bi *BrowserInstance) Release() {
	if bi.Page != nil {
		bi.Page.MustClose()
	}
	bi.manager.logger.Debug("Browser instance released")
}

// Navigate navigates the page to the specified URL with timeout
func (bi *BrowserInstance) Navigate(ctx context.Context, url string, timeout time.Duration) error {
	navCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	err := rod.Try(func() {
		bi.Page.Context(navCtx).MustNavigate(url).MustWaitLoad()
	})
	if err != nil {
		return fmt.Errorf("failed to navigate to %s: %w", url, err)
	}

	bi.manager.logger.Debug("Successfully navigated to URL", map[string]interface{}{
		"url": url,
	})
	return nil
}

// GetPageHTML returns the full HTML content of the current page
func (bi *BrowserInstance) GetPageHTML() (string, error) {
	html, err := bi.Page.HTML()
	if err != nil {
		return "", fmt.Errorf("failed to get page HTML: %w", err)
	}
	return html, nil
}

// GetPageURL returns the URL the page is currently on.
func (bi *BrowserInstance) GetPageURL() string {
	info, err := bi.Page.Info()
	if err != nil {
		return ""
	}
	return info.URL
}

// GetPageTitle returns the title of the current page.
func (bi *BrowserInstance) GetPageTitle() string {
	info, err := bi.Page.Info()
	if err != nil {
		return ""
	}
	return info.Title
}

func (bm *BrowserManager) isBrowserHealthy(browser *rod.Browser) bool {
	err := rod.Try(func() {
		browser.MustVersion()
	})
	return err == nil
}

// Cleanup closes all managed browsers.
func (bm *BrowserManager) Cleanup() {
	bm.mu.Lock()
	defer bm.mu.Unlock()

	for _, browser := range bm.browsers {
		if err := rod.Try(func() { browser.MustClose() }); err != nil {
			bm.logger.Warn("Failed to close browser", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	bm.browsers = nil
}

// getSystemChromePath finds an installed Chrome/Chromium binary.
func getSystemChromePath() string {
	paths := []string{
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/opt/google/chrome/chrome",
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
	}

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
