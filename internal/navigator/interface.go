package navigator

import (
	"context"
	"time"
)

// PageResult is the outcome of a single navigation.
type PageResult struct {
	URL      string
	Title    string
	HTML     string
	LoadTime time.Duration
}

// Session is one browsing context moving through the pipeline. A session
// remembers where it is: CurrentHTML and CurrentURL reflect the last
// successful navigation or interaction.
type Session interface {
	// Navigate loads the given URL and returns the rendered page.
	Navigate(ctx context.Context, url string) (*PageResult, error)

	// SearchJobs types the term into a job search box on the current
	// page and submits it. Engines without interaction support return
	// utils.ErrInteractionFailed.
	SearchJobs(ctx context.Context, term string) (*PageResult, error)

	// CurrentHTML returns the HTML of the page the session is on.
	CurrentHTML() (string, error)

	// CurrentURL returns the URL the session is on.
	CurrentURL() string

	// Close releases the session's resources.
	Close() error
}

// Navigator creates sessions for pipeline runs. One navigator is shared
// by all workers; each run gets its own session.
type Navigator interface {
	NewSession(ctx context.Context) (Session, error)
	Engine() string
	Close() error
}
