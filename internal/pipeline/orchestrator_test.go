package pipeline

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/internal/heuristics"
	"jobscout/internal/navigator"
	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

const companyHTML = `<html><body>
	<a href="/blog">Blog</a>
	<a href="/careers">Careers</a>
</body></html>`

const careersHTML = `<html><body>
	<h2>Open roles</h2>
	<a href="/jobs/senior-backend-engineer">Senior Backend Engineer</a>
	<a href="/jobs/marketing-manager">Marketing Manager</a>
</body></html>`

const postingPageHTML = `<html><body>
<h1>Senior Backend Engineer</h1>
<p>Location: Berlin, Germany</p>
<p>This is a Full-time position with Remote work available. We expect 5+ years of experience.</p>
</body></html>`

// fakeSession serves canned pages keyed by URL.
type fakeSession struct {
	pages        map[string]string
	searchResult *navigator.PageResult
	searchErr    error
	current      string
	visited      []string
}

func (f *fakeSession) Navigate(ctx context.Context, url string) (*navigator.PageResult, error) {
	f.visited = append(f.visited, url)
	html, ok := f.pages[url]
	if !ok {
		return nil, fmt.Errorf("%w: no page at %s", utils.ErrNavigationFailed, url)
	}
	f.current = url
	return &navigator.PageResult{URL: url, HTML: html}, nil
}

func (f *fakeSession) SearchJobs(ctx context.Context, term string) (*navigator.PageResult, error) {
	if f.searchErr != nil {
		return nil, f.searchErr
	}
	if f.searchResult != nil {
		f.current = f.searchResult.URL
		return f.searchResult, nil
	}
	return nil, fmt.Errorf("%w: no search configured", utils.ErrInteractionFailed)
}

func (f *fakeSession) CurrentHTML() (string, error) { return f.pages[f.current], nil }
func (f *fakeSession) CurrentURL() string           { return f.current }
func (f *fakeSession) Close() error                 { return nil }

// fakeAdvisor returns a fixed decision.
type fakeAdvisor struct {
	decision *models.AdvisorDecision
	err      error
	healthy  bool
}

func (f *fakeAdvisor) DecideCareersAction(ctx context.Context, html, jobTitle string) (*models.AdvisorDecision, error) {
	return f.decision, f.err
}

func (f *fakeAdvisor) IsHealthy() bool { return f.healthy }

func acmeSession() *fakeSession {
	return &fakeSession{
		pages: map[string]string{
			"https://acme.com":                              companyHTML,
			"https://acme.com/careers":                      careersHTML,
			"https://acme.com/jobs/senior-backend-engineer": postingPageHTML,
			"https://acme.com/jobs/marketing-manager":       "<html><body><h1>Marketing Manager</h1></body></html>",
		},
	}
}

func acmeParams() models.JobQueryParams {
	return models.JobQueryParams{
		JobTitle:      "Backend Engineer",
		CompanyName:   "Acme",
		CompanyDomain: "acme.com",
	}
}

func TestOrchestrator_FullRunWithoutAdvisor(t *testing.T) {
	t.Parallel()

	session := acmeSession()
	o := NewOrchestrator(session, nil, heuristics.DefaultTables(), heuristics.DefaultWeights())

	result := o.Run(context.Background(), acmeParams())

	require.True(t, result.Success)
	require.NotNil(t, result.JobData)
	require.Equal(t, "Senior Backend Engineer", result.JobData.Title)
	require.Equal(t, models.RemoteOptionRemote, result.JobData.RemoteOption)

	require.Contains(t, result.WorkflowSteps, StageResolveCompanyURL)
	require.Contains(t, result.WorkflowSteps, StageFindCareersLink)
	require.Contains(t, result.WorkflowSteps, StageFindJobListings)
	require.Contains(t, result.WorkflowSteps, StageFindSpecificJob)
	require.Contains(t, result.WorkflowSteps, StageExtractJobData)
	require.Contains(t, result.WorkflowSteps, StageDone)

	require.Contains(t, session.visited, "https://acme.com/careers")
	require.Contains(t, session.visited, "https://acme.com/jobs/senior-backend-engineer")
}

func TestOrchestrator_AdvisorNavigateToLink(t *testing.T) {
	t.Parallel()

	session := acmeSession()
	session.pages["https://acme.com/open-positions"] = careersHTML

	advisor := &fakeAdvisor{
		healthy: true,
		decision: &models.AdvisorDecision{
			Action:    models.ActionNavigateToLink,
			TargetURL: "/open-positions",
		},
	}

	o := NewOrchestrator(session, advisor, heuristics.DefaultTables(), heuristics.DefaultWeights())
	result := o.Run(context.Background(), acmeParams())

	require.True(t, result.Success)
	require.Contains(t, session.visited, "https://acme.com/open-positions")
}

func TestOrchestrator_AdvisorErrorFallsBackToHeuristics(t *testing.T) {
	t.Parallel()

	session := acmeSession()
	advisor := &fakeAdvisor{healthy: true, err: errors.New("api unavailable")}

	o := NewOrchestrator(session, advisor, heuristics.DefaultTables(), heuristics.DefaultWeights())
	result := o.Run(context.Background(), acmeParams())

	require.True(t, result.Success)
	require.Contains(t, result.WorkflowSteps[StageAnalyzeCareersPage], "heuristic discovery")
}

func TestOrchestrator_UnrecognizedActionFallsBack(t *testing.T) {
	t.Parallel()

	session := acmeSession()
	advisor := &fakeAdvisor{
		healthy:  true,
		decision: &models.AdvisorDecision{Action: "summon_recruiter"},
	}

	o := NewOrchestrator(session, advisor, heuristics.DefaultTables(), heuristics.DefaultWeights())
	result := o.Run(context.Background(), acmeParams())

	require.True(t, result.Success)
	require.Contains(t, result.WorkflowSteps[StageAnalyzeCareersPage], "unrecognized")
}

func TestOrchestrator_NoListingsIsTerminal(t *testing.T) {
	t.Parallel()

	session := &fakeSession{
		pages: map[string]string{
			"https://acme.com":         companyHTML,
			"https://acme.com/careers": "<html><body><p>We will post openings soon.</p></body></html>",
		},
	}

	o := NewOrchestrator(session, nil, heuristics.DefaultTables(), heuristics.DefaultWeights())
	result := o.Run(context.Background(), acmeParams())

	require.False(t, result.Success)
	require.Contains(t, result.Error, utils.ErrNoJobListings.Error())
	require.Nil(t, result.JobData)
}

func TestOrchestrator_CompanyPageUnreachable(t *testing.T) {
	t.Parallel()

	session := &fakeSession{pages: map[string]string{}}

	o := NewOrchestrator(session, nil, heuristics.DefaultTables(), heuristics.DefaultWeights())
	result := o.Run(context.Background(), acmeParams())

	require.False(t, result.Success)
	require.NotEmpty(t, result.Error)
}

func TestOrchestrator_CancelledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	o := NewOrchestrator(acmeSession(), nil, heuristics.DefaultTables(), heuristics.DefaultWeights())
	result := o.Run(ctx, acmeParams())

	require.False(t, result.Success)
	require.Contains(t, result.Error, context.Canceled.Error())
}

func TestOrchestrator_CompanyURLFromName(t *testing.T) {
	t.Parallel()

	require.Equal(t, "https://acme.com", resolveCompanyURL(acmeParams()))
	require.Equal(t, "https://www.acmelabs.com", resolveCompanyURL(models.JobQueryParams{
		JobTitle:    "Engineer",
		CompanyName: "Acme Labs",
	}))
}

func TestOrchestrator_LinksDumpCaptured(t *testing.T) {
	t.Parallel()

	session := acmeSession()
	o := NewOrchestrator(session, nil, heuristics.DefaultTables(), heuristics.DefaultWeights())
	o.Run(context.Background(), acmeParams())

	dump := o.LinksDump()
	require.NotNil(t, dump)
	require.Equal(t, "https://acme.com", dump.BaseURL)
	require.Equal(t, 2, dump.TotalLinks)
}
