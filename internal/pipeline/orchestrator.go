package pipeline

import (
	"context"
	"fmt"
	"strings"
	"time"

	"jobscout/internal/heuristics"
	"jobscout/internal/logging"
	"jobscout/internal/logging/types"
	"jobscout/internal/navigator"
	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

// Advisor is the slice of the advisor manager the pipeline needs. Any
// advisor failure is soft: the pipeline continues on heuristics.
type Advisor interface {
	DecideCareersAction(ctx context.Context, html, jobTitle string) (*models.AdvisorDecision, error)
	IsHealthy() bool
}

// Orchestrator walks one job query through the six pipeline stages on a
// single navigator session. It never retries; every stage either
// advances, falls back to a cheaper strategy, or fails the run.
type Orchestrator struct {
	session navigator.Session
	advisor Advisor
	tables  *heuristics.Tables
	weights heuristics.Weights
	logger  types.Logger

	linksDump *models.LinksDump
}

// NewOrchestrator creates an orchestrator for one run. The session is
// owned by the caller and survives the run for inspection.
func NewOrchestrator(session navigator.Session, advisor Advisor, tables *heuristics.Tables, weights heuristics.Weights) *Orchestrator {
	return &Orchestrator{
		session: session,
		advisor: advisor,
		tables:  tables,
		weights: weights,
		logger:  logging.GetGlobalLogger(),
	}
}

// LinksDump returns the links captured from the company landing page,
// for artifact export. Nil until the careers stage has run.
func (o *Orchestrator) LinksDump() *models.LinksDump {
	return o.linksDump
}

// Run executes the pipeline for the given query. The returned result
// always carries the workflow steps walked so far, success or not.
func (o *Orchestrator) Run(ctx context.Context, params models.JobQueryParams) *models.LocateResult {
	state := newWorkflowState(params)

	// Stage 1: resolve the company URL and load the landing page
	if err := ctx.Err(); err != nil {
		return state.fail(err)
	}

	companyURL := resolveCompanyURL(params)
	page, err := o.session.Navigate(ctx, companyURL)
	if err != nil {
		return state.fail(fmt.Errorf("could not load company page %s: %w", companyURL, err))
	}
	state.record(StageResolveCompanyURL, page.URL)
	o.logger.Info("Company page loaded", map[string]interface{}{
		"url": page.URL,
	})

	// Stage 2: find the careers link on the landing page
	if err := ctx.Err(); err != nil {
		return state.fail(err)
	}

	links, err := heuristics.ExtractLinks(page.HTML, page.URL)
	if err != nil {
		return state.fail(fmt.Errorf("could not parse company page: %w", err))
	}
	o.linksDump = &models.LinksDump{
		BaseURL:    page.URL,
		TotalLinks: len(links),
		Timestamp:  time.Now(),
		Links:      links,
	}

	careers := heuristics.FindCareersLink(links, page.URL, o.tables, o.weights)
	state.record(StageFindCareersLink, fmt.Sprintf("%s (%s)", careers.URL, careers.Confidence))

	page, err = o.session.Navigate(ctx, careers.URL)
	if err != nil {
		return state.fail(fmt.Errorf("could not load careers page %s: %w", careers.URL, err))
	}

	// Stage 3: let the advisor pick a path to the listings
	if err := ctx.Err(); err != nil {
		return state.fail(err)
	}
	page = o.analyzeCareersPage(ctx, page, params, state)

	// Stage 4: discover job candidates on the listing page
	if err := ctx.Err(); err != nil {
		return state.fail(err)
	}

	candidates, err := o.discoverListings(page, params)
	if err != nil {
		return state.fail(err)
	}
	state.record(StageFindJobListings, fmt.Sprintf("%d candidates", len(candidates)))

	// Stage 5: rank candidates and move to the best match
	if err := ctx.Err(); err != nil {
		return state.fail(err)
	}

	outcome, err := heuristics.RankCandidates(candidates, params.JobTitle, params.Location, o.weights)
	if err != nil {
		return state.fail(err)
	}
	state.record(StageFindSpecificJob, fmt.Sprintf("%s (%s)", outcome.Best.URL, outcome.Confidence))

	postingHTML := page.HTML
	if outcome.Best.URL != "" && outcome.Best.URL != page.URL {
		if postingPage, navErr := o.session.Navigate(ctx, outcome.Best.URL); navErr == nil {
			postingHTML = postingPage.HTML
		} else {
			// Extract from the listing page rather than failing the run
			o.logger.Warn("Could not open best match, extracting from listing page", map[string]interface{}{
				"url":   outcome.Best.URL,
				"error": navErr.Error(),
			})
		}
	}

	// Stage 6: extract the structured record
	if err := ctx.Err(); err != nil {
		return state.fail(err)
	}

	job, err := heuristics.ExtractJobRecord(postingHTML, params, o.tables)
	if err != nil {
		return state.fail(fmt.Errorf("extraction failed: %w", err))
	}
	state.record(StageExtractJobData, job.Title)

	return state.succeed(job)
}

// analyzeCareersPage consults the advisor and executes its decision.
// Every failure path lands back on a page the discoverer can work with.
func (o *Orchestrator) analyzeCareersPage(ctx context.Context, page *navigator.PageResult, params models.JobQueryParams, state *workflowState) *navigator.PageResult {
	if o.advisor == nil || !o.advisor.IsHealthy() {
		state.record(StageAnalyzeCareersPage, "advisor unavailable, heuristic discovery")
		return page
	}

	decision, err := o.advisor.DecideCareersAction(ctx, page.HTML, params.JobTitle)
	if err != nil {
		o.logger.Warn("Advisor decision failed, falling back to heuristic discovery", map[string]interface{}{
			"error": err.Error(),
		})
		state.record(StageAnalyzeCareersPage, "advisor error, heuristic discovery")
		return page
	}

	if !decision.Recognized() {
		state.record(StageAnalyzeCareersPage, fmt.Sprintf("unrecognized action %q, heuristic discovery", decision.Action))
		return page
	}

	switch decision.Action {
	case models.ActionUseSearch:
		term := decision.SearchTerm
		if term == "" {
			term = params.JobTitle
		}
		result, err := o.session.SearchJobs(ctx, term)
		if err != nil {
			o.logger.Warn("In-page search failed, staying on careers page", map[string]interface{}{
				"error": err.Error(),
			})
			state.record(StageAnalyzeCareersPage, "search failed, heuristic discovery")
			return page
		}
		state.record(StageAnalyzeCareersPage, fmt.Sprintf("searched for %q", term))
		return result

	case models.ActionNavigateToLink:
		target, err := heuristics.ResolveURL(decision.TargetURL, page.URL)
		if err != nil {
			state.record(StageAnalyzeCareersPage, "advisor link invalid, heuristic discovery")
			return page
		}
		result, err := o.session.Navigate(ctx, target)
		if err != nil {
			o.logger.Warn("Advisor link navigation failed, staying on careers page", map[string]interface{}{
				"url":   target,
				"error": err.Error(),
			})
			state.record(StageAnalyzeCareersPage, "advisor link unreachable, heuristic discovery")
			return page
		}
		state.record(StageAnalyzeCareersPage, fmt.Sprintf("navigated to %s", target))
		return result

	default: // models.ActionExtractCurrent
		state.record(StageAnalyzeCareersPage, "listings on current page")
		return page
	}
}

// discoverListings runs the structural and keyword passes, then the
// content fallback. Both coming back empty is terminal for the run.
func (o *Orchestrator) discoverListings(page *navigator.PageResult, params models.JobQueryParams) ([]models.JobCandidate, error) {
	candidates, err := heuristics.DiscoverJobLinks(page.HTML, page.URL, o.tables)
	if err != nil {
		return nil, fmt.Errorf("listing discovery failed: %w", err)
	}
	if len(candidates) > 0 {
		return candidates, nil
	}

	candidates, err = heuristics.DiscoverJobsByContent(page.HTML, page.URL, params.JobTitle, o.tables, o.weights)
	if err != nil {
		return nil, fmt.Errorf("content discovery failed: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("%w on %s", utils.ErrNoJobListings, page.URL)
	}
	return candidates, nil
}

// resolveCompanyURL picks the starting URL for a run. An explicit
// domain wins; otherwise the company name is slugged into a best-guess
// .com address.
func resolveCompanyURL(params models.JobQueryParams) string {
	if params.CompanyDomain != "" {
		return utils.NormalizeDomain(params.CompanyDomain)
	}

	slug := strings.ToLower(strings.TrimSpace(params.CompanyName))
	slug = strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return -1
		}
	}, slug)

	return fmt.Sprintf("https://www.%s.com", slug)
}
