package pipeline

import (
	"time"

	"jobscout/pkg/models"
)

// Stage names recorded in workflow steps, in execution order.
const (
	StageResolveCompanyURL  = "resolve_company_url"
	StageFindCareersLink    = "find_careers_link"
	StageAnalyzeCareersPage = "analyze_careers_page"
	StageFindJobListings    = "find_job_listings"
	StageFindSpecificJob    = "find_specific_job"
	StageExtractJobData     = "extract_job_data"
	StageDone               = "done"
)

// workflowState accumulates what each stage did so the final result
// can show the whole path from company name to job record.
type workflowState struct {
	params    models.JobQueryParams
	steps     map[string]string
	startedAt time.Time
}

func newWorkflowState(params models.JobQueryParams) *workflowState {
	return &workflowState{
		params:    params,
		steps:     make(map[string]string),
		startedAt: time.Now(),
	}
}

func (s *workflowState) record(stage, detail string) {
	s.steps[stage] = detail
}

func (s *workflowState) succeed(job *models.JobRecord) *models.LocateResult {
	s.record(StageDone, "completed")
	return &models.LocateResult{
		Success:       true,
		JobParams:     s.params,
		WorkflowSteps: s.steps,
		JobData:       job,
		Timestamp:     time.Now(),
	}
}

func (s *workflowState) fail(err error) *models.LocateResult {
	return &models.LocateResult{
		Success:       false,
		JobParams:     s.params,
		WorkflowSteps: s.steps,
		Error:         err.Error(),
		Timestamp:     time.Now(),
	}
}
