package models

// Advisor actions for a careers page. Anything else coming back from a
// provider is treated as unrecognized and the caller falls back to
// heuristic discovery.
const (
	ActionUseSearch      = "use_search"
	ActionNavigateToLink = "navigate_to_link"
	ActionExtractCurrent = "extract_jobs_current_page"
)

// AdvisorDecision is the advisor's recommendation for how to get from a
// careers page to actual job listings.
type AdvisorDecision struct {
	Action     string `json:"action"`
	TargetURL  string `json:"target_url,omitempty"`
	SearchTerm string `json:"search_term,omitempty"`
	Reasoning  string `json:"reasoning,omitempty"`
}

// Recognized reports whether the decision names an action the pipeline
// knows how to execute.
func (d *AdvisorDecision) Recognized() bool {
	if d == nil {
		return false
	}
	switch d.Action {
	case ActionUseSearch, ActionNavigateToLink, ActionExtractCurrent:
		return true
	}
	return false
}
