package models

import "time"

// LocateRequest represents the request payload for locating a job posting
type LocateRequest struct {
	JobTitle      string         `json:"job_title" validate:"required"`
	CompanyName   string         `json:"company_name,omitempty" validate:"required_without=CompanyDomain"`
	CompanyDomain string         `json:"company_domain,omitempty" validate:"required_without=CompanyName"`
	Location      string         `json:"location,omitempty"`
	Options       *LocateOptions `json:"options,omitempty"`
}

// LocateOptions provides additional configuration for locate requests
type LocateOptions struct {
	Engine    string        `json:"engine,omitempty"`     // "rod", "firecrawl", "auto"
	Timeout   time.Duration `json:"timeout,omitempty"`    // Per-run timeout
	UserAgent string        `json:"user_agent,omitempty"` // Custom user agent
	NoCache   bool          `json:"no_cache,omitempty"`   // Skip the result cache
}

// QueryParams converts the request into the pipeline's query parameters
func (r *LocateRequest) QueryParams() JobQueryParams {
	return JobQueryParams{
		JobTitle:      r.JobTitle,
		CompanyName:   r.CompanyName,
		CompanyDomain: r.CompanyDomain,
		Location:      r.Location,
	}
}
