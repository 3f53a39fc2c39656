package models

import "time"

// LocateResult is the final artifact of one pipeline run. WorkflowSteps
// maps each completed stage to the URL it resolved, as an audit trail.
type LocateResult struct {
	Success       bool              `json:"success"`
	JobParams     JobQueryParams    `json:"job_params"`
	WorkflowSteps map[string]string `json:"workflow_steps"`
	JobData       *JobRecord        `json:"job_data,omitempty"`
	Error         string            `json:"error,omitempty"`
	Timestamp     time.Time         `json:"timestamp"`
}

// LocateResponse represents the HTTP response for a locate request
type LocateResponse struct {
	Success        bool          `json:"success"`
	Result         *LocateResult `json:"result,omitempty"`
	Error          string        `json:"error,omitempty"`
	ProcessingTime time.Duration `json:"processing_time"`
	Engine         string        `json:"engine_used"`
	RequestID      string        `json:"request_id"`
	Cached         bool          `json:"cached,omitempty"`
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Uptime    time.Duration     `json:"uptime"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// LinksDump is the side-channel record of every link discovered on the
// landing page, persisted alongside the final artifact.
type LinksDump struct {
	BaseURL    string    `json:"base_url"`
	TotalLinks int       `json:"total_links"`
	Timestamp  time.Time `json:"timestamp"`
	Links      []Link    `json:"links"`
}

// Link is a single hyperlink parsed out of a page against its base URL.
// Links are never mutated after creation and are not deduplicated here;
// dedup is a scorer-stage responsibility keyed on the normalized URL.
type Link struct {
	URL       string   `json:"url"`
	Text      string   `json:"text"`
	RawHref   string   `json:"original_href"`
	TitleAttr string   `json:"title,omitempty"`
	Classes   []string `json:"class,omitempty"`
}
