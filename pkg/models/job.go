package models

// Enumerated values for JobRecord fields. Extraction is best-effort, so
// every field that cannot be determined carries an explicit "unknown"
// value instead of being omitted.
const (
	ValueUnknown = "unknown"

	EmploymentFullTime   = "Full-time"
	EmploymentPartTime   = "Part-time"
	EmploymentContract   = "Contract"
	EmploymentInternship = "Internship"
	EmploymentTemporary  = "Temporary"

	RemoteOptionRemote = "Remote"
	RemoteOptionHybrid = "Hybrid"
	RemoteOptionOnsite = "Onsite"

	ExperienceEntry     = "Entry"
	ExperienceMid       = "Mid"
	ExperienceSenior    = "Senior"
	ExperienceExecutive = "Executive"
)

// JobRecord represents the normalized job posting extracted from a page
type JobRecord struct {
	Title               string   `json:"title"`
	Company             string   `json:"company"`
	Location            string   `json:"location"`
	EmploymentType      string   `json:"employment_type"`
	Department          string   `json:"department"`
	SalaryRange         string   `json:"salary_range"`
	Requirements        []string `json:"requirements"`
	Responsibilities    []string `json:"responsibilities"`
	Benefits            []string `json:"benefits"`
	Description         string   `json:"description"`
	ExperienceLevel     string   `json:"experience_level"`
	RemoteOption        string   `json:"remote_option"`
	PostedDate          string   `json:"posted_date"`
	ApplicationDeadline string   `json:"application_deadline"`
}

// NewJobRecord returns a record with every optional field set to its
// explicit absent value. Callers must not treat "unknown" as an error.
func NewJobRecord(title, company string) *JobRecord {
	return &JobRecord{
		Title:               title,
		Company:             company,
		Location:            ValueUnknown,
		EmploymentType:      ValueUnknown,
		Department:          ValueUnknown,
		SalaryRange:         ValueUnknown,
		Requirements:        []string{},
		Responsibilities:    []string{},
		Benefits:            []string{},
		ExperienceLevel:     ValueUnknown,
		RemoteOption:        ValueUnknown,
		PostedDate:          ValueUnknown,
		ApplicationDeadline: ValueUnknown,
	}
}

// JobQueryParams describes the job the caller wants located. At least one
// of CompanyName/CompanyDomain must be present; the API layer enforces
// that invariant before a pipeline run starts.
type JobQueryParams struct {
	JobTitle      string `json:"job_title" validate:"required"`
	CompanyName   string `json:"company_name,omitempty" validate:"required_without=CompanyDomain"`
	CompanyDomain string `json:"company_domain,omitempty" validate:"required_without=CompanyName"`
	Location      string `json:"location,omitempty"`
}

// JobCandidate is a link or page element provisionally identified as a
// job posting, prior to ranking.
type JobCandidate struct {
	Title        string `json:"title"`
	URL          string `json:"url"`
	MatchType    string `json:"type"` // selector_match or keyword_match
	Selector     string `json:"selector,omitempty"`
	KeywordScore int    `json:"keyword_score,omitempty"`
}

// RankedMatch is a JobCandidate with its ranking scores attached for
// auditability.
type RankedMatch struct {
	JobCandidate
	MatchScore        float64 `json:"match_score"`
	TitleSimilarity   int     `json:"title_similarity"`
	PartialSimilarity int     `json:"partial_similarity"`
	URLSimilarity     int     `json:"url_similarity"`
	LocationBonus     float64 `json:"location_bonus"`
	KeywordBonus      float64 `json:"keyword_bonus"`
}
