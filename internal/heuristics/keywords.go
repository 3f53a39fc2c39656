// Package heuristics implements the lexical scoring and pattern-matching
// algorithms that turn raw page HTML into careers links, job candidates
// and normalized job records. Every keyword table and weight lives here
// or in the Weights struct so the tunables can be localized and tested
// without touching algorithm code.
package heuristics

import "regexp"

// ValueKeywords binds a canonical field value to the keywords that imply
// it. Tables are ordered; the first value whose keywords match wins.
type ValueKeywords struct {
	Value    string
	Keywords []string
}

// Tables holds every keyword set and pattern table used by the
// heuristics. Use DefaultTables and extend the slices for localization.
type Tables struct {
	// Careers-link finding
	CareersKeywords []string
	OfficialWords   []string
	PenaltyWords    []string

	// Job-listing discovery
	JobKeywords        []string
	JobSelectors       []string
	RoleIndicators     []string
	LocalizedRoleWords []string
	EmploymentMarkers  []string
	BoilerplateWords   []string

	// Field extraction
	TitleSelectors   []string
	EmploymentTypes  []ValueKeywords
	RemoteIndicators []ValueKeywords
	ExperienceLevels []ValueKeywords
	LocationPatterns []*regexp.Regexp
	SalaryPatterns   []*regexp.Regexp
	SectionPatterns  map[string][]*regexp.Regexp
	DatePatterns     map[string][]*regexp.Regexp
}

// DefaultTables returns the stock keyword and pattern tables. The German
// entries are the localized synonyms the discovery pass ships with.
func DefaultTables() *Tables {
	return &Tables{
		CareersKeywords: []string{
			"career", "job", "hiring", "opportunity", "employment",
			"join", "work", "talent", "careers", "karriere",
		},
		OfficialWords: []string{"official", "corporate", "company"},
		PenaltyWords:  []string{"news", "blog", "contact", "about", "investor"},

		JobKeywords: []string{
			"job", "career", "position", "role", "opening", "vacancy",
			"opportunity", "hiring", "employment", "apply", "application",
		},
		JobSelectors: []string{
			`a[href*="job"]`,
			`a[href*="career"]`,
			`a[href*="position"]`,
			`a[href*="apply"]`,
			`.job-title a`,
			`.position-title a`,
			`.job-listing a`,
			`.career-item a`,
			`[class*="job"] a`,
			`[class*="career"] a`,
		},
		RoleIndicators: []string{
			"engineer", "manager", "analyst", "consultant", "developer",
			"specialist", "berater", "designer",
		},
		LocalizedRoleWords: []string{"berater", "ingenieur", "entwickler", "manager"},
		EmploymentMarkers:  []string{"(m/w/d)", "(m/f/d)", "full-time", "part-time"},
		BoilerplateWords:   []string{"cookie", "privacy", "about us", "contact", "footer"},

		TitleSelectors: []string{
			"h1", ".job-title", ".position-title", `[class*="title"]`, "title",
		},
		EmploymentTypes: []ValueKeywords{
			{"Full-time", []string{"full-time", "full time", "fulltime", "permanent"}},
			{"Part-time", []string{"part-time", "part time", "parttime"}},
			{"Contract", []string{"contract", "contractor", "freelance", "temporary"}},
			{"Internship", []string{"intern", "internship", "trainee"}},
			{"Temporary", []string{"temp", "temporary", "seasonal"}},
		},
		RemoteIndicators: []ValueKeywords{
			{"Remote", []string{"remote", "work from home", "wfh", "telecommute"}},
			{"Hybrid", []string{"hybrid", "flexible", "mixed"}},
			{"Onsite", []string{"on-site", "onsite", "office-based", "in-office"}},
		},
		ExperienceLevels: []ValueKeywords{
			{"Entry", []string{"entry", "junior", "graduate", "trainee", "0-2 years"}},
			{"Mid", []string{"mid", "intermediate", "2-5 years", "3-7 years"}},
			{"Senior", []string{"senior", "lead", "principal", "5+ years", "7+ years"}},
			{"Executive", []string{"director", "vp", "executive", "head of", "chief"}},
		},
		LocationPatterns: compileAll(
			`(?i)Location:?\s*([^,\n]+(?:,\s*[^,\n]+)*)`,
			`(?i)Based in:?\s*([^,\n]+)`,
			`(?i)Office:?\s*([^,\n]+)`,
			`(?i)City:?\s*([^,\n]+)`,
			`\b([A-Z][a-z]+,\s*[A-Z]{2})\b`,
			`\b([A-Z][a-z]+\s+[A-Z][a-z]+,\s*[A-Z]{2})\b`,
		),
		SalaryPatterns: compileAll(
			`\$[\d,]+-\$?[\d,]+`,
			`£[\d,]+-£?[\d,]+`,
			`€[\d,]+-€?[\d,]+`,
			`\$[\d,]+(?:\.\d{2})?\s*-\s*\$?[\d,]+(?:\.\d{2})?`,
			`(?i)Salary:?\s*([^\n]+)`,
			`(?i)Pay:?\s*([^\n]+)`,
			`(?i)Compensation:?\s*([^\n]+)`,
		),
		SectionPatterns: map[string][]*regexp.Regexp{
			"requirements": compileAll(
				`(?im)Requirements?:?\s*([^:]+(?:\n[^:]+)*)`,
				`(?im)Qualifications?:?\s*([^:]+(?:\n[^:]+)*)`,
				`(?im)Skills?:?\s*([^:]+(?:\n[^:]+)*)`,
			),
			"responsibilities": compileAll(
				`(?im)Responsibilities:?\s*([^:]+(?:\n[^:]+)*)`,
				`(?im)Duties:?\s*([^:]+(?:\n[^:]+)*)`,
				`(?im)You will:?\s*([^:]+(?:\n[^:]+)*)`,
			),
			"benefits": compileAll(
				`(?im)Benefits:?\s*([^:]+(?:\n[^:]+)*)`,
				`(?im)Perks:?\s*([^:]+(?:\n[^:]+)*)`,
				`(?im)We offer:?\s*([^:]+(?:\n[^:]+)*)`,
			),
		},
		DatePatterns: map[string][]*regexp.Regexp{
			"posted": compileAll(
				`(?i)Posted(?:\s+on)?:?\s*([A-Za-z0-9,./ -]{4,30}?)(?:\n|$)`,
				`(?i)Date posted:?\s*([A-Za-z0-9,./ -]{4,30}?)(?:\n|$)`,
			),
			"deadline": compileAll(
				`(?i)Apply (?:by|before):?\s*([A-Za-z0-9,./ -]{4,30}?)(?:\n|$)`,
				`(?i)(?:Application )?Deadline:?\s*([A-Za-z0-9,./ -]{4,30}?)(?:\n|$)`,
			),
		},
	}
}

// DepartmentPatterns locate a department or team label in posting text.
var departmentPatterns = compileAll(
	`(?i)Department:?\s*([^,\n]{2,50})`,
	`(?i)Team:?\s*([^,\n]{2,50})`,
)

func compileAll(patterns ...string) []*regexp.Regexp {
	compiled := make([]*regexp.Regexp, 0, len(patterns))
	for _, p := range patterns {
		compiled = append(compiled, regexp.MustCompile(p))
	}
	return compiled
}
