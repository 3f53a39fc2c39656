package heuristics

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

const titleFuzzyCutoff = 60

var (
	horizontalSpace = regexp.MustCompile(`[ \t\r\f]+`)
	blankLines      = regexp.MustCompile(`\n\s*\n+`)
	bulletSplitter  = regexp.MustCompile(`[•*\-\n]+`)
)

// ExtractJobRecord pulls a normalized job record out of a posting page.
// The same HTML and query always produce the same record; fields the
// page does not state come back as "unknown" rather than being guessed.
func ExtractJobRecord(html string, params models.JobQueryParams, t *Tables) (*models.JobRecord, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find("script, style, nav, footer, header").Remove()

	// Collapse runs of spaces but keep line structure; the labeled
	// patterns depend on line boundaries to terminate.
	pageText := blankLines.ReplaceAllString(horizontalSpace.ReplaceAllString(doc.Text(), " "), "\n")
	pageText = strings.TrimSpace(pageText)
	textLower := strings.ToLower(pageText)

	company := resolveCompany(params)
	record := models.NewJobRecord(extractTitle(doc, params, t), company)

	if location := firstBoundedSubmatch(t.LocationPatterns, pageText, 2, 50); location != "" {
		record.Location = location
	}
	if salary := firstSalary(t.SalaryPatterns, pageText); salary != "" {
		record.SalaryRange = salary
	}
	if department := firstSubmatch(departmentPatterns, pageText); department != "" {
		record.Department = department
	}

	record.EmploymentType = matchValueTable(textLower, t.EmploymentTypes, record.EmploymentType)
	record.RemoteOption = matchValueTable(textLower, t.RemoteIndicators, record.RemoteOption)
	record.ExperienceLevel = matchValueTable(textLower, t.ExperienceLevels, record.ExperienceLevel)

	record.Requirements = extractSection(pageText, t.SectionPatterns["requirements"], 10, 200)
	record.Responsibilities = extractSection(pageText, t.SectionPatterns["responsibilities"], 10, 200)
	record.Benefits = extractSection(pageText, t.SectionPatterns["benefits"], 5, 100)

	record.Description = buildDescription(pageText)

	if posted := firstSubmatch(t.DatePatterns["posted"], pageText); posted != "" {
		record.PostedDate = posted
	}
	if deadline := firstSubmatch(t.DatePatterns["deadline"], pageText); deadline != "" {
		record.ApplicationDeadline = deadline
	}

	return record, nil
}

func resolveCompany(params models.JobQueryParams) string {
	if params.CompanyName != "" {
		return params.CompanyName
	}
	if params.CompanyDomain != "" {
		return params.CompanyDomain
	}
	return models.ValueUnknown
}

// extractTitle walks the title selector library and accepts the first
// element whose text either resembles the query title or names a known
// role. The query title itself is the fallback, so a record always has
// a title.
func extractTitle(doc *goquery.Document, params models.JobQueryParams, t *Tables) string {
	queryLower := strings.ToLower(params.JobTitle)

	title := params.JobTitle
	found := false
	for _, selector := range t.TitleSelectors {
		if found {
			break
		}
		doc.Find(selector).EachWithBreak(func(_ int, s *goquery.Selection) bool {
			text := strings.TrimSpace(s.Text())
			if len(text) < 5 || len(text) > 150 {
				return true
			}
			textLower := strings.ToLower(text)
			if fuzzy.PartialRatio(queryLower, textLower) > titleFuzzyCutoff ||
				utils.ContainsAny(textLower, t.RoleIndicators) {
				title = text
				found = true
				return false
			}
			return true
		})
	}
	return title
}

// matchValueTable returns the canonical value of the first table entry
// whose keywords appear in the text. Table order is the tiebreak.
func matchValueTable(textLower string, table []ValueKeywords, fallback string) string {
	for _, entry := range table {
		for _, keyword := range entry.Keywords {
			if strings.Contains(textLower, keyword) {
				return entry.Value
			}
		}
	}
	return fallback
}

func firstSubmatch(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		if m := pattern.FindStringSubmatch(text); m != nil {
			if len(m) > 1 {
				return strings.TrimSpace(m[1])
			}
			return strings.TrimSpace(m[0])
		}
	}
	return ""
}

// firstBoundedSubmatch is firstSubmatch with a plausibility band: a
// capture outside (minLen, maxLen) falls through to the next pattern
// instead of being returned. Keeps a greedy capture from swallowing a
// paragraph as a location.
func firstBoundedSubmatch(patterns []*regexp.Regexp, text string, minLen, maxLen int) string {
	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		candidate := strings.TrimSpace(m[0])
		if len(m) > 1 {
			candidate = strings.TrimSpace(m[1])
		}
		if len(candidate) > minLen && len(candidate) < maxLen {
			return candidate
		}
	}
	return ""
}

// firstSalary prefers the whole matched range for the currency patterns
// and the captured group for the labeled ones.
func firstSalary(patterns []*regexp.Regexp, text string) string {
	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil {
			continue
		}
		if len(m) > 1 && m[1] != "" {
			return strings.TrimSpace(m[1])
		}
		return strings.TrimSpace(m[0])
	}
	return ""
}

// extractSection finds a labeled section, splits its body on bullet
// markers and keeps items within the length band, capped at ten.
func extractSection(text string, patterns []*regexp.Regexp, minLen, maxLen int) []string {
	items := []string{}
	for _, pattern := range patterns {
		m := pattern.FindStringSubmatch(text)
		if m == nil || len(m) < 2 {
			continue
		}
		for _, raw := range bulletSplitter.Split(m[1], -1) {
			item := strings.TrimSpace(raw)
			if len(item) >= minLen && len(item) <= maxLen {
				items = append(items, item)
			}
			if len(items) >= 10 {
				return items
			}
		}
		if len(items) > 0 {
			break
		}
	}
	return items
}

// buildDescription joins the first five substantial sentences of the
// cleaned page text into a short summary.
func buildDescription(text string) string {
	var sentences []string
	for _, raw := range strings.Split(text, ".") {
		sentence := strings.TrimSpace(raw)
		if len(sentence) > 20 {
			sentences = append(sentences, sentence)
		}
		if len(sentences) == 5 {
			break
		}
	}
	if len(sentences) == 0 {
		return ""
	}
	return strings.Join(sentences, ". ") + "."
}
