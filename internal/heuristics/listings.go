package heuristics

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout/pkg/models"
)

const (
	matchTypeSelector = "selector_match"
	matchTypeKeyword  = "keyword_match"
)

// onclickURLPattern pulls a quoted target out of an inline navigation
// directive such as onclick="window.location='/jobs/123'".
var onclickURLPattern = regexp.MustCompile(`['"]([^'"]+)['"]`)

// DiscoverJobLinks scans a page for candidate job-posting links using
// two complementary passes. The structural pass matches a fixed library
// of selectors known to correlate with job listings; the keyword pass
// counts job-domain keyword occurrences in every link's text and href.
// Results are merged by URL (structural wins), ordered by keyword score
// with selector matches breaking ties first. An empty result is not an
// error at this layer.
func DiscoverJobLinks(html, baseURL string, t *Tables) ([]models.JobCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	seen := make(map[string]bool)
	var candidates []models.JobCandidate

	// Structural pass
	for _, selector := range t.JobSelectors {
		doc.Find(selector).Each(func(_ int, s *goquery.Selection) {
			href, ok := s.Attr("href")
			if !ok {
				return
			}

			resolved, err := ResolveURL(href, baseURL)
			if err != nil {
				return
			}
			if seen[resolved] {
				return
			}
			seen[resolved] = true

			candidates = append(candidates, models.JobCandidate{
				Title:     strings.TrimSpace(s.Text()),
				URL:       resolved,
				MatchType: matchTypeSelector,
				Selector:  selector,
			})
		})
	}

	// Keyword pass
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		text := strings.ToLower(strings.TrimSpace(s.Text()))
		hrefLower := strings.ToLower(href)

		keywordScore := 0
		for _, keyword := range t.JobKeywords {
			if strings.Contains(text, keyword) || strings.Contains(hrefLower, keyword) {
				keywordScore++
			}
		}
		if keywordScore == 0 {
			return
		}

		resolved, err := ResolveURL(href, baseURL)
		if err != nil {
			return
		}
		if seen[resolved] {
			return
		}
		seen[resolved] = true

		candidates = append(candidates, models.JobCandidate{
			Title:        strings.TrimSpace(s.Text()),
			URL:          resolved,
			MatchType:    matchTypeKeyword,
			KeywordScore: keywordScore,
		})
	})

	sort.SliceStable(candidates, func(i, j int) bool {
		if candidates[i].KeywordScore != candidates[j].KeywordScore {
			return candidates[i].KeywordScore > candidates[j].KeywordScore
		}
		return candidates[i].MatchType == matchTypeSelector && candidates[j].MatchType != matchTypeSelector
	})

	return candidates, nil
}

// contentCandidate is a scored page element during content discovery.
type contentCandidate struct {
	title string
	url   string
	score float64
}

// DiscoverJobsByContent is the fallback for pages whose listings are not
// href-based: it scores the visible text of headings, anchors and block
// elements for job-likeness and resolves a target URL from the element,
// its parent, or an inline navigation directive, defaulting to the
// current page. Only candidates at or above the minimum score survive;
// the strongest MaxCandidates are returned.
func DiscoverJobsByContent(html, currentURL, jobTitle string, t *Tables, w Weights) ([]models.JobCandidate, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	searchTerms := strings.Fields(strings.ToLower(jobTitle))

	var potential []contentCandidate
	doc.Find("h1, h2, h3, h4, h5, a, div, span").Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(s.Text())
		if len(text) < 5 || len(text) > 100 {
			return
		}
		textLower := strings.ToLower(text)

		var score float64

		// Accrues per indicator: a title hitting two role words is
		// twice as job-like as one hitting a single word.
		for _, indicator := range t.RoleIndicators {
			if strings.Contains(textLower, indicator) {
				score += w.RoleIndicatorWeight
			}
		}

		for _, term := range searchTerms {
			if len(term) > 2 && strings.Contains(textLower, term) {
				score += w.SearchTermWeight
			}
		}

		for _, marker := range t.EmploymentMarkers {
			if strings.Contains(textLower, marker) {
				score += w.MarkerWeight
				break
			}
		}

		for _, word := range t.LocalizedRoleWords {
			if strings.Contains(textLower, word) {
				score += w.LocalizedWeight
				break
			}
		}

		for _, word := range t.BoilerplateWords {
			if strings.Contains(textLower, word) {
				score -= w.BoilerplatePenalty
				break
			}
		}

		if score < w.MinListingScore {
			return
		}

		potential = append(potential, contentCandidate{
			title: text,
			url:   resolveElementURL(s, currentURL),
			score: score,
		})
	})

	sort.SliceStable(potential, func(i, j int) bool {
		return potential[i].score > potential[j].score
	})

	if len(potential) > w.MaxCandidates {
		potential = potential[:w.MaxCandidates]
	}

	candidates := make([]models.JobCandidate, 0, len(potential))
	for _, p := range potential {
		candidates = append(candidates, models.JobCandidate{
			Title:        p.title,
			URL:          p.url,
			MatchType:    matchTypeKeyword,
			KeywordScore: int(p.score),
		})
	}

	return candidates, nil
}

// resolveElementURL finds the URL associated with a scored element:
// the element's own href, its parent's href, or an inline onclick
// target, in that order. Falls back to the current page URL.
func resolveElementURL(s *goquery.Selection, currentURL string) string {
	if href, ok := s.Attr("href"); ok {
		if resolved, err := ResolveURL(href, currentURL); err == nil {
			return resolved
		}
	}

	if parentHref, ok := s.Parent().Attr("href"); ok {
		if resolved, err := ResolveURL(parentHref, currentURL); err == nil {
			return resolved
		}
	}

	if onclick, ok := s.Attr("onclick"); ok {
		if strings.Contains(onclick, "location") || strings.Contains(onclick, "href") {
			if m := onclickURLPattern.FindStringSubmatch(onclick); m != nil {
				if resolved, err := ResolveURL(m[1], currentURL); err == nil {
					return resolved
				}
			}
		}
	}

	return currentURL
}
