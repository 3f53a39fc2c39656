package heuristics

import (
	"fmt"
	"net/url"

	"jobscout/pkg/models"
)

// Confidence tiers communicated to callers instead of raw scores.
const (
	ConfidenceHigh    = "high"
	ConfidenceMedium  = "medium"
	ConfidenceLow     = "low"
	ConfidenceVeryLow = "very_low"
)

// CareersLink is the finder's best guess at the careers entry point.
type CareersLink struct {
	URL        string  `json:"careers_url"`
	Confidence string  `json:"confidence"`
	Score      float64 `json:"score"`
	Reasoning  string  `json:"reasoning"`
}

// FindCareersLink ranks every link on a landing page against the
// careers keyword set and returns the strongest one. When nothing
// clears the minimum score it synthesizes base+"/careers" instead of
// failing: the pipeline always gets a next URL to try.
func FindCareersLink(links []models.Link, baseURL string, t *Tables, w Weights) CareersLink {
	var best *models.Link
	var bestScore float64

	for i := range links {
		link := links[i]
		score, _ := Score(link.Text, link.URL, t.CareersKeywords, t.OfficialWords, t.PenaltyWords, w)
		if score > bestScore {
			bestScore = score
			best = &links[i]
		}
	}

	if best != nil && bestScore > w.CareersMin {
		confidence := ConfidenceLow
		switch {
		case bestScore > w.CareersHigh:
			confidence = ConfidenceHigh
		case bestScore > w.CareersMedium:
			confidence = ConfidenceMedium
		}

		return CareersLink{
			URL:        best.URL,
			Confidence: confidence,
			Score:      bestScore,
			Reasoning:  fmt.Sprintf("Best match found with score %.0f", bestScore),
		}
	}

	return CareersLink{
		URL:        fallbackCareersURL(baseURL),
		Confidence: ConfidenceLow,
		Score:      0,
		Reasoning:  "No clear careers link found, using fallback /careers",
	}
}

func fallbackCareersURL(baseURL string) string {
	base, err := url.Parse(baseURL)
	if err != nil {
		return baseURL + "/careers"
	}
	ref, _ := url.Parse("/careers")
	return base.ResolveReference(ref).String()
}
