package heuristics

import (
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"
)

// Weights holds every scoring weight and threshold used by the
// heuristics. The defaults are empirically chosen; treat them as
// tunables, not load-bearing constants.
type Weights struct {
	TextContain    float64 // keyword contained in display text
	URLContain     float64 // keyword contained in URL
	TextFuzzy      float64 // near-keyword variant in display text
	URLFuzzy       float64 // near-keyword variant in URL
	FuzzyThreshold int     // partial-ratio cutoff for the fuzzy weights
	OfficialBonus  float64
	Penalty        float64

	// Careers-link confidence tiers
	CareersHigh   float64
	CareersMedium float64
	CareersMin    float64

	// Content-discovery fallback
	RoleIndicatorWeight float64
	SearchTermWeight    float64
	MarkerWeight        float64
	LocalizedWeight     float64
	BoilerplatePenalty  float64
	MinListingScore     float64
	MaxCandidates       int

	// Match ranking
	KeywordContainBonus float64
	KeywordFuzzyBonus   float64
	KeywordFuzzyCutoff  int
	LocationTitleBonus  float64
	LocationURLBonus    float64

	// Match confidence tiers
	MatchHigh   float64
	MatchMedium float64
	MatchLow    float64
}

// DefaultWeights returns the stock weights carried over from the tuned
// production values.
func DefaultWeights() Weights {
	return Weights{
		TextContain:    30,
		URLContain:     25,
		TextFuzzy:      20,
		URLFuzzy:       15,
		FuzzyThreshold: 80,
		OfficialBonus:  10,
		Penalty:        15,

		CareersHigh:   60,
		CareersMedium: 35,
		CareersMin:    20,

		RoleIndicatorWeight: 20,
		SearchTermWeight:    30,
		MarkerWeight:        25,
		LocalizedWeight:     20,
		BoilerplatePenalty:  50,
		MinListingScore:     30,
		MaxCandidates:       10,

		KeywordContainBonus: 15,
		KeywordFuzzyBonus:   10,
		KeywordFuzzyCutoff:  85,
		LocationTitleBonus:  20,
		LocationURLBonus:    10,

		MatchHigh:   80,
		MatchMedium: 60,
		MatchLow:    40,
	}
}

// Score computes the lexical relevance of a link's display text and URL
// against a keyword set. The breakdown maps each contributing sub-score
// by name for auditability. Pure and deterministic for fixed weights:
// adding a keyword occurrence never lowers the result.
func Score(text, rawURL string, keywords, officialWords, penaltyWords []string, w Weights) (float64, map[string]float64) {
	text = strings.ToLower(text)
	rawURL = strings.ToLower(rawURL)

	breakdown := make(map[string]float64)
	var score float64

	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			score += w.TextContain
			breakdown["text_contain"] += w.TextContain
		}
		if strings.Contains(rawURL, keyword) {
			score += w.URLContain
			breakdown["url_contain"] += w.URLContain
		}
	}

	// Fuzzy pass catches plurals, hyphenation and language variants
	for _, keyword := range keywords {
		if fuzzy.PartialRatio(keyword, text) > w.FuzzyThreshold {
			score += w.TextFuzzy
			breakdown["text_fuzzy"] += w.TextFuzzy
		}
		if fuzzy.PartialRatio(keyword, rawURL) > w.FuzzyThreshold {
			score += w.URLFuzzy
			breakdown["url_fuzzy"] += w.URLFuzzy
		}
	}

	for _, word := range officialWords {
		if strings.Contains(text, word) || strings.Contains(rawURL, word) {
			score += w.OfficialBonus
			breakdown["official_bonus"] = w.OfficialBonus
			break
		}
	}

	for _, word := range penaltyWords {
		if strings.Contains(text, word) || strings.Contains(rawURL, word) {
			score -= w.Penalty
			breakdown["penalty"] = -w.Penalty
			break
		}
	}

	return score, breakdown
}
