package heuristics

import (
	"sort"
	"strings"

	fuzzy "github.com/paul-mannino/go-fuzzywuzzy"

	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

// RankOutcome is the result of ranking discovered candidates against a
// job query: the single best match, the strongest matches overall, and
// a confidence label derived from the best score.
type RankOutcome struct {
	Best       models.RankedMatch   `json:"best_match"`
	AllMatches []models.RankedMatch `json:"all_matches"`
	Confidence string               `json:"confidence"`
}

// RankCandidates scores every candidate against the requested job title
// and optional location and returns them ordered strongest first. Title
// similarity dominates the score; URL similarity, location hits and
// per-token keyword matches add smaller bonuses. Returns
// utils.ErrNoCandidates when there is nothing to rank.
func RankCandidates(candidates []models.JobCandidate, jobTitle, location string, w Weights) (*RankOutcome, error) {
	if len(candidates) == 0 {
		return nil, utils.ErrNoCandidates
	}

	titleLower := strings.ToLower(strings.TrimSpace(jobTitle))
	locationLower := strings.ToLower(strings.TrimSpace(location))

	ranked := make([]models.RankedMatch, 0, len(candidates))
	for _, c := range candidates {
		ranked = append(ranked, scoreCandidate(c, titleLower, locationLower, w))
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].MatchScore > ranked[j].MatchScore
	})

	all := ranked
	if len(all) > w.MaxCandidates {
		all = all[:w.MaxCandidates]
	}

	return &RankOutcome{
		Best:       ranked[0],
		AllMatches: all,
		Confidence: matchConfidence(ranked[0].MatchScore, w),
	}, nil
}

func scoreCandidate(c models.JobCandidate, titleLower, locationLower string, w Weights) models.RankedMatch {
	candTitleLower := strings.ToLower(c.Title)
	candURLLower := strings.ToLower(c.URL)

	titleSim := fuzzy.TokenSortRatio(titleLower, candTitleLower)
	partialSim := fuzzy.PartialRatio(titleLower, candTitleLower)
	urlSim := fuzzy.PartialRatio(titleLower, candURLLower)

	score := float64(titleSim)
	if p := 0.8 * float64(partialSim); p > score {
		score = p
	}
	score += 0.3 * float64(urlSim)

	// A title hit subsumes a URL hit; the bonuses never stack.
	var locationBonus float64
	if locationLower != "" {
		if strings.Contains(candTitleLower, locationLower) {
			locationBonus = w.LocationTitleBonus
		} else if strings.Contains(candURLLower, locationLower) {
			locationBonus = w.LocationURLBonus
		}
	}

	var keywordBonus float64
	for _, token := range strings.Fields(titleLower) {
		if len(token) <= 2 {
			continue
		}
		if strings.Contains(candTitleLower, token) {
			keywordBonus += w.KeywordContainBonus
		} else if fuzzy.PartialRatio(token, candTitleLower) > w.KeywordFuzzyCutoff {
			keywordBonus += w.KeywordFuzzyBonus
		}
	}

	return models.RankedMatch{
		JobCandidate:      c,
		MatchScore:        score + locationBonus + keywordBonus,
		TitleSimilarity:   titleSim,
		PartialSimilarity: partialSim,
		URLSimilarity:     urlSim,
		LocationBonus:     locationBonus,
		KeywordBonus:      keywordBonus,
	}
}

func matchConfidence(score float64, w Weights) string {
	switch {
	case score >= w.MatchHigh:
		return ConfidenceHigh
	case score >= w.MatchMedium:
		return ConfidenceMedium
	case score >= w.MatchLow:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
