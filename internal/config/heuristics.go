package config

import "jobscout/internal/heuristics"

// BuildWeights returns the heuristic weights with any configured
// overrides applied on top of the defaults. A zero value in config
// means "use the default", so the stock scoring survives an empty
// heuristics section.
func BuildWeights(cfg *Config) heuristics.Weights {
	w := heuristics.DefaultWeights()

	h := cfg.Heuristics
	if h.TextContainWeight > 0 {
		w.TextContain = h.TextContainWeight
	}
	if h.URLContainWeight > 0 {
		w.URLContain = h.URLContainWeight
	}
	if h.TextFuzzyWeight > 0 {
		w.TextFuzzy = h.TextFuzzyWeight
	}
	if h.URLFuzzyWeight > 0 {
		w.URLFuzzy = h.URLFuzzyWeight
	}
	if h.FuzzyThreshold > 0 {
		w.FuzzyThreshold = h.FuzzyThreshold
	}
	if h.OfficialBonus > 0 {
		w.OfficialBonus = h.OfficialBonus
	}
	if h.PenaltyWeight > 0 {
		w.Penalty = h.PenaltyWeight
	}
	if h.MinListingScore > 0 {
		w.MinListingScore = h.MinListingScore
	}
	if h.MaxRankedCandidate > 0 {
		w.MaxCandidates = h.MaxRankedCandidate
	}

	return w
}

// BuildTables returns the keyword tables extended with any configured
// extra words. Extras append; the stock tables are never replaced.
func BuildTables(cfg *Config) *heuristics.Tables {
	t := heuristics.DefaultTables()

	h := cfg.Heuristics
	t.CareersKeywords = append(t.CareersKeywords, h.ExtraCareersWords...)
	t.JobKeywords = append(t.JobKeywords, h.ExtraJobWords...)
	t.RoleIndicators = append(t.RoleIndicators, h.ExtraRoleWords...)

	return t
}
