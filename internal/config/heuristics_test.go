package config

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/internal/heuristics"
)

func TestBuildWeightsDefaults(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	w := BuildWeights(cfg)

	require.Equal(t, heuristics.DefaultWeights(), w)
}

func TestBuildWeightsOverrides(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Heuristics.TextContainWeight = 50
	cfg.Heuristics.FuzzyThreshold = 90
	cfg.Heuristics.MaxRankedCandidate = 5

	w := BuildWeights(cfg)

	require.Equal(t, 50.0, w.TextContain)
	require.Equal(t, 90, w.FuzzyThreshold)
	require.Equal(t, 5, w.MaxCandidates)

	// Untouched fields keep their defaults
	def := heuristics.DefaultWeights()
	require.Equal(t, def.URLContain, w.URLContain)
	require.Equal(t, def.Penalty, w.Penalty)
}

func TestBuildTablesAppendsExtras(t *testing.T) {
	t.Parallel()

	cfg := &Config{}
	cfg.Heuristics.ExtraCareersWords = []string{"opportunities-at"}
	cfg.Heuristics.ExtraJobWords = []string{"openroles"}

	tables := BuildTables(cfg)
	defaults := heuristics.DefaultTables()

	require.Contains(t, tables.CareersKeywords, "opportunities-at")
	require.Contains(t, tables.JobKeywords, "openroles")
	require.GreaterOrEqual(t, len(tables.CareersKeywords), len(defaults.CareersKeywords))

	// Stock keywords survive
	for _, kw := range defaults.CareersKeywords {
		require.Contains(t, tables.CareersKeywords, kw)
	}
}
