package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestScore_KeywordInTextAndURL(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	w := DefaultWeights()

	score, breakdown := Score("Careers at Acme", "https://acme.com/careers",
		tables.CareersKeywords, tables.OfficialWords, tables.PenaltyWords, w)

	require.Greater(t, score, w.CareersHigh)
	require.Positive(t, breakdown["text_contain"])
	require.Positive(t, breakdown["url_contain"])
}

func TestScore_AddingKeywordOccurrenceNeverLowers(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	w := DefaultWeights()

	base, _ := Score("Read our latest posts", "https://acme.com/blog-archive",
		tables.CareersKeywords, tables.OfficialWords, tables.PenaltyWords, w)
	richer, _ := Score("Read our latest posts about careers", "https://acme.com/blog-archive",
		tables.CareersKeywords, tables.OfficialWords, tables.PenaltyWords, w)

	require.GreaterOrEqual(t, richer, base)
}

func TestScore_PenaltyAppliedOnce(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	w := DefaultWeights()

	// Two penalty words in one link still subtract a single penalty.
	_, breakdown := Score("Investor news", "https://acme.com/press",
		tables.CareersKeywords, tables.OfficialWords, tables.PenaltyWords, w)

	require.Equal(t, -w.Penalty, breakdown["penalty"])
}

func TestScore_Deterministic(t *testing.T) {
	t.Parallel()

	tables := DefaultTables()
	w := DefaultWeights()

	first, _ := Score("Join our team", "https://acme.com/join",
		tables.CareersKeywords, tables.OfficialWords, tables.PenaltyWords, w)
	second, _ := Score("Join our team", "https://acme.com/join",
		tables.CareersKeywords, tables.OfficialWords, tables.PenaltyWords, w)

	require.Equal(t, first, second)
}
