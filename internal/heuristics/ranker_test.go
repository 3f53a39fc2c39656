package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

func rankerCandidates() []models.JobCandidate {
	return []models.JobCandidate{
		{Title: "Marketing Manager", URL: "https://acme.com/jobs/marketing-manager", MatchType: "keyword_match"},
		{Title: "Senior Backend Engineer", URL: "https://acme.com/jobs/senior-backend-engineer", MatchType: "selector_match"},
		{Title: "Office Administrator", URL: "https://acme.com/jobs/office-admin", MatchType: "keyword_match"},
	}
}

func TestRankCandidates_ExactTitleScoresFull(t *testing.T) {
	t.Parallel()

	candidates := []models.JobCandidate{
		{Title: "Software Engineer", URL: "https://acme.com/jobs/software-engineer"},
		{Title: "Sales Representative", URL: "https://acme.com/jobs/sales-rep"},
	}

	outcome, err := RankCandidates(candidates, "Software Engineer", "", DefaultWeights())
	require.NoError(t, err)

	require.Equal(t, "Software Engineer", outcome.Best.Title)
	require.Equal(t, 100, outcome.Best.TitleSimilarity)
	require.GreaterOrEqual(t, outcome.Best.MatchScore, float64(100))
	require.Equal(t, ConfidenceHigh, outcome.Confidence)
}

func TestRankCandidates_BestMatchOrderedFirst(t *testing.T) {
	t.Parallel()

	outcome, err := RankCandidates(rankerCandidates(), "Backend Engineer", "", DefaultWeights())
	require.NoError(t, err)

	require.Equal(t, "Senior Backend Engineer", outcome.Best.Title)
	require.Equal(t, outcome.Best, outcome.AllMatches[0])
	for i := 1; i < len(outcome.AllMatches); i++ {
		require.LessOrEqual(t, outcome.AllMatches[i].MatchScore, outcome.AllMatches[i-1].MatchScore)
	}
}

func TestRankCandidates_LocationBonus(t *testing.T) {
	t.Parallel()

	candidates := []models.JobCandidate{
		{Title: "Backend Engineer - Berlin", URL: "https://acme.com/jobs/backend-engineer-berlin"},
		{Title: "Backend Engineer", URL: "https://acme.com/jobs/backend-engineer"},
	}

	w := DefaultWeights()
	outcome, err := RankCandidates(candidates, "Backend Engineer", "Berlin", w)
	require.NoError(t, err)

	// Title hit wins outright; the URL also matching adds nothing.
	require.Equal(t, "Backend Engineer - Berlin", outcome.Best.Title)
	require.Equal(t, w.LocationTitleBonus, outcome.Best.LocationBonus)
}

func TestRankCandidates_LocationBonusURLOnly(t *testing.T) {
	t.Parallel()

	candidates := []models.JobCandidate{
		{Title: "Backend Engineer", URL: "https://acme.com/jobs/backend-engineer-berlin"},
	}

	w := DefaultWeights()
	outcome, err := RankCandidates(candidates, "Backend Engineer", "Berlin", w)
	require.NoError(t, err)

	require.Equal(t, w.LocationURLBonus, outcome.Best.LocationBonus)
}

func TestRankCandidates_ConfidenceTiersAreTunable(t *testing.T) {
	t.Parallel()

	candidates := []models.JobCandidate{
		{Title: "Software Engineer", URL: "https://acme.com/jobs/software-engineer"},
	}

	w := DefaultWeights()
	w.MatchHigh = 500
	w.MatchMedium = 400
	w.MatchLow = 300

	outcome, err := RankCandidates(candidates, "Software Engineer", "", w)
	require.NoError(t, err)
	require.Equal(t, ConfidenceVeryLow, outcome.Confidence)
}

func TestRankCandidates_TopTenCap(t *testing.T) {
	t.Parallel()

	var candidates []models.JobCandidate
	for i := 0; i < 25; i++ {
		candidates = append(candidates, models.JobCandidate{
			Title: "Backend Engineer",
			URL:   "https://acme.com/jobs/backend-engineer",
		})
	}

	outcome, err := RankCandidates(candidates, "Backend Engineer", "", DefaultWeights())
	require.NoError(t, err)
	require.Len(t, outcome.AllMatches, 10)
}

func TestRankCandidates_EmptyInput(t *testing.T) {
	t.Parallel()

	_, err := RankCandidates(nil, "Backend Engineer", "", DefaultWeights())
	require.ErrorIs(t, err, utils.ErrNoCandidates)
}
