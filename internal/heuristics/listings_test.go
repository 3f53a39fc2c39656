package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDiscoverJobLinks_StructuralAndKeywordPasses(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<div class="job-listing"><a href="/jobs/backend-engineer">Senior Backend Engineer</a></div>
		<a href="/openings/data-analyst">We are hiring a Data Analyst, apply now</a>
		<a href="/privacy">Privacy policy</a>
	</body></html>`

	candidates, err := DiscoverJobLinks(html, "https://acme.com", DefaultTables())
	require.NoError(t, err)
	require.Len(t, candidates, 2)

	urls := []string{candidates[0].URL, candidates[1].URL}
	require.Contains(t, urls, "https://acme.com/jobs/backend-engineer")
	require.Contains(t, urls, "https://acme.com/openings/data-analyst")
}

func TestDiscoverJobLinks_StructuralWinsDuplicateURL(t *testing.T) {
	t.Parallel()

	// Same link matches both a selector and the keyword pass; it must
	// appear once, tagged by the structural pass.
	html := `<html><body>
		<a href="/jobs/platform-engineer">Platform Engineer job opening</a>
	</body></html>`

	candidates, err := DiscoverJobLinks(html, "https://acme.com", DefaultTables())
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, "selector_match", candidates[0].MatchType)
	require.NotEmpty(t, candidates[0].Selector)
}

func TestDiscoverJobLinks_KeywordScoreOrdersResults(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<a href="/listing/one">Open position: apply for this role, hiring now</a>
		<a href="/listing/two">Opening</a>
	</body></html>`

	candidates, err := DiscoverJobLinks(html, "https://acme.com", DefaultTables())
	require.NoError(t, err)
	require.Len(t, candidates, 2)
	require.Equal(t, "https://acme.com/listing/one", candidates[0].URL)
	require.Greater(t, candidates[0].KeywordScore, candidates[1].KeywordScore)
}

func TestDiscoverJobLinks_EmptyPageIsNotAnError(t *testing.T) {
	t.Parallel()

	candidates, err := DiscoverJobLinks("<html><body><p>Nothing here</p></body></html>",
		"https://acme.com", DefaultTables())
	require.NoError(t, err)
	require.Empty(t, candidates)
}

func TestDiscoverJobsByContent_ScoresHeadings(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<h3 onclick="window.location='/positions/123'">Senior Backend Engineer (m/w/d)</h3>
		<h3>Our cookie policy explained for engineers</h3>
		<span>OK</span>
	</body></html>`

	candidates, err := DiscoverJobsByContent(html, "https://acme.com/careers",
		"Backend Engineer", DefaultTables(), DefaultWeights())
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	require.Equal(t, "Senior Backend Engineer (m/w/d)", candidates[0].Title)
	require.Equal(t, "https://acme.com/positions/123", candidates[0].URL)
}

func TestDiscoverJobsByContent_RoleIndicatorWeightAccrues(t *testing.T) {
	t.Parallel()

	// Neither heading contains a query term; the first carries two role
	// indicators and must clear the cutoff on their combined weight, the
	// second carries one and must not.
	html := `<html><body>
		<h3>Engineer and Designer Openings</h3>
		<h4>Analyst Position</h4>
	</body></html>`

	w := DefaultWeights()
	candidates, err := DiscoverJobsByContent(html, "https://acme.com/careers",
		"Quantitative Researcher", DefaultTables(), w)
	require.NoError(t, err)
	require.Len(t, candidates, 1)

	require.Equal(t, "Engineer and Designer Openings", candidates[0].Title)
	require.Equal(t, int(2*w.RoleIndicatorWeight), candidates[0].KeywordScore)
}

func TestDiscoverJobsByContent_FallsBackToCurrentURL(t *testing.T) {
	t.Parallel()

	html := `<html><body><h2>Backend Engineer</h2></body></html>`

	candidates, err := DiscoverJobsByContent(html, "https://acme.com/careers",
		"Backend Engineer", DefaultTables(), DefaultWeights())
	require.NoError(t, err)
	require.Len(t, candidates, 1)
	require.Equal(t, "https://acme.com/careers", candidates[0].URL)
}
