package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/pkg/models"
)

func TestFindCareersLink_PicksCareersOverBlog(t *testing.T) {
	t.Parallel()

	links := []models.Link{
		{URL: "https://acme.com/blog", Text: "Blog", RawHref: "/blog"},
		{URL: "https://acme.com/careers", Text: "Careers", RawHref: "/careers"},
		{URL: "https://acme.com/about", Text: "About us", RawHref: "/about"},
	}

	result := FindCareersLink(links, "https://acme.com", DefaultTables(), DefaultWeights())

	require.Equal(t, "https://acme.com/careers", result.URL)
	require.Contains(t, []string{ConfidenceHigh, ConfidenceMedium}, result.Confidence)
	require.Positive(t, result.Score)
}

func TestFindCareersLink_NoLinksFallsBack(t *testing.T) {
	t.Parallel()

	result := FindCareersLink(nil, "https://acme.com", DefaultTables(), DefaultWeights())

	require.Equal(t, "https://acme.com/careers", result.URL)
	require.Equal(t, ConfidenceLow, result.Confidence)
	require.Zero(t, result.Score)
}

func TestFindCareersLink_NothingRelevantFallsBack(t *testing.T) {
	t.Parallel()

	links := []models.Link{
		{URL: "https://acme.com/blog", Text: "Blog", RawHref: "/blog"},
		{URL: "https://acme.com/investors", Text: "Investor relations", RawHref: "/investors"},
	}

	result := FindCareersLink(links, "https://acme.com/de/", DefaultTables(), DefaultWeights())

	require.Equal(t, "https://acme.com/careers", result.URL)
	require.Equal(t, ConfidenceLow, result.Confidence)
}

func TestFindCareersLink_LocalizedKeyword(t *testing.T) {
	t.Parallel()

	links := []models.Link{
		{URL: "https://acme.de/karriere", Text: "Karriere", RawHref: "/karriere"},
		{URL: "https://acme.de/kontakt", Text: "Kontakt", RawHref: "/kontakt"},
	}

	result := FindCareersLink(links, "https://acme.de", DefaultTables(), DefaultWeights())

	require.Equal(t, "https://acme.de/karriere", result.URL)
}
