package heuristics

import (
	"testing"

	"github.com/stretchr/testify/require"

	"jobscout/pkg/utils"
)

func TestResolveURL_RelativeHref(t *testing.T) {
	t.Parallel()

	resolved, err := ResolveURL("/careers", "https://acme.com")
	require.NoError(t, err)
	require.Equal(t, "https://acme.com/careers", resolved)
}

func TestResolveURL_AbsoluteHrefUnchanged(t *testing.T) {
	t.Parallel()

	resolved, err := ResolveURL("https://jobs.acme.com/openings", "https://acme.com")
	require.NoError(t, err)
	require.Equal(t, "https://jobs.acme.com/openings", resolved)
}

func TestResolveURL_Idempotent(t *testing.T) {
	t.Parallel()

	once, err := ResolveURL("/jobs/42", "https://acme.com/careers")
	require.NoError(t, err)

	twice, err := ResolveURL(once, "https://acme.com/careers")
	require.NoError(t, err)
	require.Equal(t, once, twice)
}

func TestResolveURL_RejectsNonNavigable(t *testing.T) {
	t.Parallel()

	for _, href := range []string{
		"",
		"#",
		"#section",
		"javascript:void(0)",
		"mailto:jobs@acme.com",
		"tel:+4930123456",
	} {
		_, err := ResolveURL(href, "https://acme.com")
		require.ErrorIs(t, err, utils.ErrInvalidLink, "href %q should be rejected", href)
	}
}

func TestExtractLinks_CapturesAttributes(t *testing.T) {
	t.Parallel()

	html := `<html><body>
		<a href="/careers" title="Join us" class="nav-link primary">Careers</a>
		<a href="mailto:hi@acme.com">Email</a>
		<a href="https://acme.com/blog">Blog</a>
	</body></html>`

	links, err := ExtractLinks(html, "https://acme.com")
	require.NoError(t, err)
	require.Len(t, links, 2)

	require.Equal(t, "https://acme.com/careers", links[0].URL)
	require.Equal(t, "Careers", links[0].Text)
	require.Equal(t, "/careers", links[0].RawHref)
	require.Equal(t, "Join us", links[0].TitleAttr)
	require.Equal(t, []string{"nav-link", "primary"}, links[0].Classes)
}
