package processors

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const careersPageHTML = `<html><head>
<script>var analytics = "tracked";</script>
<style>.hero { color: red; }</style>
</head><body>
<!-- build marker -->
<nav><a href="/careers/open-positions" data-track="nav-click" style="color:blue">Open Positions</a></nav>
<input type="search" placeholder="Search jobs" data-qa="searchbox"/>
<h2>Join our team</h2>
</body></html>`

func TestCondenseCareersHTMLStripsNoise(t *testing.T) {
	t.Parallel()

	cleaner := NewHTMLCleaner()
	out, err := cleaner.CondenseCareersHTML(careersPageHTML, 0)
	require.NoError(t, err)

	require.NotContains(t, out, "analytics")
	require.NotContains(t, out, ".hero")
	require.NotContains(t, out, "build marker")
	require.NotContains(t, out, "data-track")
	require.NotContains(t, out, "style=")

	// Navigation anchors and search inputs survive with their
	// identifying attributes.
	require.Contains(t, out, `href="/careers/open-positions"`)
	require.Contains(t, out, "Open Positions")
	require.Contains(t, out, `type="search"`)
	require.Contains(t, out, `placeholder="Search jobs"`)
}

func TestCondenseCareersHTMLTruncates(t *testing.T) {
	t.Parallel()

	cleaner := NewHTMLCleaner()
	out, err := cleaner.CondenseCareersHTML(careersPageHTML, 50)
	require.NoError(t, err)

	require.LessOrEqual(t, len(out), 53)
	require.True(t, strings.HasSuffix(out, "..."))
}

func TestExtractPostingTextDropsChrome(t *testing.T) {
	t.Parallel()

	html := `<html><body>
<header>Acme corporate header</header>
<h1>Senior Backend Engineer</h1>
<p>Build services in Berlin.</p>
<footer>All rights reserved</footer>
<script>void(0)</script>
</body></html>`

	cleaner := NewHTMLCleaner()
	text, err := cleaner.ExtractPostingText(html)
	require.NoError(t, err)

	require.Contains(t, text, "Senior Backend Engineer")
	require.Contains(t, text, "Build services in Berlin.")
	require.NotContains(t, text, "corporate header")
	require.NotContains(t, text, "All rights reserved")
	require.NotContains(t, text, "void(0)")
}
