package heuristics

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"jobscout/pkg/models"
	"jobscout/pkg/utils"
)

// nonNavigableSchemes are href prefixes that never lead to a page.
var nonNavigableSchemes = []string{"javascript:", "mailto:", "tel:"}

// ResolveURL turns a raw href into an absolute URL against the given
// base. Empty hrefs, fragment-only anchors and non-navigable schemes
// resolve to ErrInvalidLink. Resolution is idempotent: an already
// absolute URL passes through unchanged.
func ResolveURL(href, base string) (string, error) {
	href = strings.TrimSpace(href)
	if href == "" || strings.HasPrefix(href, "#") {
		return "", fmt.Errorf("%w: empty or fragment-only href", utils.ErrInvalidLink)
	}

	lower := strings.ToLower(href)
	for _, scheme := range nonNavigableSchemes {
		if strings.HasPrefix(lower, scheme) {
			return "", fmt.Errorf("%w: non-navigable scheme in %q", utils.ErrInvalidLink, href)
		}
	}

	baseURL, err := url.Parse(base)
	if err != nil {
		return "", fmt.Errorf("%w: bad base URL %q", utils.ErrInvalidLink, base)
	}

	ref, err := url.Parse(href)
	if err != nil {
		return "", fmt.Errorf("%w: unparseable href %q", utils.ErrInvalidLink, href)
	}

	resolved := baseURL.ResolveReference(ref)
	if resolved.Scheme != "http" && resolved.Scheme != "https" {
		return "", fmt.Errorf("%w: unsupported scheme %q", utils.ErrInvalidLink, resolved.Scheme)
	}

	return resolved.String(), nil
}

// ExtractLinks parses every anchor in the document and resolves it
// against the base URL. Invalid links are skipped, never surfaced.
// Duplicates are kept; deduplication belongs to the scoring stages.
func ExtractLinks(html, baseURL string) ([]models.Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	var links []models.Link
	doc.Find("a[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")

		resolved, err := ResolveURL(href, baseURL)
		if err != nil {
			return
		}

		var classes []string
		if classAttr, ok := s.Attr("class"); ok {
			classes = strings.Fields(classAttr)
		}

		titleAttr, _ := s.Attr("title")

		links = append(links, models.Link{
			URL:       resolved,
			Text:      strings.TrimSpace(s.Text()),
			RawHref:   href,
			TitleAttr: titleAttr,
			Classes:   classes,
		})
	})

	return links, nil
}
