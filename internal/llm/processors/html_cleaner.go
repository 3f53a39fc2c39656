package processors

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// HTMLCleaner preprocesses page HTML before it is sent to an advisor.
// The goal is to keep the navigational skeleton of the page, anchors,
// headings and search inputs, while dropping everything that only
// burns tokens.
type HTMLCleaner struct {
	// Tags removed completely, subtree included
	removeTags []string
	// Attributes kept on surviving elements; everything else is noise
	keepAttributes []string
}

var (
	commentPattern   = regexp.MustCompile(`<!--[\s\S]*?-->`)
	whitespaceRuns   = regexp.MustCompile(`[ \t]{2,}`)
	blankLinePattern = regexp.MustCompile(`\n\s*\n+`)
)

// NewHTMLCleaner creates a new HTML cleaner instance
func NewHTMLCleaner() *HTMLCleaner {
	return &HTMLCleaner{
		removeTags: []string{
			"script", "style", "noscript", "iframe", "object", "embed",
			"svg", "path", "g", "defs", "use", "symbol",
			"meta", "link", "base", "video", "audio", "canvas", "picture",
		},
		keepAttributes: []string{
			"href", "class", "id", "name", "type", "placeholder",
			"aria-label", "title", "onclick",
		},
	}
}

// CondenseCareersHTML strips a careers page down to the markup an
// advisor needs to choose a navigation action and truncates the result
// to maxSize bytes. Anchors and search inputs survive with their
// identifying attributes intact.
func (hc *HTMLCleaner) CondenseCareersHTML(html string, maxSize int) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	for _, tag := range hc.removeTags {
		doc.Find(tag).Remove()
	}

	hc.stripAttributes(doc)

	cleaned, err := doc.Html()
	if err != nil {
		return "", err
	}

	cleaned = commentPattern.ReplaceAllString(cleaned, "")
	cleaned = whitespaceRuns.ReplaceAllString(cleaned, " ")
	cleaned = blankLinePattern.ReplaceAllString(cleaned, "\n")
	cleaned = strings.TrimSpace(cleaned)

	if maxSize > 0 && len(cleaned) > maxSize {
		cleaned = cleaned[:maxSize] + "..."
	}

	return cleaned, nil
}

// ExtractPostingText pulls the readable text of a job posting page,
// with chrome elements removed, for prompt or logging use.
func (hc *HTMLCleaner) ExtractPostingText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", err
	}

	doc.Find("script, style, noscript, nav, header, footer, aside").Remove()

	text := doc.Find("body").Text()
	if strings.TrimSpace(text) == "" {
		text = doc.Text()
	}

	text = whitespaceRuns.ReplaceAllString(text, " ")
	text = blankLinePattern.ReplaceAllString(text, "\n")
	return strings.TrimSpace(text), nil
}

func (hc *HTMLCleaner) stripAttributes(doc *goquery.Document) {
	keep := make(map[string]bool, len(hc.keepAttributes))
	for _, attr := range hc.keepAttributes {
		keep[attr] = true
	}

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			filtered := node.Attr[:0]
			for _, attr := range node.Attr {
				if keep[attr.Key] {
					filtered = append(filtered, attr)
				}
			}
			node.Attr = filtered
		}
	})
}
