package navigator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"

	"jobscout/pkg/utils"
)

// Selectors tried first when hunting for a job search box.
var searchBoxSelectors = []string{
	`input[type="search"]`,
	`input[name*="search"]`,
	`input[id*="search"]`,
	`input[placeholder*="earch"]`,
	`input[class*="search"]`,
}

// Attribute keywords that mark a generic text input as a job search box.
var searchHintWords = []string{"search", "job", "title", "keyword", "query"}

// SearchJobs finds the page's job search box, types the term and
// submits with Enter. Returns the page as it looks after the results
// render.
func (s *rodSession) SearchJobs(ctx context.Context, term string) (*PageResult, error) {
	startTime := time.Now()

	el, err := s.findSearchBox()
	if err != nil {
		return nil, err
	}

	err = rod.Try(func() {
		searchCtx, cancel := context.WithTimeout(ctx, s.navigator.config.Navigator.RequestTimeout)
		defer cancel()

		elc := el.Context(searchCtx)
		elc.MustSelectAllText().MustInput(term)
		elc.MustType(input.Enter)
		s.instance.Page.Context(searchCtx).MustWaitLoad()
	})
	if err != nil {
		return nil, fmt.Errorf("%w: search submit failed: %v", utils.ErrInteractionFailed, err)
	}

	if err := s.settle(ctx); err != nil {
		return nil, err
	}

	s.navigator.logger.Debug("In-page job search submitted", map[string]interface{}{
		"term": term,
	})

	return s.pageResult(startTime)
}

// findSearchBox tries the dedicated selectors first, then falls back to
// sniffing attribute hints on plain text inputs.
func (s *rodSession) findSearchBox() (*rod.Element, error) {
	for _, selector := range searchBoxSelectors {
		var el *rod.Element
		err := rod.Try(func() {
			el = s.instance.Page.Timeout(2 * time.Second).MustElement(selector)
		})
		if err == nil && el != nil {
			return el, nil
		}
	}

	var found *rod.Element
	err := rod.Try(func() {
		inputs := s.instance.Page.Timeout(2 * time.Second).MustElements(`input[type="text"], input:not([type])`)
		for _, candidate := range inputs {
			hints := strings.ToLower(strings.Join([]string{
				attributeValue(candidate, "placeholder"),
				attributeValue(candidate, "name"),
				attributeValue(candidate, "id"),
			}, " "))
			for _, word := range searchHintWords {
				if strings.Contains(hints, word) {
					found = candidate
					return
				}
			}
		}
	})
	if err == nil && found != nil {
		return found, nil
	}

	return nil, fmt.Errorf("%w: no search box found on page", utils.ErrInteractionFailed)
}

func attributeValue(el *rod.Element, name string) string {
	value := el.MustAttribute(name)
	if value == nil {
		return ""
	}
	return *value
}
