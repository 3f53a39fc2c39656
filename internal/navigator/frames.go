package navigator

import (
	"strings"
	"time"

	"github.com/go-rod/rod"

	"jobscout/pkg/utils"
)

// Iframe src hints that mark an embedded job board.
var jobFrameHints = []string{
	"greenhouse", "lever", "workable", "jobvite", "smartrecruiters",
	"job", "career", "recruit",
}

// appendFrameHTML pulls the markup out of embedded job-board iframes so
// the discoverer sees their listings as part of the page. Careers pages
// frequently embed a hosted board in an iframe whose content the outer
// document never carries.
func (s *rodSession) appendFrameHTML(html string) string {
	var frames []string

	err := rod.Try(func() {
		elements := s.instance.Page.Timeout(2 * time.Second).MustElements("iframe")
		for _, el := range elements {
			src := strings.ToLower(attributeValue(el, "src"))
			if src == "" || !utils.ContainsAny(src, jobFrameHints) {
				continue
			}
			frames = append(frames, el.MustFrame().MustHTML())
		}
	})
	if err != nil {
		return html
	}
	if len(frames) == 0 {
		return html
	}

	s.navigator.logger.Debug("Merged embedded job board frames", map[string]interface{}{
		"frames": len(frames),
	})

	return html + "\n" + strings.Join(frames, "\n")
}
