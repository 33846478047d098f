// Package sanitize cleans model output before it is handed to the browser.
package sanitize

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	openingFence  = regexp.MustCompile("```html\\s*")
	trailingFence = regexp.MustCompile("(```\\s*)+$")
)

// StripFences removes ```html markers (and the whitespace after them) and
// any ``` markers closing the text. Everything else is left as is.
func StripFences(text string) string {
	for {
		next := trailingFence.ReplaceAllString(openingFence.ReplaceAllString(text, ""), "")
		// Removing a marker can splice a new one together, repeat until stable.
		if next == text {
			return next
		}
		text = next
	}
}

// HasContent reports whether the HTML fragment renders any visible text.
func HasContent(fragment string) bool {
	if strings.TrimSpace(fragment) == "" {
		return false
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return false
	}
	return strings.TrimSpace(doc.Text()) != ""
}

// Headings returns the text of the <h2> sections in document order.
func Headings(fragment string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return nil
	}
	var out []string
	doc.Find("h2").Each(func(_ int, s *goquery.Selection) {
		if t := strings.TrimSpace(s.Text()); t != "" {
			out = append(out, t)
		}
	})
	return out
}
