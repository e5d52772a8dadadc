package dumps

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// FlattenHTML turns a saved HTML email into the plain line-per-element
// text the engine expects. Scripts and styles are dropped; only leaf
// elements contribute, so nested containers don't duplicate their text.
func FlattenHTML(src string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(src))
	if err != nil {
		return "", err
	}

	doc.Find("script,style,head").Remove()

	var lines []string
	doc.Find("p, div, li, h1, h2, h3, h4, h5, h6, td, th, span, a, strong, b").Each(func(_ int, s *goquery.Selection) {
		if s.Children().Length() > 0 {
			return
		}
		t := cleanText(s.Text())
		if t == "" {
			return
		}
		lines = append(lines, t)
	})

	if len(lines) == 0 {
		// no markup worth speaking of; fall back to the raw text
		if t := cleanText(doc.Text()); t != "" {
			lines = append(lines, t)
		}
	}

	return strings.Join(lines, "\n"), nil
}

func cleanText(s string) string {
	s = strings.ReplaceAll(s, "\u00a0", " ")
	return strings.Join(strings.Fields(s), " ")
}
