package extract

import (
	"regexp"
	"strings"
)

// Section is one logical email's worth of lines within a dump. Most dumps
// hold exactly one; a provider's combined-file convention can hold many.
type Section struct {
	Lines []string
}

// normalizeContent strips interface-chrome lines and splits a combined
// dump on its separator marker. Line order is preserved; nothing is ever
// reordered. sep may be nil for providers without a combined convention.
func normalizeContent(text string, sep *regexp.Regexp, noisePhrases []string) []Section {
	var (
		sections []Section
		current  []string
	)

	for _, raw := range strings.Split(text, "\n") {
		line := strings.TrimRight(raw, "\r")

		if isNoise(line, noisePhrases) {
			continue
		}

		if sep != nil && sep.MatchString(strings.TrimSpace(line)) {
			if len(current) > 0 {
				sections = append(sections, Section{Lines: current})
				current = nil
			}
			continue
		}

		current = append(current, line)
	}

	if len(current) > 0 || len(sections) == 0 {
		sections = append(sections, Section{Lines: current})
	}
	return sections
}

func isNoise(line string, phrases []string) bool {
	l := strings.ToLower(strings.TrimSpace(line))
	if l == "" {
		return false
	}
	for _, p := range phrases {
		if strings.Contains(l, p) {
			return true
		}
	}
	return false
}
