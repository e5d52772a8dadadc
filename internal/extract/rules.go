package extract

import (
	"regexp"
	"strings"
	"unicode"

	ahocorasick "github.com/cloudflare/ahocorasick"

	"jobalert-engine/internal/config"
)

// ruleSet is the compiled form of the line-classification tables. The
// segmenter asks it questions; it never mutates state, so one ruleSet is
// shared across all workers.
type ruleSet struct {
	listingMarkers []string

	positions   *ahocorasick.Matcher
	posExcept   []string
	allowedRune map[rune]bool

	locationNames []string
	locMarker     string

	qualAny    []string
	qualExcept []string

	remoteSignals []string
}

var (
	// generic "City, ST" shape
	cityStateRe = regexp.MustCompile(`^[A-Z][A-Za-z .'\-]+,\s*[A-Z]{2}$`)
	// clock times keep getting mistaken for locations
	clockRe = regexp.MustCompile(`(?i)\b\d{1,2}:\d{2}\s*(AM|PM)?\b`)
)

func newRuleSet(markers []string, pos config.Rule, loc config.LocationRule, qual config.Rule, remote []string, punct string) *ruleSet {
	rs := &ruleSet{
		listingMarkers: lowerAll(markers),
		posExcept:      lowerAll(pos.Except),
		locationNames:  loc.Names,
		locMarker:      strings.ToLower(loc.MarkerPrefix),
		qualAny:        lowerAll(qual.Any),
		qualExcept:     lowerAll(qual.Except),
		remoteSignals:  lowerAll(remote),
		allowedRune:    map[rune]bool{},
	}

	for _, r := range punct {
		rs.allowedRune[r] = true
	}

	// Space-padded keywords over space-normalized text give the automaton
	// word-boundary behavior ("intern" must not hit "international").
	padded := make([]string, 0, len(pos.Any))
	for _, kw := range pos.Any {
		kw = strings.TrimSpace(strings.ToLower(kw))
		if kw == "" {
			continue
		}
		padded = append(padded, " "+kw+" ")
	}
	if len(padded) > 0 {
		rs.positions = ahocorasick.NewStringMatcher(padded)
	}

	return rs
}

// foldLine lowercases and flattens a line to single-space-separated
// words, the same normalization applied to the keywords. Letters survive
// accents and all, so localized title stems still match; the English gate
// is what rejects them afterwards (logged, not silent).
func foldLine(line string) string {
	var b strings.Builder
	b.Grow(len(line))
	for _, r := range strings.ToLower(line) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		} else {
			b.WriteByte(' ')
		}
	}
	return strings.Join(strings.Fields(b.String()), " ")
}

func (rs *ruleSet) isListingMarker(line string) bool {
	l := strings.ToLower(line)
	for _, m := range rs.listingMarkers {
		if strings.Contains(l, m) {
			return true
		}
	}
	return false
}

func (rs *ruleSet) isPosition(line string) bool {
	if rs.positions == nil {
		return false
	}
	l := strings.ToLower(line)
	for _, ex := range rs.posExcept {
		if strings.Contains(l, ex) {
			return false
		}
	}
	// one automaton is shared across all workers; plain Match mutates
	// matcher state and is not safe for concurrent use
	hits := rs.positions.MatchThreadSafe([]byte(" " + foldLine(line) + " "))
	return len(hits) > 0
}

// english reports whether a title line passes the English-only gate:
// every rune ASCII, and punctuation restricted to the allowed set. A
// failing line is skipped outright, never transliterated.
func (rs *ruleSet) english(line string) bool {
	for _, r := range line {
		if r > 127 {
			return false
		}
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z':
		case r >= '0' && r <= '9':
		case r == ' ' || r == '\t':
		default:
			if !rs.allowedRune[r] {
				return false
			}
		}
	}
	return true
}

// location classifies a line as a location and returns the captured
// value. Clock times are rejected no matter what else matches.
func (rs *ruleSet) location(line string) (string, bool) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" || clockRe.MatchString(trimmed) {
		return "", false
	}

	if rs.locMarker != "" {
		if l := strings.ToLower(trimmed); strings.HasPrefix(l, rs.locMarker) {
			return strings.TrimSpace(trimmed[len(rs.locMarker):]), true
		}
	}

	if cityStateRe.MatchString(trimmed) {
		return trimmed, true
	}

	l := strings.ToLower(trimmed)
	for _, name := range rs.locationNames {
		if strings.Contains(l, strings.ToLower(name)) {
			return trimmed, true
		}
	}
	return "", false
}

func (rs *ruleSet) isQualification(line string) bool {
	l := strings.ToLower(line)
	for _, ex := range rs.qualExcept {
		if strings.Contains(l, ex) {
			return false
		}
	}
	for _, kw := range rs.qualAny {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

func (rs *ruleSet) remoteSignal(line string) bool {
	l := strings.ToLower(line)
	for _, sig := range rs.remoteSignals {
		if strings.Contains(l, sig) {
			return true
		}
	}
	return false
}

func lowerAll(xs []string) []string {
	out := make([]string, 0, len(xs))
	for _, x := range xs {
		x = strings.TrimSpace(strings.ToLower(x))
		if x != "" {
			out = append(out, x)
		}
	}
	return out
}
