package extract

import (
	"regexp"
	"strings"

	"jobalert-engine/internal/diag"
	"jobalert-engine/internal/domain"
)

// metadata is the per-section header recovery result. Fields default to
// the Unknown sentinel, never to empty strings.
type metadata struct {
	Sender  string
	Subject string
	Date    string
}

var (
	emailAddrRe = regexp.MustCompile(`[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}`)

	// literal date/timestamp shapes seen in provider alerts
	weekdayDateRe = regexp.MustCompile(`(?i)\b(Mon|Tue|Wed|Thu|Fri|Sat|Sun)[a-z]*,?\s+(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)[a-z]*\.?\s+\d{1,2}\b`)
	relativeAgoRe = regexp.MustCompile(`(?i)\(\s*\d+\s+(minute|hour|day)s?\s+ago\s*\)`)
	isoPrefixRe   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}`)
)

// realTimeToken marks continuous alerts that carry no timestamp at all.
const realTimeToken = "real-time"

// extractMetadata recovers sender, subject and date from a section.
// Primary pass: first N lines, strict predicates. Fallback pass: the
// whole section with the subject exclusion dropped, for metadata that
// only shows up late in long dumps. Both recovery-via-fallback and
// never-recovered are reported, distinguishably.
func (e *Engine) extractMetadata(sec Section, filename string) metadata {
	md := metadata{Sender: domain.Unknown, Subject: domain.Unknown, Date: domain.Unknown}

	head := sec.Lines
	if len(head) > e.scanLines {
		head = head[:e.scanLines]
	}

	for _, raw := range head {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}
		if md.Sender == domain.Unknown && emailAddrRe.MatchString(line) {
			md.Sender = line
			continue
		}
		if md.Subject == domain.Unknown && e.isSubjectLine(line, true) {
			md.Subject = line
			continue
		}
		if md.Date == domain.Unknown && isDateLine(line) {
			md.Date = line
		}
	}

	// relaxed full-section rescan for whatever is still missing
	if md.Sender == domain.Unknown {
		for _, raw := range sec.Lines {
			line := strings.TrimSpace(raw)
			if line != "" && emailAddrRe.MatchString(line) {
				md.Sender = line
				e.fallbackHit(filename, "sender")
				break
			}
		}
	}
	if md.Subject == domain.Unknown {
		for _, raw := range sec.Lines {
			line := strings.TrimSpace(raw)
			if line != "" && e.isSubjectLine(line, false) {
				md.Subject = line
				e.fallbackHit(filename, "subject")
				break
			}
		}
	}
	if md.Date == domain.Unknown {
		for _, raw := range sec.Lines {
			line := strings.TrimSpace(raw)
			if line != "" && isDateLine(line) {
				md.Date = line
				e.fallbackHit(filename, "date")
				break
			}
		}
	}

	for _, f := range []struct{ field, v string }{
		{"sender", md.Sender}, {"subject", md.Subject}, {"date", md.Date},
	} {
		field, v := f.field, f.v
		if v == domain.Unknown {
			e.sink.Emit(diag.Event{
				Severity: diag.SeverityWarning,
				Kind:     diag.KindMetadataMissing,
				Message:  field + " not recovered after both passes",
				Filename: filename,
			})
		}
	}

	return md
}

// isSubjectLine: a job-related line that is neither an address nor a
// timestamp. With excludeCreated set, the "your alert was created"
// confirmation is rejected as the known false-positive subject.
func (e *Engine) isSubjectLine(line string, excludeCreated bool) bool {
	if emailAddrRe.MatchString(line) || isDateLine(line) {
		return false
	}
	l := strings.ToLower(line)
	if excludeCreated {
		for _, phrase := range e.alertCreated {
			if strings.Contains(l, phrase) {
				return false
			}
		}
	}
	for _, kw := range e.subjectKeywords {
		if strings.Contains(l, kw) {
			return true
		}
	}
	return false
}

func isDateLine(line string) bool {
	if weekdayDateRe.MatchString(line) || relativeAgoRe.MatchString(line) || isoPrefixRe.MatchString(line) {
		return true
	}
	return strings.Contains(strings.ToLower(line), realTimeToken)
}

func (e *Engine) fallbackHit(filename, field string) {
	e.sink.Emit(diag.Event{
		Severity: diag.SeverityInfo,
		Kind:     diag.KindMetadataFallback,
		Message:  field + " recovered via full-document fallback",
		Filename: filename,
	})
}
