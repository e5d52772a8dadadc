package extract

import (
	"strings"

	"jobalert-engine/internal/diag"
	"jobalert-engine/internal/domain"
)

// sectionResult is everything the segmenter recovers from one section:
// the flushed postings plus the section-level fallbacks the aggregator
// chooses representatives from.
type sectionResult struct {
	postings []domain.Posting

	// remoteTitle is the first remote-signaling title; once set it is
	// never overridden.
	remoteTitle string
	// englishTitle is the first title that passed the gate, remote or not.
	englishTitle string

	fallbackLocation string
	fallbackQuals    string
	remote           bool
}

// candidate is the in-progress posting being assembled from consecutive
// lines. It is flushed at most once.
type candidate struct {
	title    string
	location string
	quals    []string
}

// segment runs the listing state machine over one section. For
// GoogleCareers, a zero-posting primary scan triggers a second pass with
// the broader pattern set; those alerts never segmented cleanly.
func (e *Engine) segment(sec Section, provider domain.Provider, filename string) sectionResult {
	res := e.segmentWith(e.rules, sec, filename)

	if provider == domain.ProviderGoogleCareers && len(res.postings) == 0 {
		e.sink.Emit(diag.Event{
			Severity: diag.SeverityInfo,
			Kind:     diag.KindFallbackPass,
			Message:  "no postings in primary pass, rerunning with permissive patterns",
			Filename: filename,
		})
		res = e.segmentWith(e.fallback, sec, filename)
	}

	if len(res.postings) == 0 {
		e.sink.Emit(diag.Event{
			Severity: diag.SeverityWarning,
			Kind:     diag.KindNoPostings,
			Message:  "no job postings identified in section",
			Filename: filename,
		})
	}
	return res
}

func (e *Engine) segmentWith(rs *ruleSet, sec Section, filename string) sectionResult {
	var (
		res       sectionResult
		inListing bool
		cand      *candidate
		flushed   = map[string]bool{}
	)

	// flush closes the open candidate. A title already flushed in this
	// section is never flushed again; first occurrence wins.
	flush := func() {
		if cand == nil {
			return
		}
		if !flushed[cand.title] {
			flushed[cand.title] = true
			res.postings = append(res.postings, domain.Posting{
				Title:          cand.title,
				Location:       cand.location,
				Qualifications: strings.Join(cand.quals, "\n"),
			})
		}
		cand = nil
	}

	for _, raw := range sec.Lines {
		line := strings.TrimSpace(raw)
		if line == "" {
			continue
		}

		if !inListing {
			// listings are contiguous to end-of-section once started
			if rs.isListingMarker(line) {
				inListing = true
			}
			continue
		}

		if rs.isPosition(line) {
			if !rs.english(line) {
				e.sink.Emit(diag.Event{
					Severity: diag.SeverityWarning,
					Kind:     diag.KindNonEnglishSkip,
					Message:  "non-English position skipped: " + line,
					Filename: filename,
				})
				continue
			}

			flush()
			cand = &candidate{title: line}

			if rs.remoteSignal(line) {
				res.remote = true
				if res.remoteTitle == "" {
					res.remoteTitle = line
				}
			}
			if res.englishTitle == "" {
				res.englishTitle = line
			}
			continue
		}

		if cand == nil {
			// location and qualification lines only count while a
			// candidate is open
			continue
		}

		if loc, ok := rs.location(line); ok {
			cand.location = loc
			if res.fallbackLocation == "" {
				res.fallbackLocation = loc
			}
			if rs.remoteSignal(line) {
				res.remote = true
				if res.remoteTitle == "" {
					// retroactively promote the open candidate's title;
					// interacts oddly with the never-override rule, but
					// that is the established behavior
					res.remoteTitle = cand.title
				}
			}
			continue
		}

		if rs.isQualification(line) {
			cand.quals = append(cand.quals, line)
			if res.fallbackQuals == "" {
				res.fallbackQuals = line
			}
		}
		// anything else inside a listing is inert
	}

	flush()
	return res
}
