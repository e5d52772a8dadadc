// Package diag carries the extraction engine's diagnostic events. The
// engine never logs or writes files itself; everything heuristic that
// misses (or recovers) is emitted here and the caller decides what to do
// with it.
package diag

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Kind identifies the condition that produced an event.
type Kind string

const (
	// KindClassificationFailure: no provider pattern matched; the
	// document is skipped.
	KindClassificationFailure Kind = "classification_failure"
	// KindStructuralFailure: the dump could not be read or decoded.
	KindStructuralFailure Kind = "structural_failure"
	// KindMetadataFallback: a metadata field was only recovered by the
	// relaxed full-document pass.
	KindMetadataFallback Kind = "metadata_fallback"
	// KindMetadataMissing: a metadata field stayed Unknown after both
	// passes.
	KindMetadataMissing Kind = "metadata_missing"
	// KindNonEnglishSkip: a position line failed the English gate and was
	// dropped entirely.
	KindNonEnglishSkip Kind = "non_english_skip"
	// KindFallbackPass: the permissive second segmentation pass ran.
	KindFallbackPass Kind = "fallback_pass"
	// KindNoPostings: a section yielded zero postings.
	KindNoPostings Kind = "no_postings"
)

type Event struct {
	Severity Severity  `json:"severity"`
	Kind     Kind      `json:"kind"`
	Message  string    `json:"message"`
	Filename string    `json:"filename"`
	At       time.Time `json:"at"`
}

// Sink receives diagnostic events. Implementations must be safe for
// concurrent use; documents are processed in parallel.
type Sink interface {
	Emit(Event)
}

// Discard drops everything.
var Discard Sink = discard{}

type discard struct{}

func (discard) Emit(Event) {}
