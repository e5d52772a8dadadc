package domain

// FailureKind says why a document produced no JobEntry.
type FailureKind string

const (
	// FailureClassification: no provider pattern matched anywhere.
	FailureClassification FailureKind = "classification"
	// FailureStructural: the dump could not be read or decoded at all.
	FailureStructural FailureKind = "structural"
)

// Failure is a per-document, non-fatal processing failure. The batch
// always continues past these.
type Failure struct {
	Filename string      `json:"filename"`
	Kind     FailureKind `json:"kind"`
	Reason   string      `json:"reason"`
}
