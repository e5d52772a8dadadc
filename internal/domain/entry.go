package domain

import (
	"strings"
	"time"
)

// Unknown is the sentinel for any field the heuristics could not recover.
const Unknown = "Unknown"

// RawDocument is one saved email dump, read fully before processing.
type RawDocument struct {
	Filename string
	Text     string

	// SenderHeader is an optional From header recovered outside the body
	// (e.g. from an .eml dump). Empty for plain text dumps.
	SenderHeader string
}

// Posting is one extracted job posting within a section.
type Posting struct {
	Title          string
	Location       string
	Qualifications string // qualification lines joined by \n
}

// Render flattens a posting into the "title | location | qualifications"
// form used in JobEntry.JobPostings.
func (p Posting) Render() string {
	loc := p.Location
	if loc == "" {
		loc = Unknown
	}
	quals := p.Qualifications
	if quals == "" {
		quals = Unknown
	}
	return p.Title + " | " + loc + " | " + strings.ReplaceAll(quals, "\n", "; ")
}

// JobEntry is the one record produced per successfully classified document.
type JobEntry struct {
	Filename              string    `json:"filename"`
	Provider              Provider  `json:"source"`
	Sender                string    `json:"sender"`
	Subject               string    `json:"subject"`
	Date                  string    `json:"date"`
	JobPosition           string    `json:"job_position"`
	Location              string    `json:"location"`
	MinimumQualifications string    `json:"minimum_qualifications"`
	JobPostings           []string  `json:"job_postings"`
	Remote                bool      `json:"remote"`
	ProcessedAt           time.Time `json:"processed_at"`
}
