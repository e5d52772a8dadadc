package report

import (
	"fmt"
	"os"
	"strings"

	"jobalert-engine/internal/domain"
)

// WriteText renders the labelled-block layout the downstream analysis
// tooling greps for (Source:/Job Position:/Min Requirements:/Remote:).
func WriteText(path string, entries []domain.JobEntry) error {
	var b strings.Builder

	for i, e := range entries {
		if i > 0 {
			b.WriteString("---\n")
		}
		fmt.Fprintf(&b, "Source: %s\n", e.Provider)
		fmt.Fprintf(&b, "File: %s\n", e.Filename)
		fmt.Fprintf(&b, "Sender: %s\n", e.Sender)
		fmt.Fprintf(&b, "Subject: %s\n", e.Subject)
		fmt.Fprintf(&b, "Date: %s\n", e.Date)
		fmt.Fprintf(&b, "Job Position: %s\n", e.JobPosition)
		fmt.Fprintf(&b, "Location: %s\n", e.Location)
		fmt.Fprintf(&b, "Min Requirements: %s\n", strings.ReplaceAll(e.MinimumQualifications, "\n", "; "))
		fmt.Fprintf(&b, "Remote: %s\n", yesNo(e.Remote))
		if len(e.JobPostings) > 0 {
			b.WriteString("Job Postings:\n")
			for _, p := range e.JobPostings {
				fmt.Fprintf(&b, "  - %s\n", p)
			}
		}
	}

	return os.WriteFile(path, []byte(b.String()), 0o644)
}

func yesNo(v bool) string {
	if v {
		return "Yes"
	}
	return "No"
}
