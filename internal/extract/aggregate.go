package extract

import (
	"time"

	"jobalert-engine/internal/domain"
)

// aggregate merges all sections of one document into a single JobEntry.
// Postings are concatenated across sections with no cross-section dedup:
// the same title in two sections means two genuinely distinct alerts.
func aggregate(doc domain.RawDocument, provider domain.Provider, metas []metadata, sections []sectionResult, now time.Time) domain.JobEntry {
	entry := domain.JobEntry{
		Filename:              doc.Filename,
		Provider:              provider,
		Sender:                domain.Unknown,
		Subject:               domain.Unknown,
		Date:                  domain.Unknown,
		JobPosition:           domain.Unknown,
		Location:              domain.Unknown,
		MinimumQualifications: domain.Unknown,
		ProcessedAt:           now,
	}

	for _, md := range metas {
		if entry.Sender == domain.Unknown && md.Sender != domain.Unknown {
			entry.Sender = md.Sender
		}
		if entry.Subject == domain.Unknown && md.Subject != domain.Unknown {
			entry.Subject = md.Subject
		}
		if entry.Date == domain.Unknown && md.Date != domain.Unknown {
			entry.Date = md.Date
		}
	}

	var remoteTitle, englishTitle string
	for _, sr := range sections {
		for _, p := range sr.postings {
			entry.JobPostings = append(entry.JobPostings, p.Render())
		}
		if remoteTitle == "" && sr.remoteTitle != "" {
			remoteTitle = sr.remoteTitle
		}
		if englishTitle == "" && sr.englishTitle != "" {
			englishTitle = sr.englishTitle
		}
		if entry.Location == domain.Unknown && sr.fallbackLocation != "" {
			entry.Location = sr.fallbackLocation
		}
		if entry.MinimumQualifications == domain.Unknown && sr.fallbackQuals != "" {
			entry.MinimumQualifications = sr.fallbackQuals
		}
		if sr.remote {
			entry.Remote = true
		}
	}

	switch {
	case remoteTitle != "":
		entry.JobPosition = remoteTitle
	case englishTitle != "":
		entry.JobPosition = englishTitle
	}

	return entry
}
