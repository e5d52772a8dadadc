package domain

// Provider is the job board / email service a dump originated from.
type Provider string

const (
	ProviderGlassdoor     Provider = "Glassdoor"
	ProviderLinkedIn      Provider = "LinkedIn"
	ProviderIndeed        Provider = "Indeed"
	ProviderGoogleCareers Provider = "GoogleCareers"

	// ProviderUnidentified is terminal: the document is skipped and
	// reported as a failure.
	ProviderUnidentified Provider = "Unidentified"
)

func (p Provider) Identified() bool {
	return p != "" && p != ProviderUnidentified
}
