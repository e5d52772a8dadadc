// internal/config/config.go
package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Rule is one keyword-disjunction rule: a line belongs to the rule's role
// when it contains any of the terms and none of the exceptions.
type Rule struct {
	Tag    string   `yaml:"tag"`
	Any    []string `yaml:"any"`
	Except []string `yaml:"except,omitempty"`
}

// LocationRule holds the location-line patterns: literal place names plus
// an optional "place <text>" marker whose prefix is stripped on capture.
type LocationRule struct {
	Names        []string `yaml:"names"`
	MarkerPrefix string   `yaml:"marker_prefix,omitempty"`
}

// ProviderPatterns identifies one provider. Order in the providers list is
// the classification order.
type ProviderPatterns struct {
	Name string `yaml:"name"`

	// SenderAny are substrings matched against the sender header first,
	// then against the body (quoted headers show up inline in dumps).
	SenderAny []string `yaml:"sender_any,omitempty"`

	// FooterRegexp matches the provider's legal footer text.
	FooterRegexp string `yaml:"footer_regexp,omitempty"`

	// LooseKeyword is the last-resort provider-name token, set only for
	// providers whose footers drift.
	LooseKeyword string `yaml:"loose_keyword,omitempty"`

	// SectionSeparator, when set, is the regexp for the marker line that
	// splits a combined multi-email dump into sections.
	SectionSeparator string `yaml:"section_separator,omitempty"`
}

// FallbackRules is the broader pattern set for the permissive second
// segmentation pass.
type FallbackRules struct {
	Positions      Rule         `yaml:"positions"`
	Locations      LocationRule `yaml:"locations"`
	Qualifications Rule         `yaml:"qualifications"`
}

// Extract carries every heuristic table the engine consumes. Keeping the
// patterns here rather than inline in the state machine lets them be
// tuned per deployment and unit-tested on their own.
type Extract struct {
	MetadataScanLines int `yaml:"metadata_scan_lines"`

	NoisePhrases        []string `yaml:"noise_phrases"`
	AlertCreatedPhrases []string `yaml:"alert_created_phrases"`
	ListingMarkers      []string `yaml:"listing_markers"`
	SubjectKeywords     []string `yaml:"subject_keywords"`

	// TitlePunctuation is the punctuation allowed through the
	// English-only gate on position lines. Letters, digits and spaces
	// are always allowed; anything non-ASCII never is.
	TitlePunctuation string `yaml:"title_punctuation"`

	Positions      Rule         `yaml:"positions"`
	Locations      LocationRule `yaml:"locations"`
	Qualifications Rule         `yaml:"qualifications"`
	RemoteSignals  []string     `yaml:"remote_signals"`

	Fallback FallbackRules `yaml:"fallback"`
}

type Config struct {
	App struct {
		DumpDir string `yaml:"dump_dir"`
		DataDir string `yaml:"data_dir"`
		Workers int    `yaml:"workers"`
		// DocsPerSecond throttles batch processing; 0 means unthrottled.
		// Useful when the dump folder lives on a sync'd drive.
		DocsPerSecond float64 `yaml:"docs_per_second"`
	} `yaml:"app"`

	Providers []ProviderPatterns `yaml:"providers"`
	Extract   Extract            `yaml:"extract"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
