package extract

import (
	"fmt"
	"regexp"
	"strings"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/domain"
)

// Classifier maps a raw dump (plus optional sender header) to a provider.
// Classify is a pure function of its inputs.
type Classifier struct {
	providers []providerMatcher
}

type providerMatcher struct {
	name    domain.Provider
	senders []string // lowercased substrings
	footer  *regexp.Regexp
	loose   string // lowercased provider-name token, "" if unused
}

func NewClassifier(patterns []config.ProviderPatterns) (*Classifier, error) {
	c := &Classifier{providers: make([]providerMatcher, 0, len(patterns))}
	for _, p := range patterns {
		pm := providerMatcher{
			name:    domain.Provider(p.Name),
			senders: lowerAll(p.SenderAny),
			loose:   strings.ToLower(strings.TrimSpace(p.LooseKeyword)),
		}
		if p.FooterRegexp != "" {
			re, err := regexp.Compile(p.FooterRegexp)
			if err != nil {
				return nil, fmt.Errorf("provider %s: footer regexp: %w", p.Name, err)
			}
			pm.footer = re
		}
		c.providers = append(c.providers, pm)
	}
	return c, nil
}

// Classify applies the pattern tables in strict precedence order: sender
// patterns against the header, sender patterns against the body (quoted
// headers appear inline in dumps), footer patterns, then the loose
// provider-name token. First match wins.
func (c *Classifier) Classify(text, senderHeader string) domain.Provider {
	if h := strings.ToLower(senderHeader); h != "" {
		for _, p := range c.providers {
			for _, s := range p.senders {
				if strings.Contains(h, s) {
					return p.name
				}
			}
		}
	}

	body := strings.ToLower(text)
	for _, p := range c.providers {
		for _, s := range p.senders {
			if strings.Contains(body, s) {
				return p.name
			}
		}
	}

	for _, p := range c.providers {
		if p.footer != nil && p.footer.MatchString(text) {
			return p.name
		}
	}

	for _, p := range c.providers {
		if p.loose != "" && strings.Contains(body, p.loose) {
			return p.name
		}
	}

	return domain.ProviderUnidentified
}
