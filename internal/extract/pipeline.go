// Package extract turns raw job-alert email dumps into structured
// JobEntry records. The pipeline per document is: classify provider →
// normalize into sections → per-section metadata + posting segmentation →
// aggregate into one entry. Everything heuristic that misses is reported
// through the injected diag.Sink; nothing here is fatal to a batch.
package extract

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/diag"
	"jobalert-engine/internal/domain"
)

// ErrUnidentified marks a document no provider pattern matched.
var ErrUnidentified = errors.New("no provider pattern matched")

// Engine is the extraction pipeline. It holds only compiled pattern
// tables and the diagnostics sink, so it is safe for concurrent use; all
// per-document state is local to Parse.
type Engine struct {
	classifier *Classifier
	rules      *ruleSet
	fallback   *ruleSet

	sectionSeps map[domain.Provider]*regexp.Regexp
	noise       []string

	scanLines       int
	alertCreated    []string
	subjectKeywords []string

	workers int
	limiter *rate.Limiter

	sink diag.Sink
}

func New(cfg config.Config, sink diag.Sink) (*Engine, error) {
	if sink == nil {
		sink = diag.Discard
	}

	classifier, err := NewClassifier(cfg.Providers)
	if err != nil {
		return nil, err
	}

	seps := make(map[domain.Provider]*regexp.Regexp)
	for _, p := range cfg.Providers {
		if p.SectionSeparator == "" {
			continue
		}
		re, err := regexp.Compile(p.SectionSeparator)
		if err != nil {
			return nil, fmt.Errorf("provider %s: section separator: %w", p.Name, err)
		}
		seps[domain.Provider(p.Name)] = re
	}

	ex := cfg.Extract
	scanLines := ex.MetadataScanLines
	if scanLines <= 0 {
		scanLines = 50
	}
	workers := cfg.App.Workers
	if workers <= 0 {
		workers = 1
	}

	var limiter *rate.Limiter
	if cfg.App.DocsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.App.DocsPerSecond), 1)
	}

	return &Engine{
		classifier:      classifier,
		rules:           newRuleSet(ex.ListingMarkers, ex.Positions, ex.Locations, ex.Qualifications, ex.RemoteSignals, ex.TitlePunctuation),
		fallback:        newRuleSet(ex.ListingMarkers, ex.Fallback.Positions, ex.Fallback.Locations, ex.Fallback.Qualifications, ex.RemoteSignals, ex.TitlePunctuation),
		sectionSeps:     seps,
		noise:           lowerAll(ex.NoisePhrases),
		scanLines:       scanLines,
		alertCreated:    lowerAll(ex.AlertCreatedPhrases),
		subjectKeywords: lowerAll(ex.SubjectKeywords),
		workers:         workers,
		limiter:         limiter,
		sink:            sink,
	}, nil
}

// Parse processes one document. An unidentifiable provider is the only
// error; every other heuristic miss degrades to sentinel values and a
// diagnostic.
func (e *Engine) Parse(doc domain.RawDocument) (domain.JobEntry, error) {
	provider := e.classifier.Classify(doc.Text, doc.SenderHeader)
	if !provider.Identified() {
		e.sink.Emit(diag.Event{
			Severity: diag.SeverityError,
			Kind:     diag.KindClassificationFailure,
			Message:  "no source identified",
			Filename: doc.Filename,
		})
		return domain.JobEntry{}, fmt.Errorf("%s: %w", doc.Filename, ErrUnidentified)
	}

	sections := normalizeContent(doc.Text, e.sectionSeps[provider], e.noise)

	metas := make([]metadata, 0, len(sections))
	results := make([]sectionResult, 0, len(sections))
	for _, sec := range sections {
		metas = append(metas, e.extractMetadata(sec, doc.Filename))
		results = append(results, e.segment(sec, provider, doc.Filename))
	}

	return aggregate(doc, provider, metas, results, time.Now().UTC()), nil
}

// ParseAll processes a batch of independent documents with a bounded
// worker pool. Cancellation is best-effort between documents, never
// mid-document. Output order is not related to input order.
func (e *Engine) ParseAll(ctx context.Context, docs []domain.RawDocument) ([]domain.JobEntry, []domain.Failure) {
	var (
		mu       sync.Mutex
		entries  []domain.JobEntry
		failures []domain.Failure
	)

	var g errgroup.Group
	g.SetLimit(e.workers)

	for _, doc := range docs {
		if ctx.Err() != nil {
			break
		}
		doc := doc
		g.Go(func() error {
			if e.limiter != nil {
				if err := e.limiter.Wait(ctx); err != nil {
					return nil
				}
			}
			if ctx.Err() != nil {
				return nil
			}

			entry, err := e.Parse(doc)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				failures = append(failures, domain.Failure{
					Filename: doc.Filename,
					Kind:     domain.FailureClassification,
					Reason:   err.Error(),
				})
				return nil
			}
			entries = append(entries, entry)
			return nil
		})
	}

	_ = g.Wait()
	return entries, failures
}
