// Package dumps finds and loads saved email dumps. It is a collaborator
// of the extraction engine: it materializes RawDocuments, the engine
// never touches the filesystem itself.
package dumps

import (
	"bytes"
	"errors"
	"fmt"
	"net/mail"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"

	"jobalert-engine/internal/diag"
	"jobalert-engine/internal/domain"
)

var errBinaryContent = errors.New("binary content")

// Discover reads every dump under dir (.txt, .eml, .html) fully into
// memory. Unreadable or undecodable files become structural failures;
// the rest of the batch is unaffected.
func Discover(dir string, sink diag.Sink) ([]domain.RawDocument, []domain.Failure, error) {
	if sink == nil {
		sink = diag.Discard
	}

	dirents, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, fmt.Errorf("read dump dir: %w", err)
	}

	var (
		docs     []domain.RawDocument
		failures []domain.Failure
	)

	structural := func(name string, err error) {
		failures = append(failures, domain.Failure{
			Filename: name,
			Kind:     domain.FailureStructural,
			Reason:   err.Error(),
		})
		sink.Emit(diag.Event{
			Severity: diag.SeverityError,
			Kind:     diag.KindStructuralFailure,
			Message:  err.Error(),
			Filename: name,
		})
	}

	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		ext := strings.ToLower(filepath.Ext(name))
		if ext != ".txt" && ext != ".eml" && ext != ".html" {
			continue
		}

		b, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			structural(name, err)
			continue
		}

		text, err := decode(b)
		if err != nil {
			structural(name, err)
			continue
		}

		doc := domain.RawDocument{Filename: name, Text: text}

		switch ext {
		case ".eml":
			// the From header rides along as the sender hint; the body
			// stays raw text for the engine
			if from := fromHeader(text); from != "" {
				doc.SenderHeader = from
			}
		case ".html":
			flat, err := FlattenHTML(text)
			if err != nil {
				structural(name, err)
				continue
			}
			doc.Text = flat
		}

		docs = append(docs, doc)
	}

	return docs, failures, nil
}

// decode is best-effort: UTF-8 as-is, anything else through a
// Windows-1252 fallback. Dumps with NUL bytes are not text at all.
func decode(b []byte) (string, error) {
	if bytes.IndexByte(b, 0) >= 0 {
		return "", errBinaryContent
	}
	if utf8.Valid(b) {
		return string(b), nil
	}
	out, _, err := transform.Bytes(charmap.Windows1252.NewDecoder(), b)
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(out), nil
}

func fromHeader(raw string) string {
	msg, err := mail.ReadMessage(strings.NewReader(raw))
	if err != nil {
		return ""
	}
	return msg.Header.Get("From")
}
