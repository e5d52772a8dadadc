package extract

import (
	"testing"

	"jobalert-engine/internal/config"
	"jobalert-engine/internal/diag"
)

func newTestEngine(t *testing.T) (*Engine, *diag.MemorySink) {
	t.Helper()
	sink := diag.NewMemorySink()
	e, err := New(config.Default(), sink)
	if err != nil {
		t.Fatalf("engine init: %v", err)
	}
	return e, sink
}
