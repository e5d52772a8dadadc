// Package report renders JobEntry batches for humans and downstream
// tools. The engine hands records over; everything filesystem-shaped
// lives here.
package report

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/gofrs/flock"

	"jobalert-engine/internal/domain"
)

// WriteJSON writes the data file under an advisory lock. Dump folders
// tend to live on sync'd drives where a second writer (or the sync agent)
// holding the file is a real hazard, so contention fails fast instead of
// corrupting the file.
func WriteJSON(ctx context.Context, path string, entries []domain.JobEntry) error {
	lock := flock.New(path + ".lock")

	lockCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	ok, err := lock.TryLockContext(lockCtx, 250*time.Millisecond)
	if err != nil {
		return fmt.Errorf("lock %s: %w", path, err)
	}
	if !ok {
		return fmt.Errorf("lock %s: held by another process", path)
	}
	defer func() { _ = lock.Unlock() }()

	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
