package dumps

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
)

// Combine merges every "<prefix>*.txt" dump under dir into the first one,
// separated by "--- <name> ---" marker lines, and removes the merged
// originals. The engine's normalizer splits on the same marker, so a
// combined file round-trips into one section per original dump.
func Combine(dir, prefix string) (string, error) {
	dirents, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("read dump dir: %w", err)
	}

	var names []string
	for _, de := range dirents {
		if de.IsDir() {
			continue
		}
		name := de.Name()
		if strings.HasPrefix(name, prefix) && strings.HasSuffix(name, ".txt") {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "", fmt.Errorf("no %q dumps found in %s", prefix, dir)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		content, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			return "", fmt.Errorf("read %s: %w", name, err)
		}
		fmt.Fprintf(&b, "--- %s ---\n%s\n", name, strings.TrimRight(string(content), "\n"))
	}

	out := filepath.Join(dir, names[0])
	if err := os.WriteFile(out, []byte(b.String()), 0o644); err != nil {
		return "", fmt.Errorf("write combined dump: %w", err)
	}

	for _, name := range names[1:] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			return out, fmt.Errorf("remove merged %s: %w", name, err)
		}
	}
	return out, nil
}
