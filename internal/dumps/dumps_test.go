package dumps

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"jobalert-engine/internal/diag"
	"jobalert-engine/internal/domain"
)

func writeDump(t *testing.T, dir, name string, content []byte) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), content, 0o644); err != nil {
		t.Fatal(err)
	}
}

func docByName(docs []domain.RawDocument, name string) (domain.RawDocument, bool) {
	for _, d := range docs {
		if d.Filename == name {
			return d, true
		}
	}
	return domain.RawDocument{}, false
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	sink := diag.NewMemorySink()

	writeDump(t, dir, "alert.txt", []byte("Job alerts\nSoftware Engineer\n"))
	writeDump(t, dir, "alert.eml", []byte("From: Glassdoor <noreply@glassdoor.com>\nSubject: New jobs\n\nJob alerts\n"))
	writeDump(t, dir, "alert.html", []byte("<html><body><p>Job alerts</p><p>Data Analyst</p></body></html>"))
	writeDump(t, dir, "notes.md", []byte("ignored"))
	writeDump(t, dir, "broken.txt", []byte("bad\x00bytes"))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "subdir"), 0o755))

	docs, failures, err := Discover(dir, sink)
	require.NoError(t, err)

	require.Len(t, docs, 3)
	require.Len(t, failures, 1)

	txt, ok := docByName(docs, "alert.txt")
	require.True(t, ok)
	assert.Equal(t, "Job alerts\nSoftware Engineer\n", txt.Text)
	assert.Empty(t, txt.SenderHeader)

	eml, ok := docByName(docs, "alert.eml")
	require.True(t, ok)
	assert.Equal(t, "Glassdoor <noreply@glassdoor.com>", eml.SenderHeader)
	assert.Contains(t, eml.Text, "Job alerts")

	html, ok := docByName(docs, "alert.html")
	require.True(t, ok)
	assert.Equal(t, "Job alerts\nData Analyst", html.Text)

	assert.Equal(t, "broken.txt", failures[0].Filename)
	assert.Equal(t, domain.FailureStructural, failures[0].Kind)
	assert.Equal(t, 1, sink.CountKind(diag.KindStructuralFailure))
}

func TestDiscoverMissingDir(t *testing.T) {
	_, _, err := Discover(filepath.Join(t.TempDir(), "nope"), nil)
	require.Error(t, err)
}

func TestDecodeWindows1252Fallback(t *testing.T) {
	dir := t.TempDir()
	// "Ingénieur" in Windows-1252: é is 0xE9, invalid as UTF-8
	writeDump(t, dir, "latin.txt", []byte("Ing\xe9nieur Logiciel\n"))

	docs, failures, err := Discover(dir, diag.Discard)
	require.NoError(t, err)
	require.Empty(t, failures)
	require.Len(t, docs, 1)
	assert.Equal(t, "Ingénieur Logiciel\n", docs[0].Text)
}

func TestFlattenHTML(t *testing.T) {
	src := `<html><head><title>x</title><style>p{color:red}</style></head>
<body>
<script>alert("no")</script>
<div><p>Job&nbsp;alerts</p><p>Senior   Software Engineer</p></div>
<li><a href="#">Remote</a></li>
</body></html>`

	flat, err := FlattenHTML(src)
	require.NoError(t, err)

	lines := strings.Split(flat, "\n")
	assert.Contains(t, lines, "Job alerts")
	assert.Contains(t, lines, "Senior Software Engineer")
	assert.Contains(t, lines, "Remote")
	assert.NotContains(t, flat, "alert(\"no\")")
	assert.NotContains(t, flat, "color:red")
}

func TestFlattenHTMLBareText(t *testing.T) {
	flat, err := FlattenHTML("just plain text, no markup")
	require.NoError(t, err)
	assert.Equal(t, "just plain text, no markup", flat)
}

func TestCombine(t *testing.T) {
	dir := t.TempDir()
	writeDump(t, dir, "glassdoor_2.txt", []byte("second\n"))
	writeDump(t, dir, "glassdoor_1.txt", []byte("first\n"))
	writeDump(t, dir, "linkedin_1.txt", []byte("other provider\n"))

	out, err := Combine(dir, "glassdoor")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "glassdoor_1.txt"), out)

	b, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "--- glassdoor_1.txt ---\nfirst\n--- glassdoor_2.txt ---\nsecond\n", string(b))

	_, err = os.Stat(filepath.Join(dir, "glassdoor_2.txt"))
	assert.True(t, os.IsNotExist(err), "merged originals must be removed")
	_, err = os.Stat(filepath.Join(dir, "linkedin_1.txt"))
	assert.NoError(t, err, "other prefixes must be untouched")
}

func TestCombineNoMatches(t *testing.T) {
	_, err := Combine(t.TempDir(), "glassdoor")
	require.Error(t, err)
}
