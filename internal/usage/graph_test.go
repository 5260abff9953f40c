package usage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/extractor"
	"github.com/coderisk/deadscan/internal/models"
	"github.com/stretchr/testify/require"
)

func extractInto(t *testing.T, files map[string]string) map[string]*models.FileExtraction {
	t.Helper()
	e := extractor.New()
	out := make(map[string]*models.FileExtraction, len(files))
	for path, content := range files {
		out[path] = e.Extract(content)
	}
	return out
}

func newAnalyzer(t *testing.T) *Analyzer {
	t.Helper()
	a, err := NewAnalyzer(config.DefaultPatterns())
	require.NoError(t, err)
	return a
}

func TestBuildProjectUnionsSets(t *testing.T) {
	files := extractInto(t, map[string]string{
		"a.js": "export function alpha() {}\nbeta();\n",
		"b.js": "function beta() {}\ngamma();\n",
	})

	p := BuildProject(files)

	require.Contains(t, p.AllCalls, "beta")
	require.Contains(t, p.AllCalls, "gamma")
	require.Contains(t, p.AllExports, "alpha")
	require.NotEmpty(t, p.Definitions["a.js"])
	require.NotEmpty(t, p.Definitions["b.js"])
}

func TestUnusedByFileEndToEnd(t *testing.T) {
	// The exported function is excluded; helper is never called.
	files := extractInto(t, map[string]string{
		"main.ts": "export function used() {}\nfunction helper() {}\nused();\n",
	})

	a := newAnalyzer(t)
	unused := a.UnusedByFile(BuildProject(files))

	require.Len(t, unused, 1)
	names := make([]string, 0)
	for _, def := range unused["main.ts"] {
		names = append(names, def.Name)
	}
	require.Contains(t, names, "helper")
	require.NotContains(t, names, "used")
}

func TestCalledDefinitionIsNotUnused(t *testing.T) {
	files := extractInto(t, map[string]string{
		"a.js": "function worker() {}\n",
		"b.js": "worker();\n",
	})

	a := newAnalyzer(t)
	unused := a.UnusedByFile(BuildProject(files))

	require.Empty(t, unused)
}

func TestProtectedNamesNeverBecomeFindings(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"event handler prefix", "function onClick() {}\n"},
		{"handle prefix", "function handleSubmit() {}\n"},
		{"lifecycle", "function componentDidMount() {}\n"},
		{"listener suffix", "function scrollListener() {}\n"},
		{"handler suffix", "function errorHandler() {}\n"},
		{"test prefix", "function testParser() {}\n"},
		{"describe prefix", "function describeSuite() {}\n"},
	}

	a := newAnalyzer(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			files := extractInto(t, map[string]string{"x.js": tt.source})
			unused := a.UnusedByFile(BuildProject(files))
			require.Empty(t, unused)
		})
	}
}

func TestExportSetMembershipExcludes(t *testing.T) {
	// fetchRows is defined unexported but re-exported via a brace list.
	files := extractInto(t, map[string]string{
		"db.js": "function fetchRows() {}\nexport { fetchRows }\n",
	})

	a := newAnalyzer(t)
	unused := a.UnusedByFile(BuildProject(files))

	require.Empty(t, unused)
}

func TestIndirectUseSuppressesFinding(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "dispatch.js")
	source := "function refreshView() {}\nregistry.dispatch('refreshView');\n"
	require.NoError(t, os.WriteFile(path, []byte(source), 0644))

	e := extractor.New()
	files := map[string]*models.FileExtraction{path: e.Extract(source)}

	a := newAnalyzer(t)
	unused := a.UnusedByFile(BuildProject(files))

	require.Empty(t, unused)
}

func TestDuplicateRecordsYieldOneFinding(t *testing.T) {
	// Several extraction rules match the same declaration line; the unused
	// view reports it once.
	files := extractInto(t, map[string]string{
		"cache.js": "function loadCache(path) {\n}\n",
	})
	require.Greater(t, len(files["cache.js"].Definitions), 1)

	a := newAnalyzer(t)
	unused := a.UnusedByFile(BuildProject(files))
	require.Len(t, unused["cache.js"], 1)
}

func TestUnusedDeterministicOrdering(t *testing.T) {
	files := extractInto(t, map[string]string{
		"b.js": "function stale() {}\n",
		"a.js": "function crusty() {}\n",
	})

	a := newAnalyzer(t)
	p := BuildProject(files)

	first := a.UnusedByFile(p)
	second := a.UnusedByFile(p)
	require.Equal(t, first, second)
	require.Equal(t, []string{"a.js", "b.js"}, p.Files())
}

func TestDetectorScan(t *testing.T) {
	d := NewDetector()

	tests := []struct {
		name    string
		content string
		want    bool
	}{
		{"quoted literal", `lookup["computeTotals"]()`, true},
		{"call with string", `fn.call(this, "computeTotals")`, true},
		{"apply with string", `fn.apply(null, ["computeTotals"])`, true},
		{"event registration", `el.addEventListener('click', "computeTotals")`, true},
		{"no evidence", `computeTotals(1, 2)`, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, d.Scan("computeTotals", tt.content))
		})
	}
}

func TestDetectorMissingFileIsNoEvidence(t *testing.T) {
	d := NewDetector()
	require.False(t, d.IsIndirectlyCalled("anything", "/nonexistent/file.js"))
}
