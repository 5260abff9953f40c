package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	cfg := Default()

	assert.Contains(t, cfg.Scan.IgnoreDirs, "node_modules")
	assert.Contains(t, cfg.Scan.IgnoreDirs, ToolDirName)
	assert.Contains(t, cfg.Scan.SourceExtensions, ".ts")
	assert.Contains(t, cfg.Scan.SourceExtensions, ".mjs")

	assert.Equal(t, 50, cfg.Monitor.MaxUnusedFunctions)
	assert.Equal(t, 200, cfg.Monitor.MaxDeadCodeBlocks)
	assert.Equal(t, 30*24*time.Hour, cfg.Monitor.CleanupInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Monitor.RetentionWindow)

	assert.Equal(t, 2, cfg.Planner.LowMinutesPerItem)
	assert.Equal(t, 5, cfg.Planner.MediumMinutesPerItem)
	assert.Equal(t, 10, cfg.Planner.HighMinutesPerItem)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("DEADSCAN_MAX_UNUSED_FUNCTIONS", "7")
	t.Setenv("DEADSCAN_RETENTION_DAYS", "14")
	t.Setenv("DEADSCAN_ALERT_ON_NEW_FUNCTIONS", "false")

	cfg := Default()
	applyEnvOverrides(cfg)

	assert.Equal(t, 7, cfg.Monitor.MaxUnusedFunctions)
	assert.Equal(t, 14*24*time.Hour, cfg.Monitor.RetentionWindow)
	assert.False(t, cfg.Monitor.AlertOnNewFunctions)
}

func TestEnvOverrideIgnoresGarbage(t *testing.T) {
	t.Setenv("DEADSCAN_MAX_UNUSED_FUNCTIONS", "many")

	cfg := Default()
	applyEnvOverrides(cfg)

	assert.Equal(t, 50, cfg.Monitor.MaxUnusedFunctions)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")

	cfg := Default()
	cfg.Monitor.MaxUnusedFunctions = 99
	cfg.Monitor.RetentionWindow = 14 * 24 * time.Hour
	cfg.Scan.SourceExtensions = []string{".vue"}
	require.NoError(t, cfg.Save(path))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 99, loaded.Monitor.MaxUnusedFunctions)
	assert.Equal(t, 14*24*time.Hour, loaded.Monitor.RetentionWindow)
	assert.Equal(t, []string{".vue"}, loaded.Scan.SourceExtensions)
}

func TestLoadHonorsHandWrittenFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(
		"monitor:\n  max_unused_functions: 7\n  max_dead_code_blocks: 11\nplanner:\n  low_minutes_per_item: 1\n"), 0644))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 7, loaded.Monitor.MaxUnusedFunctions)
	assert.Equal(t, 11, loaded.Monitor.MaxDeadCodeBlocks)
	assert.Equal(t, 1, loaded.Planner.LowMinutesPerItem)
	// keys absent from the file keep their defaults
	assert.Equal(t, 5, loaded.Planner.MediumMinutesPerItem)
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 50, cfg.Monitor.MaxUnusedFunctions)
}

func TestToolDir(t *testing.T) {
	assert.Equal(t, filepath.Join("/proj", ToolDirName), ToolDir("/proj"))
}

func TestDefaultPatternsCompile(t *testing.T) {
	protected, test, err := DefaultPatterns().Compile()
	require.NoError(t, err)
	assert.Len(t, protected, 8)
	assert.Len(t, test, 5)
}

func TestLoadPatternsFallsBackToDefaults(t *testing.T) {
	root := t.TempDir()

	p, err := LoadPatterns(root)
	require.NoError(t, err)
	assert.Equal(t, DefaultPatterns(), p)
}

func TestLoadPatternsPartialOverride(t *testing.T) {
	root := t.TempDir()
	dir := ToolDir(root)
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "patterns.yaml"),
		[]byte("protected:\n  - '^custom'\n"), 0644))

	p, err := LoadPatterns(root)
	require.NoError(t, err)
	assert.Equal(t, []string{"^custom"}, p.Protected)
	// untouched section keeps the built-ins
	assert.Equal(t, DefaultPatterns().Test, p.Test)
}

func TestPatternsSaveRoundTrip(t *testing.T) {
	root := t.TempDir()
	p := &Patterns{Protected: []string{"^keep"}, Test: []string{"^spec"}}
	require.NoError(t, p.Save(root))

	loaded, err := LoadPatterns(root)
	require.NoError(t, err)
	assert.Equal(t, p, loaded)
}

func TestCompileRejectsInvalidPattern(t *testing.T) {
	p := &Patterns{Protected: []string{"("}, Test: nil}
	_, _, err := p.Compile()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid protected pattern")
}
