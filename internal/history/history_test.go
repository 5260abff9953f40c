package history

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderisk/deadscan/internal/models"
)

func TestRecordAndRecent(t *testing.T) {
	root := t.TempDir()
	store, err := Open(root)
	require.NoError(t, err)
	defer store.Close()

	base := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, store.Record(models.RunSummary{
			RunID:       string(rune('a' + i)),
			Timestamp:   base.Add(time.Duration(i) * time.Hour),
			UnusedTotal: i,
		}))
	}

	runs, err := store.Recent(2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, "c", runs[0].RunID)
	assert.Equal(t, "b", runs[1].RunID)
	assert.Equal(t, 2, runs[0].UnusedTotal)
}

func TestRecentEmptyStore(t *testing.T) {
	store, err := Open(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Recent(10)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestReopenPersists(t *testing.T) {
	root := t.TempDir()

	store, err := Open(root)
	require.NoError(t, err)
	require.NoError(t, store.Record(models.RunSummary{
		RunID:     "run-1",
		Timestamp: time.Date(2026, 8, 25, 9, 0, 0, 0, time.UTC),
		Alerted:   true,
	}))
	require.NoError(t, store.Close())

	store, err = Open(root)
	require.NoError(t, err)
	defer store.Close()

	runs, err := store.Recent(5)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "run-1", runs[0].RunID)
	assert.True(t, runs[0].Alerted)
}

func TestSummarize(t *testing.T) {
	result := &models.MonitoringResult{
		RunID:     "r1",
		Timestamp: "2026-08-25T10:00:00Z",
		CurrentAnalysis: &models.Report{
			CleanupPlan: models.CleanupPlan{
				Summary: models.CleanupSummary{
					TotalUnusedFunctions: 7,
					HighRisk:             2,
					MediumRisk:           3,
					LowRisk:              2,
					DeadCodeBlocks:       4,
				},
			},
		},
		Alert: "something grew",
	}

	summary, err := Summarize(result)
	require.NoError(t, err)
	assert.Equal(t, "r1", summary.RunID)
	assert.Equal(t, 7, summary.UnusedTotal)
	assert.Equal(t, 4, summary.DeadCodeBlocks)
	assert.True(t, summary.Alerted)

	result.Timestamp = "not-a-time"
	_, err = Summarize(result)
	require.Error(t, err)
}
