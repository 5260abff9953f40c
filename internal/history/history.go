// Package history keeps a compact per-run index of monitoring results in a
// local bolt database, so trend queries never re-read the full JSON files.
package history

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/coderisk/deadscan/internal/config"
	"github.com/coderisk/deadscan/internal/models"
)

const dbFileName = "history.db"

var runsBucket = []byte("runs")

// Store is the on-disk run index.
type Store struct {
	db *bolt.DB
}

// Open opens (creating if needed) the history database for a project root.
func Open(root string) (*Store, error) {
	dir := config.ToolDir(root)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create tool directory: %w", err)
	}

	db, err := bolt.Open(filepath.Join(dir, dbFileName), 0600, &bolt.Options{Timeout: 2 * time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs bucket: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record persists one run summary, keyed by its RFC3339 timestamp so bolt's
// key order is chronological.
func (s *Store) Record(summary models.RunSummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("failed to marshal run summary: %w", err)
	}

	key := []byte(summary.Timestamp.UTC().Format(time.RFC3339Nano))
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put(key, data)
	})
}

// Recent returns up to limit run summaries, newest first.
func (s *Store) Recent(limit int) ([]models.RunSummary, error) {
	var runs []models.RunSummary

	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(runsBucket).Cursor()
		for k, v := c.Last(); k != nil && len(runs) < limit; k, v = c.Prev() {
			var summary models.RunSummary
			if err := json.Unmarshal(v, &summary); err != nil {
				return fmt.Errorf("corrupt run summary at key %s: %w", k, err)
			}
			runs = append(runs, summary)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.After(runs[j].Timestamp) })
	return runs, nil
}

// Summarize converts a monitoring result into its index row.
func Summarize(result *models.MonitoringResult) (models.RunSummary, error) {
	ts, err := time.Parse(time.RFC3339, result.Timestamp)
	if err != nil {
		return models.RunSummary{}, fmt.Errorf("invalid result timestamp %q: %w", result.Timestamp, err)
	}

	s := result.CurrentAnalysis.CleanupPlan.Summary
	return models.RunSummary{
		RunID:          result.RunID,
		Timestamp:      ts,
		UnusedTotal:    s.TotalUnusedFunctions,
		HighRisk:       s.HighRisk,
		MediumRisk:     s.MediumRisk,
		LowRisk:        s.LowRisk,
		DeadCodeBlocks: s.DeadCodeBlocks,
		Alerted:        result.Alert != "",
	}, nil
}
