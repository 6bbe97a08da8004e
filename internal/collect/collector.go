// Package collect coordinates the concurrent fingerprinting phase. Workers
// are stateless path-to-result functions; only the collector goroutine
// touches the working set, so no locking is needed on the hot path.
package collect

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
	"github.com/substantialcattle5/harvester/internal/fingerprint"
	"github.com/substantialcattle5/harvester/internal/progress"
)

// Collector runs the bounded worker pool and owns checkpoint persistence
// during the run.
type Collector struct {
	Workers      int
	SaveInterval int
	TempFile     string
	Logger       *slog.Logger
	Sink         progress.Sink
}

type result struct {
	path string
	rec  checkpoint.Record
	err  error
}

// Run fingerprints every path not already present in existing and returns
// the merged set. Progress is checkpointed to TempFile every SaveInterval
// merged records and once more after the pool drains, so an interrupted run
// loses at most SaveInterval records. Individual fingerprint failures are
// logged and excluded; a failed periodic save is retried at the next
// interval rather than aborting the run.
func (c *Collector) Run(ctx context.Context, paths []string, existing checkpoint.Set) (checkpoint.Set, error) {
	workers := c.Workers
	if workers <= 0 {
		workers = 1
	}

	set := existing.Clone()
	if set == nil {
		set = checkpoint.Set{}
	}

	var pending []string
	for _, path := range paths {
		if _, known := set[path]; !known {
			pending = append(pending, path)
		}
	}

	c.Logger.Info("fingerprinting started",
		"total", len(paths), "known", len(paths)-len(pending), "pending", len(pending))

	c.Sink.Total(len(pending))
	if len(pending) == 0 {
		c.Sink.Finish()
		return set, nil
	}

	jobs := make(chan string)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for path := range jobs {
				results <- fingerprintFile(path)
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, path := range pending {
			select {
			case jobs <- path:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	// Single-writer merge loop. Workers only ever send values here.
	merged := 0
	failed := 0
	for res := range results {
		c.Sink.Add(1)

		if res.err != nil {
			c.Logger.Error("fingerprint failed", "path", res.path, "error", res.err)
			failed++
			continue
		}

		set[res.path] = res.rec
		merged++

		if merged%c.SaveInterval == 0 {
			if _, err := checkpoint.Save(set, c.TempFile, c.Logger); err != nil {
				c.Logger.Error("periodic checkpoint save failed", "path", c.TempFile, "error", err)
			}
		}
	}
	c.Sink.Finish()

	// Final save: the persisted state must match the in-memory state even
	// if the run is interrupted right after this point.
	if _, err := checkpoint.Save(set, c.TempFile, c.Logger); err != nil {
		c.Logger.Error("final checkpoint save failed", "path", c.TempFile, "error", err)
		return set, err
	}

	c.Logger.Info("fingerprinting finished", "records", len(set), "failed", failed)
	return set, ctx.Err()
}

func fingerprintFile(path string) result {
	hash, err := fingerprint.File(path)
	if err != nil {
		return result{path: path, err: err}
	}

	info, err := os.Stat(path)
	if err != nil {
		return result{path: path, err: &fingerprint.Error{Path: path, Err: err}}
	}

	return result{
		path: path,
		rec: checkpoint.Record{
			Name:         filepath.Base(path),
			Hash:         hash,
			Size:         info.Size(),
			ModifiedTime: info.ModTime(),
		},
	}
}
