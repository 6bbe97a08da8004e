package checkpoint

import (
	"log/slog"
	"os"

	"github.com/substantialcattle5/harvester/internal/fingerprint"
	"github.com/substantialcattle5/harvester/internal/progress"
)

// Report summarizes what Verify found. Missing and Changed are distinct
// categories: a deleted file is not the same defect as a modified one.
type Report struct {
	Missing []string
	Changed []string
	Errors  []string
}

// Dropped returns the number of records excluded from the valid set.
func (r Report) Dropped() int {
	return len(r.Missing) + len(r.Changed) + len(r.Errors)
}

// Verify re-checks every record against the filesystem: the file must still
// exist and its recomputed fingerprint must match the stored one. Records
// failing either check are dropped from the returned set and reported.
func Verify(set Set, logger *slog.Logger, sink progress.Sink) (Set, Report) {
	valid := make(Set, len(set))
	var report Report

	sink.Total(len(set))
	for _, path := range set.SortedPaths() {
		rec := set[path]

		if _, err := os.Stat(path); err != nil {
			if os.IsNotExist(err) {
				logger.Warn("file not found", "path", path)
				report.Missing = append(report.Missing, path)
			} else {
				logger.Warn("file not accessible", "path", path, "error", err)
				report.Errors = append(report.Errors, path)
			}
			sink.Add(1)
			continue
		}

		hash, err := fingerprint.File(path)
		if err != nil {
			logger.Warn("file not readable during verification", "path", path, "error", err)
			report.Errors = append(report.Errors, path)
			sink.Add(1)
			continue
		}
		if hash != rec.Hash {
			logger.Warn("file hash changed", "path", path, "recorded", rec.Hash, "current", hash)
			report.Changed = append(report.Changed, path)
			sink.Add(1)
			continue
		}

		valid[path] = rec
		sink.Add(1)
	}
	sink.Finish()

	return valid, report
}
