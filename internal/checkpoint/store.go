// Package checkpoint persists fingerprinting progress so interrupted scans
// resume instead of starting over. The on-disk format is a JSON object
// mapping file path to its record, indented for human diffing.
package checkpoint

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
)

// DefaultReportName is used when a save target turns out to be a directory.
const DefaultReportName = "file_info_report.json"

// ErrCorrupt indicates a checkpoint file that exists but cannot be parsed.
// The caller may start fresh or abort; Load never guesses.
var ErrCorrupt = errors.New("corrupt checkpoint")

// Load reads a persisted Set from path. A missing file yields an empty set,
// since a first run has nothing to resume from.
func Load(path string) (Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Set{}, nil
		}
		return nil, fmt.Errorf("reading checkpoint %s: %w", path, err)
	}

	set := Set{}
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, path, err)
	}
	return set, nil
}

// Save writes the set to location atomically (temp file in the same
// directory, then rename). If location is an existing directory the report
// falls back to DefaultReportName inside it and a warning is logged. The
// path actually written is returned.
func Save(set Set, location string, logger *slog.Logger) (string, error) {
	if info, err := os.Stat(location); err == nil && info.IsDir() {
		fallback := filepath.Join(location, DefaultReportName)
		logger.Warn("save target is a directory, using default file name",
			"target", location, "fallback", fallback)
		location = fallback
	}

	data, err := json.MarshalIndent(set, "", "    ")
	if err != nil {
		return "", fmt.Errorf("serializing checkpoint: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(location), filepath.Base(location)+".tmp*")
	if err != nil {
		return "", fmt.Errorf("creating temp checkpoint: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return "", fmt.Errorf("writing checkpoint: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("closing checkpoint: %w", err)
	}
	if err := os.Rename(tmpName, location); err != nil {
		os.Remove(tmpName)
		return "", fmt.Errorf("replacing checkpoint %s: %w", location, err)
	}

	logger.Info("checkpoint saved", "path", location, "records", len(set))
	return location, nil
}
