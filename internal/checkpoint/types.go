package checkpoint

import (
	"sort"
	"time"
)

// Record is the stored metadata for one observed file. A non-empty Hash
// reflects the file's contents as of the last successful fingerprint; it is
// not re-validated unless Verify is called.
type Record struct {
	Name         string    `json:"name"`
	Hash         string    `json:"hash"`
	Size         int64     `json:"size"`
	ModifiedTime time.Time `json:"modified_time"`
}

// Set maps file path to its Record. It doubles as the resumable work queue
// during a scan and as the final loadable report.
type Set map[string]Record

// SortedPaths returns the set's keys in lexicographic order. Every phase
// that iterates a Set goes through this so runs are reproducible.
func (s Set) SortedPaths() []string {
	paths := make([]string, 0, len(s))
	for path := range s {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

// Clone returns a shallow copy of the set.
func (s Set) Clone() Set {
	out := make(Set, len(s))
	for path, rec := range s {
		out[path] = rec
	}
	return out
}

// TotalSize sums the recorded sizes of all files in the set.
func (s Set) TotalSize() int64 {
	var total int64
	for _, rec := range s {
		total += rec.Size
	}
	return total
}
