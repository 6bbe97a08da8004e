// Package duplicate finds files sharing a fingerprint and arranges them for
// resolution.
package duplicate

import (
	"log/slog"
	"path/filepath"
	"sort"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
)

// Pair links a later-discovered duplicate to the first path seen with the
// same fingerprint.
type Pair struct {
	// Path is the duplicate, discovered after Original.
	Path string
	// Original is the first-seen path for this fingerprint.
	Original string
}

// Group collects the pairs whose duplicate member lives in one directory.
type Group struct {
	Dir   string
	Pairs []Pair
}

// Find walks the set in sorted-path order and pairs every path against the
// first-seen path carrying the same hash. A group of N identical files
// yields N-1 pairs, each referencing the same first-seen path. An empty set
// yields no pairs.
func Find(set checkpoint.Set, logger *slog.Logger) []Pair {
	firstSeen := make(map[string]string)
	var pairs []Pair

	for _, path := range set.SortedPaths() {
		hash := set[path].Hash
		if original, ok := firstSeen[hash]; ok {
			pairs = append(pairs, Pair{Path: path, Original: original})
			logger.Info("duplicate found", "path", path, "original", original, "hash", hash)
		} else {
			firstSeen[hash] = path
		}
	}

	return pairs
}

// GroupByDir buckets pairs by the directory containing the duplicate
// member. Groups come back ordered by directory and pairs keep detection
// order, so resolution proceeds the same way every run.
func GroupByDir(pairs []Pair) []Group {
	byDir := make(map[string][]Pair)
	for _, pair := range pairs {
		dir := filepath.Dir(pair.Path)
		byDir[dir] = append(byDir[dir], pair)
	}

	dirs := make([]string, 0, len(byDir))
	for dir := range byDir {
		dirs = append(dirs, dir)
	}
	sort.Strings(dirs)

	groups := make([]Group, 0, len(dirs))
	for _, dir := range dirs {
		groups = append(groups, Group{Dir: dir, Pairs: byDir[dir]})
	}
	return groups
}

// ReclaimableSize sums the sizes of the duplicate members of all pairs,
// i.e. the space freed if every later-discovered copy were removed.
func ReclaimableSize(set checkpoint.Set, pairs []Pair) int64 {
	var total int64
	for _, pair := range pairs {
		total += set[pair.Path].Size
	}
	return total
}
