package resolve

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/logging"
	"github.com/substantialcattle5/harvester/testutil"
)

// scriptedSelector feeds predetermined decisions to the engine.
type scriptedSelector struct {
	groupActions []GroupAction
	pairActions  []PairAction
	destination  string
	groupErr     error
	pairErr      error
	destErr      error
}

func (s *scriptedSelector) GroupAction(duplicate.Group) (GroupAction, error) {
	if s.groupErr != nil {
		return GroupSkip, s.groupErr
	}
	if len(s.groupActions) == 0 {
		return GroupSkip, nil
	}
	action := s.groupActions[0]
	s.groupActions = s.groupActions[1:]
	return action, nil
}

func (s *scriptedSelector) PairAction(duplicate.Pair) (PairAction, error) {
	if s.pairErr != nil {
		return PairKeepBoth, s.pairErr
	}
	if len(s.pairActions) == 0 {
		return PairKeepBoth, nil
	}
	action := s.pairActions[0]
	s.pairActions = s.pairActions[1:]
	return action, nil
}

func (s *scriptedSelector) Destination() (string, error) {
	return s.destination, s.destErr
}

func newEngine(selector Selector) *Engine {
	return &Engine{Selector: selector, Logger: logging.Nop(), Out: io.Discard}
}

func TestResolveDeleteAll(t *testing.T) {
	dir := testutil.TempDir(t, "resolve-test")

	var pairs []duplicate.Pair
	for i := 0; i < 3; i++ {
		orig := testutil.CreateTestFile(t, dir, fmt.Sprintf("orig%d.txt", i), "content")
		dup := testutil.CreateTestFile(t, dir, fmt.Sprintf("dup%d.txt", i), "content")
		pairs = append(pairs, duplicate.Pair{Path: dup, Original: orig})
	}

	// One duplicate vanishes before resolution runs.
	if err := os.Remove(pairs[1].Path); err != nil {
		t.Fatalf("Failed to remove file: %v", err)
	}

	engine := newEngine(&scriptedSelector{groupActions: []GroupAction{GroupDeleteAll}})
	summary := engine.Resolve([]duplicate.Group{{Dir: dir, Pairs: pairs}})

	if summary.Deleted != 2 {
		t.Errorf("Deleted = %d, want 2", summary.Deleted)
	}
	if summary.Failed != 1 {
		t.Errorf("Failed = %d, want 1 (the already-missing file)", summary.Failed)
	}

	// Originals are never touched by delete all.
	for _, pair := range pairs {
		if _, err := os.Stat(pair.Original); err != nil {
			t.Errorf("Original %s should survive delete all: %v", pair.Original, err)
		}
	}
	for i, pair := range pairs {
		if _, err := os.Stat(pair.Path); !os.IsNotExist(err) {
			t.Errorf("Duplicate %d (%s) should be gone", i, pair.Path)
		}
	}
}

func TestResolveMoveAll(t *testing.T) {
	dir := testutil.TempDir(t, "resolve-test")
	dest := filepath.Join(dir, "quarantine")

	orig := testutil.CreateTestFile(t, dir, "orig.txt", "content")
	dupA := testutil.CreateTestFile(t, dir, "dup_a.txt", "content")
	dupB := testutil.CreateTestFile(t, dir, "dup_b.txt", "content")

	engine := newEngine(&scriptedSelector{
		groupActions: []GroupAction{GroupMoveAll},
		destination:  dest,
	})
	summary := engine.Resolve([]duplicate.Group{{Dir: dir, Pairs: []duplicate.Pair{
		{Path: dupA, Original: orig},
		{Path: dupB, Original: orig},
	}}})

	if summary.Moved != 2 {
		t.Errorf("Moved = %d, want 2", summary.Moved)
	}
	for _, name := range []string{"dup_a.txt", "dup_b.txt"} {
		if _, err := os.Stat(filepath.Join(dest, name)); err != nil {
			t.Errorf("%s should be in the destination directory: %v", name, err)
		}
	}
	if _, err := os.Stat(orig); err != nil {
		t.Errorf("Original should stay put: %v", err)
	}
}

func TestResolveIndividual(t *testing.T) {
	dir := testutil.TempDir(t, "resolve-test")
	dest := filepath.Join(dir, "moved")

	t.Run("delete second targets the original", func(t *testing.T) {
		orig := testutil.CreateTestFile(t, dir, "ds_orig.txt", "x")
		dup := testutil.CreateTestFile(t, dir, "ds_dup.txt", "x")

		engine := newEngine(&scriptedSelector{
			groupActions: []GroupAction{GroupIndividual},
			pairActions:  []PairAction{PairDeleteSecond},
		})
		summary := engine.Resolve([]duplicate.Group{
			{Dir: dir, Pairs: []duplicate.Pair{{Path: dup, Original: orig}}},
		})

		if summary.Deleted != 1 {
			t.Errorf("Deleted = %d, want 1", summary.Deleted)
		}
		if _, err := os.Stat(orig); !os.IsNotExist(err) {
			t.Error("Original should be deleted by delete second")
		}
		if _, err := os.Stat(dup); err != nil {
			t.Errorf("Duplicate should survive delete second: %v", err)
		}
	})

	t.Run("move second targets the original", func(t *testing.T) {
		orig := testutil.CreateTestFile(t, dir, "ms_orig.txt", "y")
		dup := testutil.CreateTestFile(t, dir, "ms_dup.txt", "y")

		engine := newEngine(&scriptedSelector{
			groupActions: []GroupAction{GroupIndividual},
			pairActions:  []PairAction{PairMoveSecond},
			destination:  dest,
		})
		summary := engine.Resolve([]duplicate.Group{
			{Dir: dir, Pairs: []duplicate.Pair{{Path: dup, Original: orig}}},
		})

		if summary.Moved != 1 {
			t.Errorf("Moved = %d, want 1", summary.Moved)
		}
		if _, err := os.Stat(filepath.Join(dest, "ms_orig.txt")); err != nil {
			t.Errorf("Original should have moved: %v", err)
		}
		if _, err := os.Stat(dup); err != nil {
			t.Errorf("Duplicate should stay put: %v", err)
		}
	})

	t.Run("keep both touches nothing", func(t *testing.T) {
		orig := testutil.CreateTestFile(t, dir, "kb_orig.txt", "z")
		dup := testutil.CreateTestFile(t, dir, "kb_dup.txt", "z")

		engine := newEngine(&scriptedSelector{
			groupActions: []GroupAction{GroupIndividual},
			pairActions:  []PairAction{PairKeepBoth},
		})
		summary := engine.Resolve([]duplicate.Group{
			{Dir: dir, Pairs: []duplicate.Pair{{Path: dup, Original: orig}}},
		})

		if summary.Kept != 1 {
			t.Errorf("Kept = %d, want 1", summary.Kept)
		}
		for _, path := range []string{orig, dup} {
			if _, err := os.Stat(path); err != nil {
				t.Errorf("%s should be untouched: %v", path, err)
			}
		}
	})
}

func TestResolveSkip(t *testing.T) {
	dir := testutil.TempDir(t, "resolve-test")
	orig := testutil.CreateTestFile(t, dir, "orig.txt", "x")
	dup := testutil.CreateTestFile(t, dir, "dup.txt", "x")
	group := duplicate.Group{Dir: dir, Pairs: []duplicate.Pair{{Path: dup, Original: orig}}}

	engine := newEngine(&scriptedSelector{groupActions: []GroupAction{GroupSkip}})
	summary := engine.Resolve([]duplicate.Group{group})

	if summary.Skipped != 1 {
		t.Errorf("Skipped = %d, want 1", summary.Skipped)
	}
	for _, path := range []string{orig, dup} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s should be untouched by skip: %v", path, err)
		}
	}
}

func TestResolveSelectorFailureIsNeverDestructive(t *testing.T) {
	dir := testutil.TempDir(t, "resolve-test")
	orig := testutil.CreateTestFile(t, dir, "orig.txt", "x")
	dup := testutil.CreateTestFile(t, dir, "dup.txt", "x")
	group := duplicate.Group{Dir: dir, Pairs: []duplicate.Pair{{Path: dup, Original: orig}}}

	t.Run("group selector failure skips", func(t *testing.T) {
		engine := newEngine(&scriptedSelector{groupErr: fmt.Errorf("stdin closed")})
		summary := engine.Resolve([]duplicate.Group{group})
		if summary.Skipped != 1 || summary.Deleted != 0 {
			t.Errorf("Summary = %+v, want 1 skipped and nothing deleted", summary)
		}
	})

	t.Run("pair selector failure keeps both", func(t *testing.T) {
		engine := newEngine(&scriptedSelector{
			groupActions: []GroupAction{GroupIndividual},
			pairErr:      fmt.Errorf("stdin closed"),
		})
		summary := engine.Resolve([]duplicate.Group{group})
		if summary.Kept != 1 || summary.Deleted != 0 {
			t.Errorf("Summary = %+v, want 1 kept and nothing deleted", summary)
		}
	})

	t.Run("destination failure skips the move", func(t *testing.T) {
		engine := newEngine(&scriptedSelector{
			groupActions: []GroupAction{GroupMoveAll},
			destErr:      fmt.Errorf("stdin closed"),
		})
		summary := engine.Resolve([]duplicate.Group{group})
		if summary.Skipped != 1 || summary.Moved != 0 {
			t.Errorf("Summary = %+v, want 1 skipped and nothing moved", summary)
		}
	})

	for _, path := range []string{orig, dup} {
		if _, err := os.Stat(path); err != nil {
			t.Errorf("%s should survive every failure path: %v", path, err)
		}
	}
}

func TestResolveMoveAllCreatesDestination(t *testing.T) {
	dir := testutil.TempDir(t, "resolve-test")
	dest := filepath.Join(dir, "not", "yet", "there")

	orig := testutil.CreateTestFile(t, dir, "orig.txt", "x")
	dup := testutil.CreateTestFile(t, dir, "dup.txt", "x")

	engine := newEngine(&scriptedSelector{
		groupActions: []GroupAction{GroupMoveAll},
		destination:  dest,
	})
	summary := engine.Resolve([]duplicate.Group{
		{Dir: dir, Pairs: []duplicate.Pair{{Path: dup, Original: orig}}},
	})

	if summary.Moved != 1 {
		t.Errorf("Moved = %d, want 1", summary.Moved)
	}
	if _, err := os.Stat(filepath.Join(dest, "dup.txt")); err != nil {
		t.Errorf("Destination should have been created and used: %v", err)
	}
}
