// Package resolve drives the per-directory duplicate resolution state
// machine. All prompt I/O sits behind the Selector interface so the state
// machine runs against a scripted selector in tests.
package resolve

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/fs"
)

// Selector supplies the decisions the engine needs. Implementations return
// an error when input could not be obtained; the engine treats that the
// same as unrecognized input and falls back to the safe action.
type Selector interface {
	GroupAction(group duplicate.Group) (GroupAction, error)
	PairAction(pair duplicate.Pair) (PairAction, error)
	Destination() (string, error)
}

// Summary counts what happened across all groups.
type Summary struct {
	Deleted int
	Moved   int
	Kept    int
	Skipped int
	Failed  int
}

// Engine applies resolution actions to the filesystem.
type Engine struct {
	Selector Selector
	Logger   *slog.Logger
	Out      io.Writer
}

// Resolve walks each group through the state machine. Every action and its
// outcome is logged; failures on one pair never abort the rest of its
// group.
func (e *Engine) Resolve(groups []duplicate.Group) Summary {
	var summary Summary

	for _, group := range groups {
		fmt.Fprintf(e.Out, "\nDirectory: %s (%d duplicate pairs)\n", group.Dir, len(group.Pairs))

		action, err := e.Selector.GroupAction(group)
		if err != nil {
			e.Logger.Warn("group action unavailable, skipping directory",
				"dir", group.Dir, "error", err)
			action = GroupSkip
		}
		e.Logger.Info("group action chosen", "dir", group.Dir, "action", action.String())

		switch action {
		case GroupDeleteAll:
			e.deleteAll(group, &summary)
		case GroupMoveAll:
			e.moveAll(group, &summary)
		case GroupIndividual:
			e.individual(group, &summary)
		default:
			fmt.Fprintf(e.Out, "Skipping directory: %s\n", group.Dir)
			summary.Skipped += len(group.Pairs)
		}
	}

	return summary
}

func (e *Engine) deleteAll(group duplicate.Group, summary *Summary) {
	for _, pair := range group.Pairs {
		e.deleteFile(pair.Path, summary)
	}
}

func (e *Engine) moveAll(group duplicate.Group, summary *Summary) {
	dest, err := e.destination()
	if err != nil {
		e.Logger.Warn("no usable destination, skipping directory",
			"dir", group.Dir, "error", err)
		fmt.Fprintf(e.Out, "Skipping directory: %s\n", group.Dir)
		summary.Skipped += len(group.Pairs)
		return
	}

	for _, pair := range group.Pairs {
		e.moveFile(pair.Path, dest, summary)
	}
}

func (e *Engine) individual(group duplicate.Group, summary *Summary) {
	for _, pair := range group.Pairs {
		fmt.Fprintf(e.Out, "\nDuplicate found:\n1. %s\n2. %s\n", pair.Path, pair.Original)

		action, err := e.Selector.PairAction(pair)
		if err != nil {
			e.Logger.Warn("pair action unavailable, keeping both",
				"path", pair.Path, "original", pair.Original, "error", err)
			action = PairKeepBoth
		}
		e.Logger.Info("pair action chosen",
			"path", pair.Path, "original", pair.Original, "action", action.String())

		switch action {
		case PairDeleteFirst:
			e.deleteFile(pair.Path, summary)
		case PairDeleteSecond:
			e.deleteFile(pair.Original, summary)
		case PairMoveFirst:
			e.movePrompted(pair.Path, summary)
		case PairMoveSecond:
			e.movePrompted(pair.Original, summary)
		default:
			fmt.Fprintf(e.Out, "Keeping both files.\n")
			e.Logger.Info("keeping both files", "path", pair.Path, "original", pair.Original)
			summary.Kept++
		}
	}
}

func (e *Engine) movePrompted(path string, summary *Summary) {
	dest, err := e.destination()
	if err != nil {
		e.Logger.Warn("no usable destination, keeping file", "path", path, "error", err)
		summary.Kept++
		return
	}
	e.moveFile(path, dest, summary)
}

func (e *Engine) destination() (string, error) {
	dest, err := e.Selector.Destination()
	if err != nil {
		return "", err
	}
	if dest == "" {
		return "", fmt.Errorf("empty destination")
	}
	if err := fs.EnsureDirectory(dest); err != nil {
		return "", fmt.Errorf("creating destination %s: %w", dest, err)
	}
	return dest, nil
}

func (e *Engine) deleteFile(path string, summary *Summary) {
	if err := os.Remove(path); err != nil {
		fmt.Fprintf(e.Out, "Error deleting %s: %v\n", path, err)
		e.Logger.Error("delete failed", "path", path, "error", err)
		summary.Failed++
		return
	}
	fmt.Fprintf(e.Out, "Deleted %s\n", path)
	e.Logger.Info("deleted file", "path", path)
	summary.Deleted++
}

func (e *Engine) moveFile(path, destDir string, summary *Summary) {
	dest, err := fs.MoveFile(path, destDir)
	if err != nil {
		fmt.Fprintf(e.Out, "Error moving %s: %v\n", path, err)
		e.Logger.Error("move failed", "path", path, "destination", destDir, "error", err)
		summary.Failed++
		return
	}
	fmt.Fprintf(e.Out, "Moved %s to %s\n", path, dest)
	e.Logger.Info("moved file", "path", path, "destination", dest)
	summary.Moved++
}
