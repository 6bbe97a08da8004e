package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/resolve"
	"github.com/substantialcattle5/harvester/util"
)

var (
	successColor = color.New(color.FgGreen)
	warnColor    = color.New(color.FgYellow)
	errorColor   = color.New(color.FgRed)
)

// PrintScanSummary reports the outcome of a scan.
func PrintScanSummary(set checkpoint.Set, pairs []duplicate.Pair, groups []duplicate.Group) {
	separator := strings.Repeat("─", 50)

	fmt.Println("\n📊 Scan Summary")
	fmt.Println(separator)
	fmt.Printf("  • Files fingerprinted: %d\n", len(set))
	fmt.Printf("  • Total size:          %s\n", util.HumanReadableSize(set.TotalSize()))

	if len(pairs) == 0 {
		successColor.Println("\n✅ No duplicates found.")
		return
	}

	warnColor.Printf("\n⚠ Duplicates found: %d pairs in %d directories\n", len(pairs), len(groups))
	fmt.Printf("  • Reclaimable space: %s\n",
		util.HumanReadableSize(duplicate.ReclaimableSize(set, pairs)))
	for _, pair := range pairs {
		fmt.Printf("  %s is a duplicate of %s\n", pair.Path, pair.Original)
	}
}

// PrintVerifySummary reports the outcome of a verification pass.
func PrintVerifySummary(valid checkpoint.Set, report checkpoint.Report) {
	separator := strings.Repeat("─", 50)

	fmt.Println("\n🔎 Verification Summary")
	fmt.Println(separator)
	fmt.Printf("  • Valid records:   %d\n", len(valid))
	fmt.Printf("  • Missing files:   %d\n", len(report.Missing))
	fmt.Printf("  • Changed files:   %d\n", len(report.Changed))
	fmt.Printf("  • Unreadable:      %d\n", len(report.Errors))

	for _, path := range report.Missing {
		warnColor.Printf("  missing: %s\n", path)
	}
	for _, path := range report.Changed {
		warnColor.Printf("  changed: %s\n", path)
	}
	for _, path := range report.Errors {
		errorColor.Printf("  unreadable: %s\n", path)
	}

	if report.Dropped() == 0 {
		successColor.Println("\n✅ All records verified.")
	}
}

// PrintResolveSummary reports what the resolution engine did.
func PrintResolveSummary(summary resolve.Summary) {
	separator := strings.Repeat("─", 50)

	fmt.Println("\n🧹 Resolution Summary")
	fmt.Println(separator)
	fmt.Printf("  • Deleted: %d\n", summary.Deleted)
	fmt.Printf("  • Moved:   %d\n", summary.Moved)
	fmt.Printf("  • Kept:    %d\n", summary.Kept)
	fmt.Printf("  • Skipped: %d\n", summary.Skipped)

	if summary.Failed > 0 {
		errorColor.Printf("  • Failed:  %d (see log for details)\n", summary.Failed)
	}
}
