/*
Copyright © 2025 SubstantialCattle5, nilaysharan.com
*/
package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/logging"
	"github.com/substantialcattle5/harvester/util"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [report]",
	Short: "Show statistics for a saved report",
	Long: `Display summary statistics for a saved report.

This includes:
- Number of files and total size
- Duplicate pairs and affected directories
- Space reclaimable by removing duplicate copies

Example:
  harvester stats report.json
`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		reportPath := cfg.ReportFile
		if len(args) == 1 {
			reportPath = args[0]
		}

		set, err := checkpoint.Load(reportPath)
		if err != nil {
			return fmt.Errorf("failed to load report: %w", err)
		}
		if len(set) == 0 {
			return fmt.Errorf("report %s contains no records", reportPath)
		}

		// Stats are read-only; nothing here belongs in the audit log.
		pairs := duplicate.Find(set, logging.Nop())
		groups := duplicate.GroupByDir(pairs)

		separator := strings.Repeat("─", 50)
		fmt.Println("📊 Report Statistics")
		fmt.Println(separator)
		fmt.Printf("  • Report:              %s\n", reportPath)
		fmt.Printf("  • Files:               %d\n", len(set))
		fmt.Printf("  • Total size:          %s\n", util.HumanReadableSize(set.TotalSize()))
		fmt.Printf("  • Duplicate pairs:     %d\n", len(pairs))
		fmt.Printf("  • Affected dirs:       %d\n", len(groups))
		fmt.Printf("  • Reclaimable space:   %s\n",
			util.HumanReadableSize(duplicate.ReclaimableSize(set, pairs)))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
