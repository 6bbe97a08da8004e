/*
Copyright © 2025 SubstantialCattle5, nilaysharan.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/resolve"
	"github.com/substantialcattle5/harvester/internal/ui"
)

// resolveCmd represents the resolve command
var resolveCmd = &cobra.Command{
	Use:   "resolve [report]",
	Short: "Resolve duplicates recorded in a saved report",
	Long: `Resolve loads a saved report, detects duplicate pairs from it and walks
each affected directory through the interactive resolution workflow:
skip, delete all, move all, or decide pair by pair.

Running 'harvester verify' first is recommended when the report is old;
resolution acts on the filesystem as it is now, not as it was scanned.

Example:
  harvester resolve report.json
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

		logger, logFile, err := openLogger(cmd, cfg)
		if err != nil {
			return err
		}
		defer logFile.Close()

		set, err := checkpoint.Load(reportPath)
		if err != nil {
			return fmt.Errorf("failed to load report: %w", err)
		}
		if len(set) == 0 {
			return fmt.Errorf("report %s contains no records", reportPath)
		}

		pairs := duplicate.Find(set, logger)
		if len(pairs) == 0 {
			fmt.Println("No duplicates found.")
			return nil
		}
		groups := duplicate.GroupByDir(pairs)

		engine := &resolve.Engine{
			Selector: ui.NewPromptSelector(),
			Logger:   logger,
			Out:      cmd.OutOrStdout(),
		}
		summary := engine.Resolve(groups)
		ui.PrintResolveSummary(summary)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resolveCmd)
}
