/*
Copyright © 2025 SubstantialCattle5, nilaysharan.com
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
	"github.com/substantialcattle5/harvester/internal/progress"
	"github.com/substantialcattle5/harvester/internal/ui"
)

// verifyCmd represents the verify command
var verifyCmd = &cobra.Command{
	Use:   "verify [report]",
	Short: "Verify a saved report against the filesystem",
	Long: `Verify re-checks every record in a saved report: the file must still
exist and its fingerprint must still match. Records for missing or changed
files are dropped and the pruned report is written back.

Example:
  harvester verify report.json
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

		// An explicitly named report must parse; unlike the resume
		// checkpoint there is no sane way to continue without it.
		set, err := checkpoint.Load(reportPath)
		if err != nil {
			return fmt.Errorf("failed to load report: %w", err)
		}
		if len(set) == 0 {
			return fmt.Errorf("report %s contains no records", reportPath)
		}

		quiet, _ := cmd.Flags().GetBool("quiet")
		sink := progress.NewManager(progress.Options{
			Quiet:       quiet,
			Description: "Verifying files",
		})

		valid, report := checkpoint.Verify(set, logger, sink)
		ui.PrintVerifySummary(valid, report)

		saved, err := checkpoint.Save(valid, reportPath, logger)
		if err != nil {
			return fmt.Errorf("failed to update report: %w", err)
		}
		fmt.Printf("Verified report written to %s\n", saved)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
