/*
Copyright © 2025 SubstantialCattle5, nilaysharan.com
*/
package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/substantialcattle5/harvester/internal/checkpoint"
	"github.com/substantialcattle5/harvester/internal/collect"
	"github.com/substantialcattle5/harvester/internal/duplicate"
	"github.com/substantialcattle5/harvester/internal/fs"
	"github.com/substantialcattle5/harvester/internal/progress"
	"github.com/substantialcattle5/harvester/internal/resolve"
	"github.com/substantialcattle5/harvester/internal/scan"
	"github.com/substantialcattle5/harvester/internal/ui"
)

// scanCmd represents the scan command
var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan the configured directories for duplicate files",
	Long: `Scan walks every configured directory, fingerprints each file and
reports byte-for-byte duplicates.

Progress is checkpointed to the configured temp file, so re-running after
an interruption only fingerprints files not yet seen. The final report can
be saved for later use with 'harvester verify' and 'harvester resolve'.

Example:
  harvester scan                        # scan and save a report
  harvester scan --resolve              # scan, then resolve interactively
  harvester scan --output report.json   # save the report without prompting
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}
		for _, dir := range cfg.Directories {
			if err := fs.VerifyDirectory(dir); err != nil {
				return fmt.Errorf("invalid scan directory: %w", err)
			}
		}

		logger, logFile, err := openLogger(cmd, cfg)
		if err != nil {
			return err
		}
		defer logFile.Close()

		quiet, _ := cmd.Flags().GetBool("quiet")

		paths, err := scan.Walk(cfg.Directories, cfg.IgnoreList, logger)
		if err != nil {
			return fmt.Errorf("scan failed: %w", err)
		}
		fmt.Printf("Found %d files to examine\n", len(paths))

		// Resume from the previous checkpoint when one exists. A corrupt
		// checkpoint is logged and discarded; losing resume state is
		// cheaper than refusing to run.
		existing, err := checkpoint.Load(cfg.TempFile)
		if err != nil {
			if !errors.Is(err, checkpoint.ErrCorrupt) {
				return err
			}
			logger.Warn("discarding corrupt checkpoint", "path", cfg.TempFile, "error", err)
			existing = checkpoint.Set{}
		}

		collector := &collect.Collector{
			Workers:      cfg.Workers,
			SaveInterval: cfg.SaveInterval,
			TempFile:     cfg.TempFile,
			Logger:       logger,
			Sink: progress.NewManager(progress.Options{
				Quiet:       quiet,
				Description: "Processing files",
			}),
		}

		set, err := collector.Run(cmd.Context(), paths, existing)
		if err != nil {
			return fmt.Errorf("fingerprinting failed: %w", err)
		}

		pairs := duplicate.Find(set, logger)
		groups := duplicate.GroupByDir(pairs)
		ui.PrintScanSummary(set, pairs, groups)

		// Persist the report. The engine already saved the working set to
		// the temp file; this is the user-facing copy.
		output, _ := cmd.Flags().GetString("output")
		if output == "" {
			output, err = ui.PromptReportPath("Path to save the report file", cfg.ReportFile)
			if err != nil {
				return err
			}
		}
		saved, err := checkpoint.Save(set, output, logger)
		if err != nil {
			return fmt.Errorf("failed to save report: %w", err)
		}
		fmt.Printf("File information saved to %s\n", saved)

		doResolve, _ := cmd.Flags().GetBool("resolve")
		if doResolve && len(groups) > 0 {
			engine := &resolve.Engine{
				Selector: ui.NewPromptSelector(),
				Logger:   logger,
				Out:      cmd.OutOrStdout(),
			}
			summary := engine.Resolve(groups)
			ui.PrintResolveSummary(summary)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().Bool("resolve", false, "Resolve duplicates interactively after scanning")
	scanCmd.Flags().StringP("output", "o", "", "Report path (prompts when omitted)")
}
