/*
Copyright © 2025 SubstantialCattle5, nilaysharan.com
*/
package cmd

import (
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/substantialcattle5/harvester/internal/config"
	"github.com/substantialcattle5/harvester/internal/logging"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "harvester",
	Short: "Harvester - find and resolve duplicate files",
	Long: `Harvester scans directory trees, fingerprints every file and finds
byte-for-byte duplicates. Scans checkpoint their progress so an interrupted
run resumes where it left off, and duplicates are resolved interactively
per directory.`,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	// Setup signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		fmt.Printf("\nReceived signal %v, shutting down...\n", sig)
		os.Exit(1)
	}()

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// loadConfig reads the configuration named by the --config flag.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}

// openLogger builds the audit logger from configuration and flags. The
// returned file must be closed when the command finishes.
func openLogger(cmd *cobra.Command, cfg *config.Config) (*slog.Logger, *os.File, error) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	return logging.New(cfg.LogFile, verbose)
}

func init() {
	rootCmd.PersistentFlags().StringP("config", "c", "harvester.yaml", "Path to the configuration file")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Mirror the audit log to stderr")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "Disable progress bars and reduce output")
}
