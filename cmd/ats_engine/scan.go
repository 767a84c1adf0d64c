package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/batch"
	"github.com/jonathan/ats-engine/internal/observability"
)

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Score a batch of resumes against one job requirement",
	Long:  "Scan reads a manifest of (applicationId, resumePath) pairs and scores every resume against the given job requirement with bounded parallelism. Per-resume failures are recorded in the summary and never abort the batch.",
	RunE:  runScan,
}

var (
	scanJobFile      string
	scanManifestFile string
	scanConfigFile   string
	scanOutputFile   string
	scanConcurrency  int
	scanTimeoutSecs  int
)

func init() {
	scanCmd.Flags().StringVarP(&scanJobFile, "job", "j", "", "Path to job requirement JSON file (required)")
	scanCmd.Flags().StringVarP(&scanManifestFile, "manifest", "m", "", "Path to manifest JSON file listing applications (required)")
	scanCmd.Flags().StringVarP(&scanConfigFile, "config", "c", "", "Path to config JSON file")
	scanCmd.Flags().StringVarP(&scanOutputFile, "out", "o", "", "Path to output JSON file (default: print summary)")
	scanCmd.Flags().IntVar(&scanConcurrency, "concurrency", 0, fmt.Sprintf("Concurrent extractions, 1-%d (default %d)", batch.MaxConcurrency, batch.DefaultConcurrency))
	scanCmd.Flags().IntVar(&scanTimeoutSecs, "timeout", 0, "Per-resume timeout in seconds (default 30)")
	_ = scanCmd.MarkFlagRequired("job")
	_ = scanCmd.MarkFlagRequired("manifest")

	rootCmd.AddCommand(scanCmd)
}

func runScan(_ *cobra.Command, _ []string) error {
	rt, err := buildRuntime(scanConfigFile)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	req, err := loadRequirement(scanJobFile)
	if err != nil {
		return err
	}
	applyWeights(req, rt.cfg)

	items, err := loadManifest(scanManifestFile)
	if err != nil {
		return err
	}

	// CLI flags win over config file values.
	concurrency := scanConcurrency
	if concurrency == 0 {
		concurrency = rt.cfg.Concurrency
	}
	timeoutSecs := scanTimeoutSecs
	if timeoutSecs == 0 {
		timeoutSecs = rt.cfg.TimeoutSeconds
	}

	orchestrator := batch.New(rt.index, batch.Options{
		Concurrency:    concurrency,
		PerFileTimeout: time.Duration(timeoutSecs) * time.Second,
		Logger:         rt.log,
	})

	summary, err := orchestrator.ScanJob(context.Background(), req, items)
	if err != nil {
		return fmt.Errorf("batch scan failed: %w", err)
	}

	if scanOutputFile != "" {
		if err := writeJSON(scanOutputFile, summary); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scanOutputFile)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintSummary(summary)
	return nil
}

// loadManifest reads a JSON array of batch items from a file.
func loadManifest(path string) ([]batch.Item, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var items []batch.Item
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to parse manifest JSON: %w", err)
	}

	for i, item := range items {
		if item.ResumePath == "" {
			return nil, fmt.Errorf("manifest item %d: resumePath is required", i)
		}
	}

	return items, nil
}
