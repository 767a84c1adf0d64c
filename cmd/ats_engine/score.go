package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/jonathan/ats-engine/internal/document"
	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/observability"
	"github.com/jonathan/ats-engine/internal/scoring"
)

var scoreCmd = &cobra.Command{
	Use:   "score",
	Short: "Score one resume against a job requirement",
	Long:  "Score extracts a structured profile from a single resume file (PDF, DOCX, or plain text) and produces a match report against the given job requirement JSON.",
	RunE:  runScore,
}

var (
	scoreResumeFile string
	scoreJobFile    string
	scoreConfigFile string
	scoreOutputFile string
)

func init() {
	scoreCmd.Flags().StringVarP(&scoreResumeFile, "resume", "r", "", "Path to resume file (required)")
	scoreCmd.Flags().StringVarP(&scoreJobFile, "job", "j", "", "Path to job requirement JSON file (required)")
	scoreCmd.Flags().StringVarP(&scoreConfigFile, "config", "c", "", "Path to config JSON file")
	scoreCmd.Flags().StringVarP(&scoreOutputFile, "out", "o", "", "Path to output JSON file (default: print report)")
	_ = scoreCmd.MarkFlagRequired("resume")
	_ = scoreCmd.MarkFlagRequired("job")

	rootCmd.AddCommand(scoreCmd)
}

func runScore(_ *cobra.Command, _ []string) error {
	rt, err := buildRuntime(scoreConfigFile)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	req, err := loadRequirement(scoreJobFile)
	if err != nil {
		return err
	}
	applyWeights(req, rt.cfg)

	now := time.Now()
	resolved, err := scoring.ResolveRequirement(req, rt.index, now)
	if err != nil {
		return fmt.Errorf("failed to resolve job requirement: %w", err)
	}

	text, err := document.ExtractText(context.Background(), scoreResumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	profile := extraction.Profile(text, rt.index, now)
	report := scoring.Score(profile, *resolved)

	if scoreOutputFile != "" {
		if err := writeJSON(scoreOutputFile, report); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", scoreOutputFile)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintReport(&report)
	return nil
}
