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
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract a structured profile from a resume file",
	Long:  "Extract pulls text out of a resume file (PDF, DOCX, or plain text) and extracts the structured profile signals: skills, contact details, experience years, and education level.",
	RunE:  runExtract,
}

var (
	extractResumeFile string
	extractConfigFile string
	extractOutputFile string
)

func init() {
	extractCmd.Flags().StringVarP(&extractResumeFile, "resume", "r", "", "Path to resume file (required)")
	extractCmd.Flags().StringVarP(&extractConfigFile, "config", "c", "", "Path to config JSON file")
	extractCmd.Flags().StringVarP(&extractOutputFile, "out", "o", "", "Path to output JSON file (default: print profile)")
	_ = extractCmd.MarkFlagRequired("resume")

	rootCmd.AddCommand(extractCmd)
}

func runExtract(_ *cobra.Command, _ []string) error {
	rt, err := buildRuntime(extractConfigFile)
	if err != nil {
		return err
	}
	defer func() { _ = rt.log.Sync() }()

	text, err := document.ExtractText(context.Background(), extractResumeFile)
	if err != nil {
		return fmt.Errorf("failed to extract resume text: %w", err)
	}

	profile := extraction.Profile(text, rt.index, time.Now())

	if extractOutputFile != "" {
		if err := writeJSON(extractOutputFile, profile); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(os.Stdout, "Output: %s\n", extractOutputFile)
		return nil
	}

	printer := observability.NewPrinter(os.Stdout)
	printer.PrintProfile(&profile)
	return nil
}
