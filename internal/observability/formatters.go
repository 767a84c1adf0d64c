// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/ats-engine/internal/batch"
	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// joinCapped joins up to maxItemsToShow items, noting how many were omitted.
func joinCapped(items []string) string {
	count := min(len(items), maxItemsToShow)
	joined := strings.Join(items[:count], ", ")
	if len(items) > maxItemsToShow {
		joined += fmt.Sprintf(" (+%d more)", len(items)-maxItemsToShow)
	}
	return joined
}

// PrintProfile outputs a human-readable summary of an extracted profile.
func (p *Printer) PrintProfile(profile *types.ExtractedProfile) {
	if profile == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Skills:     %s\n", joinCapped(profile.Skills)))
	sb.WriteString(fmt.Sprintf("Emails:     %s\n", joinCapped(profile.Emails)))
	sb.WriteString(fmt.Sprintf("Phones:     %s\n", joinCapped(profile.Phones)))
	sb.WriteString(fmt.Sprintf("Experience: %d years\n", profile.ExperienceYears))
	label := profile.Label
	if label == "" {
		label = "none detected"
	}
	sb.WriteString(fmt.Sprintf("Education:  %s (rank %d)", label, profile.Rank))

	p.printBox("EXTRACTED PROFILE", sb.String())
}

// PrintReport outputs a human-readable summary of a match report.
func (p *Printer) PrintReport(report *types.MatchReport) {
	if report == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Composite score:  %d / 100\n\n", report.Score))
	sb.WriteString(fmt.Sprintf("Skills:     %5.1f  matched: %s\n", report.SkillsScore, joinCapped(report.MatchedSkills)))
	if len(report.MissingSkills) > 0 {
		sb.WriteString(fmt.Sprintf("                   missing: %s\n", joinCapped(report.MissingSkills)))
	}
	sb.WriteString(fmt.Sprintf("Experience: %5.1f  met: %v\n", report.ExperienceScore, report.ExperienceMatch))
	sb.WriteString(fmt.Sprintf("Education:  %5.1f  met: %v", report.EducationScore, report.EducationMatch))

	p.printBox("MATCH REPORT", sb.String())
}

// PrintSummary outputs the outcome of a batch scan, listing every failure
// with its reason.
func (p *Printer) PrintSummary(summary *batch.Summary) {
	if summary == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total:     %d\n", summary.Total))
	sb.WriteString(fmt.Sprintf("Processed: %d\n", summary.Processed))
	sb.WriteString(fmt.Sprintf("Failed:    %d\n", summary.Failed))

	if summary.Failed > 0 {
		sb.WriteString("\nFailures:\n")
		for _, outcome := range summary.Outcomes {
			if outcome.Error == "" {
				continue
			}
			reason := outcome.Error
			if len(reason) > 40 {
				reason = reason[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("  • %s: %s\n", outcome.ApplicationID, reason))
		}
	}

	p.printBox("BATCH SCAN", strings.TrimSuffix(sb.String(), "\n"))
}
