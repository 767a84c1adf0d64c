// Package batch fans resume scoring out over every application of one job
// posting with bounded parallelism, tolerating per-item failures.
package batch

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/jonathan/ats-engine/internal/document"
	"github.com/jonathan/ats-engine/internal/extraction"
	"github.com/jonathan/ats-engine/internal/scoring"
	"github.com/jonathan/ats-engine/internal/skills"
	"github.com/jonathan/ats-engine/internal/types"
)

const (
	// DefaultConcurrency bounds concurrent extractions: large PDFs are both
	// file-descriptor and CPU hungry.
	DefaultConcurrency = 4

	// MaxConcurrency caps what configuration may request.
	MaxConcurrency = 8

	// DefaultPerFileTimeout bounds how long one resume may take to extract
	// and score before it is recorded as failed.
	DefaultPerFileTimeout = 30 * time.Second
)

// Item is one (application, resume file) pair to score.
type Item struct {
	ApplicationID uuid.UUID `json:"applicationId"`
	ResumePath    string    `json:"resumePath"`
}

// Outcome is the per-application result: exactly one of Report or Error is
// set. Errors carry a reason string rather than failing the batch.
type Outcome struct {
	ApplicationID uuid.UUID          `json:"applicationId"`
	Report        *types.MatchReport `json:"report,omitempty"`
	Error         string             `json:"error,omitempty"`
}

// Summary aggregates one batch scan. Outcomes preserves input order and has
// one entry per submitted item: no silent drops.
type Summary struct {
	Total     int       `json:"total"`
	Processed int       `json:"processed"`
	Failed    int       `json:"failed"`
	Outcomes  []Outcome `json:"outcomes"`
}

// Options configures an Orchestrator. Zero values select defaults.
type Options struct {
	Concurrency    int
	PerFileTimeout time.Duration
	Logger         *zap.Logger
	Now            func() time.Time
}

// Orchestrator scores many resumes against one job requirement. It holds no
// mutable state between scans; the alias index it shares is read-only.
type Orchestrator struct {
	index          *skills.Index
	concurrency    int
	perFileTimeout time.Duration
	logger         *zap.Logger
	now            func() time.Time
}

// New builds an Orchestrator around the given alias index.
func New(idx *skills.Index, opts Options) *Orchestrator {
	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}
	if concurrency > MaxConcurrency {
		concurrency = MaxConcurrency
	}

	timeout := opts.PerFileTimeout
	if timeout <= 0 {
		timeout = DefaultPerFileTimeout
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &Orchestrator{
		index:          idx,
		concurrency:    concurrency,
		perFileTimeout: timeout,
		logger:         log,
		now:            now,
	}
}

// ScanJob scores every item against the job requirement and collects all
// outcomes before returning. A requirement that fails validation is the only
// error path: per-item extraction failures are recorded in their Outcome and
// never abort the batch. Items complete in any order; Outcomes is indexed by
// submission order.
func (o *Orchestrator) ScanJob(ctx context.Context, req *types.JobRequirement, items []Item) (*Summary, error) {
	resolved, err := scoring.ResolveRequirement(req, o.index, o.now())
	if err != nil {
		return nil, err
	}

	outcomes := make([]Outcome, len(items))

	sem := semaphore.NewWeighted(int64(o.concurrency))
	g, gCtx := errgroup.WithContext(ctx)

	for i, item := range items {
		if err := sem.Acquire(gCtx, 1); err != nil {
			// Context canceled while waiting; record the remaining items
			// rather than dropping them.
			outcomes[i] = Outcome{ApplicationID: item.ApplicationID, Error: err.Error()}
			continue
		}

		i, item := i, item
		g.Go(func() error {
			defer sem.Release(1)
			outcomes[i] = o.scoreOne(gCtx, item, resolved)
			return nil
		})
	}

	// Workers never return errors; Wait is purely a barrier.
	_ = g.Wait()

	summary := &Summary{Total: len(items), Outcomes: outcomes}
	for _, outcome := range outcomes {
		if outcome.Error != "" {
			summary.Failed++
		} else {
			summary.Processed++
		}
	}

	o.logger.Info("batch scan complete",
		zap.Int("total", summary.Total),
		zap.Int("processed", summary.Processed),
		zap.Int("failed", summary.Failed),
	)
	return summary, nil
}

// scoreOne runs the full pipeline for a single resume under the per-file
// timeout. Any failure becomes the outcome's reason string.
func (o *Orchestrator) scoreOne(ctx context.Context, item Item, req *scoring.ResolvedRequirement) Outcome {
	itemCtx, cancel := context.WithTimeout(ctx, o.perFileTimeout)
	defer cancel()

	text, err := document.ExtractText(itemCtx, item.ResumePath)
	if err != nil {
		o.logger.Warn("resume extraction failed",
			zap.String("application_id", item.ApplicationID.String()),
			zap.String("resume", item.ResumePath),
			zap.Error(err),
		)
		return Outcome{ApplicationID: item.ApplicationID, Error: err.Error()}
	}

	profile := extraction.Profile(text, o.index, o.now())
	report := scoring.Score(profile, *req)

	o.logger.Debug("resume scored",
		zap.String("application_id", item.ApplicationID.String()),
		zap.Int("score", report.Score),
		zap.Int("matched_skills", len(report.MatchedSkills)),
	)
	return Outcome{ApplicationID: item.ApplicationID, Report: &report}
}
