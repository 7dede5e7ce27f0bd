// Package app orchestrates an import run: read records, normalize, report,
// plan batches, and drive them through the configured driver.
package app

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/uno-labs/waroster/internal/batch"
	"github.com/uno-labs/waroster/internal/domain"
	"github.com/uno-labs/waroster/internal/normalize"
	"github.com/uno-labs/waroster/internal/ports"
	"github.com/uno-labs/waroster/internal/report"
	"github.com/uno-labs/waroster/pkg/log"
)

// RunnerConfig contains configuration for one import run.
type RunnerConfig struct {
	BatchSize  int
	StartBatch int

	// ExplicitStart marks that the operator set the starting batch
	// themselves; it then wins over any saved run state.
	ExplicitStart bool

	Resume bool
	DryRun bool

	// InputSHA256 identifies the export the run was planned against, so
	// saved state from a different export is never resumed.
	InputSHA256 string
	InputPath   string
}

// Runner executes the import flow over the injected ports.
type Runner struct {
	config RunnerConfig
	source ports.RecordSource
	driver ports.Driver
	states ports.StateRepository
	logger log.Logger
	out    io.Writer
}

// Option configures optional Runner collaborators.
type Option func(*Runner)

// WithLogger sets the structured logger. Defaults to a no-op logger.
func WithLogger(logger log.Logger) Option {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithStateRepository enables run-state persistence and resuming.
func WithStateRepository(repo ports.StateRepository) Option {
	return func(r *Runner) {
		r.states = repo
	}
}

// WithReportWriter sets where the processing summary is rendered.
// Defaults to stdout.
func WithReportWriter(w io.Writer) Option {
	return func(r *Runner) {
		r.out = w
	}
}

// NewRunner creates a runner over the given source and driver.
// driver may be nil for dry runs.
func NewRunner(config RunnerConfig, source ports.RecordSource, driver ports.Driver, opts ...Option) *Runner {
	r := &Runner{
		config: config,
		source: source,
		driver: driver,
		logger: log.NewNoopLogger(),
		out:    os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the import end to end. Only source access failures abort the
// run; rejected rows and per-number driver failures are collected or logged
// and processing continues.
func (r *Runner) Run(ctx context.Context) error {
	result, err := r.process()
	if err != nil {
		return err
	}

	start, state, err := r.resolveStart(ctx)
	if err != nil {
		return err
	}

	planner := batch.NewDefaultPlanner(result.Valid, r.config.BatchSize, start)

	summary := report.Build(result, planner.Count(), r.config.BatchSize, planner.Total())
	summary.Render(r.out)

	if r.config.DryRun {
		r.logger.Info("dry run, skipping submission",
			log.Int("valid", result.ValidCount()),
			log.Int("batches", planner.Total()))
		return nil
	}
	if planner.Count() == 0 {
		return domain.ErrNoNumbers
	}

	if err := r.drive(ctx, planner, state); err != nil {
		return err
	}

	if result.RejectedCount() > 0 {
		fmt.Fprintln(r.out, "\nReminder: add the invalid numbers manually.")
	}
	return nil
}

// process drains the record source through the normalizer.
func (r *Runner) process() (domain.Result, error) {
	var result domain.Result

	for {
		rec, err := r.source.Next()
		if err == ports.ErrNoMoreRecords {
			break
		}
		if err != nil {
			return domain.Result{}, err
		}

		outcome := normalize.Normalize(rec.Raw)
		if !outcome.OK {
			result.Rejected = append(result.Rejected, domain.RejectedEntry{
				Row: rec.Row,
				Raw: outcome.Original,
			})
			continue
		}

		result.Valid = append(result.Valid, outcome.Number)
		if change, changed := outcome.ChangeRecord(); changed {
			result.Changes = append(result.Changes, change)
		}
	}

	return result, nil
}

// resolveStart decides the starting batch index, consulting saved run state
// when resuming. An explicitly set start batch always wins.
func (r *Runner) resolveStart(ctx context.Context) (int, domain.RunState, error) {
	state := domain.RunState{
		InputPath:   r.config.InputPath,
		InputSHA256: r.config.InputSHA256,
	}

	if r.config.ExplicitStart || !r.config.Resume || r.states == nil {
		return r.config.StartBatch, state, nil
	}

	saved, err := r.states.Load(ctx)
	if err != nil {
		return 0, state, fmt.Errorf("load run state: %w", err)
	}

	switch {
	case saved.IsEmpty():
		return r.config.StartBatch, state, nil
	case !saved.Matches(r.config.InputSHA256):
		r.logger.Warn("saved state is for a different export, starting over",
			log.String("state_input", saved.InputPath))
		return r.config.StartBatch, state, nil
	default:
		r.logger.Info("resuming",
			log.Int("last_batch", saved.LastBatch),
			log.Int("total_batches", saved.TotalBatches))
		return saved.LastBatch + 1, saved, nil
	}
}

// drive feeds the planned batches to the driver, saving state after each
// completed batch.
func (r *Runner) drive(ctx context.Context, planner batch.Planner, state domain.RunState) error {
	if err := r.driver.Start(ctx); err != nil {
		return fmt.Errorf("start driver: %w", err)
	}
	defer func() {
		if err := r.driver.Close(); err != nil {
			r.logger.Warn("close driver", log.Err(err))
		}
	}()

	for {
		b, ok := planner.Next()
		if !ok {
			return nil
		}

		if err := r.driver.BeginBatch(ctx, b); err != nil {
			return err
		}

		for i, n := range b.Numbers {
			if err := r.driver.Submit(ctx, n); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				// Per-item failures never abort the batch.
				r.logger.Error("submit failed, continuing",
					log.String("number", n.String()),
					log.Int("item", i+1),
					log.Int("batch", b.Index),
					log.Err(err))
			}
		}

		if err := r.driver.EndBatch(ctx, b); err != nil {
			return err
		}

		state.UpdateAfterBatch(b)
		r.saveState(ctx, state)
	}
}

func (r *Runner) saveState(ctx context.Context, state domain.RunState) {
	if r.states == nil {
		return
	}
	if err := r.states.Save(ctx, state); err != nil {
		r.logger.Warn("save run state", log.Err(err))
	}
}

// FileSHA256 returns the hex digest of the file's contents, used to pin run
// state to one specific export.
func FileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}
