package pipeline

import (
	"context"
	"log/slog"

	"github.com/nao1215/devicemodels/internal/model"
)

// Step defines the interface that all pipeline steps must implement.
// Steps are executed in sequence, each receiving the catalog built so far.
type Step interface {
	// Do executes the pipeline step.
	// Returning an error aborts the run. A step that wants to stop the run
	// without failing sets catalog.Halted instead.
	Do(ctx context.Context, catalog *model.Catalog) error

	// Name returns the step's name for logging purposes.
	Name() string
}

// Pipeline orchestrates the execution of multiple steps.
type Pipeline struct {
	// steps contains the ordered list of steps to execute.
	steps []Step

	// logger is used for structured logging during execution.
	logger *slog.Logger
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// New creates a new Pipeline with the given steps and options.
func New(steps []Step, opts ...Option) *Pipeline {
	p := &Pipeline{
		steps: append([]Step(nil), steps...),
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Execute runs all steps in order.
// Cancellation is checked before each step. Execution stops early, without
// error, once a step halts the catalog.
func (p *Pipeline) Execute(ctx context.Context, catalog *model.Catalog) error {
	for _, step := range p.steps {
		if err := ctx.Err(); err != nil {
			p.logger.Warn("pipeline cancelled",
				"step", step.Name(),
				"reason", err,
			)
			return err
		}

		p.logger.Debug("executing step",
			"step", step.Name(),
			"url", catalog.URL,
		)

		if err := step.Do(ctx, catalog); err != nil {
			p.logger.Error("step failed",
				"step", step.Name(),
				"url", catalog.URL,
				"error", err,
			)
			return err
		}

		if catalog.Halted {
			p.logger.Info("pipeline halted",
				"step", step.Name(),
				"url", catalog.URL,
			)
			return nil
		}

		p.logger.Debug("step completed",
			"step", step.Name(),
			"entries", len(catalog.Entries),
		)
	}

	return nil
}

// StepNames returns the names of all steps in execution order.
func (p *Pipeline) StepNames() []string {
	names := make([]string, len(p.steps))
	for i, step := range p.steps {
		names[i] = step.Name()
	}
	return names
}
