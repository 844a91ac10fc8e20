package evaluate

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/anupam312nwd/matrix-manifolds/aggregate"
	"github.com/anupam312nwd/matrix-manifolds/logger"
	"github.com/anupam312nwd/matrix-manifolds/matrix"
	"github.com/anupam312nwd/matrix-manifolds/retrieval"
)

var (
	// ErrMalformedRun wraps any failure to load or validate a run's matrix.
	ErrMalformedRun = errors.New("evaluate: malformed run")

	// ErrNoRuns is returned when no run survived validation.
	ErrNoRuns = errors.New("evaluate: no usable runs")

	// ErrNilDataset is returned when Evaluate is called without a dataset.
	ErrNilDataset = errors.New("evaluate: nil dataset")
)

// Run is one trained embedding. Distances is called at most once per
// evaluation; the matrix is released as soon as the run is scored.
type Run interface {
	ID() string
	Distances(ctx context.Context) (matrix.Distances, error)
}

// Config tunes an Evaluator.
type Config struct {
	// Workers bounds the number of runs scored (and matrices held) at once.
	// Zero means runtime.GOMAXPROCS(0).
	Workers int

	// MaxLayers caps the reported curve. Zero means no cap.
	MaxLayers int

	// Epsilon is the symmetry/diagonal tolerance; zero selects
	// matrix.DefaultEpsilon.
	Epsilon float64

	Logger *slog.Logger
}

// Evaluator scores runs against datasets. It holds no per-dataset state and
// may be reused.
type Evaluator struct {
	workers   int
	maxLayers int
	eps       float64
	logger    *slog.Logger
}

// New returns an Evaluator for cfg.
func New(cfg Config) *Evaluator {
	e := &Evaluator{
		workers:   cfg.Workers,
		maxLayers: cfg.MaxLayers,
		eps:       cfg.Epsilon,
		logger:    logger.OrNop(cfg.Logger),
	}
	if e.workers <= 0 {
		e.workers = runtime.GOMAXPROCS(0)
	}
	return e
}

// RunResult is the outcome of one run.
type RunResult struct {
	ID      string               `json:"id" toml:"id"`
	Means   aggregate.LayerMeans `json:"-" toml:"-"`
	Elapsed time.Duration        `json:"elapsed" toml:"elapsed"`
	Err     error                `json:"-" toml:"-"`
}

// Dropped describes a run excluded from the aggregate.
type Dropped struct {
	ID     string `json:"id" toml:"id"`
	Reason string `json:"reason" toml:"reason"`
}

// Report is the result of evaluating one dataset configuration.
type Report struct {
	Dataset      string          `json:"dataset" toml:"dataset"`
	Curve        aggregate.Curve `json:"curve" toml:"curve"`
	Runs         []string        `json:"runs" toml:"runs"`
	Dropped      []Dropped       `json:"dropped,omitempty" toml:"dropped,omitempty"`
	Distribution []float64       `json:"distribution" toml:"distribution"`
}

// Evaluate scores every run against ds and combines the results. Malformed
// runs are dropped; structural errors and context cancellation abort.
func (e *Evaluator) Evaluate(ctx context.Context, ds *Dataset, runs []Run) (*Report, error) {
	if ds == nil || ds.Truth == nil || ds.Layers == nil {
		return nil, ErrNilDataset
	}
	start := time.Now()
	results := make([]RunResult, len(runs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)
	for i, run := range runs {
		g.Go(func() error {
			res := e.EvaluateRun(gctx, ds, run)
			if res.Err != nil && !errors.Is(res.Err, ErrMalformedRun) {
				return res.Err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	report := &Report{
		Dataset:      ds.Name,
		Distribution: ds.Layers.Distribution(),
	}
	perRun := make([]aggregate.LayerMeans, 0, len(results))
	for _, res := range results {
		if res.Err != nil {
			e.logger.Warn("dropping run", "dataset", ds.Name, "run", res.ID, "error", res.Err)
			report.Dropped = append(report.Dropped, Dropped{ID: res.ID, Reason: res.Err.Error()})
			continue
		}
		report.Runs = append(report.Runs, res.ID)
		perRun = append(perRun, res.Means)
	}
	if len(perRun) == 0 {
		return report, fmt.Errorf("dataset %q: %w (%d dropped)", ds.Name, ErrNoRuns, len(report.Dropped))
	}
	report.Curve = aggregate.Combine(perRun).Truncate(e.maxLayers)

	e.logger.Info("evaluated dataset",
		"dataset", ds.Name,
		"runs", len(report.Runs),
		"dropped", len(report.Dropped),
		"layers", report.Curve.Len(),
		"elapsed", time.Since(start),
	)
	return report, nil
}

// EvaluateRun loads, validates and scores a single run. Load and validation
// failures are returned in RunResult.Err wrapped with ErrMalformedRun; any
// other error is fatal for the evaluation.
func (e *Evaluator) EvaluateRun(ctx context.Context, ds *Dataset, run Run) RunResult {
	res := RunResult{ID: run.ID()}
	start := time.Now()

	d, err := run.Distances(ctx)
	if err != nil {
		if ctx.Err() != nil {
			res.Err = ctx.Err()
			return res
		}
		res.Err = fmt.Errorf("run %s: %w: %w", res.ID, ErrMalformedRun, err)
		return res
	}
	if err := matrix.ValidateDim(d, ds.N()); err != nil {
		res.Err = fmt.Errorf("run %s: %w: %w", res.ID, ErrMalformedRun, err)
		return res
	}
	if err := matrix.ValidateDistances(d, e.eps); err != nil {
		res.Err = fmt.Errorf("run %s: %w: %w", res.ID, ErrMalformedRun, err)
		return res
	}

	scores, err := retrieval.ScoreContext(ctx, d, ds.Truth)
	if err != nil {
		res.Err = fmt.Errorf("run %s: %w", res.ID, err)
		return res
	}
	res.Means = aggregate.ByLayer(scores, ds.Layers)
	res.Elapsed = time.Since(start)

	e.logger.Debug("scored run",
		"dataset", ds.Name,
		"run", res.ID,
		"scored", len(scores.Scored()),
		"elapsed", res.Elapsed,
	)
	return res
}
