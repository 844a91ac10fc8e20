package layerf1cmder

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/anupam312nwd/matrix-manifolds/config"
	"github.com/anupam312nwd/matrix-manifolds/dataset"
	"github.com/anupam312nwd/matrix-manifolds/evaluate"
	"github.com/anupam312nwd/matrix-manifolds/runs"
)

const evalLongDesc string = `Evaluate every run of one configuration directory.

The dataset NAME is read from DATA/NAME.edges or DATA/NAME.edges.gz. Each
sub-directory of RUNS is one run holding pdists.bin, distances.bin or
points.bin. Malformed runs are reported and skipped.

Examples:
  layerf1 eval btree1365 --data ./data --runs ./runs/btree1365/stress/euc
  layerf1 eval grid --runs ./out --rule descendants --format toml`

var evalFlags = []string{
	config.FlagDataDir, config.FlagRoot, config.FlagRule, config.FlagRunsDir,
	config.FlagSquared, config.FlagWorkers, config.FlagMaxLayers,
	config.FlagEpsilon, config.FlagFormat, config.FlagJSONLog,
	config.FlagLogFile, config.FlagLogSource,
}

func newEvalCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <dataset>",
		Short: "Evaluate one configuration directory",
		Long:  evalLongDesc,
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd, evalFlags...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, g, args[0])
		},
	}
	config.AddFlags(cmd, config.Flags, evalFlags...)
	return cmd
}

func runEval(cmd *cobra.Command, g *globals, name string) error {
	cfg := g.cfg
	path, err := dataset.Path(cfg.Data.Dir, name)
	if err != nil {
		return err
	}
	ds, err := dataset.NewCache(g.logger).Get(cmd.Context(), dataset.Key{
		Path: path,
		Root: cfg.Data.Root,
		Rule: cfg.Rule(),
	})
	if err != nil {
		return err
	}

	rs, err := runs.DirSource(cfg.Runs.Dir, runs.WithSquared(cfg.Runs.Squared))
	if err != nil {
		return err
	}

	rep, err := newEvaluator(g).Evaluate(cmd.Context(), ds, rs)
	if err != nil && !errors.Is(err, evaluate.ErrNoRuns) {
		return err
	}
	if werr := writeReport(cmd.OutOrStdout(), cfg.Output.Format, rep); werr != nil {
		return werr
	}
	return err
}

func newEvaluator(g *globals) *evaluate.Evaluator {
	return evaluate.New(evaluate.Config{
		Workers:   g.cfg.Eval.Workers,
		MaxLayers: g.cfg.Eval.MaxLayers,
		Epsilon:   g.cfg.Eval.Epsilon,
		Logger:    g.logger,
	})
}
