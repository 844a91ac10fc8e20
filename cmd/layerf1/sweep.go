package layerf1cmder

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/anupam312nwd/matrix-manifolds/config"
	"github.com/anupam312nwd/matrix-manifolds/dataset"
	"github.com/anupam312nwd/matrix-manifolds/evaluate"
	"github.com/anupam312nwd/matrix-manifolds/runs"
)

const sweepLongDesc string = `Evaluate every configuration under a runs tree laid out as

  RUNS/<dataset>/flipp_<p>/<loss>/<manifold>/<run>/

where <p> is the edge flip probability the runs were trained with. Each
dataset is loaded once from DATA and shared by all of its configurations.
Filters restrict each level; by default everything found on disk is
evaluated. A configuration whose dataset cannot be loaded or whose runs are
all malformed is reported with its error and the sweep continues.

Examples:
  layerf1 sweep --data ./data --runs ./runs
  layerf1 sweep --runs ./runs --datasets btree1365,grid --flip-probabilities 0.1 --manifolds euc,hyp`

var sweepFlags = []string{
	config.FlagDataDir, config.FlagRoot, config.FlagRule, config.FlagRunsDir,
	config.FlagSquared, config.FlagWorkers, config.FlagMaxLayers,
	config.FlagEpsilon, config.FlagFormat, config.FlagJSONLog,
	config.FlagLogFile, config.FlagLogSource, config.FlagDatasets, config.FlagFlipProbs,
	config.FlagLossFns, config.FlagManifolds,
}

// flipPrefix names the flip-probability level of a runs tree.
const flipPrefix = "flipp_"

// sweepResult is one dataset/flip/loss/manifold combination.
type sweepResult struct {
	Dataset  string          `json:"dataset" toml:"dataset"`
	FlipProb string          `json:"flip_probability" toml:"flip_probability"`
	Loss     string          `json:"loss" toml:"loss"`
	Manifold string          `json:"manifold" toml:"manifold"`
	Report   evaluate.Report `json:"report" toml:"report"`
	Error    string          `json:"error,omitempty" toml:"error,omitempty"`
}

type sweepReport struct {
	Results []sweepResult `json:"results" toml:"results"`
}

func newSweepCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Evaluate every dataset/flip/loss/manifold combination",
		Long:  sweepLongDesc,
		Args:  cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd, sweepFlags...)
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			rep, err := runSweep(cmd, g)
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), g.cfg.Output.Format, rep)
		},
	}
	config.AddFlags(cmd, config.Flags, sweepFlags...)
	return cmd
}

func runSweep(cmd *cobra.Command, g *globals) (*sweepReport, error) {
	cfg := g.cfg
	cache := dataset.NewCache(g.logger)
	eval := newEvaluator(g)
	rep := &sweepReport{}

	names, err := subdirs(cfg.Runs.Dir, cfg.Runs.Datasets)
	if err != nil {
		return nil, err
	}
	for _, name := range names {
		flips, err := subdirs(filepath.Join(cfg.Runs.Dir, name), nil)
		if err != nil {
			return nil, err
		}
		for _, flipDir := range flips {
			p := flipProb(flipDir)
			if len(cfg.Runs.FlipProbs) > 0 && !slices.Contains(cfg.Runs.FlipProbs, p) {
				continue
			}
			base := filepath.Join(cfg.Runs.Dir, name, flipDir)
			losses, err := subdirs(base, cfg.Runs.LossFns)
			if err != nil {
				return nil, err
			}
			for _, loss := range losses {
				manifolds, err := subdirs(filepath.Join(base, loss), cfg.Runs.Manifolds)
				if err != nil {
					return nil, err
				}
				for _, man := range manifolds {
					res := sweepResult{Dataset: name, FlipProb: p, Loss: loss, Manifold: man}
					r, err := sweepOne(cmd, g, cache, eval, name, filepath.Join(base, loss, man))
					if r != nil {
						res.Report = *r
					}
					if err != nil {
						if cmd.Context().Err() != nil {
							return nil, err
						}
						g.logger.Warn("configuration failed",
							"dataset", name, "flipp", p, "loss", loss, "manifold", man, "error", err)
						res.Error = err.Error()
					}
					rep.Results = append(rep.Results, res)
				}
			}
		}
	}
	if len(rep.Results) == 0 {
		return nil, fmt.Errorf("no configurations found under %s", cfg.Runs.Dir)
	}
	return rep, nil
}

// flipProb extracts <p> from a "flipp_<p>" directory name. Names without
// the prefix are returned unchanged.
func flipProb(dir string) string {
	if p, ok := strings.CutPrefix(dir, flipPrefix); ok {
		return p
	}
	return dir
}

func sweepOne(cmd *cobra.Command, g *globals, cache *dataset.Cache, eval *evaluate.Evaluator, name, dir string) (*evaluate.Report, error) {
	path, err := dataset.Path(g.cfg.Data.Dir, name)
	if err != nil {
		return nil, err
	}
	ds, err := cache.Get(cmd.Context(), dataset.Key{Path: path, Root: g.cfg.Data.Root, Rule: g.cfg.Rule()})
	if err != nil {
		return nil, err
	}
	rs, err := runs.DirSource(dir, runs.WithSquared(g.cfg.Runs.Squared))
	if err != nil {
		return nil, err
	}
	return eval.Evaluate(cmd.Context(), ds, rs)
}

// subdirs lists the sorted sub-directory names of dir, restricted to keep
// when it is non-empty. A missing dir yields no entries.
func subdirs(dir string, keep []string) ([]string, error) {
	ents, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", dir, err)
	}
	var out []string
	for _, e := range ents {
		if !e.IsDir() {
			continue
		}
		if len(keep) > 0 && !slices.Contains(keep, e.Name()) {
			continue
		}
		out = append(out, e.Name())
	}
	return out, nil
}
