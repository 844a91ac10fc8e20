// Package layerf1cmder implements the layerf1 command tree.
package layerf1cmder

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/anupam312nwd/matrix-manifolds/config"
	"github.com/anupam312nwd/matrix-manifolds/logger"
)

const layerf1LongDesc string = `layerf1 scores graph embeddings against the BFS hierarchy of their graph.

Nodes are layered by distance from a root; each node's k nearest neighbours
under the embedding are compared with its true children, and the resulting
F1@k scores are averaged per layer across runs.

  layerf1 eval     Evaluate one configuration directory of runs
  layerf1 sweep    Evaluate every dataset/flip/loss/manifold combination
  layerf1 layers   Print the layer histogram of a dataset
  layerf1 config   Inspect or write the configuration file`

const layerf1ShortDesc string = "layerf1 - layer-wise F1@k for graph embeddings"

// globals is shared by every subcommand once the root pre-run has resolved
// configuration and logging.
type globals struct {
	configPath string
	debug      bool

	v       *viper.Viper
	cfg     *config.Config
	logger  *slog.Logger
	logFile *os.File
}

// setup initializes viper, binds the command's registered flags and builds
// the logger. Subcommands call it from PreRunE.
func (g *globals) setup(cmd *cobra.Command, flagKeys ...string) error {
	v, err := config.InitViper(g.configPath)
	if err != nil {
		return err
	}
	config.BindRegisteredFlags(v, cmd, config.Flags, flagKeys...)
	if cmd.Flags().Changed("debug") {
		v.Set("log.debug", g.debug)
	}

	cfg, err := config.FromViper(v)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	g.v, g.cfg = v, cfg
	g.logger = logger.New(
		logger.WithWriter(cmd.ErrOrStderr()),
		logger.WithDebug(cfg.Log.Debug),
		logger.WithJSON(cfg.Log.JSON),
		logger.WithPretty(cfg.Log.Pretty),
		logger.WithSource(cfg.Log.Source),
	)
	if cfg.Log.File == "" {
		return nil
	}

	g.closeLog()
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening log file: %w", err)
	}
	g.logFile = f
	g.logger = logger.Multi(g.logger, logger.New(
		logger.WithWriter(f),
		logger.WithDebug(cfg.Log.Debug),
		logger.WithJSON(true),
		logger.WithSource(cfg.Log.Source),
	))
	return nil
}

// closeLog closes the log file opened by setup, if any.
func (g *globals) closeLog() {
	if g.logFile != nil {
		_ = g.logFile.Close()
		g.logFile = nil
	}
}

// NewLayerF1Cmd returns the root command.
func NewLayerF1Cmd() *cobra.Command {
	g := &globals{}
	cmd := &cobra.Command{
		Use:           "layerf1",
		Short:         layerf1ShortDesc,
		Long:          layerf1LongDesc,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPostRun: func(*cobra.Command, []string) {
			g.closeLog()
		},
	}

	cmd.PersistentFlags().BoolVarP(&g.debug, "debug", "d", false, "Enable debug logging")
	cmd.PersistentFlags().StringVarP(&g.configPath, "config", "c", "", "Config file (default ./"+config.DefaultFile+")")

	cmd.AddCommand(newEvalCmd(g))
	cmd.AddCommand(newLayersCmd(g))
	cmd.AddCommand(newSweepCmd(g))
	cmd.AddCommand(newConfigCmd(g))

	return cmd
}
