package layerf1cmder

import (
	"github.com/spf13/cobra"

	"github.com/anupam312nwd/matrix-manifolds/config"
	"github.com/anupam312nwd/matrix-manifolds/dataset"
)

var layersFlags = []string{
	config.FlagDataDir, config.FlagRoot, config.FlagRule, config.FlagFormat, config.FlagJSONLog,
}

// layerHistogram is the output of the layers command.
type layerHistogram struct {
	Dataset       string    `json:"dataset" toml:"dataset"`
	Nodes         int       `json:"nodes" toml:"nodes"`
	Edges         int       `json:"edges" toml:"edges"`
	Root          int       `json:"root" toml:"root"`
	RootLabel     string    `json:"root_label" toml:"root_label"`
	NodesPerLayer []int     `json:"nodes_per_layer" toml:"nodes_per_layer"`
	Distribution  []float64 `json:"distribution" toml:"distribution"`
	Unreachable   int       `json:"unreachable" toml:"unreachable"`
	Scorable      int       `json:"scorable" toml:"scorable"`
}

func newLayersCmd(g *globals) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layers <dataset>",
		Short: "Print the layer histogram of a dataset",
		Args:  cobra.ExactArgs(1),
		PreRunE: func(cmd *cobra.Command, _ []string) error {
			return g.setup(cmd, layersFlags...)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path, err := dataset.Path(g.cfg.Data.Dir, args[0])
			if err != nil {
				return err
			}
			key := dataset.Key{Path: path, Root: g.cfg.Data.Root, Rule: g.cfg.Rule()}
			cache := dataset.NewCache(g.logger)
			ds, err := cache.Get(cmd.Context(), key)
			if err != nil {
				return err
			}
			root := ds.Layers.Root()
			var rootLabel string
			if labels, ok := cache.Labels(key); ok && root < len(labels) {
				rootLabel = labels[root]
			}
			return writeReport(cmd.OutOrStdout(), g.cfg.Output.Format, layerHistogram{
				Dataset:       ds.Name,
				Nodes:         ds.N(),
				Edges:         ds.Graph.EdgeCount(),
				Root:          root,
				RootLabel:     rootLabel,
				NodesPerLayer: ds.Layers.NodesPerLayer(),
				Distribution:  ds.Layers.Distribution(),
				Unreachable:   ds.Layers.Unreached(),
				Scorable:      len(ds.Truth.ScorableNodes()),
			})
		},
	}
	config.AddFlags(cmd, config.Flags, layersFlags...)
	return cmd
}
