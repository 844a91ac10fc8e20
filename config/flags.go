package config

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// Flag is the single definition of a CLI flag shared by every command that
// exposes it.
type Flag struct {
	// Name is the long flag name.
	Name string

	// Shorthand is the one-letter short flag, or empty.
	Shorthand string

	// ViperKey is the dotted config key the flag overrides.
	ViperKey string

	Description string
}

// FlagSet maps registry keys to flag definitions.
type FlagSet map[string]Flag

// Flag registry keys.
const (
	FlagDataDir   = "data"
	FlagRoot      = "root"
	FlagRule      = "rule"
	FlagRunsDir   = "runs"
	FlagSquared   = "squared"
	FlagWorkers   = "workers"
	FlagMaxLayers = "max-layers"
	FlagEpsilon   = "epsilon"
	FlagFormat    = "format"
	FlagDatasets  = "datasets"
	FlagFlipProbs = "flip-probabilities"
	FlagLossFns   = "loss-fns"
	FlagManifolds = "manifolds"
	FlagJSONLog   = "log-json"
	FlagLogFile   = "log-file"
	FlagLogSource = "log-source"
)

// Flags is the flag registry of the layerf1 CLI.
var Flags = FlagSet{
	FlagDataDir:   {Name: "data", ViperKey: "data.dir", Description: "Directory holding NAME.edges[.gz] files"},
	FlagRoot:      {Name: "root", ViperKey: "data.root", Description: "Root node id after relabelling; labels are sorted and numbered from 0 ('layers' prints root_label)"},
	FlagRule:      {Name: "rule", ViperKey: "data.rule", Description: "Target-set rule: children or descendants"},
	FlagRunsDir:   {Name: "runs", Shorthand: "r", ViperKey: "runs.dir", Description: "Directory of run sub-directories"},
	FlagSquared:   {Name: "squared", ViperKey: "runs.squared", Description: "Stored distances are squared"},
	FlagWorkers:   {Name: "workers", Shorthand: "w", ViperKey: "eval.workers", Description: "Runs evaluated concurrently (0 = GOMAXPROCS)"},
	FlagMaxLayers: {Name: "max-layers", ViperKey: "eval.max_layers", Description: "Report at most this many layers (0 = all)"},
	FlagEpsilon:   {Name: "epsilon", ViperKey: "eval.epsilon", Description: "Tolerance for symmetry and zero-diagonal checks"},
	FlagFormat:    {Name: "format", Shorthand: "o", ViperKey: "output.format", Description: "Report format: json or toml"},
	FlagDatasets:  {Name: "datasets", ViperKey: "runs.datasets", Description: "Datasets to include in a sweep"},
	FlagFlipProbs: {Name: "flip-probabilities", ViperKey: "runs.flip_probabilities", Description: "Flip probabilities (the <p> of flipp_<p>) to include in a sweep"},
	FlagLossFns:   {Name: "loss-fns", ViperKey: "runs.loss_fns", Description: "Loss functions to include in a sweep"},
	FlagManifolds: {Name: "manifolds", ViperKey: "runs.manifolds", Description: "Manifolds to include in a sweep"},
	FlagJSONLog:   {Name: "log-json", ViperKey: "log.json", Description: "Emit JSON logs"},
	FlagLogFile:   {Name: "log-file", ViperKey: "log.file", Description: "Also append JSON logs to this file"},
	FlagLogSource: {Name: "log-source", ViperKey: "log.source", Description: "Include file:line in log records"},
}

// AddFlags registers the flags named by keys on cmd with defaults taken from
// NewDefaultConfig. Unknown keys are ignored.
func AddFlags(cmd *cobra.Command, fs FlagSet, keys ...string) {
	defaults := viper.New()
	setViperDefaults(defaults)

	for _, key := range keys {
		def, ok := fs[key]
		if !ok {
			continue
		}
		flags := cmd.Flags()
		switch defaults.Get(def.ViperKey).(type) {
		case bool:
			flags.BoolP(def.Name, def.Shorthand, defaults.GetBool(def.ViperKey), def.Description)
		case int:
			flags.IntP(def.Name, def.Shorthand, defaults.GetInt(def.ViperKey), def.Description)
		case float64:
			flags.Float64P(def.Name, def.Shorthand, defaults.GetFloat64(def.ViperKey), def.Description)
		case []string:
			flags.StringSliceP(def.Name, def.Shorthand, defaults.GetStringSlice(def.ViperKey), def.Description)
		default:
			flags.StringP(def.Name, def.Shorthand, defaults.GetString(def.ViperKey), def.Description)
		}
	}
}

// BindRegisteredFlags binds already-registered flags to v. Call it after
// InitViper so that explicitly set flags win over env and file values.
func BindRegisteredFlags(v *viper.Viper, cmd *cobra.Command, fs FlagSet, keys ...string) {
	for _, key := range keys {
		def, ok := fs[key]
		if !ok {
			continue
		}
		f := cmd.Flags().Lookup(def.Name)
		if f == nil {
			continue
		}
		_ = v.BindPFlag(def.ViperKey, f)
	}
}
