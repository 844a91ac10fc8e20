package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// EnvPrefix is prepended to environment overrides: LAYERF1_EVAL_WORKERS etc.
const EnvPrefix = "LAYERF1"

// InitViper returns a viper instance with defaults registered, the config
// file read and environment variables bound.
//
// Precedence (highest first):
//  1. CLI flags (once bound via BindRegisteredFlags)
//  2. LAYERF1_* environment variables
//  3. the config file (path, or ./layerf1.toml when path is empty)
//  4. NewDefaultConfig()
//
// A missing file is only an error when path was given explicitly.
func InitViper(path string) (*viper.Viper, error) {
	v := viper.New()
	setViperDefaults(v)

	v.SetConfigType("toml")
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName(strings.TrimSuffix(DefaultFile, ".toml"))
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !(errors.As(err, &notFound) || errors.Is(err, os.ErrNotExist)) {
			return nil, fmt.Errorf("reading config: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v, nil
}

// setViperDefaults registers NewDefaultConfig() under dotted keys.
func setViperDefaults(v *viper.Viper) {
	d := NewDefaultConfig()

	v.SetDefault("version", d.Version)

	v.SetDefault("data.dir", d.Data.Dir)
	v.SetDefault("data.root", d.Data.Root)
	v.SetDefault("data.rule", d.Data.Rule)

	v.SetDefault("runs.dir", d.Runs.Dir)
	v.SetDefault("runs.squared", d.Runs.Squared)
	v.SetDefault("runs.datasets", d.Runs.Datasets)
	v.SetDefault("runs.flip_probabilities", d.Runs.FlipProbs)
	v.SetDefault("runs.loss_fns", d.Runs.LossFns)
	v.SetDefault("runs.manifolds", d.Runs.Manifolds)

	v.SetDefault("eval.workers", d.Eval.Workers)
	v.SetDefault("eval.max_layers", d.Eval.MaxLayers)
	v.SetDefault("eval.epsilon", d.Eval.Epsilon)

	v.SetDefault("output.format", d.Output.Format)

	v.SetDefault("log.debug", d.Log.Debug)
	v.SetDefault("log.json", d.Log.JSON)
	v.SetDefault("log.pretty", d.Log.Pretty)
	v.SetDefault("log.source", d.Log.Source)
	v.SetDefault("log.file", d.Log.File)
}

// FromViper materializes and validates a Config from v.
func FromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Version: v.GetInt("version"),
		Data: DataConfig{
			Dir:  v.GetString("data.dir"),
			Root: v.GetInt("data.root"),
			Rule: v.GetString("data.rule"),
		},
		Runs: RunsConfig{
			Dir:       v.GetString("runs.dir"),
			Squared:   v.GetBool("runs.squared"),
			Datasets:  stringList(v, "runs.datasets"),
			FlipProbs: stringList(v, "runs.flip_probabilities"),
			LossFns:   stringList(v, "runs.loss_fns"),
			Manifolds: stringList(v, "runs.manifolds"),
		},
		Eval: EvalConfig{
			Workers:   v.GetInt("eval.workers"),
			MaxLayers: v.GetInt("eval.max_layers"),
			Epsilon:   v.GetFloat64("eval.epsilon"),
		},
		Output: OutputConfig{
			Format: strings.ToLower(v.GetString("output.format")),
		},
		Log: LogConfig{
			Debug:  v.GetBool("log.debug"),
			JSON:   v.GetBool("log.json"),
			Pretty: v.GetBool("log.pretty"),
			Source: v.GetBool("log.source"),
			File:   v.GetString("log.file"),
		},
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// stringList accepts both TOML arrays and comma-separated env values.
func stringList(v *viper.Viper, key string) []string {
	var out []string
	for _, s := range v.GetStringSlice(key) {
		out = append(out, splitList(s)...)
	}
	return out
}
