package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Config is the persistent evaluation configuration, stored as TOML.
type Config struct {
	Version int          `toml:"version"`
	Data    DataConfig   `toml:"data"`
	Runs    RunsConfig   `toml:"runs"`
	Eval    EvalConfig   `toml:"eval"`
	Output  OutputConfig `toml:"output"`
	Log     LogConfig    `toml:"log"`
}

// DataConfig locates dataset edge lists and selects the hierarchy.
type DataConfig struct {
	Dir  string `toml:"dir,omitempty"`
	Root int    `toml:"root"`
	Rule string `toml:"rule,omitempty"`
}

// RunsConfig locates trained runs. For sweeps, Dir is the root of the
// <dataset>/flipp_<p>/<loss>/<manifold>/<run> tree and the filters restrict
// each level; empty filters match everything. FlipProbs matches the <p>
// part of the flip-probability directories.
type RunsConfig struct {
	Dir       string   `toml:"dir,omitempty"`
	Squared   bool     `toml:"squared"`
	Datasets  []string `toml:"datasets,omitempty"`
	FlipProbs []string `toml:"flip_probabilities,omitempty"`
	LossFns   []string `toml:"loss_fns,omitempty"`
	Manifolds []string `toml:"manifolds,omitempty"`
}

// EvalConfig tunes the evaluator.
type EvalConfig struct {
	Workers   int     `toml:"workers"`
	MaxLayers int     `toml:"max_layers"`
	Epsilon   float64 `toml:"epsilon"`
}

// OutputConfig selects the report encoding.
type OutputConfig struct {
	Format string `toml:"format,omitempty"`
}

// LogConfig controls logging. When File is set, JSON records are appended
// to it in addition to the terminal output.
type LogConfig struct {
	Debug  bool   `toml:"debug"`
	JSON   bool   `toml:"json"`
	Pretty bool   `toml:"pretty"`
	Source bool   `toml:"source"`
	File   string `toml:"file,omitempty"`
}

// configKeyInfo maps a dotted key to a getter and setter on *Config.
type configKeyInfo struct {
	get func(c *Config) string
	set func(c *Config, v string) error
}

func intKey(key string, field func(c *Config) *int) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return strconv.Itoa(*field(c)) },
		set: func(c *Config, v string) error {
			n, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", key, err)
			}
			*field(c) = n
			return nil
		},
	}
}

func boolKey(key string, field func(c *Config) *bool) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return strconv.FormatBool(*field(c)) },
		set: func(c *Config, v string) error {
			b, err := strconv.ParseBool(v)
			if err != nil {
				return fmt.Errorf("invalid value for %s: %w", key, err)
			}
			*field(c) = b
			return nil
		},
	}
}

func listKey(field func(c *Config) *[]string) configKeyInfo {
	return configKeyInfo{
		get: func(c *Config) string { return strings.Join(*field(c), ",") },
		set: func(c *Config, v string) error {
			*field(c) = splitList(v)
			return nil
		},
	}
}

// splitList parses a comma-separated list, dropping empty items.
func splitList(v string) []string {
	var out []string
	for _, s := range strings.Split(v, ",") {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// configKeys is the authoritative map of supported dotted keys.
var configKeys = map[string]configKeyInfo{
	"data.dir": {
		get: func(c *Config) string { return c.Data.Dir },
		set: func(c *Config, v string) error { c.Data.Dir = v; return nil },
	},
	"data.root": intKey("data.root", func(c *Config) *int { return &c.Data.Root }),
	"data.rule": {
		get: func(c *Config) string { return c.Data.Rule },
		set: func(c *Config, v string) error { c.Data.Rule = v; return nil },
	},
	"runs.dir": {
		get: func(c *Config) string { return c.Runs.Dir },
		set: func(c *Config, v string) error { c.Runs.Dir = v; return nil },
	},
	"runs.squared":            boolKey("runs.squared", func(c *Config) *bool { return &c.Runs.Squared }),
	"runs.datasets":           listKey(func(c *Config) *[]string { return &c.Runs.Datasets }),
	"runs.flip_probabilities": listKey(func(c *Config) *[]string { return &c.Runs.FlipProbs }),
	"runs.loss_fns":           listKey(func(c *Config) *[]string { return &c.Runs.LossFns }),
	"runs.manifolds":          listKey(func(c *Config) *[]string { return &c.Runs.Manifolds }),
	"eval.workers":            intKey("eval.workers", func(c *Config) *int { return &c.Eval.Workers }),
	"eval.max_layers":         intKey("eval.max_layers", func(c *Config) *int { return &c.Eval.MaxLayers }),
	"eval.epsilon": {
		get: func(c *Config) string { return strconv.FormatFloat(c.Eval.Epsilon, 'g', -1, 64) },
		set: func(c *Config, v string) error {
			f, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return fmt.Errorf("invalid value for eval.epsilon: %w", err)
			}
			c.Eval.Epsilon = f
			return nil
		},
	},
	"output.format": {
		get: func(c *Config) string { return c.Output.Format },
		set: func(c *Config, v string) error { c.Output.Format = v; return nil },
	},
	"log.debug":  boolKey("log.debug", func(c *Config) *bool { return &c.Log.Debug }),
	"log.json":   boolKey("log.json", func(c *Config) *bool { return &c.Log.JSON }),
	"log.pretty": boolKey("log.pretty", func(c *Config) *bool { return &c.Log.Pretty }),
	"log.source": boolKey("log.source", func(c *Config) *bool { return &c.Log.Source }),
	"log.file": {
		get: func(c *Config) string { return c.Log.File },
		set: func(c *Config, v string) error { c.Log.File = v; return nil },
	},
}
