package config

const (
	defaultRule      = "children"
	defaultFormat    = FormatJSON
	defaultMaxLayers = 0
	defaultEpsilon   = 1e-6
)

// Report formats.
const (
	FormatJSON = "json"
	FormatTOML = "toml"
)

// NewDefaultConfig returns a Config with every default filled in. It is the
// single source of default values for viper, flags and Load.
func NewDefaultConfig() *Config {
	return &Config{
		Version: CurrentV,
		Data: DataConfig{
			Dir:  ".",
			Root: 0,
			Rule: defaultRule,
		},
		Runs: RunsConfig{
			Dir: ".",
		},
		Eval: EvalConfig{
			Workers:   0,
			MaxLayers: defaultMaxLayers,
			Epsilon:   defaultEpsilon,
		},
		Output: OutputConfig{
			Format: defaultFormat,
		},
		Log: LogConfig{
			Pretty: true,
		},
	}
}
