package config_test

import (
	"os"
	"path/filepath"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/cobra"

	"github.com/anupam312nwd/matrix-manifolds/config"
	"github.com/anupam312nwd/matrix-manifolds/groundtruth"
)

var _ = Describe("Config", func() {
	var dir string

	BeforeEach(func() {
		dir = GinkgoT().TempDir()
	})

	Describe("NewDefaultConfig", func() {
		It("is valid", func() {
			cfg := config.NewDefaultConfig()
			Expect(cfg.Validate()).To(Succeed())
			Expect(cfg.Rule()).To(Equal(groundtruth.Children))
			Expect(cfg.Output.Format).To(Equal(config.FormatJSON))
		})
	})

	Describe("Validate", func() {
		DescribeTable("rejects bad values",
			func(key, value string) {
				cfg := config.NewDefaultConfig()
				Expect(cfg.Set(key, value)).To(Succeed())
				Expect(cfg.Validate()).To(MatchError(config.ErrInvalid))
			},
			Entry("rule", "data.rule", "siblings"),
			Entry("format", "output.format", "yaml"),
			Entry("workers", "eval.workers", "-1"),
			Entry("max layers", "eval.max_layers", "-2"),
			Entry("epsilon", "eval.epsilon", "-0.1"),
		)
	})

	Describe("Get and Set", func() {
		It("round-trips every key", func() {
			cfg := config.NewDefaultConfig()
			for _, key := range config.ValidConfigKeys() {
				v, err := cfg.Get(key)
				Expect(err).NotTo(HaveOccurred())
				Expect(cfg.Set(key, v)).To(Succeed(), key)
			}
			Expect(cfg).To(Equal(config.NewDefaultConfig()))
		})

		It("parses typed values", func() {
			cfg := config.NewDefaultConfig()
			Expect(cfg.Set("eval.workers", "4")).To(Succeed())
			Expect(cfg.Set("runs.squared", "true")).To(Succeed())
			Expect(cfg.Set("runs.manifolds", "euc, hyp,,sph")).To(Succeed())
			Expect(cfg.Eval.Workers).To(Equal(4))
			Expect(cfg.Runs.Squared).To(BeTrue())
			Expect(cfg.Runs.Manifolds).To(Equal([]string{"euc", "hyp", "sph"}))
			Expect(cfg.Set("runs.flip_probabilities", "0.1,0.3")).To(Succeed())
			Expect(cfg.Runs.FlipProbs).To(Equal([]string{"0.1", "0.3"}))
			Expect(cfg.Set("log.file", "sweep.log")).To(Succeed())
			Expect(cfg.Get("log.file")).To(Equal("sweep.log"))

			Expect(cfg.Set("eval.workers", "many")).To(HaveOccurred())
			Expect(cfg.Set("nope", "1")).To(HaveOccurred())
			Expect(config.IsValidConfigKey("data.rule")).To(BeTrue())
			Expect(config.IsValidConfigKey("data.rules")).To(BeFalse())
		})
	})

	Describe("TOML persistence", func() {
		It("saves and loads", func() {
			path := filepath.Join(dir, config.DefaultFile)
			cfg := config.NewDefaultConfig()
			cfg.Data.Rule = "descendants"
			cfg.Runs.Datasets = []string{"btree1365", "grid"}
			cfg.Eval.MaxLayers = 5

			Expect(config.Save(path, cfg)).To(Succeed())
			loaded, err := config.LoadFile(path)
			Expect(err).NotTo(HaveOccurred())
			Expect(loaded).To(Equal(cfg))
		})

		It("fills omitted keys with defaults", func() {
			cfg, err := config.ParseConfigTOML([]byte("[eval]\nworkers = 3\n"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Eval.Workers).To(Equal(3))
			Expect(cfg.Eval.Epsilon).To(Equal(config.NewDefaultConfig().Eval.Epsilon))
			Expect(cfg.Data.Rule).To(Equal("children"))
		})

		It("rejects unknown versions and bad TOML", func() {
			_, err := config.ParseConfigTOML([]byte("version = 9\n"))
			Expect(err).To(MatchError(ContainSubstring("unsupported config version")))
			_, err = config.ParseConfigTOML([]byte("[eval\n"))
			Expect(err).To(HaveOccurred())
		})

		It("returns defaults for a missing file", func() {
			cfg, err := config.LoadFile(filepath.Join(dir, "missing.toml"))
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg).To(Equal(config.NewDefaultConfig()))
		})

		It("refuses to save nil", func() {
			Expect(config.Save(filepath.Join(dir, "x.toml"), nil)).To(HaveOccurred())
		})
	})

	Describe("InitViper", func() {
		It("uses defaults without a file", func() {
			v, err := config.InitViper("")
			Expect(err).NotTo(HaveOccurred())
			cfg, err := config.FromViper(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Data.Rule).To(Equal("children"))
		})

		It("fails on an explicit missing file", func() {
			_, err := config.InitViper(filepath.Join(dir, "missing.toml"))
			Expect(err).To(HaveOccurred())
		})

		It("layers flag over env over file", func() {
			path := filepath.Join(dir, "eval.toml")
			Expect(os.WriteFile(path, []byte(`
[eval]
workers = 2
max_layers = 4

[runs]
datasets = ["a", "b"]
`), 0o644)).To(Succeed())
			GinkgoT().Setenv("LAYERF1_EVAL_MAX_LAYERS", "6")
			GinkgoT().Setenv("LAYERF1_RUNS_MANIFOLDS", "euc,hyp")
			GinkgoT().Setenv("LAYERF1_RUNS_FLIP_PROBABILITIES", "0.1")

			v, err := config.InitViper(path)
			Expect(err).NotTo(HaveOccurred())

			cmd := &cobra.Command{Use: "eval"}
			config.AddFlags(cmd, config.Flags, config.FlagWorkers, config.FlagMaxLayers, config.FlagFormat, config.FlagManifolds)
			Expect(cmd.Flags().Set("format", "toml")).To(Succeed())
			config.BindRegisteredFlags(v, cmd, config.Flags, config.FlagWorkers, config.FlagMaxLayers, config.FlagFormat, config.FlagManifolds)

			cfg, err := config.FromViper(v)
			Expect(err).NotTo(HaveOccurred())
			Expect(cfg.Eval.Workers).To(Equal(2))
			Expect(cfg.Eval.MaxLayers).To(Equal(6))
			Expect(cfg.Output.Format).To(Equal(config.FormatTOML))
			Expect(cfg.Runs.Datasets).To(Equal([]string{"a", "b"}))
			Expect(cfg.Runs.Manifolds).To(Equal([]string{"euc", "hyp"}))
			Expect(cfg.Runs.FlipProbs).To(Equal([]string{"0.1"}))
		})

		It("rejects invalid merged values", func() {
			GinkgoT().Setenv("LAYERF1_OUTPUT_FORMAT", "xml")
			v, err := config.InitViper("")
			Expect(err).NotTo(HaveOccurred())
			_, err = config.FromViper(v)
			Expect(err).To(MatchError(config.ErrInvalid))
		})
	})

	Describe("AddFlags", func() {
		It("registers typed flags with defaults", func() {
			cmd := &cobra.Command{Use: "x"}
			config.AddFlags(cmd, config.Flags, config.FlagSquared, config.FlagEpsilon, config.FlagRunsDir, "unknown")

			squared, err := cmd.Flags().GetBool("squared")
			Expect(err).NotTo(HaveOccurred())
			Expect(squared).To(BeFalse())
			eps, err := cmd.Flags().GetFloat64("epsilon")
			Expect(err).NotTo(HaveOccurred())
			Expect(eps).To(Equal(1e-6))
			Expect(cmd.Flags().ShorthandLookup("r")).NotTo(BeNil())
		})
	})
})
