package layerf1cmder_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	layerf1cmder "github.com/anupam312nwd/matrix-manifolds/cmd/layerf1"
	"github.com/anupam312nwd/matrix-manifolds/embedding"
	"github.com/anupam312nwd/matrix-manifolds/matrix"
)

const pathEdges = "0 1\n1 2\n2 3\n3 4\n"

// writeRun stores the path embedding, with node 1 pulled towards node 3 when
// misplaced is set.
func writeRun(dir string, misplaced bool) {
	d, err := embedding.Line([]float64{0, 10, 15, 17.5, 18.75})
	Expect(err).NotTo(HaveOccurred())
	if misplaced {
		d.SetSym(1, 3, 4)
	}
	Expect(os.MkdirAll(dir, 0o755)).To(Succeed())
	f, err := os.Create(filepath.Join(dir, "distances.bin"))
	Expect(err).NotTo(HaveOccurred())
	defer f.Close()
	_, err = matrix.WriteDense(f, d)
	Expect(err).NotTo(HaveOccurred())
}

func execute(args ...string) (string, error) {
	var out, errOut bytes.Buffer
	cmd := layerf1cmder.NewLayerF1Cmd()
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

type curve struct {
	Layers []int     `json:"layers" toml:"layers"`
	Means  []float64 `json:"means" toml:"means"`
	Stds   []float64 `json:"stds" toml:"stds"`
}

type report struct {
	Dataset string   `json:"dataset" toml:"dataset"`
	Curve   curve    `json:"curve" toml:"curve"`
	Runs    []string `json:"runs" toml:"runs"`
	Dropped []struct {
		ID string `json:"id" toml:"id"`
	} `json:"dropped" toml:"dropped"`
}

var _ = Describe("layerf1", func() {
	var dataDir, runsDir string

	BeforeEach(func() {
		root := GinkgoT().TempDir()
		dataDir = filepath.Join(root, "data")
		runsDir = filepath.Join(root, "runs")
		Expect(os.MkdirAll(dataDir, 0o755)).To(Succeed())
		Expect(os.WriteFile(filepath.Join(dataDir, "path5.edges"), []byte(pathEdges), 0o644)).To(Succeed())
	})

	Describe("eval", func() {
		It("reports the per-layer curve across runs", func() {
			cfgDir := filepath.Join(runsDir, "path5", "stress", "euc")
			writeRun(filepath.Join(cfgDir, "0"), false)
			writeRun(filepath.Join(cfgDir, "1"), true)
			Expect(os.MkdirAll(filepath.Join(cfgDir, "2"), 0o755)).To(Succeed())

			out, err := execute("eval", "path5", "--data", dataDir, "--runs", cfgDir, "--workers", "2")
			Expect(err).NotTo(HaveOccurred())

			var rep report
			Expect(json.Unmarshal([]byte(out), &rep)).To(Succeed())
			Expect(rep.Dataset).To(Equal("path5"))
			Expect(rep.Runs).To(Equal([]string{"0", "1"}))
			Expect(rep.Dropped).To(HaveLen(1))
			Expect(rep.Dropped[0].ID).To(Equal("2"))
			Expect(rep.Curve.Layers).To(Equal([]int{1, 2, 3}))
			Expect(rep.Curve.Means).To(Equal([]float64{0.5, 1, 1}))
		})

		It("writes TOML and honours max-layers", func() {
			cfgDir := filepath.Join(runsDir, "cfg")
			writeRun(filepath.Join(cfgDir, "0"), true)

			out, err := execute("eval", "path5", "--data", dataDir, "--runs", cfgDir,
				"--format", "toml", "--max-layers", "1")
			Expect(err).NotTo(HaveOccurred())

			var rep report
			_, err = toml.Decode(out, &rep)
			Expect(err).NotTo(HaveOccurred())
			Expect(rep.Curve.Layers).To(Equal([]int{1}))
			Expect(rep.Curve.Means).To(Equal([]float64{0}))
		})

		It("fails for an unknown dataset", func() {
			_, err := execute("eval", "nope", "--data", dataDir, "--runs", runsDir)
			Expect(err).To(MatchError(os.ErrNotExist))
		})

		It("rejects an invalid rule", func() {
			_, err := execute("eval", "path5", "--data", dataDir, "--rule", "cousins")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("layers", func() {
		It("prints the histogram", func() {
			out, err := execute("layers", "path5", "--data", dataDir)
			Expect(err).NotTo(HaveOccurred())

			var h struct {
				Nodes         int       `json:"nodes"`
				NodesPerLayer []int     `json:"nodes_per_layer"`
				Distribution  []float64 `json:"distribution"`
				Scorable      int       `json:"scorable"`
			}
			Expect(json.Unmarshal([]byte(out), &h)).To(Succeed())
			Expect(h.Nodes).To(Equal(5))
			Expect(h.NodesPerLayer).To(Equal([]int{1, 1, 1, 1, 1}))
			Expect(h.Distribution).To(Equal([]float64{0.25, 0.25, 0.25, 0.25}))
			Expect(h.Scorable).To(Equal(3))
		})

		It("re-roots the hierarchy", func() {
			out, err := execute("layers", "path5", "--data", dataDir, "--root", "2")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`"root": 2`))
			Expect(out).To(ContainSubstring(`"root_label": "2"`))
		})

		It("reports the edge-list label of the relabelled root", func() {
			Expect(os.WriteFile(filepath.Join(dataDir, "sparse.edges"), []byte("30 10\n10 20\n"), 0o644)).To(Succeed())
			out, err := execute("layers", "sparse", "--data", dataDir, "--root", "1")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`"root": 1`))
			Expect(out).To(ContainSubstring(`"root_label": "20"`))
		})
	})

	Describe("sweep", func() {
		BeforeEach(func() {
			writeRun(filepath.Join(runsDir, "path5", "flipp_0.1", "stress", "euc", "0"), false)
			writeRun(filepath.Join(runsDir, "path5", "flipp_0.1", "stress", "hyp", "0"), true)
			writeRun(filepath.Join(runsDir, "path5", "flipp_0.1", "dist", "euc", "0"), false)
			writeRun(filepath.Join(runsDir, "path5", "flipp_0.3", "stress", "euc", "0"), true)
			writeRun(filepath.Join(runsDir, "missing", "flipp_0.1", "stress", "euc", "0"), false)
		})

		It("evaluates every combination", func() {
			out, err := execute("sweep", "--data", dataDir, "--runs", runsDir)
			Expect(err).NotTo(HaveOccurred())

			var rep struct {
				Results []struct {
					Dataset  string `json:"dataset"`
					FlipProb string `json:"flip_probability"`
					Loss     string `json:"loss"`
					Manifold string `json:"manifold"`
					Report   report `json:"report"`
					Error    string `json:"error"`
				} `json:"results"`
			}
			Expect(json.Unmarshal([]byte(out), &rep)).To(Succeed())
			Expect(rep.Results).To(HaveLen(5))

			Expect(rep.Results[0].Dataset).To(Equal("missing"))
			Expect(rep.Results[0].Error).NotTo(BeEmpty())

			Expect(rep.Results[1].FlipProb).To(Equal("0.1"))
			Expect(rep.Results[1].Loss).To(Equal("dist"))
			Expect(rep.Results[2].Manifold).To(Equal("euc"))
			Expect(rep.Results[2].Report.Curve.Means).To(Equal([]float64{1, 1, 1}))
			Expect(rep.Results[3].Manifold).To(Equal("hyp"))
			Expect(rep.Results[3].Report.Curve.Means).To(Equal([]float64{0, 1, 1}))
			Expect(rep.Results[4].FlipProb).To(Equal("0.3"))
			Expect(rep.Results[4].Loss).To(Equal("stress"))
			Expect(rep.Results[4].Report.Curve.Means).To(Equal([]float64{0, 1, 1}))
		})

		It("filters by flip probability", func() {
			out, err := execute("sweep", "--data", dataDir, "--runs", runsDir,
				"--datasets", "path5", "--flip-probabilities", "0.3")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`"flip_probability": "0.3"`))
			Expect(out).NotTo(ContainSubstring(`"flip_probability": "0.1"`))
		})

		It("appends JSON logs to the log file", func() {
			logPath := filepath.Join(GinkgoT().TempDir(), "sweep.log")
			_, err := execute("sweep", "--data", dataDir, "--runs", runsDir, "--log-file", logPath)
			Expect(err).NotTo(HaveOccurred())

			data, err := os.ReadFile(logPath)
			Expect(err).NotTo(HaveOccurred())
			Expect(string(data)).To(ContainSubstring(`"msg":"configuration failed"`))
			Expect(string(data)).To(ContainSubstring(`"dataset":"missing"`))
			Expect(string(data)).To(ContainSubstring(`"flipp":"0.1"`))
		})

		It("applies filters", func() {
			out, err := execute("sweep", "--data", dataDir, "--runs", runsDir,
				"--datasets", "path5", "--loss-fns", "stress", "--manifolds", "hyp")
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring(`"manifold": "hyp"`))
			Expect(out).NotTo(ContainSubstring(`"manifold": "euc"`))
		})

		It("fails when nothing matches", func() {
			_, err := execute("sweep", "--data", dataDir, "--runs", runsDir, "--datasets", "none")
			Expect(err).To(MatchError(ContainSubstring("no configurations")))
		})
	})

	Describe("config", func() {
		It("writes and reads a config file", func() {
			path := filepath.Join(GinkgoT().TempDir(), "layerf1.toml")
			out, err := execute("config", "init", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("wrote"))

			_, err = execute("config", "init", path)
			Expect(err).To(MatchError(ContainSubstring("already exists")))

			out, err = execute("config", "get", "data.rule", "--config", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(Equal("children\n"))

			out, err = execute("config", "list", "--config", path)
			Expect(err).NotTo(HaveOccurred())
			Expect(out).To(ContainSubstring("eval.epsilon = 1e-06"))
		})
	})
})
