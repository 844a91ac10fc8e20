package dataset

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"github.com/klauspost/compress/gzip"

	"github.com/anupam312nwd/matrix-manifolds/core"
)

// ErrParse is returned for malformed edge-list lines.
var ErrParse = errors.New("dataset: malformed edge list")

// EdgeList is a parsed graph together with the original label of every node.
type EdgeList struct {
	Graph  *core.Graph
	Labels []string // Labels[id] is the label node id was read from
}

// ID returns the dense id of label, or -1.
func (e *EdgeList) ID(label string) int {
	for i, l := range e.Labels {
		if l == label {
			return i
		}
	}
	return -1
}

// Load reads the edge list at path, gunzipping when path ends in ".gz".
func Load(path string) (*EdgeList, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("dataset: %s: %w", path, err)
		}
		defer zr.Close()
		r = zr
	}

	el, err := Parse(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return el, nil
}

// Parse reads an edge list from r.
func Parse(r io.Reader) (*EdgeList, error) {
	type pair struct{ u, v string }
	var pairs []pair
	seen := make(map[string]struct{})

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) < 2 || len(fields) > 3 {
			return nil, fmt.Errorf("%w: line %d: %q", ErrParse, line, text)
		}
		if len(fields) == 3 {
			if _, err := strconv.ParseFloat(fields[2], 64); err != nil {
				return nil, fmt.Errorf("%w: line %d: weight %q", ErrParse, line, fields[2])
			}
		}
		u, v := fields[0], fields[1]
		seen[u] = struct{}{}
		seen[v] = struct{}{}
		pairs = append(pairs, pair{u, v})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("dataset: read: %w", err)
	}

	labels := sortedLabels(seen)
	ids := make(map[string]int, len(labels))
	for i, l := range labels {
		ids[l] = i
	}

	g := core.NewGraph(len(labels), core.WithLoops())
	for _, p := range pairs {
		if err := g.AddEdge(ids[p.u], ids[p.v]); err != nil {
			return nil, fmt.Errorf("dataset: %w", err)
		}
	}
	return &EdgeList{Graph: g, Labels: labels}, nil
}

// sortedLabels orders labels numerically when all of them are integers and
// lexicographically otherwise. Labels of equal value ("01", "1") fall back
// to lexicographic order.
func sortedLabels(set map[string]struct{}) []string {
	labels := make([]string, 0, len(set))
	numeric := true
	for l := range set {
		labels = append(labels, l)
		if _, err := strconv.Atoi(l); err != nil {
			numeric = false
		}
	}
	if !numeric {
		slices.Sort(labels)
		return labels
	}
	slices.SortFunc(labels, func(a, b string) int {
		x, _ := strconv.Atoi(a)
		y, _ := strconv.Atoi(b)
		if c := cmp.Compare(x, y); c != 0 {
			return c
		}
		return cmp.Compare(a, b)
	})
	return labels
}

// Path returns the edge-list file for name inside dir, preferring the
// uncompressed "NAME.edges" over "NAME.edges.gz".
func Path(dir, name string) (string, error) {
	for _, ext := range []string{".edges", ".edges.gz"} {
		p := filepath.Join(dir, name+ext)
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}
	return "", fmt.Errorf("dataset: %s: %w", name, os.ErrNotExist)
}
