// Package runs discovers trained-embedding runs on disk and exposes them as
// lazily-loaded evaluate.Run values.
//
// A configuration directory holds one sub-directory per run, named by its
// run index. Each run directory contains exactly one of:
//
//	pdists.bin     condensed pairwise distances (gonum VecDense binary)
//	distances.bin  full n×n distance matrix (gonum Dense binary)
//	points.bin     n×d coordinates (gonum Dense binary), Euclidean distances
//
// Runs are ordered by the numeric value of their directory name; names that
// are not integers sort after all numeric ones, lexicographically.
package runs

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"

	"github.com/anupam312nwd/matrix-manifolds/embedding"
	"github.com/anupam312nwd/matrix-manifolds/evaluate"
	"github.com/anupam312nwd/matrix-manifolds/matrix"
)

// File names recognised inside a run directory, in lookup order.
const (
	CondensedFile = "pdists.bin"
	DenseFile     = "distances.bin"
	PointsFile    = "points.bin"
)

var (
	// ErrNoMatrix is returned when a run directory holds none of the
	// recognised files.
	ErrNoMatrix = errors.New("runs: no distance file in run directory")

	// ErrNoRunDirs is returned when a configuration directory has no runs.
	ErrNoRunDirs = errors.New("runs: no run directories")
)

// Option configures DirSource.
type Option func(*options)

type options struct {
	squared bool
}

// WithSquared declares stored distances as squared; a square root is taken
// on load. It does not apply to points.bin.
func WithSquared(squared bool) Option {
	return func(o *options) { o.squared = squared }
}

// DirRun is a run stored in a directory.
type DirRun struct {
	id      string
	dir     string
	squared bool
}

var _ evaluate.Run = (*DirRun)(nil)

// NewDirRun returns the run stored in dir.
func NewDirRun(dir string, opts ...Option) *DirRun {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return &DirRun{id: filepath.Base(dir), dir: dir, squared: o.squared}
}

// ID returns the run directory's base name.
func (r *DirRun) ID() string { return r.id }

// Dir returns the run directory.
func (r *DirRun) Dir() string { return r.dir }

// Distances reads the run's distance matrix.
func (r *DirRun) Distances(ctx context.Context) (matrix.Distances, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for _, name := range []string{CondensedFile, DenseFile, PointsFile} {
		f, err := os.Open(filepath.Join(r.dir, name))
		if errors.Is(err, os.ErrNotExist) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("runs: %w", err)
		}
		d, err := r.decode(name, f)
		f.Close()
		if err != nil {
			return nil, fmt.Errorf("runs: %s: %w", filepath.Join(r.dir, name), err)
		}
		return d, nil
	}
	return nil, fmt.Errorf("%w: %s", ErrNoMatrix, r.dir)
}

func (r *DirRun) decode(name string, f *os.File) (matrix.Distances, error) {
	switch name {
	case CondensedFile:
		return matrix.ReadCondensed(f, matrix.WithSquared(r.squared))
	case DenseFile:
		return matrix.ReadDense(f, matrix.WithSquared(r.squared))
	default:
		pts, err := matrix.ReadDense(f)
		if err != nil {
			return nil, err
		}
		return embedding.Euclidean(pts)
	}
}

// DirSource lists the runs under dir in run order.
func DirSource(dir string, opts ...Option) ([]evaluate.Run, error) {
	ents, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("runs: %w", err)
	}
	var names []string
	for _, e := range ents {
		if e.IsDir() {
			names = append(names, e.Name())
		}
	}
	if len(names) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoRunDirs, dir)
	}
	SortNumeric(names)

	out := make([]evaluate.Run, len(names))
	for i, name := range names {
		out[i] = NewDirRun(filepath.Join(dir, name), opts...)
	}
	return out, nil
}

// SortNumeric sorts names by integer value; non-integers follow in
// lexicographic order.
func SortNumeric(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		x, errA := strconv.Atoi(a)
		y, errB := strconv.Atoi(b)
		switch {
		case errA == nil && errB == nil:
			return cmp.Compare(x, y)
		case errA == nil:
			return -1
		case errB == nil:
			return 1
		}
		return cmp.Compare(a, b)
	})
}
