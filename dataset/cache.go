package dataset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/anupam312nwd/matrix-manifolds/evaluate"
	"github.com/anupam312nwd/matrix-manifolds/groundtruth"
	"github.com/anupam312nwd/matrix-manifolds/logger"
)

// Key identifies one set of evaluation artefacts. Root < 0 selects the
// graph's default root.
type Key struct {
	Path string
	Root int
	Rule groundtruth.Rule
}

func (k Key) String() string {
	return fmt.Sprintf("%s|%d|%s", k.Path, k.Root, k.Rule)
}

type entry struct {
	ds      *evaluate.Dataset
	labels  []string
	modTime time.Time
}

// Cache memoizes datasets by Key. An entry is reloaded when the file's
// modification time changes. Concurrent Gets of the same key share a
// single load. The zero value is not usable; call NewCache.
type Cache struct {
	mu      sync.RWMutex
	entries map[Key]entry
	group   singleflight.Group
	logger  *slog.Logger
}

// NewCache returns an empty cache. A nil logger discards output.
func NewCache(l *slog.Logger) *Cache {
	return &Cache{entries: make(map[Key]entry), logger: logger.OrNop(l)}
}

// Get returns the dataset for key, loading it on a miss or when the file
// changed since it was cached.
func (c *Cache) Get(ctx context.Context, key Key) (*evaluate.Dataset, error) {
	info, err := os.Stat(key.Path)
	if err != nil {
		return nil, fmt.Errorf("dataset: %w", err)
	}

	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && e.modTime.Equal(info.ModTime()) {
		return e.ds, nil
	}

	// The load outlives any single caller; each caller checks its own ctx.
	v, err, shared := c.group.Do(key.String(), func() (any, error) {
		return c.load(context.WithoutCancel(ctx), key, info.ModTime())
	})
	if err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if shared {
		c.logger.Debug("dataset load shared", "path", key.Path)
	}
	return v.(*evaluate.Dataset), nil
}

// Labels returns the original node labels of a cached dataset.
func (c *Cache) Labels(key Key) ([]string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.entries[key]
	return e.labels, ok
}

func (c *Cache) load(ctx context.Context, key Key, modTime time.Time) (*evaluate.Dataset, error) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()
	if ok && e.modTime.Equal(modTime) {
		return e.ds, nil
	}

	start := time.Now()
	el, err := Load(key.Path)
	if err != nil {
		return nil, err
	}

	opts := []evaluate.DatasetOption{
		evaluate.WithRule(key.Rule),
		evaluate.WithDatasetLogger(c.logger),
	}
	if key.Root >= 0 {
		opts = append(opts, evaluate.WithRoot(key.Root))
	}
	ds, err := evaluate.NewDataset(ctx, Name(key.Path), el.Graph, opts...)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.entries[key] = entry{ds: ds, labels: el.Labels, modTime: modTime}
	c.mu.Unlock()

	c.logger.Debug("dataset loaded",
		"path", key.Path,
		"nodes", ds.N(),
		"edges", ds.Graph.EdgeCount(),
		"layers", ds.Layers.NumLayers(),
		"elapsed", time.Since(start),
	)
	return ds, nil
}

// Invalidate drops key from the cache.
func (c *Cache) Invalidate(key Key) {
	c.mu.Lock()
	delete(c.entries, key)
	c.mu.Unlock()
	c.group.Forget(key.String())
}

// Purge drops every entry.
func (c *Cache) Purge() {
	c.mu.Lock()
	c.entries = make(map[Key]entry)
	c.mu.Unlock()
}

// Len returns the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Name derives a dataset name from its edge-list path.
func Name(path string) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	return strings.TrimSuffix(base, ".edges")
}
