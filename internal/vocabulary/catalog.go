package vocabulary

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/heartmarshall/vocabcheck/internal/domain"
)

type levelLoader interface {
	Load(ctx context.Context, level domain.Level) (domain.Vocabulary, error)
}

// Catalog is the ordered list of selectable levels together with a cache of
// their loaded vocabularies. Concurrent requests for the same uncached level
// share a single load.
type Catalog struct {
	loader  levelLoader
	timeout time.Duration

	mu     sync.RWMutex
	levels []domain.Level
	cache  map[string]domain.Vocabulary

	group singleflight.Group
}

// NewCatalog creates a Catalog over levels. Loads run with timeout, detached
// from the caller's cancellation.
func NewCatalog(loader levelLoader, levels []domain.Level, timeout time.Duration) *Catalog {
	return &Catalog{
		loader:  loader,
		timeout: timeout,
		levels:  append([]domain.Level(nil), levels...),
		cache:   make(map[string]domain.Vocabulary),
	}
}

// Levels returns the selectable levels in selector order.
func (c *Catalog) Levels() []domain.Level {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]domain.Level(nil), c.levels...)
}

// Level looks up a level by name.
func (c *Catalog) Level(name string) (domain.Level, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, l := range c.levels {
		if l.Name == name {
			return l, nil
		}
	}
	return domain.Level{}, fmt.Errorf("level %q: %w", name, domain.ErrNotFound)
}

// AddLevels appends levels whose names are not yet present.
func (c *Catalog) AddLevels(levels ...domain.Level) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, l := range levels {
		exists := false
		for _, have := range c.levels {
			if have.Name == l.Name {
				exists = true
				break
			}
		}
		if !exists {
			c.levels = append(c.levels, l)
		}
	}
}

// Load fetches a level's vocabulary without touching the cache.
func (c *Catalog) Load(ctx context.Context, level domain.Level) (domain.Vocabulary, error) {
	ctx, cancel := c.detach(ctx)
	defer cancel()
	return c.loader.Load(ctx, level)
}

// Vocabulary returns the cached vocabulary of the named level, loading it on
// first use. Failed loads are not cached.
func (c *Catalog) Vocabulary(ctx context.Context, name string) (domain.Vocabulary, error) {
	level, err := c.Level(name)
	if err != nil {
		return nil, err
	}

	c.mu.RLock()
	v, ok := c.cache[name]
	c.mu.RUnlock()
	if ok {
		return v, nil
	}

	res, err, _ := c.group.Do(name, func() (any, error) {
		c.mu.RLock()
		v, ok := c.cache[name]
		c.mu.RUnlock()
		if ok {
			return v, nil
		}

		v, err := c.Load(ctx, level)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.cache[name] = v
		c.mu.Unlock()
		return v, nil
	})
	if err != nil {
		return nil, err
	}
	return res.(domain.Vocabulary), nil
}

// Cached reports whether the named level's vocabulary is in the cache.
func (c *Catalog) Cached(name string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	_, ok := c.cache[name]
	return ok
}

func (c *Catalog) detach(ctx context.Context) (context.Context, context.CancelFunc) {
	ctx = context.WithoutCancel(ctx)
	if c.timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, c.timeout)
}
