package examples

import (
	"context"
	"log/slog"
	"sync"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Example is a fetched usage example for one component type.
type Example struct {
	Type string
	Text string
}

// Fetcher retrieves usage examples, at most one per component type, backed by
// a per-instance cache. The cache holds at most one entry per catalog
// component and lives as long as the fetcher; entries are never invalidated.
// Only successful non-empty responses are cached, so a failed lookup is
// retried on the next call.
type Fetcher struct {
	source Source
	cache  *lru.Cache[string, string]
	logger *slog.Logger
}

// NewFetcher builds a fetcher over source. capacity bounds the cache and
// should equal the catalog's component-type count. A nil logger defaults to
// slog.Default.
func NewFetcher(source Source, capacity int, logger *slog.Logger) (*Fetcher, error) {
	if capacity <= 0 {
		capacity = 1
	}
	if logger == nil {
		logger = slog.Default()
	}
	cache, err := lru.New[string, string](capacity)
	if err != nil {
		return nil, err
	}
	return &Fetcher{
		source: source,
		cache:  cache,
		logger: logger,
	}, nil
}

// FetchAll returns examples for the given component types in input order.
// Uncached types are fetched concurrently; lookups that fail or come back
// empty are skipped without a warning. Concurrent fetches of the same type
// are wasteful but safe: the last successful writer wins.
func (f *Fetcher) FetchAll(ctx context.Context, types []string) []Example {
	if f.source == nil || len(types) == 0 {
		return nil
	}

	texts := make([]string, len(types))
	var wg sync.WaitGroup

	for i, componentType := range types {
		if text, ok := f.cache.Get(componentType); ok {
			texts[i] = text
			continue
		}

		wg.Add(1)
		go func(i int, componentType string) {
			defer wg.Done()
			text, err := f.source.ComponentExample(ctx, componentType)
			if err != nil {
				f.logger.Debug("example fetch failed", "type", componentType, "error", err)
				return
			}
			if text == "" {
				return
			}
			f.cache.Add(componentType, text)
			texts[i] = text
		}(i, componentType)
	}
	wg.Wait()

	examples := make([]Example, 0, len(types))
	for i, text := range texts {
		if text != "" {
			examples = append(examples, Example{Type: types[i], Text: text})
		}
	}
	return examples
}
