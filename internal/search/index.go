// Package search keeps a full-text index of institution names for autocomplete.
package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"unicode/utf8"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/search/query"
	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/catalog"
	"github.com/edurank-nepal/api/internal/public/domain"
)

const (
	// MinQueryRunes is the shortest query that produces suggestions.
	MinQueryRunes = 2
	// DefaultCacheSize bounds the number of cached suggestion lists.
	DefaultCacheSize = 256
)

// document is what bleve stores per institution.
type document struct {
	Name         string `json:"name"`
	City         string `json:"city"`
	Type         string `json:"type"`
	Programs     string `json:"programs"`
	Destinations string `json:"destinations"`
	Description  string `json:"description"`
}

// Index answers name suggestions from an in-memory bleve index.
type Index struct {
	// rebuildMu serializes rebuilds; applied is the last catalog version
	// indexed through OnCatalogReload.
	rebuildMu sync.Mutex
	applied   uint64

	mu     sync.RWMutex
	index  bleve.Index
	closed bool

	cache  *lru.Cache[string, []string]
	logger *zap.Logger
}

// NewIndex creates an empty index.
func NewIndex(logger *zap.Logger) (*Index, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	idx, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("create suggest index: %w", err)
	}
	cache, err := lru.New[string, []string](DefaultCacheSize)
	if err != nil {
		return nil, err
	}
	return &Index{index: idx, cache: cache, logger: logger}, nil
}

// Rebuild replaces the indexed documents with list.
func (i *Index) Rebuild(ctx context.Context, list []domain.Institution) error {
	i.rebuildMu.Lock()
	defer i.rebuildMu.Unlock()
	return i.rebuild(ctx, list)
}

func (i *Index) rebuild(ctx context.Context, list []domain.Institution) error {
	next, err := bleve.NewMemOnly(bleve.NewIndexMapping())
	if err != nil {
		return fmt.Errorf("create suggest index: %w", err)
	}

	batch := next.NewBatch()
	for _, inst := range list {
		if err := ctx.Err(); err != nil {
			_ = next.Close()
			return err
		}
		if err := batch.Index(inst.ID, toDocument(inst)); err != nil {
			_ = next.Close()
			return fmt.Errorf("index institution %s: %w", inst.ID, err)
		}
	}
	if err := next.Batch(batch); err != nil {
		_ = next.Close()
		return fmt.Errorf("execute batch: %w", err)
	}

	i.mu.Lock()
	if i.closed {
		i.mu.Unlock()
		_ = next.Close()
		return fmt.Errorf("index is closed")
	}
	prev := i.index
	i.index = next
	i.cache.Purge()
	i.mu.Unlock()

	if prev != nil {
		_ = prev.Close()
	}
	i.logger.Info("suggest index rebuilt", zap.Int("documents", len(list)))
	return nil
}

// OnCatalogReload is a catalog.ReloadListener that rebuilds the index.
// Snapshots older than the last one indexed are ignored.
func (i *Index) OnCatalogReload(ctx context.Context, snap *catalog.Snapshot) {
	i.rebuildMu.Lock()
	defer i.rebuildMu.Unlock()

	if snap.Version < i.applied {
		i.logger.Debug("stale catalog snapshot skipped",
			zap.Uint64("version", snap.Version),
			zap.Uint64("applied", i.applied))
		return
	}
	if err := i.rebuild(ctx, snap.Institutions); err != nil {
		i.logger.Error("suggest index rebuild failed", zap.Error(err))
		return
	}
	i.applied = snap.Version
}

// Suggest returns up to limit institution ids matching q, best first.
func (i *Index) Suggest(ctx context.Context, q string, limit int) ([]string, error) {
	q = strings.TrimSpace(q)
	if utf8.RuneCountInString(q) < MinQueryRunes || limit <= 0 {
		return []string{}, nil
	}
	key := strings.ToLower(q) + "|" + strconv.Itoa(limit)

	i.mu.RLock()
	defer i.mu.RUnlock()
	if i.closed {
		return nil, fmt.Errorf("index is closed")
	}
	if ids, ok := i.cache.Get(key); ok {
		return append([]string(nil), ids...), nil
	}

	req := bleve.NewSearchRequest(buildQuery(q))
	req.Size = limit
	result, err := i.index.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("suggest search failed: %w", err)
	}

	ids := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		ids = append(ids, hit.ID)
	}
	i.cache.Add(key, ids)
	return append([]string(nil), ids...), nil
}

// Close releases the index.
func (i *Index) Close() error {
	i.mu.Lock()
	defer i.mu.Unlock()
	if i.closed {
		return nil
	}
	i.closed = true
	return i.index.Close()
}

// buildQuery favours name matches, with the last word treated as a prefix
// so that partially typed names still match.
func buildQuery(q string) query.Query {
	name := bleve.NewMatchQuery(q)
	name.SetField("name")
	name.SetBoost(3)

	queries := []query.Query{name}

	words := strings.Fields(strings.ToLower(q))
	if last := words[len(words)-1]; last != "" {
		prefix := bleve.NewPrefixQuery(last)
		prefix.SetField("name")
		prefix.SetBoost(2)
		queries = append(queries, prefix)
	}

	for _, field := range []string{"city", "programs", "destinations"} {
		m := bleve.NewMatchQuery(q)
		m.SetField(field)
		queries = append(queries, m)
	}
	return bleve.NewDisjunctionQuery(queries...)
}

func toDocument(inst domain.Institution) document {
	return document{
		Name:         inst.Name,
		City:         inst.City,
		Type:         string(inst.Type),
		Programs:     strings.Join(inst.Programs, " "),
		Destinations: strings.Join(inst.Destinations, " "),
		Description:  inst.Description,
	}
}
