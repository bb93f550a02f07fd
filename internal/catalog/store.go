package catalog

import (
	"context"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/public/domain"
)

// Snapshot is one immutable generation of the catalog.
type Snapshot struct {
	Institutions []domain.Institution
	Version      uint64
	LoadedAt     time.Time

	bySlug map[string]int
	byID   map[string]int
}

func newSnapshot(list []domain.Institution, version uint64) *Snapshot {
	s := &Snapshot{
		Institutions: list,
		Version:      version,
		LoadedAt:     time.Now().UTC(),
		bySlug:       make(map[string]int, len(list)),
		byID:         make(map[string]int, len(list)),
	}
	for i, inst := range list {
		if _, exists := s.bySlug[inst.Slug]; !exists {
			s.bySlug[inst.Slug] = i
		}
		s.byID[inst.ID] = i
	}
	return s
}

// ReloadListener is notified with the new snapshot after every reload.
type ReloadListener func(ctx context.Context, snap *Snapshot)

// Store serves the current catalog snapshot and swaps it on reload.
// Readers never observe a partially built catalog.
type Store struct {
	loader *Loader
	logger *zap.Logger

	// reloadMu serializes whole reloads so an older load cannot replace a
	// newer snapshot and listeners see versions in order.
	reloadMu sync.Mutex

	mu        sync.RWMutex
	snap      *Snapshot
	listeners []ReloadListener
}

// NewStore creates a store with the built-in catalog as its first snapshot.
// Call Reload to pick up the catalog file.
func NewStore(loader *Loader, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		loader: loader,
		logger: logger,
		snap:   newSnapshot(Static(), 0),
	}
}

// NewStaticStore serves a fixed list; Reload keeps it unchanged.
func NewStaticStore(list []domain.Institution) *Store {
	return &Store{logger: zap.NewNop(), snap: newSnapshot(list, 0)}
}

// OnReload registers a listener for future reloads.
func (s *Store) OnReload(fn ReloadListener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// Reload rebuilds the snapshot from the loader and notifies listeners.
func (s *Store) Reload(ctx context.Context) *Snapshot {
	s.reloadMu.Lock()
	defer s.reloadMu.Unlock()

	var list []domain.Institution
	if s.loader != nil {
		list = s.loader.Load(ctx)
	} else {
		list = s.Snapshot().Institutions
	}

	s.mu.Lock()
	next := newSnapshot(list, s.snap.Version+1)
	s.snap = next
	listeners := append([]ReloadListener(nil), s.listeners...)
	s.mu.Unlock()

	s.logger.Info("catalog snapshot swapped",
		zap.Uint64("version", next.Version),
		zap.Int("institutions", len(next.Institutions)))
	for _, fn := range listeners {
		fn(ctx, next)
	}
	return next
}

// Snapshot returns the current generation.
func (s *Store) Snapshot() *Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snap
}

// List returns every institution in catalog order.
func (s *Store) List(_ context.Context) ([]domain.Institution, error) {
	snap := s.Snapshot()
	return append([]domain.Institution(nil), snap.Institutions...), nil
}

// FindBySlug looks an institution up by slug.
func (s *Store) FindBySlug(_ context.Context, slug string) (*domain.Institution, error) {
	snap := s.Snapshot()
	i, ok := snap.bySlug[strings.ToLower(strings.TrimSpace(slug))]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inst := snap.Institutions[i]
	return &inst, nil
}

// FindByID looks an institution up by id.
func (s *Store) FindByID(_ context.Context, id string) (*domain.Institution, error) {
	snap := s.Snapshot()
	i, ok := snap.byID[strings.TrimSpace(id)]
	if !ok {
		return nil, domain.ErrNotFound
	}
	inst := snap.Institutions[i]
	return &inst, nil
}
