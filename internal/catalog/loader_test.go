package catalog

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"github.com/edurank-nepal/api/internal/public/domain"
)

const sampleRows = `[
	["Test School","Kathmandu, Bagmati","NPR 5,000","NPR 10,000","NEB, Cambridge","Library, Labs","—","01-000","desc"],
	["Alpha Education","Putalisadak, Kathmandu","NPR 2,000","","NEB","Library","—","",""]
]`

func writeCatalog(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, "schools.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func countType(list []domain.Institution, typ domain.InstitutionType) int {
	n := 0
	for _, inst := range list {
		if inst.Type == typ {
			n++
		}
	}
	return n
}

func TestLoader_MergesParsedSchoolsWithStaticNonSchools(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), sampleRows)
	list, err := NewLoader(path, zap.NewNop()).LoadFile(context.Background())
	require.NoError(t, err)

	static := Static()
	assert.Equal(t, 2, countType(list, domain.TypeSchool), "static schools are replaced by parsed ones")
	assert.Equal(t, len(static)-countType(static, domain.TypeSchool)+2, len(list))

	for i := 1; i < len(list); i++ {
		assert.GreaterOrEqual(t, list[i-1].Score(), list[i].Score(), "sorted by EduRank score")
	}

	slugs := map[string]int{}
	for _, inst := range list {
		slugs[inst.Slug]++
	}
	for slug, n := range slugs {
		assert.Equal(t, 1, n, "slug %s", slug)
	}
	assert.Contains(t, slugs, "alpha-education-2", "parsed slug clashing with a static record is renamed")
}

func TestLoader_FallsBackToStatic(t *testing.T) {
	dir := t.TempDir()
	cases := map[string]string{
		"missing":   filepath.Join(dir, "absent.json"),
		"malformed": writeCatalog(t, dir, `{"not":"rows"}`),
		"empty":     "",
	}
	for name, path := range cases {
		t.Run(name, func(t *testing.T) {
			list := NewLoader(path, zap.NewNop()).Load(context.Background())
			assert.Equal(t, Static(), list)
		})
	}
}

func TestStore_ReloadSwapsSnapshotAndNotifies(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), sampleRows)
	store := NewStore(NewLoader(path, zap.NewNop()), zap.NewNop())

	before := store.Snapshot()
	assert.Equal(t, uint64(0), before.Version)
	_, err := store.FindBySlug(context.Background(), "budhanilkantha-school")
	require.NoError(t, err, "built-in catalog served before first reload")

	var notified []uint64
	store.OnReload(func(_ context.Context, snap *Snapshot) {
		notified = append(notified, snap.Version)
	})

	after := store.Reload(context.Background())
	assert.Equal(t, uint64(1), after.Version)
	assert.Equal(t, []uint64{1}, notified)

	inst, err := store.FindBySlug(context.Background(), "Test-School")
	require.NoError(t, err)
	assert.Equal(t, "dynamic-0", inst.ID)

	byID, err := store.FindByID(context.Background(), "dynamic-0")
	require.NoError(t, err)
	assert.Equal(t, "Test School", byID.Name)

	_, err = store.FindBySlug(context.Background(), "budhanilkantha-school")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := store.List(context.Background())
	require.NoError(t, err)
	list[0].Name = "changed"
	assert.NotEqual(t, "changed", store.Snapshot().Institutions[0].Name)
}

func TestStore_ConcurrentReloadsStayOrdered(t *testing.T) {
	path := writeCatalog(t, t.TempDir(), sampleRows)
	store := NewStore(NewLoader(path, zap.NewNop()), zap.NewNop())

	var (
		mu       sync.Mutex
		notified []uint64
	)
	store.OnReload(func(_ context.Context, snap *Snapshot) {
		mu.Lock()
		defer mu.Unlock()
		notified = append(notified, snap.Version)
	})

	const reloads = 8
	var wg sync.WaitGroup
	for n := 0; n < reloads; n++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			store.Reload(context.Background())
		}()
	}
	wg.Wait()

	assert.Equal(t, uint64(reloads), store.Snapshot().Version)
	want := make([]uint64, 0, reloads)
	for v := uint64(1); v <= reloads; v++ {
		want = append(want, v)
	}
	assert.Equal(t, want, notified)
}

func TestStore_StaticStore(t *testing.T) {
	store := NewStaticStore([]domain.Institution{{ID: "a", Slug: "a", Name: "A"}})
	store.Reload(context.Background())
	list, err := store.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestWatcher_ReloadsOnChange(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeCatalog(t, dir, `[]`)
	store := NewStore(NewLoader(path, zap.NewNop()), zap.NewNop())

	var mu sync.Mutex
	var reloads int
	store.OnReload(func(context.Context, *Snapshot) {
		mu.Lock()
		reloads++
		mu.Unlock()
	})

	w, err := NewWatcher(path, store, zap.NewNop())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx))

	writeCatalog(t, dir, sampleRows)

	require.Eventually(t, func() bool {
		_, err := store.FindBySlug(context.Background(), "test-school")
		return err == nil
	}, 5*time.Second, 50*time.Millisecond)

	w.Stop()
	mu.Lock()
	assert.GreaterOrEqual(t, reloads, 1)
	mu.Unlock()
}

func TestWatcher_IgnoresOtherFiles(t *testing.T) {
	defer goleak.VerifyNone(t)

	dir := t.TempDir()
	path := writeCatalog(t, dir, `[]`)
	store := NewStore(NewLoader(path, zap.NewNop()), zap.NewNop())

	w, err := NewWatcher(path, store, zap.NewNop())
	require.NoError(t, err)
	require.NoError(t, w.Start(context.Background()))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.json"), []byte(`[]`), 0o644))
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, uint64(0), store.Snapshot().Version)

	w.Stop()
}

func TestRefresher(t *testing.T) {
	defer goleak.VerifyNone(t)

	store := NewStaticStore(Static())
	bad := NewRefresher("not a schedule", store, zap.NewNop())
	assert.Error(t, bad.Start(context.Background()))

	r := NewRefresher("@every 1s", store, zap.NewNop())
	require.NoError(t, r.Start(context.Background()))
	require.Eventually(t, func() bool {
		return store.Snapshot().Version >= 1
	}, 5*time.Second, 100*time.Millisecond)
	r.Stop()
}
