package journal

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/julianstephens/vitalflow/internal/models"
	"github.com/julianstephens/vitalflow/internal/storage"
)

// memStore is an in-memory Store for repository tests.
type memStore struct {
	keys map[string]string
}

func newMemStore() *memStore {
	return &memStore{keys: map[string]string{}}
}

func (s *memStore) Init() error  { return nil }
func (s *memStore) Load() error  { return nil }
func (s *memStore) Close() error { return nil }

func (s *memStore) Get(key string) (string, bool, error) {
	v, ok := s.keys[key]
	return v, ok, nil
}

func (s *memStore) Set(key, value string) error {
	s.keys[key] = value
	return nil
}

func (s *memStore) Remove(key string) error {
	delete(s.keys, key)
	return nil
}

func (s *memStore) GetConfigPath() string { return "memory" }

type fixedClock struct{ t time.Time }

func (c fixedClock) Now() time.Time { return c.t }

var testNow = time.Date(2025, 6, 15, 9, 30, 0, 0, time.UTC)

func newTestRepo(t *testing.T) (*Repository, *memStore) {
	t.Helper()
	store := newMemStore()
	return NewRepository(store, fixedClock{t: testNow}), store
}

func TestSaveAssignsIDAndTimestamp(t *testing.T) {
	repo, _ := newTestRepo(t)

	err := repo.Save(models.CheckIn{Mood: 7, Journal: "good day"})
	require.NoError(t, err)

	entry, ok, err := repo.Today()
	require.NoError(t, err)
	require.True(t, ok)
	assert.NotEmpty(t, entry.ID)
	assert.Equal(t, testNow.UnixMilli(), entry.Timestamp)
	assert.Equal(t, "2025-06-15", entry.Date)
}

func TestSaveUpsertsByDate(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(models.CheckIn{Mood: 4, Journal: "rough morning"}))
	require.NoError(t, repo.Save(models.CheckIn{Mood: 8, Journal: "turned around"}))

	entries, err := repo.All()
	require.NoError(t, err)
	require.Len(t, entries, 1, "same-day save must replace, not add")
	assert.Equal(t, 8, entries[0].Mood)
	assert.Equal(t, "turned around", entries[0].Journal)
}

func TestSaveRejectsInvalidBeforeIO(t *testing.T) {
	repo, store := newTestRepo(t)

	err := repo.Save(models.CheckIn{Mood: 11, Journal: "too happy"})
	assert.ErrorIs(t, err, models.ErrMoodRange)

	err = repo.Save(models.CheckIn{Mood: 5, Journal: "   "})
	assert.ErrorIs(t, err, models.ErrEmptyJournal)

	_, ok, _ := store.Get(storage.KeyCheckIns)
	assert.False(t, ok, "invalid entries must never touch storage")
}

func TestSavePreservesExplicitFields(t *testing.T) {
	repo, _ := newTestRepo(t)

	entry := models.CheckIn{
		ID:        "fixed-id",
		Date:      "2025-06-10",
		Mood:      6,
		Journal:   "back-dated",
		AIInsight: "keep it up",
		Timestamp: 1700000000000,
	}
	require.NoError(t, repo.Save(entry))

	got, ok, err := repo.ByDate("2025-06-10")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, entry, got)
}

func TestAllSortsMostRecentFirst(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(models.CheckIn{Date: "2025-06-10", Mood: 5, Journal: "a"}))
	require.NoError(t, repo.Save(models.CheckIn{Date: "2025-06-14", Mood: 6, Journal: "b"}))
	require.NoError(t, repo.Save(models.CheckIn{Date: "2025-06-12", Mood: 7, Journal: "c"}))

	entries, err := repo.All()
	require.NoError(t, err)
	require.Len(t, entries, 3)
	assert.Equal(t, "2025-06-14", entries[0].Date)
	assert.Equal(t, "2025-06-12", entries[1].Date)
	assert.Equal(t, "2025-06-10", entries[2].Date)
}

func TestDeleteIsIdempotent(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.Save(models.CheckIn{ID: "keep", Date: "2025-06-14", Mood: 5, Journal: "a"}))
	require.NoError(t, repo.Save(models.CheckIn{ID: "drop", Date: "2025-06-15", Mood: 6, Journal: "b"}))

	removed, err := repo.Delete("drop")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = repo.Delete("drop")
	require.NoError(t, err, "deleting a gone id is a no-op")
	assert.False(t, removed, "nothing left to remove")

	removed, err = repo.Delete("never-existed")
	require.NoError(t, err)
	assert.False(t, removed, "unknown ids report not-removed")

	entries, err := repo.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "keep", entries[0].ID)
}

func TestCorruptCollectionDegradesToEmpty(t *testing.T) {
	repo, store := newTestRepo(t)
	require.NoError(t, store.Set(storage.KeyCheckIns, "{not json"))

	entries, err := repo.All()
	require.NoError(t, err)
	assert.Empty(t, entries)

	assert.ErrorIs(t, repo.CheckCollection(), ErrCorrupt)
}

func TestCorruptCollectionOverwrittenBySave(t *testing.T) {
	repo, store := newTestRepo(t)
	require.NoError(t, store.Set(storage.KeyCheckIns, "[broken"))

	require.NoError(t, repo.Save(models.CheckIn{Mood: 6, Journal: "fresh start"}))

	require.NoError(t, repo.CheckCollection())
	entries, err := repo.All()
	require.NoError(t, err)
	require.Len(t, entries, 1)
}

func TestClearAll(t *testing.T) {
	repo, store := newTestRepo(t)

	require.NoError(t, repo.Save(models.CheckIn{Mood: 6, Journal: "x"}))
	require.NoError(t, repo.SaveProfile(models.UserProfile{Name: "Ada"}))

	require.NoError(t, repo.ClearAll())

	_, ok, _ := store.Get(storage.KeyCheckIns)
	assert.False(t, ok)
	_, ok, _ = store.Get(storage.KeyProfile)
	assert.False(t, ok)
}

func TestProfileMissing(t *testing.T) {
	repo, _ := newTestRepo(t)

	_, ok, err := repo.Profile()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfileDefaultsBlankFields(t *testing.T) {
	repo, _ := newTestRepo(t)

	require.NoError(t, repo.SaveProfile(models.UserProfile{Age: 30}))

	profile, ok, err := repo.Profile()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, models.DefaultName, profile.Name)
	assert.Equal(t, models.DefaultGoal, profile.Goal)
	assert.Equal(t, 30, profile.Age)
}

func TestProfileCorruptTreatedAsMissing(t *testing.T) {
	repo, store := newTestRepo(t)
	require.NoError(t, store.Set(storage.KeyProfile, "]["))

	_, ok, err := repo.Profile()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestProfileRoundTrip(t *testing.T) {
	repo, _ := newTestRepo(t)

	in := models.UserProfile{Name: "Ada", Age: 28, Goal: "Reduce stress", CreatedAt: testNow}
	require.NoError(t, repo.SaveProfile(in))

	out, ok, err := repo.Profile()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, in.Name, out.Name)
	assert.Equal(t, in.Goal, out.Goal)
	assert.True(t, in.CreatedAt.Equal(out.CreatedAt))
}

func TestPersistedShapeIsJSONArray(t *testing.T) {
	repo, store := newTestRepo(t)

	require.NoError(t, repo.Save(models.CheckIn{Mood: 6, Journal: "x"}))

	raw, ok, err := store.Get(storage.KeyCheckIns)
	require.NoError(t, err)
	require.True(t, ok)

	var entries []models.CheckIn
	require.NoError(t, json.Unmarshal([]byte(raw), &entries))
	require.Len(t, entries, 1)
}
