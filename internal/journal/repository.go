package journal

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/julianstephens/vitalflow/internal/logger"
	"github.com/julianstephens/vitalflow/internal/models"
	"github.com/julianstephens/vitalflow/internal/storage"
)

// ErrCorrupt marks a stored collection that is not parsable JSON. Readers
// treat the collection as empty instead of failing the whole app; the error
// is only surfaced through logs and the doctor command.
var ErrCorrupt = errors.New("stored check-in data is corrupt")

// Repository is the sole mutator of the check-in collection and profile keys.
// Every read-modify-write cycle holds mu, so overlapping saves (for example a
// check-in save racing an insight attach) can't clobber each other.
type Repository struct {
	store storage.Store
	clock Clock
	mu    sync.Mutex
}

func NewRepository(store storage.Store, clock Clock) *Repository {
	if clock == nil {
		clock = SystemClock()
	}
	return &Repository{
		store: store,
		clock: clock,
	}
}

// All returns every check-in, most recent date first.
func (r *Repository) All() ([]models.CheckIn, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.load()
}

// ByDate returns the check-in for the given YYYY-MM-DD date, or ok=false.
func (r *Repository) ByDate(date string) (models.CheckIn, bool, error) {
	entries, err := r.All()
	if err != nil {
		return models.CheckIn{}, false, err
	}
	for _, entry := range entries {
		if entry.Date == date {
			return entry, true, nil
		}
	}
	return models.CheckIn{}, false, nil
}

// Today returns the check-in for the current local calendar day, or ok=false.
func (r *Repository) Today() (models.CheckIn, bool, error) {
	return r.ByDate(DateOf(r.clock.Now()))
}

// Save validates the entry and upserts it by date: an existing entry for the
// same date is replaced in place, otherwise the entry is added. Missing id
// and timestamp are assigned. Validation failures are rejected before any I/O.
func (r *Repository) Save(entry models.CheckIn) error {
	if entry.Date == "" {
		entry.Date = DateOf(r.clock.Now())
	}
	if err := entry.Validate(); err != nil {
		return err
	}
	if entry.ID == "" {
		entry.ID = uuid.New().String()
	}
	if entry.Timestamp == 0 {
		entry.Timestamp = r.clock.Now().UnixMilli()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return err
	}

	replaced := false
	for i := range entries {
		if entries[i].Date == entry.Date {
			entries[i] = entry
			replaced = true
			break
		}
	}
	if !replaced {
		entries = append(entries, entry)
	}

	return r.persist(entries)
}

// Delete removes the entry whose id matches and reports whether one was
// found. Deleting an unknown id is a no-op, not an error.
func (r *Repository) Delete(id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	entries, err := r.load()
	if err != nil {
		return false, err
	}

	kept := entries[:0]
	for _, entry := range entries {
		if entry.ID != id {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(entries) {
		return false, nil
	}

	return true, r.persist(kept)
}

// ClearAll removes the check-in collection and the profile. Used only by the
// explicit add-new-user flow.
func (r *Repository) ClearAll() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.store.Remove(storage.KeyCheckIns); err != nil {
		return fmt.Errorf("failed to clear check-ins: %w", err)
	}
	if err := r.store.Remove(storage.KeyProfile); err != nil {
		return fmt.Errorf("failed to clear profile: %w", err)
	}
	return nil
}

// Profile returns the stored user profile with blank fields defaulted, or
// ok=false when no profile has been written yet.
func (r *Repository) Profile() (models.UserProfile, bool, error) {
	raw, ok, err := r.store.Get(storage.KeyProfile)
	if err != nil {
		return models.UserProfile{}, false, fmt.Errorf("failed to load profile: %w", err)
	}
	if !ok {
		return models.UserProfile{}, false, nil
	}

	var profile models.UserProfile
	if err := json.Unmarshal([]byte(raw), &profile); err != nil {
		// Same degrade-don't-crash policy as the collection.
		logger.Warn("stored profile is corrupt, treating as missing", "err", err)
		return models.UserProfile{}, false, nil
	}

	return profile.WithDefaults(), true, nil
}

// SaveProfile replaces the stored profile wholesale.
func (r *Repository) SaveProfile(profile models.UserProfile) error {
	data, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("failed to serialize profile: %w", err)
	}
	if err := r.store.Set(storage.KeyProfile, string(data)); err != nil {
		return fmt.Errorf("failed to save profile: %w", err)
	}
	return nil
}

// load reads and sorts the collection. Callers must hold mu.
func (r *Repository) load() ([]models.CheckIn, error) {
	raw, ok, err := r.store.Get(storage.KeyCheckIns)
	if err != nil {
		return nil, fmt.Errorf("failed to load check-ins: %w", err)
	}
	if !ok {
		return []models.CheckIn{}, nil
	}

	var entries []models.CheckIn
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		// Journaling data loss beats a crash loop: degrade to an empty
		// collection and leave a trail for doctor.
		logger.Warn("check-in collection is corrupt, treating as empty",
			"err", fmt.Errorf("%w: %v", ErrCorrupt, err))
		return []models.CheckIn{}, nil
	}

	// Stored order is not trusted; date is the natural ordering key.
	sort.Slice(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})

	return entries, nil
}

// persist writes the full collection back. Callers must hold mu.
func (r *Repository) persist(entries []models.CheckIn) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("failed to serialize check-ins: %w", err)
	}
	if err := r.store.Set(storage.KeyCheckIns, string(data)); err != nil {
		return fmt.Errorf("failed to save check-ins: %w", err)
	}
	return nil
}

// CheckCollection reports whether the stored collection parses. Doctor uses
// this to surface the corruption that normal reads deliberately paper over.
func (r *Repository) CheckCollection() error {
	raw, ok, err := r.store.Get(storage.KeyCheckIns)
	if err != nil {
		return err
	}
	if !ok {
		return nil
	}
	var entries []models.CheckIn
	if err := json.Unmarshal([]byte(raw), &entries); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	return nil
}
