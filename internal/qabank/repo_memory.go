package qabank

import (
	"context"
	"sort"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo, used when no
// database is configured in dev.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Entry
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{data: make(map[string]Entry)}
}

// Create stores an entry.
func (r *MemoryRepo) Create(ctx context.Context, entry Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.data[entry.ID] = entry
	return entry, nil
}

// List returns all entries, newest first.
func (r *MemoryRepo) List(ctx context.Context) ([]Entry, error) {
	return r.listWhere(ctx, func(Entry) bool { return true })
}

// ListByCategory returns entries in one category, newest first.
func (r *MemoryRepo) ListByCategory(ctx context.Context, category Category) ([]Entry, error) {
	return r.listWhere(ctx, func(entry Entry) bool { return entry.Category == category })
}

// GetByID returns the entry or ErrNotFound.
func (r *MemoryRepo) GetByID(ctx context.Context, id string) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	entry, ok := r.data[id]
	if !ok {
		return Entry{}, ErrNotFound
	}
	return entry, nil
}

// Update replaces a stored entry.
func (r *MemoryRepo) Update(ctx context.Context, entry Entry) (Entry, error) {
	if err := ctx.Err(); err != nil {
		return Entry{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[entry.ID]; !ok {
		return Entry{}, ErrNotFound
	}
	r.data[entry.ID] = entry
	return entry, nil
}

// Delete removes an entry, reporting whether it existed.
func (r *MemoryRepo) Delete(ctx context.Context, id string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.data[id]; !ok {
		return false, nil
	}
	delete(r.data, id)
	return true, nil
}

func (r *MemoryRepo) listWhere(ctx context.Context, keep func(Entry) bool) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []Entry{}
	for _, entry := range r.data {
		if keep(entry) {
			out = append(out, entry)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

var _ Repo = (*MemoryRepo)(nil)
