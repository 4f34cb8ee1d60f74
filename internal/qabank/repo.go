package qabank

import "context"

// Repo defines persistence operations for Q&A entries. GetByID returns
// ErrNotFound as the absent signal; Delete reports whether a row was
// actually removed. List operations order newest-created-first.
type Repo interface {
	Create(ctx context.Context, entry Entry) (Entry, error)
	List(ctx context.Context) ([]Entry, error)
	ListByCategory(ctx context.Context, category Category) ([]Entry, error)
	GetByID(ctx context.Context, id string) (Entry, error)
	Update(ctx context.Context, entry Entry) (Entry, error)
	Delete(ctx context.Context, id string) (bool, error)
}
