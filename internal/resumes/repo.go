package resumes

import "context"

// Repo defines persistence operations for resumes. GetByID returns
// ErrNotFound as the absent signal; Delete reports whether a row was
// actually removed.
type Repo interface {
	Create(ctx context.Context, resume Resume) (Resume, error)
	List(ctx context.Context) ([]Resume, error)
	GetByID(ctx context.Context, id string) (Resume, error)
	Update(ctx context.Context, resume Resume) (Resume, error)
	Delete(ctx context.Context, id string) (bool, error)
}
