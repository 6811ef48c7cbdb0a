package resumes

import "context"

// Repo defines persistence operations for resume records. Lookups report
// absence through the boolean rather than an error; errors are reserved for
// storage failures.
type Repo interface {
	GetByUser(ctx context.Context, userID string) (Resume, bool, error)
	Upsert(ctx context.Context, r Resume) (Resume, error)
	DeleteByUser(ctx context.Context, userID string) error
}
