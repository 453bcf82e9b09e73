package resumes

import "context"

// Repo persists resume records. Records are append-only.
type Repo interface {
	Create(ctx context.Context, userID string, fields Fields) (Record, error)
	Latest(ctx context.Context, userID string) (Record, error)
}
