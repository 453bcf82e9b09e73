package resumes

import (
	"context"
	"sync"
	"time"
)

// MemoryRepo stores resume records in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu     sync.RWMutex
	seq    int64
	byUser map[string][]Record
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byUser: make(map[string][]Record)}
}

// Create appends a new record for the user.
func (r *MemoryRepo) Create(ctx context.Context, userID string, fields Fields) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	rec := Record{
		Seq:       r.seq,
		UserID:    userID,
		Fields:    fields,
		CreatedAt: time.Now().UTC(),
	}
	r.byUser[userID] = append(r.byUser[userID], rec)
	return rec, nil
}

// Latest returns the most recently inserted record for the user.
func (r *MemoryRepo) Latest(ctx context.Context, userID string) (Record, error) {
	if err := ctx.Err(); err != nil {
		return Record{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	records := r.byUser[userID]
	if len(records) == 0 {
		return Record{}, ErrNoRecord
	}
	return records[len(records)-1], nil
}

// Count returns the number of records stored for the user.
func (r *MemoryRepo) Count(userID string) int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.byUser[userID])
}

var _ Repo = (*MemoryRepo)(nil)
