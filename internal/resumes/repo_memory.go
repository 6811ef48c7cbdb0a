package resumes

import (
	"context"
	"sync"
)

// MemoryRepo is an in-memory implementation of Repo.
type MemoryRepo struct {
	mu   sync.RWMutex
	data map[string]Resume // userID -> resume
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{
		data: make(map[string]Resume),
	}
}

// GetByUser returns the resume for a user, if any.
func (r *MemoryRepo) GetByUser(ctx context.Context, userID string) (Resume, bool, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, false, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	res, ok := r.data[userID]
	return res, ok, nil
}

// Upsert stores the resume, preserving id and created_at on replacement.
func (r *MemoryRepo) Upsert(ctx context.Context, res Resume) (Resume, error) {
	if err := ctx.Err(); err != nil {
		return Resume{}, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.data[res.UserID]; ok {
		res.ID = existing.ID
		res.CreatedAt = existing.CreatedAt
	}
	r.data[res.UserID] = res
	return res, nil
}

// DeleteByUser removes the resume for a user, if present.
func (r *MemoryRepo) DeleteByUser(ctx context.Context, userID string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.data, userID)
	return nil
}

var _ Repo = (*MemoryRepo)(nil)
