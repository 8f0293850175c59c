package saved

import (
	"context"
	"sync"

	"paperapi/internal/paper"
)

// MemoryRepo keeps saved papers in process memory. Contents are lost on
// restart.
type MemoryRepo struct {
	mu     sync.Mutex
	papers []paper.Paper
}

func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{}
}

func (r *MemoryRepo) List(ctx context.Context) ([]paper.Paper, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return paper.Clone(r.papers), nil
}

func (r *MemoryRepo) Add(ctx context.Context, p paper.Paper) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if paper.IndexOf(r.papers, p.ID) >= 0 {
		return false, nil
	}
	r.papers = append(r.papers, p)
	return true, nil
}

func (r *MemoryRepo) Remove(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := paper.IndexOf(r.papers, id)
	if i < 0 {
		return paper.ErrNotFound
	}
	r.papers = append(r.papers[:i], r.papers[i+1:]...)
	return nil
}
