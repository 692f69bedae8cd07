package suggestions

import (
	"context"
	"sync"
)

// MemoryRepo stores suggestions in memory and is safe for concurrent use.
type MemoryRepo struct {
	mu    sync.RWMutex
	byID  map[string]Suggestion
	order []string
}

// NewMemoryRepo constructs a MemoryRepo.
func NewMemoryRepo() *MemoryRepo {
	return &MemoryRepo{byID: make(map[string]Suggestion)}
}

// Create stores the suggestion.
func (r *MemoryRepo) Create(ctx context.Context, suggestion Suggestion) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.byID[suggestion.ID]; !ok {
		r.order = append(r.order, suggestion.ID)
	}
	r.byID[suggestion.ID] = suggestion
	return nil
}

// GetByID returns a suggestion by its ID.
func (r *MemoryRepo) GetByID(ctx context.Context, suggestionID string) (Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return Suggestion{}, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	suggestion, ok := r.byID[suggestionID]
	if !ok {
		return Suggestion{}, ErrNotFound
	}
	return suggestion, nil
}

// ListByStatus returns suggestions with the given status in insertion order.
func (r *MemoryRepo) ListByStatus(ctx context.Context, status string) ([]Suggestion, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []Suggestion{}
	for _, id := range r.order {
		if s := r.byID[id]; s.Status == status {
			out = append(out, s)
		}
	}
	return out, nil
}
