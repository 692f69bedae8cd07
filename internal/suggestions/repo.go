package suggestions

import "context"

// Repo defines persistence operations for suggestions.
type Repo interface {
	Create(ctx context.Context, suggestion Suggestion) error
	GetByID(ctx context.Context, suggestionID string) (Suggestion, error)
	// ListByStatus returns all suggestions with the given status in
	// submission order (oldest first). The pending set is bounded, so no
	// paging is applied here.
	ListByStatus(ctx context.Context, status string) ([]Suggestion, error)
}
