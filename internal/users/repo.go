package users

import "context"

var ErrNotFound = errNotFound{}

type errNotFound struct{}

func (errNotFound) Error() string { return "user not found" }

type Repo interface {
	Upsert(ctx context.Context, user User) error
	// EnsureExists inserts a minimal record for the ID if none exists yet and
	// leaves an existing record untouched. Suggestion intake registers
	// submitters this way so they can later be blocked.
	EnsureExists(ctx context.Context, userID string) error
	GetByID(ctx context.Context, userID string) (User, error)
	SetBlocked(ctx context.Context, userID string, blocked bool) error
	// BlockedIDs returns the set of currently blocked user IDs. The analysis
	// engine excludes suggestions from these submitters before any scoring.
	BlockedIDs(ctx context.Context) (map[string]struct{}, error)
}
