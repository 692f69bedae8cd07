package suggestions

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SubmitterRegistry records suggestion submitters in the user store so
// moderation (blocking) can target them later.
type SubmitterRegistry interface {
	EnsureExists(ctx context.Context, userID string) error
}

// Service owns suggestion intake and listing.
type Service struct {
	Repo       Repo
	Submitters SubmitterRegistry
}

// Create stores a new pending suggestion and returns it with an assigned ID.
// The submitter is registered first; without a user record the admin
// block endpoint would 404 on them.
func (s *Service) Create(ctx context.Context, userID, category, title, description string) (Suggestion, error) {
	suggestion := Suggestion{
		ID:          uuid.NewString(),
		UserID:      strings.TrimSpace(userID),
		Category:    strings.TrimSpace(category),
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(description),
		Status:      StatusPending,
		CreatedAt:   time.Now().UTC(),
	}
	if s.Submitters != nil {
		if err := s.Submitters.EnsureExists(ctx, suggestion.UserID); err != nil {
			return Suggestion{}, fmt.Errorf("register submitter: %w", err)
		}
	}
	if err := s.Repo.Create(ctx, suggestion); err != nil {
		return Suggestion{}, err
	}
	return suggestion, nil
}

// ListByStatus returns suggestions with the given status, oldest first.
func (s *Service) ListByStatus(ctx context.Context, status string) ([]Suggestion, error) {
	return s.Repo.ListByStatus(ctx, status)
}
