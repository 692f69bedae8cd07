package users

import (
	"context"
	"errors"
	"strings"
)

type Service struct {
	Repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{Repo: repo}
}

// Upsert persists a user record so it can later be blocked or unblocked.
func (s *Service) Upsert(ctx context.Context, user User) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(user.ID) == "" || strings.TrimSpace(user.Email) == "" {
		return errors.New("user id and email are required")
	}
	return s.Repo.Upsert(ctx, user)
}

// EnsureExists registers a submitter by ID if not already known. Unlike
// Upsert it needs no email and never overwrites an existing record.
func (s *Service) EnsureExists(ctx context.Context, userID string) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	return s.Repo.EnsureExists(ctx, userID)
}

func (s *Service) GetByID(ctx context.Context, userID string) (User, error) {
	if s == nil || s.Repo == nil {
		return User{}, errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return User{}, errors.New("user id is required")
	}
	return s.Repo.GetByID(ctx, userID)
}

// SetBlocked toggles the blocked flag for a submitter. Suggestions from
// blocked submitters are excluded from analysis reports.
func (s *Service) SetBlocked(ctx context.Context, userID string, blocked bool) error {
	if s == nil || s.Repo == nil {
		return errors.New("users service not configured")
	}
	if strings.TrimSpace(userID) == "" {
		return errors.New("user id is required")
	}
	return s.Repo.SetBlocked(ctx, userID, blocked)
}

// BlockedIDs returns the set of currently blocked user IDs.
func (s *Service) BlockedIDs(ctx context.Context) (map[string]struct{}, error) {
	if s == nil || s.Repo == nil {
		return nil, errors.New("users service not configured")
	}
	return s.Repo.BlockedIDs(ctx)
}
