package analysis

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/users"
)

type stubSuggestionsRepo struct {
	items []suggestions.Suggestion
	err   error
}

func (s stubSuggestionsRepo) Create(ctx context.Context, suggestion suggestions.Suggestion) error {
	return errors.New("not implemented")
}

func (s stubSuggestionsRepo) GetByID(ctx context.Context, id string) (suggestions.Suggestion, error) {
	return suggestions.Suggestion{}, suggestions.ErrNotFound
}

func (s stubSuggestionsRepo) ListByStatus(ctx context.Context, status string) ([]suggestions.Suggestion, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.items, nil
}

type stubUsersRepo struct {
	blocked map[string]struct{}
	err     error
}

func (s stubUsersRepo) Upsert(ctx context.Context, user users.User) error { return nil }

func (s stubUsersRepo) EnsureExists(ctx context.Context, id string) error { return nil }

func (s stubUsersRepo) GetByID(ctx context.Context, id string) (users.User, error) {
	return users.User{}, users.ErrNotFound
}

func (s stubUsersRepo) SetBlocked(ctx context.Context, id string, blocked bool) error { return nil }

func (s stubUsersRepo) BlockedIDs(ctx context.Context) (map[string]struct{}, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.blocked, nil
}

func TestServiceReport(t *testing.T) {
	now := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	svc := &Service{
		Suggestions: stubSuggestionsRepo{items: []suggestions.Suggestion{
			{ID: "a", UserID: "u1", Category: "UI", Title: "brighter sidebar colors", CreatedAt: now},
			{ID: "b", UserID: "banned", Category: "UI", Title: "blink tags", CreatedAt: now},
		}},
		Users:  stubUsersRepo{blocked: map[string]struct{}{"banned": {}}},
		Engine: Engine{Now: func() time.Time { return now }},
	}

	report, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("Report: %v", err)
	}
	if report.TotalPending != 1 {
		t.Fatalf("expected blocked submitter filtered, got total %d", report.TotalPending)
	}
}

func TestServiceReportSuggestionStoreFailure(t *testing.T) {
	svc := &Service{
		Suggestions: stubSuggestionsRepo{err: errors.New("connection refused")},
		Users:       stubUsersRepo{},
	}

	_, err := svc.Report(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "list pending suggestions") {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestServiceReportUserStoreFailure(t *testing.T) {
	svc := &Service{
		Suggestions: stubSuggestionsRepo{},
		Users:       stubUsersRepo{err: errors.New("connection refused")},
	}

	_, err := svc.Report(context.Background())
	if err == nil {
		t.Fatalf("expected error")
	}
	if !strings.Contains(err.Error(), "load blocked users") {
		t.Fatalf("unexpected error: %v", err)
	}
}
