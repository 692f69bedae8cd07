package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/shared/metrics"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/suggestions"
	"github.com/Code102SoftwareProject/skill-swap-hub-sub002/internal/users"
)

// Service assembles analysis reports from the suggestion and user stores.
type Service struct {
	Suggestions suggestions.Repo
	Users       users.Repo
	Engine      Engine
}

// Report fetches the pending snapshot and blocked submitter set once, then
// runs the engine over it. A fetch failure aborts before any computation so
// a report is never built from incomplete data.
func (s *Service) Report(ctx context.Context) (Report, error) {
	metrics.IncReportRequested()
	start := time.Now()

	pending, err := s.Suggestions.ListByStatus(ctx, suggestions.StatusPending)
	if err != nil {
		metrics.IncReportFailed()
		return Report{}, fmt.Errorf("list pending suggestions: %w", err)
	}

	blocked, err := s.Users.BlockedIDs(ctx)
	if err != nil {
		metrics.IncReportFailed()
		return Report{}, fmt.Errorf("load blocked users: %w", err)
	}

	report := s.Engine.BuildReport(pending, blocked)

	metrics.IncReportCompleted()
	metrics.ObserveReportDurationMs(float64(time.Since(start).Microseconds()) / 1000.0)
	return report, nil
}
