package service

import (
	"context"
	"log"

	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/snapshot"
)

// DashboardService derives the dashboard figures from the three collections.
// It holds no state of its own: every summary is recomputed from a fresh
// snapshot, and the Watch stream recomputes on every snapshot emission.
type DashboardService struct {
	hub *snapshot.Hub
}

// NewDashboardService creates a new DashboardService over the snapshot hub.
func NewDashboardService(hub *snapshot.Hub) *DashboardService {
	return &DashboardService{hub: hub}
}

// Summary computes the current dashboard summary for the user.
func (s *DashboardService) Summary(ctx context.Context, userID string) (model.DashboardSummary, error) {
	data, err := s.hub.LoadAll(ctx, userID)
	if err != nil {
		return model.DashboardSummary{}, err
	}

	return Summarize(data.Accounts, data.Stocks, data.Transactions), nil
}

// Cashflow computes the per-month income/expense series for the user, ordered
// by month ascending.
func (s *DashboardService) Cashflow(ctx context.Context, userID string) ([]model.MonthlyCashflow, error) {
	data, err := s.hub.LoadAll(ctx, userID)
	if err != nil {
		return nil, err
	}

	return MonthlyCashflowSeries(data.Transactions), nil
}

// Watch subscribes to the user's collection snapshots and emits a freshly
// computed summary after every change, starting with the current state. The
// stream ends when ctx is cancelled. Recompute failures are logged and the
// previous summary simply remains the latest one delivered.
func (s *DashboardService) Watch(ctx context.Context, userID string) <-chan model.DashboardSummary {
	snapshots, cancel := s.hub.Subscribe(userID)
	out := make(chan model.DashboardSummary, 1)

	go func() {
		defer cancel()
		defer close(out)

		emit := func() {
			summary, err := s.Summary(ctx, userID)
			if err != nil {
				log.Printf("dashboard recompute failed for user %s: %v", userID, err)
				return
			}
			select {
			case out <- summary:
			case <-ctx.Done():
			}
		}

		emit()

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-snapshots:
				if !ok {
					return
				}
				emit()
			}
		}
	}()

	return out
}
