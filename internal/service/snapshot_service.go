package service

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
)

// snapshotSchedule runs the refresh shortly after midnight so each day
// starts with a row for the previous close of book.
const snapshotSchedule = "5 0 * * *"

// SnapshotService maintains the summary_snapshot table: one persisted copy
// of the account roll-up per calendar date, written at startup and on a
// daily schedule. The snapshots only feed the history view; every live
// summary read still recomputes from the ledger.
type SnapshotService struct {
	snapshotRepo     *repository.SnapshotRepository
	portfolioService *PortfolioService
	cron             *cron.Cron
}

// NewSnapshotService creates a new SnapshotService with the provided dependencies.
func NewSnapshotService(
	snapshotRepo *repository.SnapshotRepository,
	portfolioService *PortfolioService,
) *SnapshotService {
	return &SnapshotService{
		snapshotRepo:     snapshotRepo,
		portfolioService: portfolioService,
	}
}

// Refresh recomputes the account summary and upserts today's snapshot row.
func (s *SnapshotService) Refresh(ctx context.Context) error {
	summary, err := s.portfolioService.GetSummary()
	if err != nil {
		return err
	}

	snapshot := &model.SummarySnapshot{
		ID:               uuid.New().String(),
		Date:             time.Now().UTC().Format("2006-01-02"),
		TotalProfit:      summary.TotalProfit,
		HoldingsValue:    summary.HoldingsValue,
		TotalCapital:     summary.TotalCapital,
		RemainingCapital: summary.RemainingCapital,
	}

	return s.snapshotRepo.UpsertSnapshot(ctx, snapshot)
}

// GetHistory retrieves snapshot rows within the date range, inclusive on
// both ends. Empty bounds mean an open range.
func (s *SnapshotService) GetHistory(startDate, endDate string) ([]model.SummarySnapshot, error) {
	return s.snapshotRepo.GetSnapshots(startDate, endDate)
}

// StartScheduler refreshes the snapshot once immediately and then on the
// daily schedule. Scheduled failures are logged, not fatal: the next run
// or any startup refresh repairs the row.
func (s *SnapshotService) StartScheduler(ctx context.Context) error {
	if err := s.Refresh(ctx); err != nil {
		return err
	}

	// Schedule in UTC so the run stamps the same calendar date Refresh uses.
	s.cron = cron.New(cron.WithLocation(time.UTC))
	_, err := s.cron.AddFunc(snapshotSchedule, func() {
		if err := s.Refresh(context.Background()); err != nil {
			log.Printf("scheduled snapshot refresh failed: %v", err)
		}
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	return nil
}

// StopScheduler stops the daily refresh job, waiting for a running
// refresh to finish.
func (s *SnapshotService) StopScheduler() {
	if s.cron != nil {
		<-s.cron.Stop().Done()
	}
}
