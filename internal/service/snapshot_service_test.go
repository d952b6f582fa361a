package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/tdejong/Trading-Journal-Backend/internal/testutil"
)

// TestSnapshotService_Refresh tests the daily summary snapshot write.
//
// WHY: The history view is only as good as the snapshot rows behind it.
// Refresh must capture the live summary and stay idempotent within a day,
// or the one-row-per-date invariant breaks.
func TestSnapshotService_Refresh(t *testing.T) {
	t.Run("writes one snapshot row for today", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		testutil.NewTransaction("BTC").WithQuantity(1).WithPricePerUnit(100).WithDate("2024-01-01").Build(t, db)
		testutil.NewTransaction("BTC").Sell().WithQuantity(1).WithPricePerUnit(150).WithDate("2024-02-01").Build(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "summary_snapshot", 1)

		snapshots, err := svc.GetHistory("", "")
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(snapshots) != 1 {
			t.Fatalf("Expected 1 snapshot, got %d", len(snapshots))
		}

		snapshot := snapshots[0]
		today := time.Now().UTC().Format("2006-01-02")
		if snapshot.Date != today {
			t.Errorf("Expected snapshot date %s, got %s", today, snapshot.Date)
		}
		if snapshot.TotalProfit != 50 {
			t.Errorf("Expected total profit 50, got %v", snapshot.TotalProfit)
		}
		if snapshot.TotalCapital != testutil.TestInitialCapital+50 {
			t.Errorf("Expected total capital %v, got %v", testutil.TestInitialCapital+50, snapshot.TotalCapital)
		}
	})

	t.Run("repeated refresh replaces the same-day row", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		// Ledger changes between refreshes; the row must be replaced,
		// not duplicated.
		testutil.NewTransaction("BTC").WithQuantity(1).WithPricePerUnit(100).WithDate("2024-01-01").Build(t, db)
		testutil.NewTransaction("BTC").Sell().WithQuantity(1).WithPricePerUnit(120).WithDate("2024-02-01").Build(t, db)

		if err := svc.Refresh(context.Background()); err != nil {
			t.Fatalf("Refresh() returned unexpected error: %v", err)
		}

		testutil.AssertRowCount(t, db, "summary_snapshot", 1)

		snapshots, err := svc.GetHistory("", "")
		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if snapshots[0].TotalProfit != 20 {
			t.Errorf("Expected refreshed total profit 20, got %v", snapshots[0].TotalProfit)
		}
	})
}

// TestSnapshotService_GetHistory tests the date-range filtering.
func TestSnapshotService_GetHistory(t *testing.T) {
	t.Run("filters rows by inclusive date range", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		dates := []string{"2024-01-01", "2024-01-15", "2024-02-01"}
		for _, date := range dates {
			_, err := db.Exec(`
				INSERT INTO summary_snapshot (id, date, total_profit, holdings_value, total_capital, remaining_capital)
				VALUES (?, ?, 0, 0, 1000, 1000)
			`, testutil.MakeID(), date)
			if err != nil {
				t.Fatalf("Failed to seed snapshot: %v", err)
			}
		}

		snapshots, err := svc.GetHistory("2024-01-01", "2024-01-31")

		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(snapshots) != 2 {
			t.Fatalf("Expected 2 snapshots in range, got %d", len(snapshots))
		}
		if snapshots[0].Date != "2024-01-01" || snapshots[1].Date != "2024-01-15" {
			t.Errorf("Expected snapshots ordered by date, got %s then %s", snapshots[0].Date, snapshots[1].Date)
		}
	})

	t.Run("open bounds return everything", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		for _, date := range []string{"2024-01-01", "2024-06-01"} {
			_, err := db.Exec(`
				INSERT INTO summary_snapshot (id, date, total_profit, holdings_value, total_capital, remaining_capital)
				VALUES (?, ?, 0, 0, 1000, 1000)
			`, testutil.MakeID(), date)
			if err != nil {
				t.Fatalf("Failed to seed snapshot: %v", err)
			}
		}

		snapshots, err := svc.GetHistory("", "")

		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(snapshots) != 2 {
			t.Errorf("Expected 2 snapshots, got %d", len(snapshots))
		}
	})

	t.Run("empty range yields empty slice", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		svc := testutil.NewTestSnapshotService(t, db)

		snapshots, err := svc.GetHistory("2024-01-01", "2024-12-31")

		if err != nil {
			t.Fatalf("GetHistory() returned unexpected error: %v", err)
		}
		if len(snapshots) != 0 {
			t.Errorf("Expected no snapshots, got %d", len(snapshots))
		}
	})
}
