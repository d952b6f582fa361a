package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

// SnapshotRepository provides data access methods for the summary_snapshot table,
// the persisted daily copies of the account roll-up used by the history view.
type SnapshotRepository struct {
	db *sql.DB
}

// NewSnapshotRepository creates a new repository instance.
func NewSnapshotRepository(db *sql.DB) *SnapshotRepository {
	return &SnapshotRepository{db: db}
}

// UpsertSnapshot writes the snapshot row for its date, replacing any
// existing row for the same date. One row per calendar date.
func (r *SnapshotRepository) UpsertSnapshot(ctx context.Context, snapshot *model.SummarySnapshot) error {
	query := `
		INSERT INTO summary_snapshot (id, date, total_profit, holdings_value, total_capital, remaining_capital, calculated_at)
		VALUES (?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(date) DO UPDATE SET
			total_profit = excluded.total_profit,
			holdings_value = excluded.holdings_value,
			total_capital = excluded.total_capital,
			remaining_capital = excluded.remaining_capital,
			calculated_at = CURRENT_TIMESTAMP
	`

	_, err := r.db.ExecContext(ctx, query,
		snapshot.ID,
		snapshot.Date,
		snapshot.TotalProfit,
		snapshot.HoldingsValue,
		snapshot.TotalCapital,
		snapshot.RemainingCapital,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert summary_snapshot: %w", err)
	}

	return nil
}

// GetSnapshots retrieves snapshot rows within the date range, inclusive on
// both ends, ordered by date. Empty bounds mean an open range.
func (r *SnapshotRepository) GetSnapshots(startDate, endDate string) ([]model.SummarySnapshot, error) {
	query := `
		SELECT id, date, total_profit, holdings_value, total_capital, remaining_capital, calculated_at
		FROM summary_snapshot
	`
	var clauses []string
	var args []any

	if startDate != "" {
		clauses = append(clauses, "date >= ?")
		args = append(args, startDate)
	}
	if endDate != "" {
		clauses = append(clauses, "date <= ?")
		args = append(args, endDate)
	}
	for i, clause := range clauses {
		if i == 0 {
			query += " WHERE " + clause
		} else {
			query += " AND " + clause
		}
	}
	query += " ORDER BY date ASC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query summary_snapshot table: %w", err)
	}
	defer rows.Close()

	snapshots := []model.SummarySnapshot{}

	for rows.Next() {
		var s model.SummarySnapshot
		var dateStr, calculatedAtStr string

		err := rows.Scan(
			&s.ID,
			&dateStr,
			&s.TotalProfit,
			&s.HoldingsValue,
			&s.TotalCapital,
			&s.RemainingCapital,
			&calculatedAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan summary_snapshot results: %w", err)
		}

		s.Date = dateStr

		s.CalculatedAt, err = ParseTime(calculatedAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse calculated_at: %w", err)
		}

		snapshots = append(snapshots, s)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating summary_snapshot table: %w", err)
	}

	return snapshots, nil
}
