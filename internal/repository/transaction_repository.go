package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/apperrors"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

// TransactionRepository provides data access methods for the asset_transaction table.
// It handles the buy/sell ledger the position aggregation is derived from.
type TransactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new TransactionRepository with the provided database connection.
func NewTransactionRepository(db *sql.DB) *TransactionRepository {
	return &TransactionRepository{db: db}
}

// GetTransactions retrieves the full transaction ledger ordered by date then id.
//
// The date column is returned raw: it is nullable and legacy rows may hold
// values that do not parse as dates. The aggregation layer owns the fallback
// behavior for those rows, so no parsing happens here.
func (s *TransactionRepository) GetTransactions() ([]model.Transaction, error) {
	query := `
		SELECT id, name, quantity, price_per_unit, type, date, notes, created_at
		FROM asset_transaction
		ORDER BY date ASC, id ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query asset_transaction table: %w", err)
	}
	defer rows.Close()

	transactions := []model.Transaction{}

	for rows.Next() {
		var t model.Transaction
		var dateStr, notesStr sql.NullString
		var createdAtStr string

		err := rows.Scan(
			&t.ID,
			&t.Name,
			&t.Quantity,
			&t.PricePerUnit,
			&t.Type,
			&dateStr,
			&notesStr,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan asset_transaction table results: %w", err)
		}

		if dateStr.Valid {
			t.Date = dateStr.String
		}
		if notesStr.Valid {
			t.Notes = notesStr.String
		}

		t.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		transactions = append(transactions, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating asset_transaction table: %w", err)
	}

	return transactions, nil
}

// GetTransaction retrieves a single transaction by id.
// Returns apperrors.ErrTransactionNotFound if no row exists.
func (s *TransactionRepository) GetTransaction(transactionID int64) (model.Transaction, error) {
	query := `
		SELECT id, name, quantity, price_per_unit, type, date, notes, created_at
		FROM asset_transaction
		WHERE id = ?
	`

	var t model.Transaction
	var dateStr, notesStr sql.NullString
	var createdAtStr string

	err := s.db.QueryRow(query, transactionID).Scan(
		&t.ID,
		&t.Name,
		&t.Quantity,
		&t.PricePerUnit,
		&t.Type,
		&dateStr,
		&notesStr,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Transaction{}, apperrors.ErrTransactionNotFound
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan asset_transaction table results: %w", err)
	}

	if dateStr.Valid {
		t.Date = dateStr.String
	}
	if notesStr.Valid {
		t.Notes = notesStr.String
	}

	t.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return t, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return t, nil
}

// InsertTransaction persists a new transaction and assigns its id.
func (s *TransactionRepository) InsertTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		INSERT INTO asset_transaction (name, quantity, price_per_unit, type, date, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Name,
		t.Quantity,
		t.PricePerUnit,
		t.Type,
		nullableString(t.Date),
		nullableString(t.Notes),
	)
	if err != nil {
		return fmt.Errorf("failed to insert into asset_transaction table: %w", err)
	}

	t.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted transaction id: %w", err)
	}

	return nil
}

// UpdateTransaction persists the full state of an existing transaction.
// Returns apperrors.ErrTransactionNotFound if no row was updated.
func (s *TransactionRepository) UpdateTransaction(ctx context.Context, t *model.Transaction) error {
	query := `
		UPDATE asset_transaction
		SET name = ?, quantity = ?, price_per_unit = ?, type = ?, date = ?, notes = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Name,
		t.Quantity,
		t.PricePerUnit,
		t.Type,
		nullableString(t.Date),
		nullableString(t.Notes),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update asset_transaction table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// DeleteTransaction removes a transaction by id.
// Returns apperrors.ErrTransactionNotFound if no row was deleted.
func (s *TransactionRepository) DeleteTransaction(ctx context.Context, transactionID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM asset_transaction WHERE id = ?`, transactionID)
	if err != nil {
		return fmt.Errorf("failed to delete from asset_transaction table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTransactionNotFound
	}

	return nil
}

// nullableString maps an empty string to a SQL NULL.
func nullableString(s string) any {
	if s == "" {
		return nil
	}
	return s
}
