package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/apperrors"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

// StrategyRepository provides data access methods for the strategy table.
type StrategyRepository struct {
	db *sql.DB
}

// NewStrategyRepository creates a new StrategyRepository with the provided database connection.
func NewStrategyRepository(db *sql.DB) *StrategyRepository {
	return &StrategyRepository{db: db}
}

// GetStrategies retrieves all strategies ordered by name.
func (s *StrategyRepository) GetStrategies() ([]model.Strategy, error) {
	query := `
		SELECT id, name, description, image_references, created_at
		FROM strategy
		ORDER BY name ASC
	`

	rows, err := s.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("failed to query strategy table: %w", err)
	}
	defer rows.Close()

	strategies := []model.Strategy{}

	for rows.Next() {
		var st model.Strategy
		var description sql.NullString
		var imageReferences *string
		var createdAtStr string

		err := rows.Scan(
			&st.ID,
			&st.Name,
			&description,
			&imageReferences,
			&createdAtStr,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan strategy table results: %w", err)
		}

		if description.Valid {
			st.Description = description.String
		}
		st.ImageReferences = decodeStringList(imageReferences)

		st.CreatedAt, err = ParseTime(createdAtStr)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		strategies = append(strategies, st)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating strategy table: %w", err)
	}

	return strategies, nil
}

// GetStrategy retrieves a single strategy by id.
// Returns apperrors.ErrStrategyNotFound if no row exists.
func (s *StrategyRepository) GetStrategy(strategyID int64) (model.Strategy, error) {
	query := `
		SELECT id, name, description, image_references, created_at
		FROM strategy
		WHERE id = ?
	`

	var st model.Strategy
	var description sql.NullString
	var imageReferences *string
	var createdAtStr string

	err := s.db.QueryRow(query, strategyID).Scan(
		&st.ID,
		&st.Name,
		&description,
		&imageReferences,
		&createdAtStr,
	)
	if err == sql.ErrNoRows {
		return model.Strategy{}, apperrors.ErrStrategyNotFound
	}
	if err != nil {
		return st, fmt.Errorf("failed to scan strategy table results: %w", err)
	}

	if description.Valid {
		st.Description = description.String
	}
	st.ImageReferences = decodeStringList(imageReferences)

	st.CreatedAt, err = ParseTime(createdAtStr)
	if err != nil {
		return st, fmt.Errorf("failed to parse created_at: %w", err)
	}

	return st, nil
}

// InsertStrategy persists a new strategy and assigns its id.
func (s *StrategyRepository) InsertStrategy(ctx context.Context, st *model.Strategy) error {
	images, err := encodeStringList(st.ImageReferences)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO strategy (name, description, image_references)
		VALUES (?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		st.Name,
		nullableString(st.Description),
		images,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into strategy table: %w", err)
	}

	st.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted strategy id: %w", err)
	}

	return nil
}

// UpdateStrategy persists the full state of an existing strategy.
// Returns apperrors.ErrStrategyNotFound if no row was updated.
func (s *StrategyRepository) UpdateStrategy(ctx context.Context, st *model.Strategy) error {
	images, err := encodeStringList(st.ImageReferences)
	if err != nil {
		return err
	}

	query := `
		UPDATE strategy
		SET name = ?, description = ?, image_references = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		st.Name,
		nullableString(st.Description),
		images,
		st.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update strategy table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStrategyNotFound
	}

	return nil
}

// DeleteStrategy removes a strategy by id. Trades referencing it keep
// existing with their strategy reference cleared: deleting a tag never
// cascades into the journal.
// Returns apperrors.ErrStrategyNotFound if no row was deleted.
func (s *StrategyRepository) DeleteStrategy(ctx context.Context, strategyID int64) error {
	if _, err := s.db.ExecContext(ctx, `UPDATE trade SET strategy_id = NULL WHERE strategy_id = ?`, strategyID); err != nil {
		return fmt.Errorf("failed to clear strategy references: %w", err)
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM strategy WHERE id = ?`, strategyID)
	if err != nil {
		return fmt.Errorf("failed to delete from strategy table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrStrategyNotFound
	}

	return nil
}
