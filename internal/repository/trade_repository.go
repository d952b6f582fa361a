package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/apperrors"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

// TradeRepository provides data access methods for the trade table.
// Reads join the strategy table so responses can carry the strategy name.
type TradeRepository struct {
	db *sql.DB
}

// NewTradeRepository creates a new TradeRepository with the provided database connection.
func NewTradeRepository(db *sql.DB) *TradeRepository {
	return &TradeRepository{db: db}
}

const tradeSelect = `
	SELECT
		t.id,
		t.name,
		t.open_date,
		t.close_date,
		t.open_price,
		t.close_price,
		t.direction,
		t.level,
		t.volume,
		t.source,
		t.order_type,
		t.strategy_id,
		s.name,
		t.reference_images
	FROM trade t
	LEFT JOIN strategy s ON t.strategy_id = s.id
`

// GetTrades retrieves all trades with joined strategy names, ordered by
// open date then id. Profit and status are filled in by the service layer.
func (s *TradeRepository) GetTrades() ([]model.TradeResponse, error) {
	rows, err := s.db.Query(tradeSelect + ` ORDER BY t.open_date ASC, t.id ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query trade table: %w", err)
	}
	defer rows.Close()

	trades := []model.TradeResponse{}

	for rows.Next() {
		t, err := scanTradeRow(rows.Scan)
		if err != nil {
			return nil, err
		}
		trades = append(trades, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trade table: %w", err)
	}

	return trades, nil
}

// GetTrade retrieves a single trade by id with its joined strategy name.
// Returns apperrors.ErrTradeNotFound if no row exists.
func (s *TradeRepository) GetTrade(tradeID int64) (model.TradeResponse, error) {
	row := s.db.QueryRow(tradeSelect+` WHERE t.id = ?`, tradeID)

	t, err := scanTradeRow(row.Scan)
	if err == sql.ErrNoRows {
		return model.TradeResponse{}, apperrors.ErrTradeNotFound
	}
	if err != nil {
		return model.TradeResponse{}, err
	}

	return t, nil
}

// scanTradeRow scans one joined trade row. The scan function signature is
// shared between sql.Row and sql.Rows.
func scanTradeRow(scan func(...any) error) (model.TradeResponse, error) {
	var t model.TradeResponse
	var openDate, closeDate, source, orderType, strategyName sql.NullString
	var closePrice sql.NullFloat64
	var strategyID sql.NullInt64
	var referenceImages *string

	err := scan(
		&t.ID,
		&t.Name,
		&openDate,
		&closeDate,
		&t.OpenPrice,
		&closePrice,
		&t.Direction,
		&t.Level,
		&t.Volume,
		&source,
		&orderType,
		&strategyID,
		&strategyName,
		&referenceImages,
	)
	if err == sql.ErrNoRows {
		return t, err
	}
	if err != nil {
		return t, fmt.Errorf("failed to scan trade table results: %w", err)
	}

	if openDate.Valid {
		t.OpenDate = openDate.String
	}
	if closeDate.Valid {
		t.CloseDate = closeDate.String
	}
	if closePrice.Valid {
		t.ClosePrice = &closePrice.Float64
	}
	if source.Valid {
		t.Source = source.String
	}
	if orderType.Valid {
		t.OrderType = orderType.String
	}
	if strategyID.Valid {
		t.StrategyID = &strategyID.Int64
	}
	if strategyName.Valid {
		t.StrategyName = strategyName.String
	}
	t.ReferenceImages = decodeStringList(referenceImages)

	return t, nil
}

// InsertTrade persists a new trade and assigns its id.
func (s *TradeRepository) InsertTrade(ctx context.Context, t *model.Trade) error {
	images, err := encodeStringList(t.ReferenceImages)
	if err != nil {
		return err
	}

	query := `
		INSERT INTO trade (name, open_date, close_date, open_price, close_price,
			direction, level, volume, source, order_type, strategy_id, reference_images)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Name,
		nullableString(t.OpenDate),
		nullableString(t.CloseDate),
		t.OpenPrice,
		t.ClosePrice,
		t.Direction,
		t.Level,
		t.Volume,
		nullableString(t.Source),
		nullableString(t.OrderType),
		t.StrategyID,
		images,
	)
	if err != nil {
		return fmt.Errorf("failed to insert into trade table: %w", err)
	}

	t.ID, err = result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to read inserted trade id: %w", err)
	}

	return nil
}

// UpdateTrade persists the full state of an existing trade.
// Returns apperrors.ErrTradeNotFound if no row was updated.
func (s *TradeRepository) UpdateTrade(ctx context.Context, t *model.Trade) error {
	images, err := encodeStringList(t.ReferenceImages)
	if err != nil {
		return err
	}

	query := `
		UPDATE trade
		SET name = ?, open_date = ?, close_date = ?, open_price = ?, close_price = ?,
			direction = ?, level = ?, volume = ?, source = ?, order_type = ?,
			strategy_id = ?, reference_images = ?
		WHERE id = ?
	`

	result, err := s.db.ExecContext(ctx, query,
		t.Name,
		nullableString(t.OpenDate),
		nullableString(t.CloseDate),
		t.OpenPrice,
		t.ClosePrice,
		t.Direction,
		t.Level,
		t.Volume,
		nullableString(t.Source),
		nullableString(t.OrderType),
		t.StrategyID,
		images,
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update trade table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}

// DeleteTrade removes a trade by id.
// Returns apperrors.ErrTradeNotFound if no row was deleted.
func (s *TradeRepository) DeleteTrade(ctx context.Context, tradeID int64) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM trade WHERE id = ?`, tradeID)
	if err != nil {
		return fmt.Errorf("failed to delete from trade table: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return apperrors.ErrTradeNotFound
	}

	return nil
}
