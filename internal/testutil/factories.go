package testutil

import (
	"database/sql"
	"encoding/json"
	"testing"

	"github.com/tdejong/Trading-Journal-Backend/internal/model"
)

// TransactionBuilder provides a fluent interface for creating test transactions.
//
// Example usage:
//
//	// Simple creation with defaults
//	tx := testutil.NewTransaction("BTC").Build(t, db)
//
//	// Customized transaction
//	tx := testutil.NewTransaction("BTC").
//	    Sell().
//	    WithQuantity(0.5).
//	    WithPricePerUnit(25000).
//	    WithDate("2024-03-01").
//	    Build(t, db)
type TransactionBuilder struct {
	Name         string
	Quantity     float64
	PricePerUnit float64
	Type         string
	Date         string
	Notes        string
}

// NewTransaction creates a TransactionBuilder with sensible defaults:
// a buy of 1 unit at 100 on 2024-01-01.
func NewTransaction(name string) *TransactionBuilder {
	return &TransactionBuilder{
		Name:         name,
		Quantity:     1,
		PricePerUnit: 100,
		Type:         model.TransactionTypeBuy,
		Date:         "2024-01-01",
	}
}

// Buy marks the transaction as a buy.
func (b *TransactionBuilder) Buy() *TransactionBuilder {
	b.Type = model.TransactionTypeBuy
	return b
}

// Sell marks the transaction as a sell.
func (b *TransactionBuilder) Sell() *TransactionBuilder {
	b.Type = model.TransactionTypeSell
	return b
}

// WithQuantity sets a custom quantity.
func (b *TransactionBuilder) WithQuantity(quantity float64) *TransactionBuilder {
	b.Quantity = quantity
	return b
}

// WithPricePerUnit sets a custom price per unit.
func (b *TransactionBuilder) WithPricePerUnit(price float64) *TransactionBuilder {
	b.PricePerUnit = price
	return b
}

// WithDate sets a custom date string. The value is stored raw, so tests
// can inject malformed dates on purpose.
func (b *TransactionBuilder) WithDate(date string) *TransactionBuilder {
	b.Date = date
	return b
}

// WithNotes sets custom notes.
func (b *TransactionBuilder) WithNotes(notes string) *TransactionBuilder {
	b.Notes = notes
	return b
}

// Build creates the transaction in the database and returns it.
func (b *TransactionBuilder) Build(t *testing.T, db *sql.DB) model.Transaction {
	t.Helper()

	query := `
		INSERT INTO asset_transaction (name, quantity, price_per_unit, type, date, notes)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query, b.Name, b.Quantity, b.PricePerUnit, b.Type, nullable(b.Date), nullable(b.Notes))
	if err != nil {
		t.Fatalf("Failed to create test transaction: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test transaction id: %v", err)
	}

	return model.Transaction{
		ID:           id,
		Name:         b.Name,
		Quantity:     b.Quantity,
		PricePerUnit: b.PricePerUnit,
		Type:         b.Type,
		Date:         b.Date,
		Notes:        b.Notes,
	}
}

// TradeBuilder provides a fluent interface for creating test trades.
//
// Example usage:
//
//	trade := testutil.NewTrade("BTCUSDT").
//	    Short().
//	    WithLevel(5).
//	    ClosedAt(90).
//	    Build(t, db)
type TradeBuilder struct {
	Name            string
	OpenDate        string
	CloseDate       string
	OpenPrice       float64
	ClosePrice      *float64
	Direction       string
	Level           int
	Volume          float64
	Source          string
	OrderType       string
	StrategyID      *int64
	ReferenceImages []string
}

// NewTrade creates a TradeBuilder with sensible defaults:
// an open long trade of volume 1 at price 100 with leverage 1.
func NewTrade(name string) *TradeBuilder {
	return &TradeBuilder{
		Name:      name,
		OpenDate:  "2024-01-01",
		OpenPrice: 100,
		Direction: model.TradeDirectionLong,
		Level:     1,
		Volume:    1,
	}
}

// Long marks the trade as a long.
func (b *TradeBuilder) Long() *TradeBuilder {
	b.Direction = model.TradeDirectionLong
	return b
}

// Short marks the trade as a short.
func (b *TradeBuilder) Short() *TradeBuilder {
	b.Direction = model.TradeDirectionShort
	return b
}

// WithOpenPrice sets a custom open price.
func (b *TradeBuilder) WithOpenPrice(price float64) *TradeBuilder {
	b.OpenPrice = price
	return b
}

// ClosedAt sets the close price, marking the trade as closed.
func (b *TradeBuilder) ClosedAt(price float64) *TradeBuilder {
	b.ClosePrice = &price
	b.CloseDate = "2024-02-01"
	return b
}

// WithLevel sets a custom leverage level.
func (b *TradeBuilder) WithLevel(level int) *TradeBuilder {
	b.Level = level
	return b
}

// WithVolume sets a custom volume.
func (b *TradeBuilder) WithVolume(volume float64) *TradeBuilder {
	b.Volume = volume
	return b
}

// WithOrderType sets a custom order type.
func (b *TradeBuilder) WithOrderType(orderType string) *TradeBuilder {
	b.OrderType = orderType
	return b
}

// WithStrategy links the trade to a strategy.
func (b *TradeBuilder) WithStrategy(strategyID int64) *TradeBuilder {
	b.StrategyID = &strategyID
	return b
}

// WithReferenceImages sets the reference image list.
func (b *TradeBuilder) WithReferenceImages(images ...string) *TradeBuilder {
	b.ReferenceImages = images
	return b
}

// Build creates the trade in the database and returns it.
func (b *TradeBuilder) Build(t *testing.T, db *sql.DB) model.Trade {
	t.Helper()

	var images any
	if len(b.ReferenceImages) > 0 {
		data, err := json.Marshal(b.ReferenceImages)
		if err != nil {
			t.Fatalf("Failed to encode reference images: %v", err)
		}
		images = string(data)
	}

	query := `
		INSERT INTO trade (name, open_date, close_date, open_price, close_price,
			direction, level, volume, source, order_type, strategy_id, reference_images)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := db.Exec(query,
		b.Name, nullable(b.OpenDate), nullable(b.CloseDate), b.OpenPrice, b.ClosePrice,
		b.Direction, b.Level, b.Volume, nullable(b.Source), nullable(b.OrderType),
		b.StrategyID, images,
	)
	if err != nil {
		t.Fatalf("Failed to create test trade: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test trade id: %v", err)
	}

	return model.Trade{
		ID:              id,
		Name:            b.Name,
		OpenDate:        b.OpenDate,
		CloseDate:       b.CloseDate,
		OpenPrice:       b.OpenPrice,
		ClosePrice:      b.ClosePrice,
		Direction:       b.Direction,
		Level:           b.Level,
		Volume:          b.Volume,
		Source:          b.Source,
		OrderType:       b.OrderType,
		StrategyID:      b.StrategyID,
		ReferenceImages: b.ReferenceImages,
	}
}

// StrategyBuilder provides a fluent interface for creating test strategies.
type StrategyBuilder struct {
	Name            string
	Description     string
	ImageReferences []string
}

// NewStrategy creates a StrategyBuilder with sensible defaults.
func NewStrategy() *StrategyBuilder {
	return &StrategyBuilder{
		Name:        MakeStrategyName("Test Strategy"),
		Description: "Test description",
	}
}

// WithName sets a custom name.
func (b *StrategyBuilder) WithName(name string) *StrategyBuilder {
	b.Name = name
	return b
}

// WithDescription sets a custom description.
func (b *StrategyBuilder) WithDescription(description string) *StrategyBuilder {
	b.Description = description
	return b
}

// WithImageReferences sets the image reference list.
func (b *StrategyBuilder) WithImageReferences(images ...string) *StrategyBuilder {
	b.ImageReferences = images
	return b
}

// Build creates the strategy in the database and returns it.
func (b *StrategyBuilder) Build(t *testing.T, db *sql.DB) model.Strategy {
	t.Helper()

	var images any
	if len(b.ImageReferences) > 0 {
		data, err := json.Marshal(b.ImageReferences)
		if err != nil {
			t.Fatalf("Failed to encode image references: %v", err)
		}
		images = string(data)
	}

	query := `
		INSERT INTO strategy (name, description, image_references)
		VALUES (?, ?, ?)
	`

	result, err := db.Exec(query, b.Name, nullable(b.Description), images)
	if err != nil {
		t.Fatalf("Failed to create test strategy: %v", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read test strategy id: %v", err)
	}

	return model.Strategy{
		ID:              id,
		Name:            b.Name,
		Description:     b.Description,
		ImageReferences: b.ImageReferences,
	}
}

// nullable maps an empty string to a SQL NULL for test inserts.
func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
