package testutil

import (
	"database/sql"
	"math/rand"
	"testing"

	"github.com/google/uuid"
	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
	"github.com/tdejong/Trading-Journal-Backend/internal/service"
)

// TestInitialCapital is the starting capital wired into test portfolio services.
const TestInitialCapital = 1000.0

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	transactionRepo := repository.NewTransactionRepository(db)

	return service.NewTransactionService(
		transactionRepo,
	)
}

func NewTestTradeService(t *testing.T, db *sql.DB) *service.TradeService {
	t.Helper()

	tradeRepo := repository.NewTradeRepository(db)
	strategyRepo := repository.NewStrategyRepository(db)

	return service.NewTradeService(
		tradeRepo,
		strategyRepo,
	)
}

func NewTestStrategyService(t *testing.T, db *sql.DB) *service.StrategyService {
	t.Helper()

	strategyRepo := repository.NewStrategyRepository(db)

	return service.NewStrategyService(
		strategyRepo,
	)
}

func NewTestPortfolioService(t *testing.T, db *sql.DB) *service.PortfolioService {
	t.Helper()

	transactionService := NewTestTransactionService(t, db)
	tradeService := NewTestTradeService(t, db)

	return service.NewPortfolioService(
		transactionService,
		tradeService,
		TestInitialCapital,
	)
}

// NewTestPortfolioServiceWithCapital creates a PortfolioService with a custom
// starting capital. Useful for the zero-capital edge cases.
func NewTestPortfolioServiceWithCapital(t *testing.T, db *sql.DB, initialCapital float64) *service.PortfolioService {
	t.Helper()

	transactionService := NewTestTransactionService(t, db)
	tradeService := NewTestTradeService(t, db)

	return service.NewPortfolioService(
		transactionService,
		tradeService,
		initialCapital,
	)
}

func NewTestSnapshotService(t *testing.T, db *sql.DB) *service.SnapshotService {
	t.Helper()

	snapshotRepo := repository.NewSnapshotRepository(db)
	portfolioService := NewTestPortfolioService(t, db)

	return service.NewSnapshotService(
		snapshotRepo,
		portfolioService,
	)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

// MakeID generates a UUID string for use in tests.
//
// Example usage:
//
//	id := testutil.MakeID()
//	// Returns: "550e8400-e29b-41d4-a716-446655440000"
func MakeID() string {
	return uuid.New().String()
}

// MakeAssetName generates a unique asset name for testing.
//
// Example usage:
//
//	name := testutil.MakeAssetName("BTC")
//	// Returns: "BTC1A2B3C"
func MakeAssetName(base string) string {
	if base == "" {
		base = "ASSET"
	}
	return base + randomAlphanumeric(6)
}

// MakeStrategyName generates a unique strategy name for testing.
//
// Example usage:
//
//	name := testutil.MakeStrategyName("Breakout")
//	// Returns: "Breakout XYZ789"
func MakeStrategyName(base string) string {
	if base == "" {
		base = "Strategy"
	}
	return base + " " + randomAlphanumeric(6)
}

// randomAlphanumeric generates a random alphanumeric string of specified length.
func randomAlphanumeric(length int) string {
	const charset = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	result := make([]byte, length)
	for i := range result {
		//nolint:gosec // G404: Using math/rand for test data generation is acceptable
		result[i] = charset[rand.Intn(len(charset))]
	}
	return string(result)
}
