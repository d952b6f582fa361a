package apperrors

import "errors"

// Domain entity errors represent missing or invalid entities in the system.
// These errors indicate that a requested resource does not exist.
var (
	// ErrTransactionNotFound indicates that a transaction with the given ID does not exist.
	ErrTransactionNotFound = errors.New("transaction not found")

	// ErrTradeNotFound indicates that a trade with the given ID does not exist.
	ErrTradeNotFound = errors.New("trade not found")

	// ErrStrategyNotFound indicates that a strategy with the given ID does not exist.
	ErrStrategyNotFound = errors.New("strategy not found")

	// ErrSnapshotNotFound indicates that no summary snapshot exists for the given date.
	ErrSnapshotNotFound = errors.New("summary snapshot not found")
)

// Business logic errors represent validation failures or constraint violations.
// These errors indicate that an operation cannot be completed due to business rules.
var (
	// ErrInvalidID indicates that a provided ID is not a positive integer.
	ErrInvalidID = errors.New("invalid ID format")

	// ErrEmptyID indicates that a required ID parameter is empty or missing.
	ErrEmptyID = errors.New("ID cannot be empty")

	// ErrNegativeAmount indicates that an amount field has an invalid negative value.
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInvalidDateRange indicates that the provided date range is invalid
	// (e.g., start date is after end date).
	ErrInvalidDateRange = errors.New("invalid date range")

	// ErrStrategyInUse is reserved for a future delete guard; strategy deletion
	// currently nulls trade references instead of blocking.
	ErrStrategyInUse = errors.New("strategy is in use")
)

// Operation failure errors represent system-level failures when retrieving or processing data.
// These errors indicate that an operation failed, but not due to missing entities or validation issues.
var (
	// Transaction operation errors
	ErrFailedToRetrieveTransactions = errors.New("failed to retrieve transactions")
	ErrFailedToRetrieveTransaction  = errors.New("failed to retrieve transaction")

	// Trade operation errors
	ErrFailedToRetrieveTrades = errors.New("failed to retrieve trades")
	ErrFailedToRetrieveTrade  = errors.New("failed to retrieve trade")

	// Strategy operation errors
	ErrFailedToRetrieveStrategies = errors.New("failed to retrieve strategies")
	ErrFailedToRetrieveStrategy   = errors.New("failed to retrieve strategy")

	// Portfolio operation errors
	ErrFailedToGetPositions        = errors.New("failed to get asset positions")
	ErrFailedToGetPortfolioSummary = errors.New("failed to get portfolio summary")
	ErrFailedToGetAllocation       = errors.New("failed to get allocation")
	ErrFailedToGetSummaryHistory   = errors.New("failed to get summary history")
)
