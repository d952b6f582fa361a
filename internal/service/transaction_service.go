package service

import (
	"context"
	"fmt"

	"github.com/tdejong/Trading-Journal-Backend/internal/api/request"
	"github.com/tdejong/Trading-Journal-Backend/internal/model"
	"github.com/tdejong/Trading-Journal-Backend/internal/repository"
)

// TransactionService handles transaction-related business logic operations.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
}

// NewTransactionService creates a new TransactionService with the provided repository dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
	}
}

// GetTransactions retrieves the full transaction ledger.
func (s *TransactionService) GetTransactions() ([]model.Transaction, error) {
	return s.transactionRepo.GetTransactions()
}

// GetTransaction retrieves a single transaction by its id.
func (s *TransactionService) GetTransaction(transactionID int64) (model.Transaction, error) {
	return s.transactionRepo.GetTransaction(transactionID)
}

// CreateTransaction persists a new transaction and returns the stored record
// with its server-assigned id.
func (s *TransactionService) CreateTransaction(ctx context.Context, req request.CreateTransactionRequest) (*model.Transaction, error) {
	transaction := &model.Transaction{
		Name:         req.Name,
		Quantity:     req.Quantity,
		PricePerUnit: req.PricePerUnit,
		Type:         req.Type,
		Date:         req.Date,
		Notes:        req.Notes,
	}

	if err := s.transactionRepo.InsertTransaction(ctx, transaction); err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}

	return s.reload(transaction.ID)
}

// UpdateTransaction applies the provided fields to an existing transaction
// and returns the stored record.
func (s *TransactionService) UpdateTransaction(ctx context.Context, transactionID int64, req request.UpdateTransactionRequest) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(transactionID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		transaction.Name = *req.Name
	}
	if req.Quantity != nil {
		transaction.Quantity = *req.Quantity
	}
	if req.PricePerUnit != nil {
		transaction.PricePerUnit = *req.PricePerUnit
	}
	if req.Type != nil {
		transaction.Type = *req.Type
	}
	if req.Date != nil {
		transaction.Date = *req.Date
	}
	if req.Notes != nil {
		transaction.Notes = *req.Notes
	}

	if err := s.transactionRepo.UpdateTransaction(ctx, &transaction); err != nil {
		return nil, err
	}

	return &transaction, nil
}

// DeleteTransaction removes a transaction by id.
func (s *TransactionService) DeleteTransaction(ctx context.Context, transactionID int64) error {
	return s.transactionRepo.DeleteTransaction(ctx, transactionID)
}

// reload fetches the stored record so responses include store-assigned
// columns such as created_at.
func (s *TransactionService) reload(transactionID int64) (*model.Transaction, error) {
	transaction, err := s.transactionRepo.GetTransaction(transactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload transaction: %w", err)
	}
	return &transaction, nil
}
