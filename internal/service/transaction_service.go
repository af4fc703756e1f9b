package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
	"github.com/wealthflow/wealthflow-backend/internal/snapshot"
)

// TransactionService owns the ledger rule: posting a transaction records it
// unconditionally and applies the implied balance delta to the referenced
// account if it still exists. Transactions are immutable after creation.
type TransactionService struct {
	transactionRepo *repository.TransactionRepository
	hub             *snapshot.Hub
}

// NewTransactionService creates a new TransactionService with the provided dependencies.
func NewTransactionService(
	transactionRepo *repository.TransactionRepository,
	hub *snapshot.Hub,
) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		hub:             hub,
	}
}

// BalanceDelta returns the signed balance effect of a transaction: +amount
// for income, -amount for expense, 0 for transfer. Transfer is a recorded
// no-op: the data model carries no second account to move funds to, so it has
// no defined balance effect.
func BalanceDelta(transactionType string, amount float64) float64 {
	switch transactionType {
	case model.TransactionTypeIncome:
		return amount
	case model.TransactionTypeExpense:
		return -amount
	}
	return 0
}

// CreateTransaction posts a new transaction for the user. The transaction
// record is always created; the balance update is applied atomically in the
// same store write and silently no-ops when the referenced account does not
// exist. An empty category defaults to the first taxonomy entry for the type.
func (s *TransactionService) CreateTransaction(_ context.Context, userID string, req request.CreateTransactionRequest) (model.Transaction, error) {
	category := req.Category
	if category == "" {
		category = model.DefaultCategory(req.Type)
	}

	transaction := model.Transaction{
		ID:        uuid.New().String(),
		UserID:    userID,
		AccountID: req.AccountID,
		Type:      req.Type,
		Amount:    req.Amount,
		Category:  category,
		Date:      req.Date,
		Note:      req.Note,
	}

	delta := BalanceDelta(transaction.Type, transaction.Amount)
	if err := s.transactionRepo.CreateApplyingDelta(transaction, delta); err != nil {
		return model.Transaction{}, err
	}

	s.hub.Invalidate(userID, snapshot.CollectionTransactions)
	if delta != 0 {
		s.hub.Invalidate(userID, snapshot.CollectionAccounts)
	}

	return transaction, nil
}

// GetTransactions returns all transactions for the user, enriched with the
// referenced account names, ordered by date descending.
func (s *TransactionService) GetTransactions(userID string) ([]model.TransactionResponse, error) {
	return s.transactionRepo.GetTransactions(userID)
}
