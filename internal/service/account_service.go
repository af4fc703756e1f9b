package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
	"github.com/wealthflow/wealthflow-backend/internal/snapshot"
)

// AccountService handles account CRUD. Operations are pass-through: no
// derived-field recomputation happens here beyond what the caller supplies.
type AccountService struct {
	accountRepo *repository.AccountRepository
	hub         *snapshot.Hub
}

// NewAccountService creates a new AccountService with the provided dependencies.
func NewAccountService(accountRepo *repository.AccountRepository, hub *snapshot.Hub) *AccountService {
	return &AccountService{
		accountRepo: accountRepo,
		hub:         hub,
	}
}

// GetAccounts returns all accounts owned by the user.
func (s *AccountService) GetAccounts(userID string) ([]model.Account, error) {
	return s.accountRepo.GetAccounts(userID)
}

// CreateAccount creates a new account for the user.
func (s *AccountService) CreateAccount(_ context.Context, userID string, req request.CreateAccountRequest) (model.Account, error) {
	account := model.Account{
		ID:       uuid.New().String(),
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		Balance:  req.Balance,
		Currency: req.Currency,
	}

	if err := s.accountRepo.CreateAccount(account); err != nil {
		return model.Account{}, err
	}

	s.hub.Invalidate(userID, snapshot.CollectionAccounts)

	return account, nil
}

// UpdateAccount fully replaces the mutable fields of an account.
func (s *AccountService) UpdateAccount(_ context.Context, userID, accountID string, req request.UpdateAccountRequest) (model.Account, error) {
	account := model.Account{
		ID:       accountID,
		UserID:   userID,
		Name:     req.Name,
		Type:     req.Type,
		Balance:  req.Balance,
		Currency: req.Currency,
	}

	if err := s.accountRepo.UpdateAccount(account); err != nil {
		return model.Account{}, err
	}

	s.hub.Invalidate(userID, snapshot.CollectionAccounts)

	return account, nil
}

// DeleteAccount removes an account. Transactions referencing it remain and
// become orphaned; no cascade.
func (s *AccountService) DeleteAccount(_ context.Context, userID, accountID string) error {
	if err := s.accountRepo.DeleteAccount(userID, accountID); err != nil {
		return err
	}

	s.hub.Invalidate(userID, snapshot.CollectionAccounts)

	return nil
}
