package snapshot

import (
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
)

// RepositoryLoader adapts the repositories to the Loader interface.
type RepositoryLoader struct {
	accountRepo     *repository.AccountRepository
	stockRepo       *repository.StockRepository
	transactionRepo *repository.TransactionRepository
}

// NewRepositoryLoader creates a Loader backed by the given repositories.
func NewRepositoryLoader(
	accountRepo *repository.AccountRepository,
	stockRepo *repository.StockRepository,
	transactionRepo *repository.TransactionRepository,
) *RepositoryLoader {
	return &RepositoryLoader{
		accountRepo:     accountRepo,
		stockRepo:       stockRepo,
		transactionRepo: transactionRepo,
	}
}

// LoadAccounts reads the full accounts collection for one user.
func (l *RepositoryLoader) LoadAccounts(userID string) ([]model.Account, error) {
	return l.accountRepo.GetAccounts(userID)
}

// LoadStocks reads the full stock holdings collection for one user.
func (l *RepositoryLoader) LoadStocks(userID string) ([]model.StockHolding, error) {
	return l.stockRepo.GetStocks(userID)
}

// LoadTransactions reads the full transactions collection for one user.
func (l *RepositoryLoader) LoadTransactions(userID string) ([]model.Transaction, error) {
	return l.transactionRepo.GetRawTransactions(userID)
}
