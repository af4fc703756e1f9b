package testutil

import (
	"database/sql"
	"testing"

	"github.com/fernet/fernet-go"

	"github.com/wealthflow/wealthflow-backend/internal/ai"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
	"github.com/wealthflow/wealthflow-backend/internal/service"
	"github.com/wealthflow/wealthflow-backend/internal/snapshot"
)

// TestJWTSecret is the signing secret used by test auth services.
const TestJWTSecret = "test-secret-do-not-use-in-production"

// NewTestHub creates a snapshot hub backed by the repositories over db.
func NewTestHub(t *testing.T, db *sql.DB) *snapshot.Hub {
	t.Helper()

	loader := snapshot.NewRepositoryLoader(
		repository.NewAccountRepository(db),
		repository.NewStockRepository(db),
		repository.NewTransactionRepository(db),
	)
	return snapshot.NewHub(loader)
}

func NewTestSystemService(t *testing.T, db *sql.DB) *service.SystemService {
	t.Helper()

	return service.NewSystemService(db)
}

func NewTestAuthService(t *testing.T, db *sql.DB) *service.AuthService {
	t.Helper()

	return service.NewAuthService(repository.NewUserRepository(db), TestJWTSecret)
}

func NewTestAccountService(t *testing.T, db *sql.DB) *service.AccountService {
	t.Helper()

	return service.NewAccountService(repository.NewAccountRepository(db), NewTestHub(t, db))
}

func NewTestTransactionService(t *testing.T, db *sql.DB) *service.TransactionService {
	t.Helper()

	return service.NewTransactionService(repository.NewTransactionRepository(db), NewTestHub(t, db))
}

func NewTestSettingService(t *testing.T, db *sql.DB) *service.SettingService {
	t.Helper()

	var key fernet.Key
	if err := key.Generate(); err != nil {
		t.Fatalf("Failed to generate fernet key: %v", err)
	}

	settingService, err := service.NewSettingService(repository.NewSettingRepository(db), key.Encode())
	if err != nil {
		t.Fatalf("Failed to create setting service: %v", err)
	}
	return settingService
}

// NewTestStockService creates a StockService wired to the given AI client.
// Pass a MockAIClient to control price responses; the environment key is left
// empty so the settings fallback path is exercised.
func NewTestStockService(t *testing.T, db *sql.DB, aiClient ai.Client) *service.StockService {
	t.Helper()

	return service.NewStockService(
		repository.NewStockRepository(db),
		NewTestSettingService(t, db),
		aiClient,
		NewTestHub(t, db),
		"",
	)
}

// NewTestStockServiceWithKey creates a StockService with an environment API
// key already set, so price refresh reaches the AI client without settings.
func NewTestStockServiceWithKey(t *testing.T, db *sql.DB, aiClient ai.Client, apiKey string) *service.StockService {
	t.Helper()

	return service.NewStockService(
		repository.NewStockRepository(db),
		NewTestSettingService(t, db),
		aiClient,
		NewTestHub(t, db),
		apiKey,
	)
}

func NewTestDashboardService(t *testing.T, db *sql.DB) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(NewTestHub(t, db))
}

// NewTestDashboardServiceWithHub creates a DashboardService over a hub the
// test also holds, so the test can invalidate collections directly.
func NewTestDashboardServiceWithHub(t *testing.T, hub *snapshot.Hub) *service.DashboardService {
	t.Helper()

	return service.NewDashboardService(hub)
}
