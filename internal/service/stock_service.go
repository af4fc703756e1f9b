package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/wealthflow/wealthflow-backend/internal/ai"
	"github.com/wealthflow/wealthflow-backend/internal/api/request"
	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/model"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
	"github.com/wealthflow/wealthflow-backend/internal/snapshot"
)

// StockService handles stock holding CRUD and the best-effort AI price
// refresh.
type StockService struct {
	stockRepo      *repository.StockRepository
	settingService *SettingService
	aiClient       ai.Client
	hub            *snapshot.Hub
	envAPIKey      string
}

// NewStockService creates a new StockService with the provided dependencies.
// envAPIKey is the Gemini key from the environment; when empty, the refresh
// flow falls back to the encrypted key in system settings.
func NewStockService(
	stockRepo *repository.StockRepository,
	settingService *SettingService,
	aiClient ai.Client,
	hub *snapshot.Hub,
	envAPIKey string,
) *StockService {
	return &StockService{
		stockRepo:      stockRepo,
		settingService: settingService,
		aiClient:       aiClient,
		hub:            hub,
		envAPIKey:      envAPIKey,
	}
}

// GetStocks returns all stock holdings owned by the user.
func (s *StockService) GetStocks(userID string) ([]model.StockHolding, error) {
	return s.stockRepo.GetStocks(userID)
}

// CreateStock creates a new holding. The symbol is normalized to uppercase
// and lastUpdated is set to the creation time.
func (s *StockService) CreateStock(_ context.Context, userID string, req request.CreateStockRequest) (model.StockHolding, error) {
	stock := model.StockHolding{
		ID:           uuid.New().String(),
		UserID:       userID,
		Symbol:       strings.ToUpper(strings.TrimSpace(req.Symbol)),
		Name:         req.Name,
		Shares:       req.Shares,
		AvgPrice:     req.AvgPrice,
		CurrentPrice: req.CurrentPrice,
		LastUpdated:  time.Now().UTC(),
	}

	if err := s.stockRepo.CreateStock(stock); err != nil {
		return model.StockHolding{}, err
	}

	s.hub.Invalidate(userID, snapshot.CollectionStocks)

	return stock, nil
}

// DeleteStock removes a holding.
func (s *StockService) DeleteStock(_ context.Context, userID, stockID string) error {
	if err := s.stockRepo.DeleteStock(userID, stockID); err != nil {
		return err
	}

	s.hub.Invalidate(userID, snapshot.CollectionStocks)

	return nil
}

// RefreshPrices asks the AI adapter for current prices and updates
// currentPrice and lastUpdated for the holdings whose symbols came back with
// numeric values. The flow is best-effort and non-authoritative: on any
// failure (no API key, network error, unparsable response) it logs, leaves
// every holding untouched and returns the unmodified list with a nil error.
func (s *StockService) RefreshPrices(ctx context.Context, userID string) ([]model.StockHolding, error) {
	stocks, err := s.stockRepo.GetStocks(userID)
	if err != nil {
		return nil, err
	}
	if len(stocks) == 0 {
		return stocks, nil
	}

	apiKey := s.geminiAPIKey()
	if apiKey == "" {
		log.Printf("price refresh skipped for user %s: no Gemini API key configured", userID)
		return stocks, nil
	}

	symbols := make([]string, len(stocks))
	for i, st := range stocks {
		symbols[i] = st.Symbol
	}

	prices, err := s.aiClient.FetchPrices(ctx, apiKey, symbols)
	if err != nil {
		log.Printf("price refresh failed for user %s: %v", userID, err)
		return stocks, nil
	}

	now := time.Now().UTC()
	updated := make([]model.StockHolding, 0, len(stocks))
	for i, st := range stocks {
		price, ok := prices[st.Symbol]
		if !ok {
			continue
		}
		stocks[i].CurrentPrice = price
		stocks[i].LastUpdated = now
		updated = append(updated, stocks[i])
	}

	if len(updated) == 0 {
		return stocks, nil
	}

	if err := s.stockRepo.ReplaceHoldings(userID, updated); err != nil {
		return nil, err
	}

	s.hub.Invalidate(userID, snapshot.CollectionStocks)

	return stocks, nil
}

// geminiAPIKey resolves the Gemini key: environment first, then the encrypted
// system setting. Returns empty when neither is configured.
func (s *StockService) geminiAPIKey() string {
	if s.envAPIKey != "" {
		return s.envAPIKey
	}

	key, err := s.settingService.GeminiAPIKey()
	if err != nil {
		if !errors.Is(err, apperrors.ErrSettingNotFound) {
			log.Printf("failed to read Gemini API key setting: %v", err)
		}
		return ""
	}
	return key
}
