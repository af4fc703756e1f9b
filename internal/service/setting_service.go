package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/fernet/fernet-go"

	"github.com/wealthflow/wealthflow-backend/internal/apperrors"
	"github.com/wealthflow/wealthflow-backend/internal/repository"
)

const settingKeyGeminiAPIKey = "gemini_api_key"

// SettingService manages system settings. Secret values (the Gemini API key)
// are fernet-encrypted before they reach the store and never returned to API
// clients.
type SettingService struct {
	settingRepo *repository.SettingRepository
	keys        []*fernet.Key
}

// NewSettingService creates a new SettingService. fernetKey is the base64
// encryption key from the environment; when empty, storing secrets is
// disabled but reads of non-secret settings still work.
func NewSettingService(settingRepo *repository.SettingRepository, fernetKey string) (*SettingService, error) {
	s := &SettingService{settingRepo: settingRepo}

	if fernetKey != "" {
		keys, err := fernet.DecodeKeys(fernetKey)
		if err != nil {
			return nil, fmt.Errorf("invalid FERNET_KEY: %w", err)
		}
		s.keys = keys
	}

	return s, nil
}

// SetGeminiAPIKey encrypts and stores the Gemini API key.
func (s *SettingService) SetGeminiAPIKey(apiKey string) error {
	if len(s.keys) == 0 {
		return fmt.Errorf("FERNET_KEY is not configured; cannot store secrets")
	}

	token, err := fernet.EncryptAndSign([]byte(apiKey), s.keys[0])
	if err != nil {
		return fmt.Errorf("failed to encrypt API key: %w", err)
	}

	return s.settingRepo.Set(settingKeyGeminiAPIKey, string(token))
}

// GeminiAPIKey returns the decrypted Gemini API key from settings.
// Returns apperrors.ErrSettingNotFound when no key has been stored.
func (s *SettingService) GeminiAPIKey() (string, error) {
	value, err := s.settingRepo.Get(settingKeyGeminiAPIKey)
	if err != nil {
		return "", err
	}

	if len(s.keys) == 0 {
		return "", fmt.Errorf("FERNET_KEY is not configured; cannot decrypt stored key")
	}

	// TTL 0: stored keys do not expire.
	plain := fernet.VerifyAndDecrypt([]byte(value), 0*time.Second, s.keys)
	if plain == nil {
		return "", errors.New("failed to decrypt stored API key")
	}

	return string(plain), nil
}

// HasGeminiAPIKey reports whether a Gemini API key has been stored.
func (s *SettingService) HasGeminiAPIKey() (bool, error) {
	_, err := s.settingRepo.Get(settingKeyGeminiAPIKey)
	if errors.Is(err, apperrors.ErrSettingNotFound) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}
