package service

import (
	"context"
	"fmt"

	"github.com/fernet/fernet-go"

	"finance-tracker/internal/apperrors"
	"finance-tracker/internal/model"
	"finance-tracker/internal/repository"
)

// SettingService manages application settings. The market data API key is
// encrypted with a fernet key before it touches the database; all other
// settings are stored as plain strings.
type SettingService struct {
	repo *repository.SettingRepository
	keys []*fernet.Key
}

// NewSettingService creates a new SettingService. encryptionKey is a
// base64-encoded fernet key; when empty, storing or reading the market data
// API key fails with apperrors.ErrEncryptionKeyMissing while plain settings
// keep working.
func NewSettingService(repo *repository.SettingRepository, encryptionKey string) (*SettingService, error) {
	s := &SettingService{repo: repo}

	if encryptionKey != "" {
		keys, err := fernet.DecodeKeys(encryptionKey)
		if err != nil {
			return nil, fmt.Errorf("invalid settings encryption key: %w", err)
		}
		s.keys = keys
	}

	return s, nil
}

// GetSettings returns all stored settings. The market data API key is
// reported as a presence marker, never decrypted for listing.
func (s *SettingService) GetSettings() ([]model.Setting, error) {
	settings, err := s.repo.GetSettings()
	if err != nil {
		return nil, err
	}

	for i := range settings {
		if settings[i].Key == model.SettingMarketDataAPIKey {
			settings[i].Value = "********"
		}
	}

	return settings, nil
}

// GetSetting returns the value stored under key, decrypting the market data
// API key transparently.
func (s *SettingService) GetSetting(key string) (string, error) {
	value, err := s.repo.GetSetting(key)
	if err != nil {
		return "", err
	}

	if key == model.SettingMarketDataAPIKey {
		return s.decrypt(value)
	}

	return value, nil
}

// SetSetting stores a value under key, encrypting the market data API key
// before storage.
func (s *SettingService) SetSetting(ctx context.Context, key, value string) error {
	if key == model.SettingMarketDataAPIKey {
		encrypted, err := s.encrypt(value)
		if err != nil {
			return err
		}
		value = encrypted
	}

	return s.repo.SetSetting(ctx, key, value)
}

func (s *SettingService) encrypt(value string) (string, error) {
	if len(s.keys) == 0 {
		return "", apperrors.ErrEncryptionKeyMissing
	}

	token, err := fernet.EncryptAndSign([]byte(value), s.keys[0])
	if err != nil {
		return "", fmt.Errorf("failed to encrypt setting: %w", err)
	}

	return string(token), nil
}

func (s *SettingService) decrypt(stored string) (string, error) {
	if len(s.keys) == 0 {
		return "", apperrors.ErrEncryptionKeyMissing
	}

	// TTL 0 disables token expiry; settings do not age out.
	plain := fernet.VerifyAndDecrypt([]byte(stored), 0, s.keys)
	if plain == nil {
		return "", fmt.Errorf("failed to decrypt setting %s", model.SettingMarketDataAPIKey)
	}

	return string(plain), nil
}
