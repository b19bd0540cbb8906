// ABOUTME: Settings backed by the key-value store with the configured API key as fallback
// ABOUTME: The API key itself is never returned to callers, only whether one is configured

package settings

import (
	"context"
	"encoding/json"
	"errors"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/core/interfaces"
)

// Store keys
const (
	APIKeyKey      = "apiKey"
	DefaultModeKey = "defaultMode"
	LanguageKey    = "language"
)

// Service implements SettingsProvider and APIKeyStore
type Service struct {
	kv              interfaces.Cache
	configuredKey   string
	defaultLanguage domain.Language
}

// NewService creates a settings service. configuredKey is used when no key was stored.
func NewService(kv interfaces.Cache, configuredKey string, defaultLanguage domain.Language) *Service {
	if !defaultLanguage.Valid() {
		defaultLanguage = domain.LanguageEnglish
	}
	return &Service{
		kv:              kv,
		configuredKey:   configuredKey,
		defaultLanguage: defaultLanguage,
	}
}

// Settings returns the current settings; unset values get their defaults
func (s *Service) Settings(ctx context.Context) (domain.Settings, error) {
	key, err := s.APIKey(ctx)
	if err != nil {
		return domain.Settings{}, err
	}

	var mode domain.Mode
	if err := s.load(ctx, DefaultModeKey, &mode); err != nil {
		return domain.Settings{}, err
	}
	if !mode.Valid() {
		mode = domain.ModeTakeaways
	}

	var language domain.Language
	if err := s.load(ctx, LanguageKey, &language); err != nil {
		return domain.Settings{}, err
	}
	if !language.Valid() {
		language = s.defaultLanguage
	}

	return domain.Settings{
		APIKeyConfigured: key != "",
		DefaultMode:      mode,
		Language:         language,
	}, nil
}

// Update stores the default mode and language
func (s *Service) Update(ctx context.Context, mode domain.Mode, language domain.Language) (domain.Settings, error) {
	if mode != "" && !mode.Valid() {
		return domain.Settings{}, &apperrors.ValidationError{Field: "defaultMode", Message: "must be takeaways or visual"}
	}
	if language != "" && !language.Valid() {
		return domain.Settings{}, &apperrors.ValidationError{Field: "language", Message: "must be en or fr"}
	}

	if mode != "" {
		if err := s.store(ctx, DefaultModeKey, mode); err != nil {
			return domain.Settings{}, err
		}
	}
	if language != "" {
		if err := s.store(ctx, LanguageKey, language); err != nil {
			return domain.Settings{}, err
		}
	}
	return s.Settings(ctx)
}

// APIKey returns the stored key, else the configured one, else ""
func (s *Service) APIKey(ctx context.Context) (string, error) {
	var key string
	if err := s.load(ctx, APIKeyKey, &key); err != nil {
		return "", err
	}
	if key == "" {
		key = s.configuredKey
	}
	return key, nil
}

// SetAPIKey validates and stores key
func (s *Service) SetAPIKey(ctx context.Context, key string) error {
	if !domain.ValidAPIKey(key) {
		return &apperrors.ValidationError{Field: "apiKey", Message: "invalid API key format"}
	}
	return s.store(ctx, APIKeyKey, key)
}

func (s *Service) load(ctx context.Context, key string, v interface{}) error {
	data, err := s.kv.Get(ctx, key)
	if errors.Is(err, apperrors.ErrKeyNotFound) {
		return nil
	}
	if err != nil {
		return &apperrors.SettingsError{Message: "could not read " + key, Err: err}
	}
	if err := json.Unmarshal(data, v); err != nil {
		return &apperrors.SettingsError{Message: "malformed " + key, Err: err}
	}
	return nil
}

func (s *Service) store(ctx context.Context, key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return &apperrors.StorageError{Op: "encode", Key: key, Err: err}
	}
	if err := s.kv.Set(ctx, key, data, 0); err != nil {
		return &apperrors.StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}
