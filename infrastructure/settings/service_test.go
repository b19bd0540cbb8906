package settings

import (
	"context"
	"errors"
	"testing"

	"visual-summarizer-api/core/domain"
	apperrors "visual-summarizer-api/core/errors"
	"visual-summarizer-api/infrastructure/cache/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testKey = "sk-ant-REDACTED"

// failingCache is a Cache whose reads always fail
type failingCache struct {
	*memory.Store
}

func (f failingCache) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("disk unreadable")
}

func TestSettings_Defaults(t *testing.T) {
	svc := NewService(memory.NewStore(), "", domain.LanguageFrench)

	settings, err := svc.Settings(context.Background())
	require.NoError(t, err)

	assert.False(t, settings.APIKeyConfigured)
	assert.Equal(t, domain.ModeTakeaways, settings.DefaultMode)
	assert.Equal(t, domain.LanguageFrench, settings.Language)
}

func TestSettings_ConfiguredKey(t *testing.T) {
	svc := NewService(memory.NewStore(), testKey, "")

	settings, err := svc.Settings(context.Background())
	require.NoError(t, err)
	assert.True(t, settings.APIKeyConfigured)
	assert.Equal(t, domain.LanguageEnglish, settings.Language)
}

func TestSetAPIKey_OverridesConfiguredKey(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), "sk-ant-REDACTED", "")

	require.NoError(t, svc.SetAPIKey(ctx, testKey))

	key, err := svc.APIKey(ctx)
	require.NoError(t, err)
	assert.Equal(t, testKey, key)
}

func TestSetAPIKey_RejectsMalformedKey(t *testing.T) {
	svc := NewService(memory.NewStore(), "", "")

	err := svc.SetAPIKey(context.Background(), "not-a-key")
	assert.True(t, apperrors.IsValidation(err))
}

func TestUpdate(t *testing.T) {
	ctx := context.Background()
	svc := NewService(memory.NewStore(), testKey, "")

	settings, err := svc.Update(ctx, domain.ModeVisual, domain.LanguageFrench)
	require.NoError(t, err)
	assert.Equal(t, domain.ModeVisual, settings.DefaultMode)
	assert.Equal(t, domain.LanguageFrench, settings.Language)

	// Empty values leave stored settings alone
	settings, err = svc.Update(ctx, "", "")
	require.NoError(t, err)
	assert.Equal(t, domain.ModeVisual, settings.DefaultMode)
	assert.Equal(t, domain.LanguageFrench, settings.Language)
}

func TestUpdate_Validation(t *testing.T) {
	svc := NewService(memory.NewStore(), "", "")

	_, err := svc.Update(context.Background(), domain.Mode("chart"), "")
	assert.True(t, apperrors.IsValidation(err))

	_, err = svc.Update(context.Background(), "", domain.Language("de"))
	assert.True(t, apperrors.IsValidation(err))
}

func TestSettings_MalformedValue(t *testing.T) {
	ctx := context.Background()
	kv := memory.NewStore()
	kv.Set(ctx, LanguageKey, []byte("{broken"), 0)
	svc := NewService(kv, testKey, "")

	_, err := svc.Settings(ctx)
	assert.True(t, apperrors.IsSettings(err))
}

func TestSettings_UnreadableStore(t *testing.T) {
	svc := NewService(failingCache{memory.NewStore()}, testKey, "")

	_, err := svc.Settings(context.Background())
	assert.True(t, apperrors.IsSettings(err))
}
