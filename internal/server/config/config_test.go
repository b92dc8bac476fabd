package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWithSecretFromEnv(t *testing.T) {
	t.Setenv("CHATAPP_AUTH_SECRET_KEY", "test-secret")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":3000", cfg.App.Addr)
	assert.Equal(t, "test-secret", cfg.Auth.SecretKey)
	assert.Equal(t, 24*time.Hour, cfg.Auth.TokenValidity)
	assert.Equal(t, "chat-images", cfg.S3.Bucket)
}

func TestLoad_MissingSecretKeyFailsStartup(t *testing.T) {
	_, err := Load()
	require.ErrorIs(t, err, ErrMissingSecretKey)
}

func TestLoad_EnvOverridesDefault(t *testing.T) {
	t.Setenv("CHATAPP_AUTH_SECRET_KEY", "k")
	t.Setenv("CHATAPP_APP_ADDR", ":8080")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.App.Addr)
}

func TestValidate_NonPositiveTokenValidity(t *testing.T) {
	cfg := &Config{Auth: Auth{SecretKey: "k", TokenValidity: 0}}
	require.Error(t, cfg.Validate())
}
