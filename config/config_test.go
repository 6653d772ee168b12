package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("GIN_MODE", "")
	t.Setenv("MOOD_PROVIDER", "")

	cfg, err := Load("dev")
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.ServerAddr)
	assert.Equal(t, "debug", cfg.GinMode)
	assert.Equal(t, []string{"*"}, cfg.AllowOrigins)
	assert.Equal(t, 20000, cfg.MaxTextLength)
	assert.Equal(t, ProviderLLM, cfg.MoodProvider)
	assert.Equal(t, DEFAULT_LLM_BASE_URL, cfg.LLM.BaseURL)
	assert.Equal(t, DEFAULT_LLM_MODEL, cfg.LLM.Model)
	assert.Equal(t, 30*time.Second, cfg.LLM.Timeout)
	assert.Equal(t, 15*time.Second, cfg.HealthcheckInterval)
	assert.Equal(t, DEFAULT_ERROR_LOG_FILE, cfg.ErrorLogFile)
}

func TestLoad_ErrorLogFile(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")

	t.Setenv("LOG_ERROR_FILE", "/var/log/mooddecode/error.log")
	cfg, err := Load("dev")
	require.NoError(t, err)
	assert.Equal(t, "/var/log/mooddecode/error.log", cfg.ErrorLogFile)

	t.Setenv("LOG_ERROR_FILE", "OFF")
	cfg, err = Load("dev")
	require.NoError(t, err)
	assert.Empty(t, cfg.ErrorLogFile)
}

func TestLoad_GroqKeyFallback(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "groq-key")

	cfg, err := Load("dev")
	require.NoError(t, err)
	assert.Equal(t, "groq-key", cfg.LLM.APIKey)
}

func TestLoad_ProductionUsesReleaseMode(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("GIN_MODE", "")

	cfg, err := Load("production")
	require.NoError(t, err)
	assert.Equal(t, "release", cfg.GinMode)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")

	_, err := Load("dev")
	assert.ErrorContains(t, err, "LLM_API_KEY")
}

func TestLoad_LocalProvidersNeedNoKey(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("GROQ_API_KEY", "")
	t.Setenv("MOOD_PROVIDER", "local")
	t.Setenv("CRISIS_PROVIDER", "Local")
	t.Setenv("SUMMARY_PROVIDER", "huggingface")
	t.Setenv("CORS_ALLOW_ORIGINS", "http://a.test, http://b.test,")
	t.Setenv("HF_TIMEOUT", "5s")

	cfg, err := Load("dev")
	require.NoError(t, err)
	assert.Equal(t, ProviderLocal, cfg.CrisisProvider)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.AllowOrigins)
	assert.Equal(t, 5*time.Second, cfg.HuggingFace.Timeout)
	assert.False(t, cfg.UsesProvider(ProviderLLM))
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("CRISIS_PROVIDER", "onnx")

	_, err := Load("dev")
	assert.ErrorContains(t, err, "CRISIS_PROVIDER")
}

func TestLoad_InvalidMaxTextLength(t *testing.T) {
	t.Setenv("LLM_API_KEY", "test-key")
	t.Setenv("MAX_TEXT_LENGTH", "-1")

	_, err := Load("dev")
	assert.ErrorContains(t, err, "MAX_TEXT_LENGTH")
}
