package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saulo-duarte/genquiz/internal/config"
)

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"GENQUIZ_CONFIG", "LISTEN_ADDR", "LOG_LEVEL", "LOG_FORMAT", "TZ_NAME", "LLM_PROVIDER",
		"HISTORY_BACKEND", "HISTORY_FILE", "REDIS_ADDR", "REDIS_PASSWORD", "DATABASE_DSN",
		"LLM_MODELS", "LLM_TEMPERATURE", "LLM_TIMEOUT", "MAX_QUESTIONS", "REDIS_DB",
		"GROQ_API_KEY", "GEMINI_API_KEY", "GOOGLE_API_KEY", "CRYPTO_KEY",
	} {
		t.Setenv(k, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", s.ListenAddr)
	assert.Equal(t, config.ProviderGroq, s.LLMProvider)
	assert.Equal(t, []string{"llama-3.1-8b-instant", "llama-3.3-70b-versatile"}, s.Models)
	assert.Equal(t, float32(0.7), s.Temperature)
	assert.Equal(t, 60*time.Second, s.LLMTimeout)
	assert.Equal(t, 20, s.MaxQuestions)
	assert.Equal(t, config.BackendJSON, s.HistoryBackend)
	assert.Equal(t, "quiz_history.json", s.HistoryFile)
	assert.Empty(t, s.APIKey)
}

func TestLoadEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("LLM_PROVIDER", "Gemini")
	t.Setenv("GOOGLE_API_KEY", "  google-key ")
	t.Setenv("LLM_TIMEOUT", "15s")
	t.Setenv("MAX_QUESTIONS", "5")
	t.Setenv("LLM_MODELS", "gemini-2.5-flash, gemini-2.0-flash")

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, config.ProviderGemini, s.LLMProvider)
	assert.Equal(t, "google-key", s.APIKey)
	assert.Equal(t, 15*time.Second, s.LLMTimeout)
	assert.Equal(t, 5, s.MaxQuestions)
	assert.Equal(t, []string{"gemini-2.5-flash", "gemini-2.0-flash"}, s.Models)
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "genquiz.yaml")
	yml := "listen_addr: \":9000\"\nhistory_backend: redis\nredis_addr: cache:6379\nllm_timeout: 30s\nmodels:\n  - llama-3.3-70b-versatile\n"
	require.NoError(t, os.WriteFile(path, []byte(yml), 0o644))

	t.Setenv("GENQUIZ_CONFIG", path)
	t.Setenv("LISTEN_ADDR", ":9100")

	s, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9100", s.ListenAddr, "environment overrides the file")
	assert.Equal(t, config.BackendRedis, s.HistoryBackend)
	assert.Equal(t, "cache:6379", s.RedisAddr)
	assert.Equal(t, 30*time.Second, s.LLMTimeout)
	assert.Equal(t, []string{"llama-3.3-70b-versatile"}, s.Models)
}

func TestLoadRejectsUnknownValues(t *testing.T) {
	t.Run("Provider", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("LLM_PROVIDER", "nope")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrUnknownProvider)
	})

	t.Run("Backend", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("HISTORY_BACKEND", "sqlite")
		_, err := config.Load()
		assert.ErrorIs(t, err, config.ErrUnknownBackend)
	})

	t.Run("MaxQuestions", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("MAX_QUESTIONS", "0")
		_, err := config.Load()
		assert.Error(t, err)
	})
}

func TestLoadEncryptedAPIKey(t *testing.T) {
	clearEnv(t)
	t.Setenv("CRYPTO_KEY", testKey)
	config.InitCrypto()

	enc, err := config.Encrypt("gsk_plain")
	require.NoError(t, err)
	t.Setenv("GROQ_API_KEY", "enc:"+enc)

	s, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, "gsk_plain", s.APIKey)

	t.Run("MissingCryptoKey", func(t *testing.T) {
		t.Setenv("CRYPTO_KEY", "")
		_, err := config.Load()
		assert.Error(t, err)
	})
}
