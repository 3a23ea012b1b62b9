package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	ProviderGroq   = "groq"
	ProviderGemini = "gemini"

	BackendJSON     = "json"
	BackendRedis    = "redis"
	BackendPostgres = "postgres"

	encryptedPrefix = "enc:"
)

var (
	ErrUnknownProvider = errors.New("unknown LLM provider")
	ErrUnknownBackend  = errors.New("unknown history backend")
)

var defaultModels = map[string][]string{
	ProviderGroq:   {"llama-3.1-8b-instant", "llama-3.3-70b-versatile"},
	ProviderGemini: {"gemini-2.0-flash"},
}

// Settings holds everything the service reads at startup. Values come from
// an optional YAML file and are overridden by the environment.
type Settings struct {
	ListenAddr string `yaml:"listen_addr"`
	LogLevel   string `yaml:"log_level"`
	LogFormat  string `yaml:"log_format"`
	Timezone   string `yaml:"timezone"`

	LLMProvider  string        `yaml:"llm_provider"`
	APIKey       string        `yaml:"-"`
	Models       []string      `yaml:"models"`
	Temperature  float32       `yaml:"temperature"`
	LLMTimeout   time.Duration `yaml:"llm_timeout"`
	MaxQuestions int           `yaml:"max_questions"`

	HistoryBackend string `yaml:"history_backend"`
	HistoryFile    string `yaml:"history_file"`
	RedisAddr      string `yaml:"redis_addr"`
	RedisPassword  string `yaml:"-"`
	RedisDB        int    `yaml:"redis_db"`
	DatabaseDSN    string `yaml:"-"`
}

func defaults() *Settings {
	return &Settings{
		ListenAddr:     ":8080",
		LogLevel:       "info",
		LogFormat:      "text",
		Timezone:       "Local",
		LLMProvider:    ProviderGroq,
		Temperature:    0.7,
		LLMTimeout:     60 * time.Second,
		MaxQuestions:   20,
		HistoryBackend: BackendJSON,
		HistoryFile:    "quiz_history.json",
		RedisAddr:      "localhost:6379",
	}
}

// Load reads .env (if present), the YAML file named by GENQUIZ_CONFIG (if
// set) and then the process environment.
func Load() (*Settings, error) {
	_ = godotenv.Load()

	s := defaults()

	if path := os.Getenv("GENQUIZ_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, s); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}

	overrideString(&s.ListenAddr, "LISTEN_ADDR")
	overrideString(&s.LogLevel, "LOG_LEVEL")
	overrideString(&s.LogFormat, "LOG_FORMAT")
	overrideString(&s.Timezone, "TZ_NAME")
	overrideString(&s.LLMProvider, "LLM_PROVIDER")
	overrideString(&s.HistoryBackend, "HISTORY_BACKEND")
	overrideString(&s.HistoryFile, "HISTORY_FILE")
	overrideString(&s.RedisAddr, "REDIS_ADDR")
	overrideString(&s.RedisPassword, "REDIS_PASSWORD")
	overrideString(&s.DatabaseDSN, "DATABASE_DSN")

	if v := os.Getenv("LLM_MODELS"); v != "" {
		s.Models = splitList(v)
	}
	if v := os.Getenv("LLM_TEMPERATURE"); v != "" {
		t, err := strconv.ParseFloat(v, 32)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TEMPERATURE %q: %w", v, err)
		}
		s.Temperature = float32(t)
	}
	if v := os.Getenv("LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid LLM_TIMEOUT %q: %w", v, err)
		}
		s.LLMTimeout = d
	}
	if v := os.Getenv("MAX_QUESTIONS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid MAX_QUESTIONS %q", v)
		}
		s.MaxQuestions = n
	}
	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		s.RedisDB = n
	}

	s.LLMProvider = strings.ToLower(strings.TrimSpace(s.LLMProvider))
	models, ok := defaultModels[s.LLMProvider]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownProvider, s.LLMProvider)
	}
	if len(s.Models) == 0 {
		s.Models = models
	}

	switch s.HistoryBackend {
	case BackendJSON, BackendRedis, BackendPostgres:
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnknownBackend, s.HistoryBackend)
	}

	key, err := resolveAPIKey(s.LLMProvider)
	if err != nil {
		return nil, err
	}
	s.APIKey = key

	return s, nil
}

func (s *Settings) Location() *time.Location {
	if s.Timezone == "" || s.Timezone == "Local" {
		return time.Local
	}
	loc, err := time.LoadLocation(s.Timezone)
	if err != nil {
		Logger.WithError(err).Warnf("Unknown time zone %q, using local time", s.Timezone)
		return time.Local
	}
	return loc
}

// resolveAPIKey returns an empty key without error when none is set: the
// service still starts and reports itself as not ready.
func resolveAPIKey(provider string) (string, error) {
	var key string
	switch provider {
	case ProviderGroq:
		key = os.Getenv("GROQ_API_KEY")
	case ProviderGemini:
		key = os.Getenv("GEMINI_API_KEY")
		if key == "" {
			key = os.Getenv("GOOGLE_API_KEY")
		}
	}
	key = strings.TrimSpace(key)

	if !strings.HasPrefix(key, encryptedPrefix) {
		return key, nil
	}

	if len(os.Getenv("CRYPTO_KEY")) != 32 {
		return "", errors.New("encrypted API key requires a 32 byte CRYPTO_KEY")
	}
	InitCrypto()

	plain, err := Decrypt(strings.TrimPrefix(key, encryptedPrefix))
	if err != nil {
		return "", fmt.Errorf("failed to decrypt API key: %w", err)
	}
	return plain, nil
}

func overrideString(dst *string, env string) {
	if v := os.Getenv(env); v != "" {
		*dst = v
	}
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
