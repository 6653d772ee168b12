package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	ProviderLLM         = "llm"
	ProviderHuggingFace = "huggingface"
	ProviderONNX        = "onnx"
	ProviderLocal       = "local"
)

const (
	DEFAULT_LLM_BASE_URL = "https://api.groq.com/openai/v1/"
	DEFAULT_LLM_MODEL    = "llama-3.1-70b-versatile"
	DEFAULT_HF_BASE_URL  = "https://api-inference.huggingface.co/models/"

	DEFAULT_ERROR_LOG_FILE = "logs/error.log"
)

type Config struct {
	Env           string
	ServerAddr    string
	GinMode       string
	LogLevel      string
	ErrorLogFile  string
	AllowOrigins  []string
	MaxTextLength int

	MoodProvider    string
	CrisisProvider  string
	SummaryProvider string

	LLM         LLMConfig
	HuggingFace HuggingFaceConfig
	ONNX        ONNXConfig

	HealthcheckInterval time.Duration
}

type LLMConfig struct {
	APIKey  string
	BaseURL string
	Model   string
	Timeout time.Duration
}

type HuggingFaceConfig struct {
	APIToken     string
	BaseURL      string
	EmotionModel string
	CrisisModel  string
	SummaryModel string
	Timeout      time.Duration
}

type ONNXConfig struct {
	ModelDir     string
	EmotionModel string
}

// Load reads the Config from the process environment. Call LoadEnv first
// if a .env file should be merged in.
func Load(env string) (*Config, error) {
	cfg := &Config{
		Env:           env,
		ServerAddr:    getEnv("SERVER_ADDR", ":8000"),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
		ErrorLogFile:  errorLogFile(getEnv("LOG_ERROR_FILE", DEFAULT_ERROR_LOG_FILE)),
		AllowOrigins:  splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		MaxTextLength: getInt("MAX_TEXT_LENGTH", 20000),

		MoodProvider:    strings.ToLower(getEnv("MOOD_PROVIDER", ProviderLLM)),
		CrisisProvider:  strings.ToLower(getEnv("CRISIS_PROVIDER", ProviderLLM)),
		SummaryProvider: strings.ToLower(getEnv("SUMMARY_PROVIDER", ProviderLLM)),

		LLM: LLMConfig{
			APIKey:  getEnv("LLM_API_KEY", os.Getenv("GROQ_API_KEY")),
			BaseURL: getEnv("LLM_BASE_URL", DEFAULT_LLM_BASE_URL),
			Model:   getEnv("LLM_MODEL", DEFAULT_LLM_MODEL),
			Timeout: getDuration("LLM_TIMEOUT", 30*time.Second),
		},
		HuggingFace: HuggingFaceConfig{
			APIToken:     os.Getenv("HF_API_TOKEN"),
			BaseURL:      getEnv("HF_BASE_URL", DEFAULT_HF_BASE_URL),
			EmotionModel: getEnv("HF_EMOTION_MODEL", "j-hartmann/emotion-english-distilroberta-base"),
			CrisisModel:  getEnv("HF_CRISIS_MODEL", "facebook/bart-large-mnli"),
			SummaryModel: getEnv("HF_SUMMARY_MODEL", "facebook/bart-large-cnn"),
			Timeout:      getDuration("HF_TIMEOUT", 30*time.Second),
		},
		ONNX: ONNXConfig{
			ModelDir:     getEnv("ONNX_MODEL_DIR", "./models"),
			EmotionModel: getEnv("ONNX_EMOTION_MODEL", "KnightsAnalytics/emotion-english-distilroberta-base"),
		},

		HealthcheckInterval: getDuration("HEALTHCHECK_INTERVAL", 15*time.Second),
	}

	cfg.GinMode = os.Getenv("GIN_MODE")
	if cfg.GinMode == "" {
		cfg.GinMode = "debug"
		if env == "production" {
			cfg.GinMode = "release"
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	providers := map[string][]string{
		"MOOD_PROVIDER":    {ProviderLLM, ProviderHuggingFace, ProviderONNX, ProviderLocal},
		"CRISIS_PROVIDER":  {ProviderLLM, ProviderHuggingFace, ProviderLocal},
		"SUMMARY_PROVIDER": {ProviderLLM, ProviderHuggingFace, ProviderLocal},
	}
	selected := map[string]string{
		"MOOD_PROVIDER":    c.MoodProvider,
		"CRISIS_PROVIDER":  c.CrisisProvider,
		"SUMMARY_PROVIDER": c.SummaryProvider,
	}
	for key, allowed := range providers {
		if !contains(allowed, selected[key]) {
			return fmt.Errorf("invalid %s %q, must be one of %s", key, selected[key], strings.Join(allowed, ", "))
		}
	}

	if c.UsesProvider(ProviderLLM) && c.LLM.APIKey == "" {
		return fmt.Errorf("LLM_API_KEY (or GROQ_API_KEY) is required when a capability uses the %q provider", ProviderLLM)
	}
	if c.MaxTextLength <= 0 {
		return fmt.Errorf("MAX_TEXT_LENGTH must be positive, got %d", c.MaxTextLength)
	}
	return nil
}

// UsesProvider reports whether any capability is served by provider.
func (c *Config) UsesProvider(provider string) bool {
	return c.MoodProvider == provider || c.CrisisProvider == provider || c.SummaryProvider == provider
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return fallback
	}
	return v
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil || v <= 0 {
		return fallback
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// errorLogFile treats "off" as no error log file.
func errorLogFile(path string) string {
	if strings.EqualFold(strings.TrimSpace(path), "off") {
		return ""
	}
	return path
}
