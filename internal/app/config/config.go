package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DetectorAuto   = "auto"
	DetectorVision = "vision"
	DetectorGemini = "gemini"
	DetectorRandom = "random"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	UploadDir       string
	MaxUploadBytes  int64
	CORSAllowOrigin string

	Detector                       string
	GoogleServiceAccountJSONBase64 string
	GeminiAPIKey                   string
	GeminiModel                    string
	DetectTimeout                  time.Duration

	AnalyzeRateLimit float64
	AnalyzeRateBurst int

	LogLevel  string
	LogFormat string
}

// Load reads .env (if present) and then the process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv()
}

func MustLoad() Config {
	cfg, err := Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	return cfg
}

func FromEnv() (Config, error) {
	var errs []error

	cfg := Config{
		HTTPAddr:                       env("HTTP_ADDR", ":8080"),
		DatabaseURL:                    env("DATABASE_URL", "./data/quotes.db"),
		UploadDir:                      env("UPLOAD_DIR", "uploads"),
		MaxUploadBytes:                 envInt64("MAX_UPLOAD_BYTES", 25<<20, &errs),
		CORSAllowOrigin:                env("CORS_ALLOW_ORIGIN", "*"),
		Detector:                       strings.ToLower(env("DETECTOR", DetectorAuto)),
		GoogleServiceAccountJSONBase64: env("GOOGLE_SERVICE_ACCOUNT_JSON_BASE64", ""),
		GeminiAPIKey:                   env("GEMINI_API_KEY", ""),
		GeminiModel:                    env("GEMINI_MODEL", "gemini-2.5-flash"),
		DetectTimeout:                  envDuration("DETECT_TIMEOUT", 10*time.Second, &errs),
		AnalyzeRateLimit:               envFloat("ANALYZE_RATE_LIMIT", 2, &errs),
		AnalyzeRateBurst:               int(envInt64("ANALYZE_RATE_BURST", 5, &errs)),
		LogLevel:                       strings.ToLower(env("LOG_LEVEL", "info")),
		LogFormat:                      strings.ToLower(env("LOG_FORMAT", "json")),
	}

	switch cfg.Detector {
	case DetectorAuto, DetectorVision, DetectorGemini, DetectorRandom:
	default:
		errs = append(errs, fmt.Errorf("DETECTOR: unknown value %q", cfg.Detector))
	}
	if cfg.MaxUploadBytes <= 0 {
		errs = append(errs, fmt.Errorf("MAX_UPLOAD_BYTES: must be positive"))
	}

	return cfg, errors.Join(errs...)
}

func env(k, def string) string {
	if v := strings.TrimSpace(os.Getenv(k)); v != "" {
		return v
	}
	return def
}

func envInt64(k string, def int64, errs *[]error) int64 {
	v := env(k, "")
	if v == "" {
		return def
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return n
}

func envFloat(k string, def float64, errs *[]error) float64 {
	v := env(k, "")
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return f
}

func envDuration(k string, def time.Duration, errs *[]error) time.Duration {
	v := env(k, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		*errs = append(*errs, fmt.Errorf("%s: %w", k, err))
		return def
	}
	return d
}
