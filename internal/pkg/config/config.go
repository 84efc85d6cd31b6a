package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

const (
	defaultRequestTimeout     = 5 * time.Second
	defaultRateLimiterQPS     = 100
	defaultRateLimiterBurst   = 200
	defaultStoreStatsInterval = 15 * time.Second
	defaultSaramaVersion      = "3.6.0"
	defaultLogLevel           = "info"
)

type (
	Log struct {
		Level string `validate:"oneof=debug info warn error"`
	}

	Tasks struct {
		StoreStatsInterval time.Duration `validate:"gt=0"`
	}

	HTTPServer struct {
		Port             string        `validate:"required,numeric"`
		RequestTimeout   time.Duration `validate:"gt=0"` // middleware timeout
		RateLimiterQPS   int           `validate:"gt=0"` // скорость пополнения токенов в секунду
		RateLimiterBurst int           `validate:"gt=0"` // ёмкость корзины токенов
		PprofEnabled     bool
		PprofPort        string `validate:"required_if=PprofEnabled true"`
	}

	Kafka struct {
		Enabled       bool
		Brokers       []string `validate:"required_if=Enabled true,dive,hostname_port"`
		Topic         string   `validate:"required_if=Enabled true"`
		SaramaVersion string   `validate:"required"`
	}

	Config struct {
		Log    Log
		Tasks  Tasks
		Server HTTPServer
		Kafka  Kafka
	}
)

func Load() (*Config, error) {
	cfg, err := loadFromEnv()
	if err != nil {
		return nil, fmt.Errorf("environment loading: %w", err)
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("validation: %w", err)
	}
	return cfg, nil
}

func loadFromEnv() (*Config, error) {
	storeStatsInterval, err := osGetEnvDuration("BACKGROUND_STORE_STATS_INTERVAL", defaultStoreStatsInterval)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	requestTimeout, err := osGetEnvDuration("MIDDLEWARE_REQUEST_TIMEOUT", defaultRequestTimeout)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterQPS, err := osGetInt("MIDDLEWARE_RATE_LIMIT_QPS", defaultRateLimiterQPS)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	rateLimiterBurst, err := osGetInt("MIDDLEWARE_RATE_LIMIT_BURST", defaultRateLimiterBurst)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	pprofEnabled, err := osGetBool("PPROF_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	kafkaEnabled, err := osGetBool("KAFKA_ENABLED")
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	return &Config{
		Log: Log{
			Level: osGetString("LOG_LEVEL", defaultLogLevel),
		},
		Tasks: Tasks{
			StoreStatsInterval: storeStatsInterval,
		},
		Server: HTTPServer{
			Port:             os.Getenv("PORT"),
			RequestTimeout:   requestTimeout,
			RateLimiterQPS:   rateLimiterQPS,
			RateLimiterBurst: rateLimiterBurst,
			PprofEnabled:     pprofEnabled,
			PprofPort:        os.Getenv("PPROF_PORT"),
		},
		Kafka: Kafka{
			Enabled:       kafkaEnabled,
			Brokers:       osGetList("KAFKA_BROKERS"),
			Topic:         os.Getenv("KAFKA_TOPIC"),
			SaramaVersion: osGetString("KAFKA_SARAMA_VERSION", defaultSaramaVersion),
		},
	}, nil
}

func validateConfig(cfg *Config) error {
	err := validator.New().Struct(cfg)
	if err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

func osGetString(s string, fallback string) string {
	val := os.Getenv(s)
	if val == "" {
		return fallback
	}
	return val
}

func osGetInt(s string, fallback int) (int, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("invalid int format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetEnvDuration(s string, fallback time.Duration) (time.Duration, error) {
	val := os.Getenv(s)
	if val == "" {
		return fallback, nil
	}

	res, err := time.ParseDuration(val)
	if err != nil {
		return time.Duration(0), fmt.Errorf("invalid duration format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

func osGetBool(s string) (bool, error) {
	val := os.Getenv(s)
	if val == "" {
		return false, nil
	}

	res, err := strconv.ParseBool(val)
	if err != nil {
		return false, fmt.Errorf("invalid bool format for %s=%q: %w", s, val, err)
	}
	return res, nil
}

// osGetList разбирает список через запятую, пустые элементы отбрасываются.
func osGetList(s string) []string {
	var res []string
	for _, item := range strings.Split(os.Getenv(s), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			res = append(res, item)
		}
	}
	return res
}
