package config

import (
	"fmt"
	"os"
	"strconv"
	"summoner-rating/internal/constants"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"gopkg.in/yaml.v3"
)

type Config struct {
	RiotAPIKey        string
	Region            string
	SummonerName      string
	QueueID           int
	FastGameMinutes   float64
	MatchHistoryLimit int
	APIBaseURL        string
	ServerPort        string
	LogLevel          string
	ConfigFile        string
}

// fileConfig mirrors the optional YAML file. The API key is deliberately
// absent; it is only read from the environment.
type fileConfig struct {
	Region            string  `yaml:"region"`
	SummonerName      string  `yaml:"summoner_name"`
	QueueID           int     `yaml:"queue_id"`
	FastGameMinutes   float64 `yaml:"fast_game_minutes"`
	MatchHistoryLimit int     `yaml:"match_history_limit"`
	APIBaseURL        string  `yaml:"api_base_url"`
	ServerPort        string  `yaml:"server_port"`
	LogLevel          string  `yaml:"log_level"`
}

func Load(logger zerolog.Logger) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		logger.Debug().Msg(".env file not found, using environment variables or defaults")
	}

	cfg := &Config{
		Region:            constants.DefaultRegion,
		QueueID:           constants.DefaultQueueID,
		FastGameMinutes:   constants.DefaultFastGameMinutes,
		MatchHistoryLimit: constants.DefaultMatchHistoryLimit,
		APIBaseURL:        constants.DefaultAPIBaseURL,
		ServerPort:        constants.DefaultServerPort,
		LogLevel:          constants.DefaultLogLevel,
		ConfigFile:        os.Getenv("RATING_CONFIG_FILE"),
	}

	if cfg.ConfigFile != "" {
		if err := cfg.applyFile(cfg.ConfigFile); err != nil {
			return nil, err
		}
		logger.Debug().Str("path", cfg.ConfigFile).Msg("config file applied")
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	logger.Info().
		Str("region", cfg.Region).
		Str("summoner_name", cfg.SummonerName).
		Int("queue_id", cfg.QueueID).
		Float64("fast_game_minutes", cfg.FastGameMinutes).
		Int("match_history_limit", cfg.MatchHistoryLimit).
		Str("server_port", cfg.ServerPort).
		Str("log_level", cfg.LogLevel).
		Msg("configuration loaded")

	return cfg, nil
}

func (c *Config) applyFile(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file: %w", err)
	}

	var fc fileConfig
	if err := yaml.Unmarshal(raw, &fc); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	if fc.Region != "" {
		c.Region = fc.Region
	}
	if fc.SummonerName != "" {
		c.SummonerName = fc.SummonerName
	}
	if fc.QueueID != 0 {
		c.QueueID = fc.QueueID
	}
	if fc.FastGameMinutes != 0 {
		c.FastGameMinutes = fc.FastGameMinutes
	}
	if fc.MatchHistoryLimit != 0 {
		c.MatchHistoryLimit = fc.MatchHistoryLimit
	}
	if fc.APIBaseURL != "" {
		c.APIBaseURL = fc.APIBaseURL
	}
	if fc.ServerPort != "" {
		c.ServerPort = fc.ServerPort
	}
	if fc.LogLevel != "" {
		c.LogLevel = fc.LogLevel
	}
	return nil
}

func (c *Config) applyEnv() error {
	var err error

	c.RiotAPIKey = getEnv("RIOT_API_KEY", c.RiotAPIKey)
	c.Region = getEnv("RIOT_REGION", c.Region)
	c.SummonerName = getEnv("SUMMONER_NAME", c.SummonerName)
	c.APIBaseURL = getEnv("RIOT_API_BASE_URL", c.APIBaseURL)
	c.ServerPort = getEnv("SERVER_PORT", c.ServerPort)
	c.LogLevel = getEnv("LOG_LEVEL", c.LogLevel)

	if c.QueueID, err = getEnvInt("QUEUE_ID", c.QueueID); err != nil {
		return err
	}
	if c.MatchHistoryLimit, err = getEnvInt("MATCH_HISTORY_LIMIT", c.MatchHistoryLimit); err != nil {
		return err
	}
	if c.FastGameMinutes, err = getEnvFloat("FAST_GAME_MINUTES", c.FastGameMinutes); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.RiotAPIKey == "" {
		return fmt.Errorf("RIOT_API_KEY is required")
	}
	if c.Region == "" {
		return fmt.Errorf("RIOT_REGION must not be empty")
	}
	if c.QueueID <= 0 {
		return fmt.Errorf("QUEUE_ID must be positive, got %d", c.QueueID)
	}
	if c.FastGameMinutes < 0 {
		return fmt.Errorf("FAST_GAME_MINUTES must not be negative, got %g", c.FastGameMinutes)
	}
	if c.MatchHistoryLimit < 1 || c.MatchHistoryLimit > constants.MaxMatchHistoryLimit {
		return fmt.Errorf("MATCH_HISTORY_LIMIT must be between 1 and %d, got %d",
			constants.MaxMatchHistoryLimit, c.MatchHistoryLimit)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return f, nil
}

var Module = fx.Provide(Load)
