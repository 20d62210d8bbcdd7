package config

import (
	"log"
	"log/slog"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "github.com/alejandroruanova/cricket-stats-service/internal/pkg/errors"
)

type Config struct {
	// Environment
	Environment string `mapstructure:"ENV"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Source layout
	DataDir string `mapstructure:"DATA_DIR"`

	// Output artifact
	OutputPath string `mapstructure:"OUTPUT_PATH"`

	// File processing
	MaxFileSizeMB int64 `mapstructure:"MAX_FILE_SIZE_MB"`

	// Console summary
	SampleSize int `mapstructure:"SAMPLE_SIZE"`
}

// Load loads configuration from environment variables and .env file
func Load() (*Config, error) {
	// Load .env file if exists
	if err := godotenv.Load(); err != nil {
		if err := godotenv.Load("../.env"); err != nil {
			log.Println("No .env file found, using environment variables only")
		}
	}

	config := &Config{}

	// Set defaults
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "")

	// Source layout defaults
	viper.SetDefault("DATA_DIR", "cricket_data")
	viper.SetDefault("OUTPUT_PATH", "cricket_players.json")

	// File processing defaults
	viper.SetDefault("MAX_FILE_SIZE_MB", 100)

	// Summary defaults
	viper.SetDefault("SAMPLE_SIZE", 5)

	// Bind environment variables
	viper.AutomaticEnv()

	config.Environment = viper.GetString("ENV")
	config.LogLevel = viper.GetString("LOG_LEVEL")
	config.DataDir = viper.GetString("DATA_DIR")
	config.OutputPath = viper.GetString("OUTPUT_PATH")
	config.MaxFileSizeMB = viper.GetInt64("MAX_FILE_SIZE_MB")
	config.SampleSize = viper.GetInt("SAMPLE_SIZE")

	// Validate required fields
	if config.DataDir == "" {
		return nil, apperrors.BadConfig("DATA_DIR must not be empty")
	}
	if config.OutputPath == "" {
		return nil, apperrors.BadConfig("OUTPUT_PATH must not be empty")
	}
	if config.SampleSize < 0 {
		return nil, apperrors.BadConfig("SAMPLE_SIZE must not be negative")
	}

	return config, nil
}

// MaxFileSizeBytes returns the source file size cap in bytes
func (c *Config) MaxFileSizeBytes() int64 {
	return c.MaxFileSizeMB * 1024 * 1024
}

// IsProduction returns true if running in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// IsDevelopment returns true if running in development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// LogConfig logs the effective configuration
func (c *Config) LogConfig(logger *slog.Logger) {
	logger.Info("configuration loaded",
		slog.String("environment", c.Environment),
		slog.String("data_dir", c.DataDir),
		slog.String("output_path", c.OutputPath),
		slog.Int64("max_file_size_mb", c.MaxFileSizeMB),
		slog.Int("sample_size", c.SampleSize))
}
