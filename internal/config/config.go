package config

import (
	"fmt"
	"os"

	"github.com/wb-go/wbf/config"
	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/domain"
)

type Config struct {
	Processing ProcessingConfig `mapstructure:"processing"`
	Storage    StorageConfig    `mapstructure:"storage"`
	Logging    LoggingConfig    `mapstructure:"logging"`
}

// ProcessingConfig carries the batch processing defaults a hosting service
// hands to the pipeline.
type ProcessingConfig struct {
	Preset       string `mapstructure:"preset"`
	CustomWidth  int    `mapstructure:"custom_width"`
	CustomHeight int    `mapstructure:"custom_height"`
	Strategy     string `mapstructure:"strategy"`
	Format       string `mapstructure:"format"`
	Quality      int    `mapstructure:"quality"`
	Prefix       string `mapstructure:"prefix"`
	Suffix       string `mapstructure:"suffix"`
	Numbered     bool   `mapstructure:"numbered"`
}

type StorageConfig struct {
	Type       string `mapstructure:"type"`
	LocalPath  string `mapstructure:"local_path"`
	ArchiveDir string `mapstructure:"archive_dir"`

	S3Endpoint  string `mapstructure:"s3_endpoint"`
	S3AccessKey string `mapstructure:"s3_access_key"`
	S3SecretKey string `mapstructure:"s3_secret_key"`
	S3Bucket    string `mapstructure:"s3_bucket"`
	S3Region    string `mapstructure:"s3_region"`
	S3UseSSL    bool   `mapstructure:"s3_use_ssl"`
}

type LoggingConfig struct {
	Level string `mapstructure:"level"`
}

func Load(path string) (*Config, error) {
	cfg := config.New()

	configPath := path
	if configPath == "" {
		if _, err := os.Stat("config.yaml"); err == nil {
			configPath = "config.yaml"
		} else {
			return nil, fmt.Errorf("config.yaml not found")
		}
	}

	envPath := ".env"
	if _, err := os.Stat(envPath); os.IsNotExist(err) {
		envPath = ""
	}

	if err := cfg.Load(configPath, envPath, "APP"); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	appConfig := &Config{}
	if err := cfg.Unmarshal(appConfig); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(appConfig); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	zlog.Logger.Info().
		Str("preset", appConfig.Processing.Preset).
		Str("strategy", appConfig.Processing.Strategy).
		Str("format", appConfig.Processing.Format).
		Int("quality", appConfig.Processing.Quality).
		Str("storage_type", appConfig.Storage.Type).
		Msg("Config loaded successfully via wbf")

	return appConfig, nil
}

func validateConfig(cfg *Config) error {
	// Processing
	if cfg.Processing.Preset == "" {
		return fmt.Errorf("processing.preset is required")
	}
	if cfg.Processing.Strategy == "" {
		return fmt.Errorf("processing.strategy is required")
	}
	if cfg.Processing.Quality < 1 || cfg.Processing.Quality > 100 {
		return fmt.Errorf("processing.quality must be in 1..100")
	}

	// Storage
	if cfg.Storage.Type == "" {
		return fmt.Errorf("storage.type is required (local|s3)")
	}
	if cfg.Storage.Type != "local" && cfg.Storage.Type != "s3" {
		return fmt.Errorf("storage.type must be 'local' or 's3'")
	}
	if cfg.Storage.Type == "local" && cfg.Storage.LocalPath == "" {
		return fmt.Errorf("storage.local_path is required for local storage")
	}
	if cfg.Storage.Type == "s3" {
		if cfg.Storage.S3Endpoint == "" {
			return fmt.Errorf("storage.s3_endpoint is required for s3 storage")
		}
		if cfg.Storage.S3Bucket == "" {
			return fmt.Errorf("storage.s3_bucket is required for s3 storage")
		}
		if cfg.Storage.S3AccessKey == "" || cfg.Storage.S3SecretKey == "" {
			return fmt.Errorf("storage.s3_access_key and storage.s3_secret_key are required for s3 storage")
		}
	}

	if cfg.Logging.Level == "" {
		return fmt.Errorf("logging.level is required")
	}

	return nil
}

// ToProcessingConfig maps the loaded defaults into a validated domain
// configuration.
func (c *ProcessingConfig) ToProcessingConfig() (*domain.ProcessingConfig, error) {
	preset, err := domain.ParsePreset(c.Preset)
	if err != nil {
		return nil, err
	}

	strategy, err := domain.ParseResizeStrategy(c.Strategy)
	if err != nil {
		return nil, err
	}

	format, err := domain.ParseOutputFormat(c.Format)
	if err != nil {
		return nil, err
	}

	cfg := &domain.ProcessingConfig{
		Preset:   preset,
		Strategy: strategy,
		Format:   format,
		Quality:  c.Quality,
		Naming: domain.NamingRule{
			Prefix:   c.Prefix,
			Suffix:   c.Suffix,
			Numbered: c.Numbered,
		},
	}
	if preset == domain.PresetCustom {
		cfg.CustomSize = &domain.Dimensions{Width: c.CustomWidth, Height: c.CustomHeight}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
