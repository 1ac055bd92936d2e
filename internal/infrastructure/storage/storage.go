package storage

import (
	"fmt"

	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/config"
	"quickresizer/internal/domain"
)

// New selects the archive storage backend from configuration.
func New(cfg *config.StorageConfig) (domain.ArchiveStorage, error) {
	switch cfg.Type {
	case "local":
		zlog.Logger.Info().Msg("Initializing local archive storage")
		return NewLocalStorage(cfg)
	case "s3":
		zlog.Logger.Info().Msg("Initializing S3 archive storage")
		return NewS3Storage(cfg)
	default:
		zlog.Logger.Error().Str("type", cfg.Type).Msg("Unsupported storage type, use 'local' or 's3'")
		return nil, fmt.Errorf("unsupported storage type: %s", cfg.Type)
	}
}
