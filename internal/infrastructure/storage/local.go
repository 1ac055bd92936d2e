package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/config"
	"quickresizer/internal/domain"
)

type localStorage struct {
	basePath   string
	archiveDir string
}

func NewLocalStorage(cfg *config.StorageConfig) (domain.ArchiveStorage, error) {
	if cfg.LocalPath == "" {
		return nil, fmt.Errorf("LocalPath is empty, set storage.local_path in config or env")
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "archives"
	}

	s := &localStorage{
		basePath:   cfg.LocalPath,
		archiveDir: cfg.ArchiveDir,
	}

	if err := os.MkdirAll(filepath.Join(s.basePath, s.archiveDir), 0755); err != nil {
		return nil, fmt.Errorf("failed to create archive directory: %w", err)
	}

	return s, nil
}

func (s *localStorage) SaveArchive(ctx context.Context, filename string, reader io.Reader) (string, error) {
	if reader == nil {
		zlog.Logger.Error().Str("filename", filename).Msg("reader is nil")
		return "", fmt.Errorf("reader is nil")
	}

	fullPath := filepath.Join(s.basePath, s.archiveDir, filename)

	file, err := os.Create(fullPath)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("path", fullPath).Msg("failed to create file")
		return "", fmt.Errorf("create file %s: %w", fullPath, err)
	}
	defer file.Close()

	written, err := io.Copy(file, reader)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("path", fullPath).Msg("failed to write file")
		return "", fmt.Errorf("write file %s: %w", fullPath, err)
	}
	if written == 0 {
		zlog.Logger.Error().Str("path", fullPath).Msg("no bytes written to file")
		return "", fmt.Errorf("no bytes written to file %s", fullPath)
	}

	relativePath := filepath.Join(s.archiveDir, filename)
	zlog.Logger.Info().
		Str("path", relativePath).
		Int64("bytes", written).
		Msg("archive saved successfully")

	return relativePath, nil
}

func (s *localStorage) GetArchive(ctx context.Context, path string) (io.ReadCloser, error) {
	fullPath := filepath.Join(s.basePath, path)

	file, err := os.Open(fullPath)
	if err != nil {
		if os.IsNotExist(err) {
			zlog.Logger.Error().Str("path", fullPath).Msg("archive not found")
			return nil, fmt.Errorf("%w: %s", domain.ErrArchiveNotFound, path)
		}
		zlog.Logger.Error().Err(err).Str("path", fullPath).Msg("failed to open archive")
		return nil, fmt.Errorf("open file %s: %w", fullPath, err)
	}

	return file, nil
}

func (s *localStorage) Delete(ctx context.Context, path string) error {
	if path == "" {
		return nil
	}

	fullPath := filepath.Join(s.basePath, path)

	if err := os.Remove(fullPath); err != nil {
		if os.IsNotExist(err) {
			zlog.Logger.Warn().Str("path", fullPath).Msg("archive not found, skipping delete")
			return nil
		}
		zlog.Logger.Error().Err(err).Str("path", fullPath).Msg("failed to delete archive")
		return fmt.Errorf("delete file %s: %w", fullPath, err)
	}

	zlog.Logger.Info().Str("path", path).Msg("archive deleted successfully")
	return nil
}
