package storage

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"path"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"
	wbfretry "github.com/wb-go/wbf/retry"
	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/config"
	"quickresizer/internal/domain"
	"quickresizer/internal/retry"
)

type s3Storage struct {
	client     *minio.Client
	bucket     string
	archiveDir string
}

func NewS3Storage(cfg *config.StorageConfig) (domain.ArchiveStorage, error) {
	if cfg.S3Endpoint == "" {
		return nil, fmt.Errorf("s3 endpoint is required")
	}
	if cfg.S3Bucket == "" {
		return nil, fmt.Errorf("s3 bucket is required")
	}
	if cfg.S3AccessKey == "" || cfg.S3SecretKey == "" {
		return nil, fmt.Errorf("s3 access key and secret key are required")
	}
	if cfg.ArchiveDir == "" {
		cfg.ArchiveDir = "archives"
	}

	creds := credentials.NewStaticV4(cfg.S3AccessKey, cfg.S3SecretKey, "")
	client, err := minio.New(cfg.S3Endpoint, &minio.Options{
		Creds:  creds,
		Secure: cfg.S3UseSSL,
		Region: cfg.S3Region,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize s3 client: %w", err)
	}

	ctx := context.Background()
	exists, err := client.BucketExists(ctx, cfg.S3Bucket)
	if err != nil {
		return nil, fmt.Errorf("failed to check s3 bucket: %w", err)
	}
	if !exists {
		if err := client.MakeBucket(ctx, cfg.S3Bucket, minio.MakeBucketOptions{Region: cfg.S3Region}); err != nil {
			zlog.Logger.Warn().Err(err).Str("bucket", cfg.S3Bucket).Msg("unable to create bucket, ensure it exists and credentials are correct")
		} else {
			zlog.Logger.Info().Str("bucket", cfg.S3Bucket).Msg("created s3 bucket")
		}
	}

	return &s3Storage{
		client:     client,
		bucket:     cfg.S3Bucket,
		archiveDir: cfg.ArchiveDir,
	}, nil
}

func (s *s3Storage) SaveArchive(ctx context.Context, filename string, reader io.Reader) (string, error) {
	if reader == nil {
		zlog.Logger.Error().Str("filename", filename).Msg("reader is nil")
		return "", fmt.Errorf("reader is nil")
	}

	// Buffer the archive so the upload can be retried from the start.
	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("read archive data: %w", err)
	}

	objectName := path.Join(s.archiveDir, filename)

	err = wbfretry.Do(func() error {
		_, putErr := s.client.PutObject(ctx, s.bucket, objectName,
			bytes.NewReader(data), int64(len(data)),
			minio.PutObjectOptions{ContentType: "application/zip"})
		return putErr
	}, retry.DefaultStrategy)
	if err != nil {
		zlog.Logger.Error().Err(err).Str("object", objectName).Msg("failed to put archive to s3")
		return "", fmt.Errorf("%w: put object %s: %v", domain.ErrStorageFailed, objectName, err)
	}

	zlog.Logger.Info().
		Str("path", objectName).
		Int("bytes", len(data)).
		Msg("archive saved to s3")

	return objectName, nil
}

func (s *s3Storage) GetArchive(ctx context.Context, objectPath string) (io.ReadCloser, error) {
	obj, err := s.client.GetObject(ctx, s.bucket, objectPath, minio.GetObjectOptions{})
	if err != nil {
		zlog.Logger.Error().Err(err).Str("object", objectPath).Msg("failed to get object")
		return nil, fmt.Errorf("get object %s: %w", objectPath, err)
	}

	if _, err := obj.Stat(); err != nil {
		obj.Close()
		zlog.Logger.Error().Err(err).Str("object", objectPath).Msg("object not found or inaccessible")
		return nil, fmt.Errorf("%w: %s", domain.ErrArchiveNotFound, objectPath)
	}

	return obj, nil
}

func (s *s3Storage) Delete(ctx context.Context, objectPath string) error {
	if objectPath == "" {
		return nil
	}
	if err := s.client.RemoveObject(ctx, s.bucket, objectPath, minio.RemoveObjectOptions{}); err != nil {
		zlog.Logger.Error().Err(err).Str("path", objectPath).Msg("failed to delete object from s3")
		return fmt.Errorf("remove object %s: %w", objectPath, err)
	}
	zlog.Logger.Info().Str("path", objectPath).Msg("archive deleted from s3")
	return nil
}
