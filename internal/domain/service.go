package domain

import (
	"context"
	"io"
)

// ProgressFunc is invoked synchronously after each item of a batch completes.
type ProgressFunc func(completed, total int)

type BatchService interface {
	ProcessOne(item ImageItem, cfg *ProcessingConfig) (ImageResult, error)
	ProcessBatch(items []ImageItem, cfg *ProcessingConfig, notify ProgressFunc) ([]ImageResult, error)
	BuildArchive(results []ImageResult) ([]byte, error)
	Inspect(data []byte) (*ImageInfo, error)
}

// ArchiveStorage persists built archives for later delivery.
type ArchiveStorage interface {
	SaveArchive(ctx context.Context, filename string, reader io.Reader) (string, error)
	GetArchive(ctx context.Context, path string) (io.ReadCloser, error)
	Delete(ctx context.Context, path string) error
}
