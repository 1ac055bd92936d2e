package usecase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/archive"
	"quickresizer/internal/domain"
	"quickresizer/internal/infrastructure/processor"
	"quickresizer/internal/naming"
)

// BatchUsecase drives the per-item transform chain over an ordered list of
// inputs: decode, normalize, resize, encode, rename. Items are processed
// strictly in input order, one at a time; the first failure aborts the batch.
type BatchUsecase struct {
	processor *processor.ImageProcessor
}

func NewBatchUsecase(p *processor.ImageProcessor) *BatchUsecase {
	return &BatchUsecase{processor: p}
}

// ProcessOne transforms a single image with the given configuration. The
// item is treated as position 1 for numbering purposes.
func (u *BatchUsecase) ProcessOne(item domain.ImageItem, cfg *domain.ProcessingConfig) (domain.ImageResult, error) {
	if err := cfg.Validate(); err != nil {
		return domain.ImageResult{}, err
	}
	return u.processItem(item, 1, cfg)
}

// ProcessBatch processes items in input order, invoking notify after each
// completed item. The configuration is validated before any image data is
// consumed. A per-item failure terminates the batch; the returned error
// carries the offending item's index and original name.
func (u *BatchUsecase) ProcessBatch(items []domain.ImageItem, cfg *domain.ProcessingConfig, notify domain.ProgressFunc) ([]domain.ImageResult, error) {
	if err := cfg.Validate(); err != nil {
		zlog.Logger.Error().Err(err).Msg("batch configuration rejected")
		return nil, err
	}

	batchID := uuid.NewString()
	total := len(items)
	zlog.Logger.Info().
		Str("batch_id", batchID).
		Int("items", total).
		Str("preset", string(cfg.Preset)).
		Str("strategy", string(cfg.Strategy)).
		Str("format", string(cfg.Format)).
		Int("quality", cfg.Quality).
		Msg("starting batch processing")

	results := make([]domain.ImageResult, 0, total)
	for i, item := range items {
		res, err := u.processItem(item, i+1, cfg)
		if err != nil {
			zlog.Logger.Error().
				Err(err).
				Str("batch_id", batchID).
				Int("index", i+1).
				Str("name", item.Name).
				Msg("batch aborted on item failure")
			return nil, fmt.Errorf("item %d (%s): %w", i+1, item.Name, err)
		}
		results = append(results, res)

		if notify != nil {
			notify(i+1, total)
		}
	}

	zlog.Logger.Info().
		Str("batch_id", batchID).
		Int("items", total).
		Msg("batch processing completed")

	return results, nil
}

// BuildArchive packages results into a single ZIP, entry order matching
// result order.
func (u *BatchUsecase) BuildArchive(results []domain.ImageResult) ([]byte, error) {
	return archive.Build(results)
}

// Inspect reports basic properties of raw image data.
func (u *BatchUsecase) Inspect(data []byte) (*domain.ImageInfo, error) {
	return u.processor.Inspect(data)
}

func (u *BatchUsecase) processItem(item domain.ImageItem, index int, cfg *domain.ProcessingConfig) (domain.ImageResult, error) {
	img, err := u.processor.Decode(item.Data)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("decode image: %w", err)
	}

	dims, err := cfg.TargetDimensions()
	if err != nil {
		return domain.ImageResult{}, err
	}

	transformed, err := u.processor.Transform(img, dims, cfg.Strategy)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("transform image: %w", err)
	}

	data, ext, err := u.processor.Encode(transformed, cfg.Format, cfg.Quality, item.Name)
	if err != nil {
		return domain.ImageResult{}, fmt.Errorf("encode image: %w", err)
	}

	width, height := processor.GetImageDimensions(transformed)
	name := naming.Generate(item.Name, index, cfg.Naming, ext)

	zlog.Logger.Debug().
		Str("original_name", item.Name).
		Str("generated_name", name).
		Int("width", width).
		Int("height", height).
		Int("bytes", len(data)).
		Msg("item processed")

	return domain.ImageResult{Data: data, Name: name}, nil
}
