// Package archive assembles processed images into a single ZIP archive.
package archive

import (
	"bytes"
	"fmt"

	"github.com/klauspost/compress/zip"
	"github.com/wb-go/wbf/zlog"

	"quickresizer/internal/domain"
)

// Build writes one deflate-compressed entry per result, in input order,
// using the generated filename as the entry path. Entries are flat: no
// directories, no manifest.
func Build(results []domain.ImageResult) ([]byte, error) {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)

	for _, res := range results {
		w, err := zw.CreateHeader(&zip.FileHeader{
			Name:   res.Name,
			Method: zip.Deflate,
		})
		if err != nil {
			zw.Close()
			zlog.Logger.Error().Err(err).Str("entry", res.Name).Msg("failed to create archive entry")
			return nil, fmt.Errorf("create archive entry %s: %w", res.Name, err)
		}
		if _, err := w.Write(res.Data); err != nil {
			zw.Close()
			zlog.Logger.Error().Err(err).Str("entry", res.Name).Msg("failed to write archive entry")
			return nil, fmt.Errorf("write archive entry %s: %w", res.Name, err)
		}
	}

	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalize archive: %w", err)
	}

	zlog.Logger.Info().
		Int("entries", len(results)).
		Int("bytes", buf.Len()).
		Msg("archive built")

	return buf.Bytes(), nil
}
