package domain

import "errors"

var (
	ErrInvalidConfiguration = errors.New("invalid processing configuration")
	ErrUndecodableImage     = errors.New("image data is not a decodable image")
	ErrUnsupportedFormat    = errors.New("unsupported output format")
	ErrEncodingFailed       = errors.New("image encoding failed")
	ErrStorageFailed        = errors.New("storage operation failed")
	ErrArchiveNotFound      = errors.New("archive not found")
)
