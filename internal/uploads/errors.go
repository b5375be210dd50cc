package uploads

import (
	"errors"
	"fmt"
)

var ErrUploadFailed = errors.New("upload failed")

// Each of these matches ErrUploadFailed under errors.Is.
var (
	ErrTooManyFiles      = fmt.Errorf("too many files: %w", ErrUploadFailed)
	ErrFileTooLarge      = fmt.Errorf("file too large: %w", ErrUploadFailed)
	ErrUnsupportedFormat = fmt.Errorf("unsupported image format: %w", ErrUploadFailed)
)
