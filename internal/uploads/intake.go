package uploads

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"

	"github.com/GoSim-25-26J-441/portfolio-backend/internal/logging"
)

const (
	DefaultMaxFiles     = 10
	DefaultMaxFileBytes = 10 << 20

	sniffLen = 3072
)

var allowedTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

type Intake struct {
	store        Store
	maxFiles     int
	maxFileBytes int64
	log          logging.Logger
}

func NewIntake(store Store, maxFiles int, maxFileBytes int64, log logging.Logger) *Intake {
	if maxFiles <= 0 {
		maxFiles = DefaultMaxFiles
	}
	if maxFileBytes <= 0 {
		maxFileBytes = DefaultMaxFileBytes
	}
	if log == nil {
		log = logging.Nop()
	}
	return &Intake{store: store, maxFiles: maxFiles, maxFileBytes: maxFileBytes, log: log}
}

// Store writes every file to the backend and returns their URLs in input order.
// Nothing written by a failed call is left behind.
func (in *Intake) Store(ctx context.Context, files []*multipart.FileHeader) ([]string, error) {
	if len(files) > in.maxFiles {
		return nil, fmt.Errorf("%d files, limit %d: %w", len(files), in.maxFiles, ErrTooManyFiles)
	}

	refs := make([]string, 0, len(files))
	for _, fh := range files {
		ref, err := in.storeOne(ctx, fh)
		if err != nil {
			in.Discard(ctx, refs)
			return nil, err
		}
		refs = append(refs, ref)
	}
	return refs, nil
}

func (in *Intake) storeOne(ctx context.Context, fh *multipart.FileHeader) (string, error) {
	if fh.Size > in.maxFileBytes {
		return "", fmt.Errorf("%s is %d bytes: %w", fh.Filename, fh.Size, ErrFileTooLarge)
	}

	f, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open %s: %v: %w", fh.Filename, err, ErrUploadFailed)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return "", fmt.Errorf("read %s: %v: %w", fh.Filename, err, ErrUploadFailed)
	}
	mt := mimetype.Detect(head[:n])
	if !allowedTypes[mt.String()] {
		return "", fmt.Errorf("%s is %s: %w", fh.Filename, mt.String(), ErrUnsupportedFormat)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return "", fmt.Errorf("rewind %s: %v: %w", fh.Filename, err, ErrUploadFailed)
	}

	obj := Object{
		OriginalName: fh.Filename,
		ContentType:  mt.String(),
		Extension:    mt.Extension(),
		Size:         fh.Size,
	}
	ref, err := in.store.Save(ctx, obj, f)
	if err != nil {
		return "", fmt.Errorf("save %s: %v: %w", fh.Filename, err, ErrUploadFailed)
	}

	in.log.Debug(ctx, "image stored", "file", fh.Filename, "url", ref)
	return ref, nil
}

// Discard deletes refs on a best-effort basis; failures are only logged.
func (in *Intake) Discard(ctx context.Context, refs []string) {
	for _, ref := range refs {
		if err := in.store.Delete(ctx, ref); err != nil {
			in.log.Warn(ctx, "failed to discard upload", "url", ref, "error", err)
		}
	}
}
