package bootstrap

import (
	"context"
	"fmt"

	"github.com/GoSim-25-26J-441/portfolio-backend/config"
	"github.com/GoSim-25-26J-441/portfolio-backend/internal/uploads"
)

// NewUploadStore builds the image backend selected by UPLOAD_DRIVER.
func NewUploadStore(ctx context.Context, cfg *config.StorageConfig) (uploads.Store, error) {
	var (
		store uploads.Store
		err   error
	)
	switch cfg.Driver {
	case "local":
		store, err = uploads.NewLocalStore(cfg.UploadDir, cfg.PublicBaseURL)
	case "s3":
		store, err = uploads.NewS3Store(ctx, uploads.S3Options{
			Bucket:    cfg.S3Bucket,
			Region:    cfg.S3Region,
			Endpoint:  cfg.S3Endpoint,
			AccessKey: cfg.S3AccessKey,
			SecretKey: cfg.S3SecretKey,
			PublicURL: cfg.S3PublicURL,
			Folder:    cfg.Folder,
		})
	case "gcs":
		store, err = uploads.NewGCSStore(ctx, cfg.FirebaseCredentialsPath, cfg.FirebaseBucket, cfg.Folder)
	default:
		return nil, fmt.Errorf("unknown upload driver %q", cfg.Driver)
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
