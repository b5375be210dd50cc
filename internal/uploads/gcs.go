package uploads

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
)

// GCSStore writes to a Firebase Storage bucket.
type GCSStore struct {
	bucket    *storage.BucketHandle
	name      string
	folder    string
	publicURL string
}

// NewGCSStore initializes the Firebase Admin SDK and binds the given bucket.
// An empty credentialsPath falls back to application default credentials.
func NewGCSStore(ctx context.Context, credentialsPath, bucketName, folder string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsPath))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{StorageBucket: bucketName}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Storage(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Storage client: %w", err)
	}

	bucket, err := client.DefaultBucket()
	if err != nil {
		return nil, fmt.Errorf("failed to open bucket %s: %w", bucketName, err)
	}

	return &GCSStore{
		bucket:    bucket,
		name:      bucketName,
		folder:    folder,
		publicURL: "https://storage.googleapis.com/" + bucketName,
	}, nil
}

func (s *GCSStore) Save(ctx context.Context, obj Object, r io.Reader) (string, error) {
	key := objectKey(s.folder, obj.Extension)

	w := s.bucket.Object(key).NewWriter(ctx)
	w.ContentType = obj.ContentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", err
	}
	if err := w.Close(); err != nil {
		return "", err
	}
	return s.publicURL + "/" + key, nil
}

func (s *GCSStore) Delete(ctx context.Context, ref string) error {
	key, ok := strings.CutPrefix(ref, s.publicURL+"/")
	if !ok {
		return nil
	}
	err := s.bucket.Object(key).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}
