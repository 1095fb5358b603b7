package storage

import (
	"context"
	"fmt"
	"io"
	"time"

	gcs "cloud.google.com/go/storage"
	"github.com/Ritik5Prasad/Reelzzz-server/internal/types"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

// MediaStore persists uploaded media and returns a durable public URL.
type MediaStore interface {
	Save(ctx context.Context, r io.Reader, folder, name, contentType string) (string, error)
}

// FolderFor maps an upload's mediaType to its bucket folder. Unknown
// types are rejected.
func FolderFor(mediaType string) (string, error) {
	switch mediaType {
	case "user_image":
		return "user_images", nil
	case "reel_thumbnail":
		return "reel_thumbnails", nil
	case "reel_video":
		return "reel_videos", nil
	default:
		return "", types.BadRequest("Invalid media type")
	}
}

// GCSStore writes media objects to a Google Cloud Storage bucket.
type GCSStore struct {
	client *gcs.Client
	bucket string
}

// NewGCSStore opens a GCS client against the configured bucket.
// credentialsFile may be empty, in which case ambient credentials apply.
func NewGCSStore(ctx context.Context, bucket, credentialsFile string) (*GCSStore, error) {
	var opts []option.ClientOption
	if credentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(credentialsFile))
	}
	client, err := gcs.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSStore{client: client, bucket: bucket}, nil
}

// Save streams the object into the bucket under folder/name and returns
// its public URL.
func (s *GCSStore) Save(ctx context.Context, r io.Reader, folder, name, contentType string) (string, error) {
	if name == "" {
		name = uuid.New().String()
	}
	object := fmt.Sprintf("%s/%d-%s", folder, time.Now().UnixMilli(), name)

	ctx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	defer cancel()

	w := s.client.Bucket(s.bucket).Object(object).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		w.Close()
		return "", fmt.Errorf("failed to write object %s: %w", object, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("failed to finalize object %s: %w", object, err)
	}
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", s.bucket, object), nil
}

// Close releases the underlying client.
func (s *GCSStore) Close() error {
	return s.client.Close()
}
