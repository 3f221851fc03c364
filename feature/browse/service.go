package browse

import (
	"context"
	"fmt"
	"io"
	"time"

	"bucket-browser/core/storage"
	"bucket-browser/feature/browse/models"
	"bucket-browser/feature/browse/render"

	"github.com/minio/minio-go/v7"
	"go.uber.org/zap"
)

// maxUploadedMillis is 9999-12-31T23:59:59.999Z.
const maxUploadedMillis = 253402300799999

// Object is an object ready to be streamed to a client.
type Object struct {
	Body         io.ReadCloser
	Size         int64
	ContentType  string
	ETag         string
	LastModified time.Time
}

// Service builds listings and fetches objects from one bucket.
type Service struct {
	client storage.Client
	bucket string
	logger *zap.Logger
	format render.SizeFormat
}

// NewService creates a new browse service.
func NewService(client storage.Client, bucket string, logger *zap.Logger, format render.SizeFormat) *Service {
	return &Service{
		client: client,
		bucket: bucket,
		logger: logger,
		format: format,
	}
}

// BuildListing lists prefix and returns its sorted entries.
// An empty result is ErrNotFound: a missing prefix and an empty one look the same.
func (s *Service) BuildListing(ctx context.Context, prefix, displayPrefix string) (*models.Listing, error) {
	raw, err := storage.ListDirectory(ctx, s.client, s.bucket, prefix)
	if err != nil {
		return nil, err
	}

	entries := make([]models.Entry, 0, raw.Len())
	for _, p := range raw.Prefixes {
		// Directory marker of the listed prefix itself.
		if p == prefix {
			continue
		}
		entries = append(entries, models.Directory(p))
	}
	for _, obj := range raw.Objects {
		if obj.Key == prefix {
			continue
		}
		entry, err := ObjectEntry(obj)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	if len(entries) == 0 {
		return nil, fmt.Errorf("prefix %q: %w", prefix, ErrNotFound)
	}

	return models.NewListing(prefix, displayPrefix, entries), nil
}

// RenderListing builds the listing for prefix and renders it as HTML.
func (s *Service) RenderListing(ctx context.Context, prefix, displayPrefix string) (string, error) {
	listing, err := s.BuildListing(ctx, prefix, displayPrefix)
	if err != nil {
		return "", err
	}
	return render.Render(listing, s.format)
}

// FetchObject opens the object stored under key. The caller closes Body.
func (s *Service) FetchObject(ctx context.Context, key string) (*Object, error) {
	info, err := s.client.StatObject(ctx, s.bucket, key, minio.StatObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("object %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to stat object %q: %w", key, err)
	}

	body, err := s.client.GetObject(ctx, s.bucket, key, minio.GetObjectOptions{})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("object %q: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get object %q: %w", key, err)
	}
	if body == nil {
		return nil, fmt.Errorf("object %q: %w", key, ErrMissingBody)
	}

	return &Object{
		Body:         body,
		Size:         info.Size,
		ContentType:  info.ContentType,
		ETag:         info.ETag,
		LastModified: info.LastModified,
	}, nil
}

// ObjectEntry converts a stored object into a file entry. It fails with
// ErrInvalidSize or ErrInvalidTimestamp for metadata no listing can show.
func ObjectEntry(obj storage.Object) (models.Entry, error) {
	if obj.Size < 0 {
		return models.Entry{}, fmt.Errorf("%w: %q has size %d", ErrInvalidSize, obj.Key, obj.Size)
	}
	uploaded, err := uploadedAt(obj.UploadedMillis)
	if err != nil {
		return models.Entry{}, fmt.Errorf("object %q: %w", obj.Key, err)
	}
	return models.File(obj.Key, obj.Size, uploaded), nil
}

func uploadedAt(ms int64) (time.Time, error) {
	if ms < 0 || ms > maxUploadedMillis {
		return time.Time{}, fmt.Errorf("%w: %d ms", ErrInvalidTimestamp, ms)
	}
	return time.UnixMilli(ms).UTC(), nil
}
