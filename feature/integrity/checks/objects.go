package checks

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"bucket-browser/core/storage"
	"bucket-browser/feature/browse"

	"github.com/minio/minio-go/v7"
)

// Problem classifies an object the browser cannot serve.
type Problem string

const (
	// ProblemInvalidTimestamp breaks the listing of the object's parent prefix.
	ProblemInvalidTimestamp Problem = "invalid_timestamp"
	// ProblemInvalidSize breaks the listing of the object's parent prefix.
	ProblemInvalidSize Problem = "invalid_size"
	// ProblemInvalidKey marks keys that are not valid UTF-8 and cannot be requested.
	ProblemInvalidKey Problem = "invalid_key"
)

// Issue is one unservable object.
type Issue struct {
	Key     string  `json:"key"`
	Problem Problem `json:"problem"`
	Detail  string  `json:"detail"`
}

// ScanObjects walks every object under prefix and reports the ones that would make
// a listing fail or that no request path can reach. It returns the issues and the
// number of objects scanned.
func ScanObjects(ctx context.Context, client storage.Client, bucket, prefix string) ([]Issue, int, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}

	var issues []Issue
	scanned := 0
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, scanned, fmt.Errorf("failed to scan prefix %q: %w", prefix, obj.Err)
		}
		scanned++

		if !utf8.ValidString(obj.Key) {
			issues = append(issues, Issue{
				Key:     strings.ToValidUTF8(obj.Key, "�"),
				Problem: ProblemInvalidKey,
				Detail:  "key is not valid UTF-8",
			})
			continue
		}

		// Directory markers are never listed as files.
		if strings.HasSuffix(obj.Key, storage.Delimiter) {
			continue
		}

		_, err := browse.ObjectEntry(storage.Object{
			Key:            obj.Key,
			Size:           obj.Size,
			UploadedMillis: obj.LastModified.UnixMilli(),
		})
		switch {
		case err == nil:
		case errors.Is(err, browse.ErrInvalidTimestamp):
			issues = append(issues, Issue{Key: obj.Key, Problem: ProblemInvalidTimestamp, Detail: err.Error()})
		case errors.Is(err, browse.ErrInvalidSize):
			issues = append(issues, Issue{Key: obj.Key, Problem: ProblemInvalidSize, Detail: err.Error()})
		default:
			return nil, scanned, err
		}
	}

	return issues, scanned, nil
}
