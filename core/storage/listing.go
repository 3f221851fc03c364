package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/minio/minio-go/v7"
)

// Delimiter groups keys into "directories". It is the only delimiter minio-go
// uses for non-recursive listings.
const Delimiter = "/"

// Object is a stored object directly under a listed prefix.
type Object struct {
	Key  string
	Size int64
	// UploadedMillis is the upload instant in milliseconds since the Unix epoch.
	UploadedMillis int64
}

// Listing is the result of a delimiter-bounded prefix listing.
type Listing struct {
	// Prefixes are the immediate sub-prefixes, each ending with Delimiter.
	Prefixes []string
	// Objects are the objects directly under the prefix.
	Objects []Object
}

// Len returns the total number of prefixes and objects.
func (l *Listing) Len() int {
	return len(l.Prefixes) + len(l.Objects)
}

// ListDirectory lists the immediate sub-prefixes and objects under prefix.
// Deeper objects only surface through their owning sub-prefix.
func ListDirectory(ctx context.Context, client Client, bucket, prefix string) (*Listing, error) {
	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: false,
	}

	listing := &Listing{}
	for obj := range client.ListObjects(ctx, bucket, opts) {
		if obj.Err != nil {
			return nil, fmt.Errorf("failed to list prefix %q: %w", prefix, obj.Err)
		}

		// Common prefixes are reported as bare keys ending with the delimiter.
		if strings.HasSuffix(obj.Key, Delimiter) {
			listing.Prefixes = append(listing.Prefixes, obj.Key)
			continue
		}

		listing.Objects = append(listing.Objects, Object{
			Key:            obj.Key,
			Size:           obj.Size,
			UploadedMillis: obj.LastModified.UnixMilli(),
		})
	}

	return listing, nil
}
