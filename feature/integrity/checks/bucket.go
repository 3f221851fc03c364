package checks

import (
	"context"
	"fmt"

	"bucket-browser/core/storage"
)

// CheckBucket fails when the browsed bucket is missing or unreachable.
func CheckBucket(ctx context.Context, client storage.Client, bucket string) error {
	exists, err := client.BucketExists(ctx, bucket)
	if err != nil {
		return fmt.Errorf("failed to check bucket existence: %w", err)
	}
	if !exists {
		return fmt.Errorf("bucket %s does not exist", bucket)
	}
	return nil
}
