// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client behind the small read-only interface the browser needs:
// delimiter listings, object metadata and object streams. This abstraction
// supports both AWS S3 and self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - ListObjects: Lists objects in a bucket (supports prefix/recursive).
//   - StatObject: Retrieves the metadata of one object.
//   - GetObject: Retrieves content as a stream.
//
// ListDirectory drains a non-recursive ListObjects call into sub-prefixes and
// objects, which is the shape the listing builder consumes.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	listing, err := storage.ListDirectory(ctx, client, "public", "docs/")
package storage
