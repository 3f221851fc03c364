package browse_test

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"bucket-browser/core/storage/mocks"
	"bucket-browser/feature/browse"
	"bucket-browser/feature/browse/models"
	"bucket-browser/feature/browse/render"

	"github.com/google/go-cmp/cmp"
	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const bucket = "public"

var jan1 = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func newService(client *mocks.Client) *browse.Service {
	return browse.NewService(client, bucket, zap.NewNop(), render.DefaultSizeFormat)
}

func listing(client *mocks.Client, prefix string, infos ...minio.ObjectInfo) {
	client.On("ListObjects", mock.Anything, bucket, mock.MatchedBy(func(opts minio.ListObjectsOptions) bool {
		return opts.Prefix == prefix && !opts.Recursive
	})).Return(mocks.Objects(infos...))
}

func TestBuildListing(t *testing.T) {
	t.Run("Docs Example", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "docs/",
			minio.ObjectInfo{Key: "docs/readme.txt", Size: 1536, LastModified: jan1},
			minio.ObjectInfo{Key: "docs/img/"},
		)

		got, err := newService(client).BuildListing(context.Background(), "docs/", "docs/")
		require.NoError(t, err)

		want := []models.Entry{
			models.Directory("docs/img/"),
			models.File("docs/readme.txt", 1536, jan1),
		}
		if diff := cmp.Diff(want, got.Entries); diff != "" {
			t.Errorf("entries mismatch (-want +got):\n%s", diff)
		}
		assert.Equal(t, "docs/", got.Prefix)
		assert.Equal(t, "docs/", got.DisplayPrefix)
		client.AssertExpectations(t)
	})

	t.Run("Directories First Then Size Then Uploaded", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "",
			minio.ObjectInfo{Key: "big", Size: 900, LastModified: jan1},
			minio.ObjectInfo{Key: "late", Size: 10, LastModified: jan1.Add(time.Hour)},
			minio.ObjectInfo{Key: "z/"},
			minio.ObjectInfo{Key: "early", Size: 10, LastModified: jan1},
			minio.ObjectInfo{Key: "a/"},
		)

		got, err := newService(client).BuildListing(context.Background(), "", "/")
		require.NoError(t, err)

		keys := make([]string, 0, len(got.Entries))
		for _, e := range got.Entries {
			keys = append(keys, e.Key)
		}
		assert.Equal(t, []string{"a/", "z/", "early", "late", "big"}, keys)
	})

	t.Run("Skips Prefix Marker", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "docs/",
			minio.ObjectInfo{Key: "docs/", LastModified: jan1},
			minio.ObjectInfo{Key: "docs/a.txt", Size: 1, LastModified: jan1},
		)

		got, err := newService(client).BuildListing(context.Background(), "docs/", "docs/")
		require.NoError(t, err)
		require.Len(t, got.Entries, 1)
		assert.Equal(t, "docs/a.txt", got.Entries[0].Key)
	})

	t.Run("Only Prefix Marker Is Not Found", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "docs/", minio.ObjectInfo{Key: "docs/", LastModified: jan1})

		_, err := newService(client).BuildListing(context.Background(), "docs/", "docs/")
		assert.ErrorIs(t, err, browse.ErrNotFound)
	})

	t.Run("Empty Is Not Found", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "missing/")

		_, err := newService(client).BuildListing(context.Background(), "missing/", "missing/")
		assert.ErrorIs(t, err, browse.ErrNotFound)
	})

	t.Run("Storage Error", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "docs/", minio.ObjectInfo{Err: errors.New("connection reset")})

		_, err := newService(client).BuildListing(context.Background(), "docs/", "docs/")
		require.Error(t, err)
		assert.NotErrorIs(t, err, browse.ErrNotFound)
		assert.ErrorContains(t, err, "connection reset")
	})

	t.Run("Timestamp Before Epoch", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "", minio.ObjectInfo{Key: "old", Size: 1, LastModified: time.Date(1969, 12, 31, 0, 0, 0, 0, time.UTC)})

		_, err := newService(client).BuildListing(context.Background(), "", "/")
		assert.ErrorIs(t, err, browse.ErrInvalidTimestamp)
	})

	t.Run("Timestamp After Year 9999", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "", minio.ObjectInfo{Key: "future", Size: 1, LastModified: time.Date(10000, 1, 1, 0, 0, 0, 0, time.UTC)})

		_, err := newService(client).BuildListing(context.Background(), "", "/")
		assert.ErrorIs(t, err, browse.ErrInvalidTimestamp)
	})

	t.Run("Negative Size", func(t *testing.T) {
		client := new(mocks.Client)
		listing(client, "", minio.ObjectInfo{Key: "broken", Size: -1, LastModified: jan1})

		_, err := newService(client).BuildListing(context.Background(), "", "/")
		assert.ErrorIs(t, err, browse.ErrInvalidSize)
	})
}

func TestRenderListing(t *testing.T) {
	client := new(mocks.Client)
	listing(client, "docs/",
		minio.ObjectInfo{Key: "docs/readme.txt", Size: 1536, LastModified: jan1},
		minio.ObjectInfo{Key: "docs/img/"},
	)

	doc, err := newService(client).RenderListing(context.Background(), "docs/", "docs/")
	require.NoError(t, err)

	assert.Contains(t, doc, "<title>docs/</title>")
	assert.Contains(t, doc, "1.54 KB")
	assert.Contains(t, doc, "2024-01-01 00:00:00")
	assert.Less(t, strings.Index(doc, "img/"), strings.Index(doc, "readme.txt"))
}

func TestFetchObject(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, bucket, "docs/readme.txt", mock.Anything).
			Return(minio.ObjectInfo{Key: "docs/readme.txt", Size: 5, ContentType: "text/plain", ETag: "abc", LastModified: jan1}, nil)
		client.On("GetObject", mock.Anything, bucket, "docs/readme.txt", mock.Anything).
			Return(io.NopCloser(strings.NewReader("hello")), nil)

		obj, err := newService(client).FetchObject(context.Background(), "docs/readme.txt")
		require.NoError(t, err)
		defer obj.Body.Close()

		body, err := io.ReadAll(obj.Body)
		require.NoError(t, err)
		assert.Equal(t, "hello", string(body))
		assert.Equal(t, int64(5), obj.Size)
		assert.Equal(t, "text/plain", obj.ContentType)
		assert.Equal(t, "abc", obj.ETag)
		assert.Equal(t, jan1, obj.LastModified)
		client.AssertExpectations(t)
	})

	t.Run("Missing", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, bucket, "nope", mock.Anything).
			Return(minio.ObjectInfo{}, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		_, err := newService(client).FetchObject(context.Background(), "nope")
		assert.ErrorIs(t, err, browse.ErrNotFound)
		client.AssertNotCalled(t, "GetObject", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Stat Failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, bucket, "x", mock.Anything).
			Return(minio.ObjectInfo{}, errors.New("timeout"))

		_, err := newService(client).FetchObject(context.Background(), "x")
		require.Error(t, err)
		assert.NotErrorIs(t, err, browse.ErrNotFound)
	})

	t.Run("Missing Body", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("StatObject", mock.Anything, bucket, "x", mock.Anything).
			Return(minio.ObjectInfo{Key: "x", Size: 1}, nil)
		client.On("GetObject", mock.Anything, bucket, "x", mock.Anything).
			Return(nil, nil)

		_, err := newService(client).FetchObject(context.Background(), "x")
		assert.ErrorIs(t, err, browse.ErrMissingBody)
	})
}
