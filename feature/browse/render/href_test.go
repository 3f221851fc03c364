package render_test

import (
	"net/url"
	"testing"

	"bucket-browser/feature/browse/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHref(t *testing.T) {
	tests := []struct {
		key  string
		want string
	}{
		{"docs/readme.txt", "/docs/readme.txt"},
		{"docs/img/", "/docs/img/"},
		{"a b/c?d#e.txt", "/a%20b/c%3Fd%23e.txt"},
		{"100%.txt", "/100%25.txt"},
		{"/abs/key", "/%2Fabs/key"},
		{"", "/"},
	}

	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			href := render.Href(tt.key)
			assert.Equal(t, tt.want, href)

			decoded, err := url.PathUnescape(href)
			require.NoError(t, err)
			assert.Equal(t, "/"+tt.key, decoded)
		})
	}
}

func TestParentKey(t *testing.T) {
	tests := []struct {
		display string
		want    string
		ok      bool
	}{
		{"/", "", false},
		{"docs/", "", false},
		{"docs/img/", "docs/", true},
		{"a/b/c/", "a/b/", true},
		{"/x/", "/", true},
	}

	for _, tt := range tests {
		t.Run(tt.display, func(t *testing.T) {
			got, ok := render.ParentKey(tt.display)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
