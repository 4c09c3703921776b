package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractVideoID(t *testing.T) {
	cases := []struct {
		name string
		url  string
		want string
	}{
		{"short link", "https://youtu.be/dQw4w9WgXcQ", "dQw4w9WgXcQ"},
		{"short link with query", "https://youtu.be/bWACo_pvKxg?si=GnEbpuzMxXTPH04P", "bWACo_pvKxg"},
		{"watch url", "https://youtube.com/watch?v=ABC123&t=5", "ABC123"},
		{"watch url with host prefix", "https://www.youtube.com/watch?v=xyz789", "xyz789"},
		{"embed url", "https://youtube.com/embed/QIDkK0FbXDc?rel=0", "QIDkK0FbXDc"},
		{"unrecognized", "https://vimeo.com/123456", ""},
		{"empty", "", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ExtractVideoID(tc.url))
		})
	}
}

func TestThumbnailURL(t *testing.T) {
	assert.Equal(t,
		"https://img.youtube.com/vi/dQw4w9WgXcQ/maxresdefault.jpg",
		ThumbnailURL("https://youtu.be/dQw4w9WgXcQ"))

	// нераспознанная ссылка даёт пустое превью, не ошибку
	assert.Equal(t, "", ThumbnailURL("https://example.com/video"))
}
