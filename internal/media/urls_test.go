package media

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeURL(t *testing.T) {
	const base = "https://pinboard.example.com"

	tests := []struct {
		name     string
		ref      string
		expected string
	}{
		{
			name:     "empty reference",
			ref:      "",
			expected: "",
		},
		{
			name:     "external absolute URL unchanged",
			ref:      "https://images.example.org/photo.jpg",
			expected: "https://images.example.org/photo.jpg",
		},
		{
			name:     "storage path rebased",
			ref:      "/storage/pins/abc123.jpg",
			expected: base + "/storage/pins/abc123.jpg",
		},
		{
			name:     "legacy localhost URL rebased",
			ref:      "http://localhost:8000/storage/pins/abc123.jpg",
			expected: base + "/storage/pins/abc123.jpg",
		},
		{
			name:     "legacy loopback URL rebased",
			ref:      "http://127.0.0.1:8000/storage/pins/abc123.jpg",
			expected: base + "/storage/pins/abc123.jpg",
		},
		{
			name:     "localhost URL without storage path unchanged",
			ref:      "http://localhost:3000/health",
			expected: "http://localhost:3000/health",
		},
		{
			name:     "bare relative path unchanged",
			ref:      "pins/abc123.jpg",
			expected: "pins/abc123.jpg",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeURL(base, tt.ref))
		})
	}
}

func TestNormalizeURL_TrailingSlashBase(t *testing.T) {
	got := NormalizeURL("https://pinboard.example.com/", "/storage/pins/x.png")
	assert.Equal(t, "https://pinboard.example.com/storage/pins/x.png", got)
}
