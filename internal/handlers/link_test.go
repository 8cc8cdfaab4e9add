package handlers

import "testing"

func TestIsYouTubeLink(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{
			name:     "Short youtu.be link",
			input:    "https://youtu.be/dQw4w9WgXcQ",
			expected: true,
		},
		{
			name:     "Short youtu.be link with short ID",
			input:    "https://youtu.be/abc123",
			expected: true,
		},
		{
			name:     "Link with spaces",
			input:    "https://youtu.be/abc 123",
			expected: false,
		},
		{
			name:     "Full watch URL",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			expected: true,
		},
		{
			name:     "Watch URL with extra parameters",
			input:    "https://www.youtube.com/watch?v=dQw4w9WgXcQ&t=42s",
			expected: true,
		},
		{
			name:     "Shorts URL",
			input:    "https://www.youtube.com/shorts/dQw4w9WgXcQ",
			expected: true,
		},
		{
			name:     "Embed URL",
			input:    "https://www.youtube.com/embed/dQw4w9WgXcQ",
			expected: true,
		},
		{
			name:     "Other video site",
			input:    "https://vimeo.com/123456",
			expected: false,
		},
		{
			name:     "Plain text",
			input:    "hello there",
			expected: false,
		},
		{
			name:     "Empty string",
			input:    "",
			expected: false,
		},
		{
			name:     "Bare video ID without host",
			input:    "dQw4w9WgXcQ",
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := IsYouTubeLink(tt.input)
			if result != tt.expected {
				t.Errorf("IsYouTubeLink(%q) = %v, expected %v", tt.input, result, tt.expected)
			}
		})
	}
}
