package utils

import "testing"

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Simple title",
			input:    "My Video",
			expected: "My_Video",
		},
		{
			name:     "Title with punctuation",
			input:    "Never Gonna Give You Up (Official Video)",
			expected: "Never_Gonna_Give_You_Up_Official_Video_",
		},
		{
			name:     "Cyrillic title",
			input:    "Видео без названия",
			expected: "Видео_без_названия",
		},
		{
			name:     "Slashes and dots",
			input:    "a/b\\c..d",
			expected: "a_b_c_d",
		},
		{
			name:     "Already safe",
			input:    "title123",
			expected: "title123",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := SanitizeFileName(tt.input)
			if result != tt.expected {
				t.Errorf("SanitizeFileName(%q) = %q, expected %q", tt.input, result, tt.expected)
			}
		})
	}
}
