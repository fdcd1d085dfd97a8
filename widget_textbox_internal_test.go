package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimLastGrapheme(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"", ""},
		{"abc", "ab"},
		{"ae\u0301", "a"},
		{"\U0001F1E9\U0001F1EA", ""},
		{"hi \U0001F44B\U0001F3FD", "hi "},
		{"日本", "日"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, trimLastGrapheme(tt.in), "input %q", tt.in)
	}
}
