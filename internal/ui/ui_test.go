package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNumbered(t *testing.T) {
	got := numbered([]string{"rtmp://a", "has\ttab", "two\nlines"})
	assert.Equal(t, "0\trtmp://a\n1\thas tab\n2\ttwo lines\n", got)
}

func TestParseSelection(t *testing.T) {
	tests := []struct {
		name    string
		out     string
		want    int
		wantErr bool
	}{
		{"first", "0\trtmp://a\n", 0, false},
		{"later", "2\tsomething else\n", 2, false},
		{"no tab", "1\n", 1, false},
		{"empty", "\n", -1, true},
		{"not a number", "x\titem\n", -1, true},
		{"out of range", "3\titem\n", -1, true},
		{"negative", "-1\titem\n", -1, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseSelection(tt.out, 3)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelectRejectsEmpty(t *testing.T) {
	_, err := Select("pick", nil)
	assert.Error(t, err)
}
