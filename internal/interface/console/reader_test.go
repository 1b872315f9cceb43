package console

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseScore(t *testing.T) {
	tests := []struct {
		line string
		want float64
	}{
		{"85", 85},
		{"92.5", 92.5},
		{"  73.25  ", 73.25},
		{"0", 0},
		{"-5", -5}, // parsing succeeds; range checking is the core's job
	}

	for _, tt := range tests {
		got, err := ParseScore(tt.line)
		require.NoError(t, err, "line %q", tt.line)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseScore_Invalid(t *testing.T) {
	for _, line := range []string{"abc", "", "   ", "12abc", "1,5"} {
		_, err := ParseScore(line)
		assert.Error(t, err, "line %q", line)
	}
}

func TestScoreReader_ReadLine(t *testing.T) {
	reader := NewScoreReader(strings.NewReader("  85  \nquit\n"))

	line, ok := reader.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "85", line)

	line, ok = reader.ReadLine()
	require.True(t, ok)
	assert.Equal(t, "quit", line)

	_, ok = reader.ReadLine()
	assert.False(t, ok, "end of input")
}
