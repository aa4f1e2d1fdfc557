package cli

import (
	"context"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLineReader_ReadLines(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty", "", nil},
		{"single line no newline", "1 book at 12.49", []string{"1 book at 12.49"}},
		{"crlf", "1 book at 12.49\r\n1 music CD at 14.99\r\n", []string{"1 book at 12.49", "1 music CD at 14.99"}},
		{"blank lines kept", "a\n\nb\n", []string{"a", "", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lines, err := NewLineReader(strings.NewReader(tt.input)).ReadLines(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, lines)
		})
	}
}

func TestLineReader_Cancelled(t *testing.T) {
	pr, pw := io.Pipe()
	defer pw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewLineReader(pr).ReadLines(ctx)
	assert.ErrorIs(t, err, ErrInputCancelled)
}

func TestNewLineReader_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewLineReader(nil) })
}
