package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
	"sync"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// LineReader reads newline-delimited input and can be interrupted by a context.
// A read abandoned on cancellation still consumes the next line from the
// underlying reader, so a LineReader must not be reused after ReadLine or
// ReadLines returns ErrInputCancelled.
type LineReader struct {
	reader      *bufio.Reader
	readingLock sync.Mutex
}

// NewLineReader creates a new line reader.
func NewLineReader(reader io.Reader) *LineReader {
	if reader == nil {
		panic("reader cannot be nil")
	}

	return &LineReader{
		reader: bufio.NewReader(reader),
	}
}

// ReadLine reads one line without its trailing newline. At end of input it
// returns the final partial line, if any, together with io.EOF.
func (r *LineReader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		r.readingLock.Lock()
		defer r.readingLock.Unlock()

		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		// The read goroutine finishes on its own once input arrives.
		return "", ErrInputCancelled
	case res := <-resultCh:
		return strings.TrimRight(res.value, "\r\n"), res.err
	}
}

// ReadLines reads until end of input.
func (r *LineReader) ReadLines(ctx context.Context) ([]string, error) {
	var lines []string
	for {
		line, err := r.ReadLine(ctx)
		if errors.Is(err, io.EOF) {
			if line != "" {
				lines = append(lines, line)
			}
			return lines, nil
		}
		if err != nil {
			return nil, err
		}
		lines = append(lines, line)
	}
}
