package cli

import (
	"bufio"
	"context"
	"errors"
	"io"
	"strings"
)

// ErrInputCancelled is returned when input is canceled by context.
var ErrInputCancelled = errors.New("input canceled")

// Reader provides context-aware line reading so prompts abort on SIGINT.
type Reader struct {
	reader *bufio.Reader
}

// NewReader wraps an input stream, usually os.Stdin.
func NewReader(r io.Reader) *Reader {
	if r == nil {
		panic("reader cannot be nil")
	}
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine reads one trimmed line, respecting context cancellation. The
// underlying read keeps running after cancellation; the caller just stops
// waiting for it.
func (r *Reader) ReadLine(ctx context.Context) (string, error) {
	type result struct {
		err   error
		value string
	}
	resultCh := make(chan result, 1)

	go func() {
		value, err := r.reader.ReadString('\n')
		resultCh <- result{value: value, err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ErrInputCancelled
	case res := <-resultCh:
		if res.err != nil {
			return "", res.err
		}
		return strings.TrimSpace(res.value), nil
	}
}

// Confirm asks a yes/no question and reports the answer. Anything but an
// explicit yes counts as no.
func (r *Reader) Confirm(ctx context.Context, w io.Writer, question string) (bool, error) {
	if _, err := io.WriteString(w, FormatPrompt(question+" [y/N]")); err != nil {
		return false, err
	}

	line, err := r.ReadLine(ctx)
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "y", "yes":
		return true, nil
	default:
		return false, nil
	}
}
