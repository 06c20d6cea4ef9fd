// Package prompt asks the user for one line of text at a time.
package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrInputClosed is returned once the input source has no more lines.
var ErrInputClosed = errors.New("prompt: end of input")

// Prompter asks a question and blocks until a line of text is supplied.
type Prompter interface {
	Ask(label string) (string, error)
}

// LineReader is a line-oriented Prompter over any reader. It writes the
// label to out and reads up to the next newline from in.
type LineReader struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineReader returns a LineReader reading from in and prompting on out.
func NewLineReader(in io.Reader, out io.Writer) *LineReader {
	return &LineReader{in: bufio.NewReader(in), out: out}
}

// Ask writes label and returns the next line without its line terminator.
// A final line with no trailing newline is still returned; only a read that
// yields nothing at all reports ErrInputClosed.
func (r *LineReader) Ask(label string) (string, error) {
	if _, err := fmt.Fprint(r.out, label); err != nil {
		return "", fmt.Errorf("writing prompt: %w", err)
	}

	line, err := r.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("reading input: %w", err)
		}
		if line == "" {
			// Keep the transcript tidy when the stream ends mid-prompt.
			fmt.Fprintln(r.out)
			return "", ErrInputClosed
		}
	}

	return strings.TrimRight(line, "\r\n"), nil
}
