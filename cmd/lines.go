package cmd

import (
	"bufio"
	"errors"
	"io"
	"strings"
)

// lineReader reads trimmed lines of any length and counts them for diagnostics.
type lineReader struct {
	reader *bufio.Reader
	n      int
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{reader: bufio.NewReader(r)}
}

// Next returns the next line without its surrounding spaces, or io.EOF.
func (r *lineReader) Next() (string, error) {
	line, err := r.reader.ReadString('\n')
	if errors.Is(err, io.EOF) && line == "" {
		return "", io.EOF
	}
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	r.n++
	return strings.TrimSpace(line), nil
}

// N returns the number of the last line read, starting at 1.
func (r *lineReader) N() int { return r.n }
