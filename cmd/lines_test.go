package cmd

import (
	"errors"
	"io"
	"strings"
	"testing"
)

func TestLineReader(t *testing.T) {
	r := newLineReader(strings.NewReader("  2 2 8000  \r\n\n1 a 100.0 1"))
	want := []string{"2 2 8000", "", "1 a 100.0 1"}
	for i, w := range want {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next() #%d unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("Next() #%d = %q, want %q", i, got, w)
		}
		if r.N() != i+1 {
			t.Errorf("N() = %d, want %d", r.N(), i+1)
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at the end = %v, want io.EOF", err)
	}
}

func TestLineReader_LongLine(t *testing.T) {
	long := strings.Repeat("x", 200_000)
	r := newLineReader(strings.NewReader(long + "\nnext\n"))
	for i, w := range []string{long, "next"} {
		got, err := r.Next()
		if err != nil {
			t.Fatalf("Next() #%d unexpected error: %v", i, err)
		}
		if got != w {
			t.Errorf("Next() #%d returned %d bytes, want %d", i, len(got), len(w))
		}
	}
	if _, err := r.Next(); !errors.Is(err, io.EOF) {
		t.Errorf("Next() at the end = %v, want io.EOF", err)
	}
}
