package prompt

import (
	"bytes"
	"errors"
	"strings"
	"testing"
)

func TestLineReader_ReadsLinesInOrder(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader("first\r\nsecond\n"), &out)

	got, err := r.Ask("one? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "first" {
		t.Errorf("first answer = %q, want %q", got, "first")
	}

	got, err = r.Ask("two? ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "second" {
		t.Errorf("second answer = %q, want %q", got, "second")
	}

	if out.String() != "one? two? " {
		t.Errorf("prompts written = %q, want %q", out.String(), "one? two? ")
	}
}

func TestLineReader_UnterminatedFinalLine(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader("last"), &out)

	got, err := r.Ask("> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "last" {
		t.Errorf("answer = %q, want %q", got, "last")
	}

	if _, err := r.Ask("> "); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("error after final line = %v, want ErrInputClosed", err)
	}
}

func TestLineReader_EmptyInputIsClosed(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader(""), &out)

	if _, err := r.Ask("> "); !errors.Is(err, ErrInputClosed) {
		t.Fatalf("error = %v, want ErrInputClosed", err)
	}
}

func TestLineReader_BlankLineIsNotClosed(t *testing.T) {
	var out bytes.Buffer
	r := NewLineReader(strings.NewReader("\n"), &out)

	got, err := r.Ask("> ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "" {
		t.Errorf("answer = %q, want empty", got)
	}
}
