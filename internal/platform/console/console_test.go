package console

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func newTestReader(input string) (*Reader, *bytes.Buffer) {
	var out bytes.Buffer
	return NewReader(strings.NewReader(input), &out), &out
}

func TestReadIntInRangeRepromptsOnGarbage(t *testing.T) {
	r, out := newTestReader("abc\n\n99\n5\n")
	n, err := r.ReadIntInRange("Choose: ", 1, 5)
	if err != nil {
		t.Fatalf("ReadIntInRange: %v", err)
	}
	if n != 5 {
		t.Errorf("n = %d, want 5", n)
	}
	if !strings.Contains(out.String(), "Invalid input") {
		t.Error("expected an invalid-input message")
	}
	if !strings.Contains(out.String(), "between 1 and 5") {
		t.Error("expected an out-of-range message")
	}
}

func TestReadIntInRangeAcceptsBounds(t *testing.T) {
	r, _ := newTestReader("1\n")
	if n, err := r.ReadIntInRange("", 1, 2); err != nil || n != 1 {
		t.Errorf("got %d, %v; want 1, nil", n, err)
	}
	r, _ = newTestReader("2\n")
	if n, err := r.ReadIntInRange("", 1, 2); err != nil || n != 2 {
		t.Errorf("got %d, %v; want 2, nil", n, err)
	}
}

func TestReadNonEmptyLineReprompts(t *testing.T) {
	r, out := newTestReader("\n\nJane Doe\n")
	line, err := r.ReadNonEmptyLine("Name: ")
	if err != nil {
		t.Fatalf("ReadNonEmptyLine: %v", err)
	}
	if line != "Jane Doe" {
		t.Errorf("line = %q, want %q", line, "Jane Doe")
	}
	if !strings.Contains(out.String(), "cannot be empty") {
		t.Error("expected an empty-input message")
	}
}

func TestReadPositiveAmount(t *testing.T) {
	r, out := newTestReader("zero\n-4\n0\n12.50\n")
	amount, err := r.ReadPositiveAmount("Amount: $")
	if err != nil {
		t.Fatalf("ReadPositiveAmount: %v", err)
	}
	if amount.String() != "12.5" {
		t.Errorf("amount = %s, want 12.5", amount)
	}
	if got := strings.Count(out.String(), "Invalid amount."); got != 3 {
		t.Errorf("invalid-amount messages = %d, want 3", got)
	}
}

func TestEOFSurfacesAsError(t *testing.T) {
	r, _ := newTestReader("")
	if _, err := r.ReadLine("x: "); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF", err)
	}
	r, _ = newTestReader("\n")
	if _, err := r.ReadNonEmptyLine(""); !errors.Is(err, io.EOF) {
		t.Errorf("err = %v, want io.EOF after exhausting input", err)
	}
}
