// Package console provides the line-oriented prompt helpers the session layer
// runs on: read an integer within a range, read a non-empty line, read a
// positive monetary amount. Every helper re-prompts until the input is valid,
// blocking the single interactive thread; EOF is surfaced as an error so the
// caller can end the session cleanly.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Reader prompts on out and reads line-wise from in.
type Reader struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewReader(in io.Reader, out io.Writer) *Reader {
	return &Reader{in: bufio.NewScanner(in), out: out}
}

// Printf writes formatted output to the console.
func (r *Reader) Printf(format string, args ...interface{}) {
	fmt.Fprintf(r.out, format, args...)
}

// ReadLine prompts once and returns the next line, which may be empty.
func (r *Reader) ReadLine(prompt string) (string, error) {
	if prompt != "" {
		fmt.Fprint(r.out, prompt)
	}
	if !r.in.Scan() {
		if err := r.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(r.in.Text()), nil
}

// ReadNonEmptyLine re-prompts until a non-empty line is supplied.
func (r *Reader) ReadNonEmptyLine(prompt string) (string, error) {
	for {
		line, err := r.ReadLine(prompt)
		if err != nil {
			return "", err
		}
		if line == "" {
			fmt.Fprintln(r.out, "Input cannot be empty. Try again.")
			continue
		}
		return line, nil
	}
}

// ReadIntInRange re-prompts until a line parses as an integer in [min, max].
func (r *Reader) ReadIntInRange(prompt string, min, max int) (int, error) {
	for {
		line, err := r.ReadLine(prompt)
		if err != nil {
			return 0, err
		}
		n, convErr := strconv.Atoi(line)
		if convErr != nil {
			fmt.Fprintln(r.out, "Invalid input. Enter a number.")
			continue
		}
		if n < min || n > max {
			fmt.Fprintf(r.out, "Enter a number between %d and %d.\n", min, max)
			continue
		}
		return n, nil
	}
}

// ReadPositiveAmount re-prompts until a line parses as a decimal greater
// than zero.
func (r *Reader) ReadPositiveAmount(prompt string) (decimal.Decimal, error) {
	for {
		line, err := r.ReadLine(prompt)
		if err != nil {
			return decimal.Zero, err
		}
		amount, convErr := decimal.NewFromString(line)
		if convErr != nil || amount.Sign() <= 0 {
			fmt.Fprintln(r.out, "Invalid amount.")
			continue
		}
		return amount, nil
	}
}
