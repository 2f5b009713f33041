package io

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"unicode"
)

// Tape provides sequential decimal I/O. Input values are separated by
// whitespace or commas; each output value is written on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Prompt       string    // Written to PromptOutput before each read, if set.
	PromptOutput io.Writer // Destination for the prompt.

	scanner *bufio.Scanner
}

var _ Channel = (*Tape)(nil)

// scanValues is a bufio.SplitFunc yielding whitespace or comma separated words.
func scanValues(data []byte, atEOF bool) (advance int, token []byte, err error) {
	isSep := func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	}

	start := 0
	for start < len(data) && isSep(rune(data[start])) {
		start++
	}

	for i := start; i < len(data); i++ {
		if isSep(rune(data[i])) {
			return i + 1, data[start:i], nil
		}
	}

	if atEOF && len(data) > start {
		return len(data), data[start:], nil
	}

	// Request more data, dropping the leading separators.
	return start, nil, nil
}

// Rewind is not possible on a tape.
func (tc *Tape) Rewind() {
}

// Receive reads the next decimal value from the input.
func (tc *Tape) Receive() (value int64, ok bool, err error) {
	if tc.Input == nil {
		return
	}

	if tc.scanner == nil {
		tc.scanner = bufio.NewScanner(tc.Input)
		tc.scanner.Split(scanValues)
	}

	if tc.PromptOutput != nil && len(tc.Prompt) != 0 {
		fmt.Fprint(tc.PromptOutput, tc.Prompt)
	}

	if !tc.scanner.Scan() {
		err = tc.scanner.Err()
		return
	}

	text := tc.scanner.Text()
	value, err = strconv.ParseInt(text, 10, 64)
	if err != nil {
		err = ErrValue(text)
		return
	}

	ok = true
	return
}

// Send writes a value to the output as a decimal line.
func (tc *Tape) Send(value int64) (err error) {
	if tc.Output == nil {
		return
	}

	_, err = fmt.Fprintln(tc.Output, value)
	return
}
