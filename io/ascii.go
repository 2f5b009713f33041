package io

import (
	"bufio"
	"fmt"
	"io"
)

// ASCII_LIMIT is the first output value written as a decimal line rather
// than as a character.
const ASCII_LIMIT = 128

// Ascii provides character I/O. Each input byte is one value; outputs
// below ASCII_LIMIT are written as bytes, larger ones as decimal lines.
type Ascii struct {
	Input  io.Reader
	Output io.Writer

	reader *bufio.Reader
}

var _ Channel = (*Ascii)(nil)

// Rewind is not possible on a character tape.
func (ac *Ascii) Rewind() {
}

// Receive reads the next byte of input as a value.
func (ac *Ascii) Receive() (value int64, ok bool, err error) {
	if ac.Input == nil {
		return
	}

	if ac.reader == nil {
		ac.reader = bufio.NewReader(ac.Input)
	}

	b, err := ac.reader.ReadByte()
	if err == io.EOF {
		err = nil
		return
	}
	if err != nil {
		return
	}

	value = int64(b)
	ok = true
	return
}

// Send writes a value as a character, or as a decimal line when it is
// not a character.
func (ac *Ascii) Send(value int64) (err error) {
	if ac.Output == nil {
		return
	}

	if value >= 0 && value < ASCII_LIMIT {
		_, err = ac.Output.Write([]byte{byte(value)})
		return
	}

	_, err = fmt.Fprintln(ac.Output, value)
	return
}
