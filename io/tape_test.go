package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTape_Receive(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("1, 2\n-3\t4,,\n 1125899906842624 ")}

	var values []int64
	for {
		value, ok, err := tape.Receive()
		assert.NoError(err)
		if !ok {
			break
		}
		values = append(values, value)
	}

	assert.Equal([]int64{1, 2, -3, 4, 1125899906842624}, values)
}

func TestTape_Receive_Bad(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{Input: strings.NewReader("7 seven")}

	value, ok, err := tape.Receive()
	assert.NoError(err)
	assert.True(ok)
	assert.Equal(int64(7), value)

	_, ok, err = tape.Receive()
	assert.False(ok)
	assert.ErrorIs(err, ErrChannelValue)
	assert.Equal(ErrValue("seven"), err)
}

func TestTape_Receive_NoInput(t *testing.T) {
	assert := assert.New(t)

	tape := &Tape{}
	_, ok, err := tape.Receive()
	assert.NoError(err)
	assert.False(ok)
}

func TestTape_Prompt(t *testing.T) {
	assert := assert.New(t)

	prompt := &bytes.Buffer{}
	tape := &Tape{
		Input:        strings.NewReader("5\n6\n"),
		Prompt:       "? ",
		PromptOutput: prompt,
	}

	tape.Receive()
	tape.Receive()
	assert.Equal("? ? ", prompt.String())
}

func TestTape_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	tape := &Tape{Output: output}

	assert.NoError(tape.Send(42))
	assert.NoError(tape.Send(-1))
	assert.Equal("42\n-1\n", output.String())

	// No output is a sink.
	assert.NoError((&Tape{}).Send(1))
}
