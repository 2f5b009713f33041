package io

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAscii_Receive(t *testing.T) {
	assert := assert.New(t)

	ascii := &Ascii{Input: strings.NewReader("A,1\n")}

	var values []int64
	for {
		value, ok, err := ascii.Receive()
		assert.NoError(err)
		if !ok {
			break
		}
		values = append(values, value)
	}

	assert.Equal([]int64{'A', ',', '1', '\n'}, values)
}

func TestAscii_Send(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	ascii := &Ascii{Output: output}

	for _, value := range []int64{'#', '.', '\n', 1234567, -5} {
		assert.NoError(ascii.Send(value))
	}

	assert.Equal("#.\n1234567\n-5\n", output.String())
}
