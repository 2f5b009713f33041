package cpu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErr_Digits(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		err  error
		text string
	}){
		{ErrInstruction{Pc: 1234, Word: 1101}, "pc 1234: add.immediate.immediate.position (1101)"},
		{ErrAddress(math.MinInt64), "address -9223372036854775808 out of range"},
		{ErrAddress(4096), "address 4096 out of range"},
		{ErrParse{Index: 2048, Text: "x"}, "cell 2048 'x' is not a number"},
	}

	for _, entry := range table {
		assert.Equal(entry.text, entry.err.Error())
	}
}
