package emulator

import (
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Pc    int64
	Ticks int
	Err   error
}

func (err *ErrRuntime) Error() string {
	return f("pc %v tick %v %v", strconv.FormatInt(err.Pc, 10), strconv.Itoa(err.Ticks), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
