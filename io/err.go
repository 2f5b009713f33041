package io

import (
	"errors"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Channel errors
	ErrChannelFull  = errors.New(f("channel full"))
	ErrChannelValue = errors.New(f("channel value"))
)

// ErrValue is tape text that is not a decimal integer.
type ErrValue string

func (err ErrValue) Error() string {
	return f("'%v' is not a number", string(err))
}

func (err ErrValue) Unwrap() error {
	return ErrChannelValue
}
