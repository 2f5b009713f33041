// Package io provides value channels that feed a tape machine its inputs
// and collect its outputs: decimal text tapes (Tape), character tapes
// (Ascii) and in-memory FIFOs (Queue) for wiring machines to each other.
package io

// Channel is a sequential source and sink of machine values.
type Channel interface {
	// Rewind resets the channel to its initial state, where possible.
	Rewind()
	// Receive returns the next value; ok is unset when no value is ready.
	Receive() (value int64, ok bool, err error)
	// Send writes a single value to the channel.
	Send(value int64) error
}
