// Package io provides the I/O channels read by READ and written by WRITE.
// It includes a stream backed Tape and an interactive line-editing Console.
package io

import (
	"math/big"
)

// Channel is the common interface of all I/O channels.
type Channel interface {
	// Rewind resets the channel to its initial state.
	Rewind()
}

// Input is a channel supplying integers to READ.
type Input interface {
	Channel
	// Receive blocks until the next integer is available.
	Receive() (value *big.Int, err error)
}

// Output is a channel accepting integers from WRITE.
type Output interface {
	Channel
	// Send emits a single integer.
	Send(value *big.Int) error
}
