package io

import (
	"errors"
	"fmt"
	"io"
	"math/big"
)

// Tape provides integer I/O over byte streams.
// Input is read as whitespace separated decimal integers; each output
// integer is written on its own line.
type Tape struct {
	Input  io.Reader
	Output io.Writer

	Prompt string // Written to Output before each Receive.
	Prefix string // Written to Output before each sent value.

	words *WordReader
}

// Rewind drops any buffered input and, when Input is an io.Seeker,
// returns it to its start. Other readers can only be rewound before the
// first Receive.
func (tc *Tape) Rewind() {
	tc.words = nil

	seeker, ok := tc.Input.(io.Seeker)
	if ok {
		// Pipes and terminals report seek errors; they stay where they are.
		_, _ = seeker.Seek(0, io.SeekStart)
	}
}

// Receive reads the next integer from the input stream.
func (tc *Tape) Receive() (value *big.Int, err error) {
	if tc.Input == nil {
		err = ErrInputEnd
		return
	}

	if tc.words == nil {
		tc.words = NewWordReader(tc.Input)
	}

	if len(tc.Prompt) != 0 && tc.Output != nil {
		_, err = io.WriteString(tc.Output, tc.Prompt)
		if err != nil {
			return
		}
	}

	word, _, err := tc.words.Next()
	if errors.Is(err, io.EOF) {
		err = ErrInputEnd
		return
	}
	if err != nil {
		return
	}

	value, ok := new(big.Int).SetString(word, 10)
	if !ok {
		value = nil
		err = ErrNumber(word)
		return
	}

	return
}

// Send writes an integer to the output stream.
func (tc *Tape) Send(value *big.Int) (err error) {
	if tc.Output == nil {
		err = ErrOutputClosed
		return
	}

	_, err = fmt.Fprintf(tc.Output, "%v%v\n", tc.Prefix, value)
	return
}
