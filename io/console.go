package io

import (
	"errors"
	"fmt"
	"io"
	"math/big"
	"strings"

	"github.com/chzyer/readline"
)

// Console is an interactive terminal channel with line editing.
// Invalid input is reported and the prompt repeated.
type Console struct {
	Prefix string // Written before each sent value.

	rl *readline.Instance
}

// IsTerminal returns true if fd is a terminal suitable for a Console.
func IsTerminal(fd uintptr) bool {
	return readline.IsTerminal(int(fd))
}

// NewConsole opens a console on the process terminal.
func NewConsole(prompt string, prefix string) (con *Console, err error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:                 prompt,
		DisableAutoSaveHistory: true,
	})
	if err != nil {
		return
	}

	con = &Console{
		Prefix: prefix,
		rl:     rl,
	}

	return
}

// Close releases the terminal.
func (con *Console) Close() error {
	return con.rl.Close()
}

// Rewind is not possible on a console.
func (con *Console) Rewind() {
}

// Receive prompts until an integer is entered.
func (con *Console) Receive() (value *big.Int, err error) {
	for {
		var line string
		line, err = con.rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) || errors.Is(err, io.EOF) {
			err = ErrInputEnd
			return
		}
		if err != nil {
			return
		}

		line = strings.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		var ok bool
		value, ok = new(big.Int).SetString(line, 10)
		if ok {
			return
		}

		fmt.Fprintln(con.rl.Stderr(), ErrNumber(line).Error())
	}
}

// Send writes an integer to the terminal.
func (con *Console) Send(value *big.Int) (err error) {
	_, err = fmt.Fprintf(con.rl.Stdout(), "%v%v\n", con.Prefix, value)
	return
}
