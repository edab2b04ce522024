// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package cpu

import (
	"errors"
	"io"
	"log"
	"slices"
	"strconv"
	"strings"

	rmio "github.com/ezrec/regmach/io"
)

// Assembler decodes and validates register machine source text.
type Assembler struct {
	Verbose bool   // If set, verbosely logs the assembler actions.
	Lines   []Line // Lines decoded by the last Parse.
}

// operand decodes and validates a single operand.
func (asm *Assembler) operand(kind Operand, text string) (value int, err error) {
	value, err = strconv.Atoi(text)
	if err != nil {
		err = errors.Join(ErrAddressInvalid, ErrParseNumber(text))
		return
	}

	err = kind.Check(value)
	return
}

// Parse decodes an input stream into a Program.
// Decoding stops at the first invalid instruction.
func (asm *Assembler) Parse(input io.Reader) (prog *Program, err error) {
	asm.Lines = asm.Lines[:0]

	var index int
	var lineno int
	var current []string

	defer func() {
		if err != nil {
			err = &ErrSyntax{Index: index, LineNo: lineno, Line: strings.Join(current, " "), Err: err}
		}
	}()

	words := rmio.NewWordReader(input)
	for {
		index = len(asm.Lines)
		current = nil

		var mnemonic string
		mnemonic, lineno, err = words.Next()
		if errors.Is(err, io.EOF) {
			err = nil
			break
		}
		if err != nil {
			lineno = words.LineNo()
			return
		}

		current = []string{mnemonic}

		op := LookupOpcode(mnemonic)
		if op == OP_ERROR {
			err = ErrInstructionUnknown
			return
		}

		kinds := op.Operands()
		args := make([]int, 0, len(kinds))
		for _, kind := range kinds {
			var text string
			text, _, err = words.Next()
			if errors.Is(err, io.EOF) {
				err = errors.Join(ErrAddressInvalid, ErrOperandMissing)
				return
			}
			if err != nil {
				return
			}
			current = append(current, text)

			var arg int
			arg, err = asm.operand(kind, text)
			if err != nil {
				return
			}
			args = append(args, arg)
		}

		var ins Instruction
		ins, err = MakeInstruction(op, args...)
		if err != nil {
			return
		}

		if asm.Verbose {
			log.Print(f("asm: %d: %v", index, Format(ins)))
		}

		asm.Lines = append(asm.Lines, Line{LineNo: lineno, Words: current, Instruction: ins})
	}

	prog = &Program{
		Lines: slices.Clone(asm.Lines),
	}

	return
}
