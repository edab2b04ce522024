package cpu

import (
	"iter"
	"strings"
)

// Line is a decoded instruction with its source location.
type Line struct {
	LineNo int      // Source text line of the mnemonic, from 1.
	Words  []string // Source words of the instruction.
	Instruction
}

// Program is an ordered instruction listing. The index of a line is its
// jump target address.
type Program struct {
	Lines []Line
}

// Len returns the number of instructions in the program.
func (prog *Program) Len() int {
	if prog == nil {
		return 0
	}
	return len(prog.Lines)
}

// Fetch returns the instruction at ip.
func (prog *Program) Fetch(ip int) (ins Instruction, ok bool) {
	if ip < 0 || ip >= prog.Len() {
		return
	}

	return prog.Lines[ip].Instruction, true
}

// Debug returns the source line for ip, or nil if ip is not in the program.
func (prog *Program) Debug(ip int) (line *Line) {
	if ip < 0 || ip >= prog.Len() {
		return
	}

	return &prog.Lines[ip]
}

// Instructions iterates the program's instructions by address.
func (prog *Program) Instructions() iter.Seq2[int, Instruction] {
	return func(yield func(ip int, ins Instruction) bool) {
		for ip := range prog.Len() {
			if !yield(ip, prog.Lines[ip].Instruction) {
				return
			}
		}
	}
}

// String returns the program in its source format, one instruction per line.
func (prog *Program) String() string {
	var text strings.Builder
	for _, ins := range prog.Instructions() {
		text.WriteString(Format(ins))
		text.WriteString("\n")
	}

	return text.String()
}
