// Package cpu implements the register machine and its program loader.
//
// The machine has ten registers (r0-r9) holding unbounded integers, a sparse
// store addressed by register contents, an instruction pointer indexing the
// program, and a cost counter charged a fixed weight per executed instruction.
//
// The assembler reads whitespace separated mnemonics and their integer
// operands, validating register operands before any instruction executes.
package cpu
