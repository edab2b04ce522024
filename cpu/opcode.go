package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// REGISTER_COUNT is the size of the register bank.
const REGISTER_COUNT = 10

// Opcode is an instruction mnemonic.
type Opcode int

//go:generate go tool stringer -linecomment -type=Opcode
const (
	OP_READ  = Opcode(0)  // READ
	OP_WRITE = Opcode(1)  // WRITE
	OP_LOAD  = Opcode(2)  // LOAD
	OP_STORE = Opcode(3)  // STORE
	OP_COPY  = Opcode(4)  // COPY
	OP_ADD   = Opcode(5)  // ADD
	OP_SUB   = Opcode(6)  // SUB
	OP_SHR   = Opcode(7)  // SHR
	OP_SHL   = Opcode(8)  // SHL
	OP_INC   = Opcode(9)  // INC
	OP_DEC   = Opcode(10) // DEC
	OP_RESET = Opcode(11) // RESET
	OP_JUMP  = Opcode(12) // JUMP
	OP_JZERO = Opcode(13) // JZERO
	OP_JODD  = Opcode(14) // JODD
	OP_HALT  = Opcode(15) // HALT
	OP_ERROR = Opcode(16) // ERROR
)

// Operand is the kind of an instruction operand.
type Operand int

const (
	ARG_REGISTER = Operand(0) // Register index, 0 to REGISTER_COUNT-1.
	ARG_TARGET   = Operand(1) // Program line index, non-negative.
)

var opcodeOperands = [...][]Operand{
	OP_READ:  {ARG_REGISTER},
	OP_WRITE: {ARG_REGISTER},
	OP_LOAD:  {ARG_REGISTER, ARG_REGISTER},
	OP_STORE: {ARG_REGISTER, ARG_REGISTER},
	OP_COPY:  {ARG_REGISTER, ARG_REGISTER},
	OP_ADD:   {ARG_REGISTER, ARG_REGISTER},
	OP_SUB:   {ARG_REGISTER, ARG_REGISTER},
	OP_SHR:   {ARG_REGISTER},
	OP_SHL:   {ARG_REGISTER},
	OP_INC:   {ARG_REGISTER},
	OP_DEC:   {ARG_REGISTER},
	OP_RESET: {ARG_REGISTER},
	OP_JUMP:  {ARG_TARGET},
	OP_JZERO: {ARG_REGISTER, ARG_TARGET},
	OP_JODD:  {ARG_REGISTER, ARG_TARGET},
	OP_HALT:  {},
}

var opcodeCost = [...]int64{
	OP_READ:  100,
	OP_WRITE: 100,
	OP_LOAD:  20,
	OP_STORE: 20,
	OP_COPY:  1,
	OP_ADD:   5,
	OP_SUB:   5,
	OP_SHR:   1,
	OP_SHL:   1,
	OP_INC:   1,
	OP_DEC:   1,
	OP_RESET: 1,
	OP_JUMP:  1,
	OP_JZERO: 1,
	OP_JODD:  1,
	OP_HALT:  0,
}

// mnemonicMap maps source mnemonics to opcodes.
var mnemonicMap = func() map[string]Opcode {
	mnemonics := make(map[string]Opcode, len(opcodeOperands))
	for op := range Opcode(len(opcodeOperands)) {
		mnemonics[op.String()] = op
	}
	return mnemonics
}()

// LookupOpcode returns the opcode for a mnemonic, or OP_ERROR.
func LookupOpcode(mnemonic string) Opcode {
	op, ok := mnemonicMap[mnemonic]
	if !ok {
		return OP_ERROR
	}
	return op
}

// Valid returns true for the executable opcodes.
func (op Opcode) Valid() bool {
	return op >= OP_READ && op < OP_ERROR
}

// Operands returns the operand kinds of the opcode, in source order.
func (op Opcode) Operands() []Operand {
	if !op.Valid() {
		return nil
	}
	return opcodeOperands[op]
}

// Cost returns the cost charged when the opcode executes.
func (op Opcode) Cost() int64 {
	if !op.Valid() {
		return 0
	}
	return opcodeCost[op]
}

// Check verifies that value is in range for the operand kind.
// Targets are bounded by the program length only at runtime.
func (kind Operand) Check(value int) (err error) {
	switch kind {
	case ARG_REGISTER:
		if value < 0 || value >= REGISTER_COUNT {
			err = errors.Join(ErrAddressInvalid, ErrRegisterInvalid)
		}
	case ARG_TARGET:
		if value < 0 {
			err = errors.Join(ErrAddressInvalid, ErrTargetInvalid)
		}
	}

	return
}

// Check verifies the operands of an instruction.
func Check(ins Instruction) (err error) {
	if ins == nil || !ins.Opcode().Valid() {
		err = ErrInstructionUnknown
		return
	}

	kinds := ins.Opcode().Operands()
	args := ins.Args()
	if len(args) != len(kinds) {
		err = ErrOperandMissing
		return
	}

	for n, kind := range kinds {
		err = kind.Check(args[n])
		if err != nil {
			return
		}
	}

	return
}

// Instruction is a decoded instruction. It is implemented only by the
// instruction types of this package, one per executable opcode.
type Instruction interface {
	// Opcode returns the instruction's opcode.
	Opcode() Opcode
	// Args returns the operands in source order.
	Args() []int

	instruction()
}

type (
	Read  struct{ Reg int }
	Write struct{ Reg int }
	Load  struct{ Dst, Addr int }
	Store struct{ Src, Addr int }
	Copy  struct{ Dst, Src int }
	Add   struct{ Dst, Src int }
	Sub   struct{ Dst, Src int }
	Shr   struct{ Reg int }
	Shl   struct{ Reg int }
	Inc   struct{ Reg int }
	Dec   struct{ Reg int }
	Reset struct{ Reg int }
	Jump  struct{ Target int }
	JZero struct{ Reg, Target int }
	JOdd  struct{ Reg, Target int }
	Halt  struct{}
)

func (Read) Opcode() Opcode  { return OP_READ }
func (Write) Opcode() Opcode { return OP_WRITE }
func (Load) Opcode() Opcode  { return OP_LOAD }
func (Store) Opcode() Opcode { return OP_STORE }
func (Copy) Opcode() Opcode  { return OP_COPY }
func (Add) Opcode() Opcode   { return OP_ADD }
func (Sub) Opcode() Opcode   { return OP_SUB }
func (Shr) Opcode() Opcode   { return OP_SHR }
func (Shl) Opcode() Opcode   { return OP_SHL }
func (Inc) Opcode() Opcode   { return OP_INC }
func (Dec) Opcode() Opcode   { return OP_DEC }
func (Reset) Opcode() Opcode { return OP_RESET }
func (Jump) Opcode() Opcode  { return OP_JUMP }
func (JZero) Opcode() Opcode { return OP_JZERO }
func (JOdd) Opcode() Opcode  { return OP_JODD }
func (Halt) Opcode() Opcode  { return OP_HALT }

func (ins Read) Args() []int  { return []int{ins.Reg} }
func (ins Write) Args() []int { return []int{ins.Reg} }
func (ins Load) Args() []int  { return []int{ins.Dst, ins.Addr} }
func (ins Store) Args() []int { return []int{ins.Src, ins.Addr} }
func (ins Copy) Args() []int  { return []int{ins.Dst, ins.Src} }
func (ins Add) Args() []int   { return []int{ins.Dst, ins.Src} }
func (ins Sub) Args() []int   { return []int{ins.Dst, ins.Src} }
func (ins Shr) Args() []int   { return []int{ins.Reg} }
func (ins Shl) Args() []int   { return []int{ins.Reg} }
func (ins Inc) Args() []int   { return []int{ins.Reg} }
func (ins Dec) Args() []int   { return []int{ins.Reg} }
func (ins Reset) Args() []int { return []int{ins.Reg} }
func (ins Jump) Args() []int  { return []int{ins.Target} }
func (ins JZero) Args() []int { return []int{ins.Reg, ins.Target} }
func (ins JOdd) Args() []int  { return []int{ins.Reg, ins.Target} }
func (Halt) Args() []int      { return nil }

func (Read) instruction()  {}
func (Write) instruction() {}
func (Load) instruction()  {}
func (Store) instruction() {}
func (Copy) instruction()  {}
func (Add) instruction()   {}
func (Sub) instruction()   {}
func (Shr) instruction()   {}
func (Shl) instruction()   {}
func (Inc) instruction()   {}
func (Dec) instruction()   {}
func (Reset) instruction() {}
func (Jump) instruction()  {}
func (JZero) instruction() {}
func (JOdd) instruction()  {}
func (Halt) instruction()  {}

// MakeInstruction builds the instruction for an opcode from its operands.
// The operand count must match op.Operands(), and each operand must be in
// range for its kind.
func MakeInstruction(op Opcode, args ...int) (ins Instruction, err error) {
	if !op.Valid() {
		err = ErrInstructionUnknown
		return
	}
	if len(args) != len(op.Operands()) {
		err = ErrOperandMissing
		return
	}

	switch op {
	case OP_READ:
		ins = Read{Reg: args[0]}
	case OP_WRITE:
		ins = Write{Reg: args[0]}
	case OP_LOAD:
		ins = Load{Dst: args[0], Addr: args[1]}
	case OP_STORE:
		ins = Store{Src: args[0], Addr: args[1]}
	case OP_COPY:
		ins = Copy{Dst: args[0], Src: args[1]}
	case OP_ADD:
		ins = Add{Dst: args[0], Src: args[1]}
	case OP_SUB:
		ins = Sub{Dst: args[0], Src: args[1]}
	case OP_SHR:
		ins = Shr{Reg: args[0]}
	case OP_SHL:
		ins = Shl{Reg: args[0]}
	case OP_INC:
		ins = Inc{Reg: args[0]}
	case OP_DEC:
		ins = Dec{Reg: args[0]}
	case OP_RESET:
		ins = Reset{Reg: args[0]}
	case OP_JUMP:
		ins = Jump{Target: args[0]}
	case OP_JZERO:
		ins = JZero{Reg: args[0], Target: args[1]}
	case OP_JODD:
		ins = JOdd{Reg: args[0], Target: args[1]}
	case OP_HALT:
		ins = Halt{}
	}

	err = Check(ins)
	if err != nil {
		ins = nil
		return
	}

	return
}

// Format returns the source text of an instruction.
func Format(ins Instruction) string {
	words := []string{ins.Opcode().String()}
	for _, arg := range ins.Args() {
		words = append(words, fmt.Sprintf("%d", arg))
	}
	return strings.Join(words, " ")
}
