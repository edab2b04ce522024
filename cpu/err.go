package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

var (
	// Cpu errors
	ErrHalt              = errors.New(f("halt"))
	ErrJumpTargetInvalid = errors.New(f("jump target invalid"))
	ErrChannelInvalid    = errors.New(f("channel invalid"))
	ErrProgramMissing    = errors.New(f("program missing"))

	// Assembler errors
	ErrInstructionUnknown = errors.New(f("instruction unknown"))
	ErrAddressInvalid     = errors.New(f("address invalid"))
	ErrRegisterInvalid    = errors.New(f("register out of range"))
	ErrTargetInvalid      = errors.New(f("target negative"))
	ErrOperandMissing     = errors.New(f("operand missing"))

	// Preset errors
	ErrPresetNotInt = errors.New(f("not an integer"))
)

type ErrSyntax struct {
	Index  int // Index of the instruction being decoded.
	LineNo int // Source line of the instruction's mnemonic.
	Line   string
	Err    error
}

func (err *ErrSyntax) Error() string {
	return f("instruction %v (line %v) '%v' %v", strconv.Itoa(err.Index), strconv.Itoa(err.LineNo), err.Line, err.Err)
}

func (err *ErrSyntax) Unwrap() error {
	return err.Err
}

type ErrParseNumber string

func (err ErrParseNumber) Error() string {
	return f("'%v' is not a number", string(err))
}

type ErrPreset struct {
	Name string
	Err  error
}

func (err *ErrPreset) Error() string {
	return f("preset %v: %v", err.Name, err.Err)
}

func (err *ErrPreset) Unwrap() error {
	return err.Err
}
