package emulator

import (
	"strconv"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

// ErrRuntime indicates the location of a runtime error.
type ErrRuntime struct {
	Ip     int // Instruction pointer at the fault.
	LineNo int // Source line of the faulting instruction, 0 if none.
	Err    error
}

func (err *ErrRuntime) Error() string {
	if err.LineNo == 0 {
		return f("instruction %v %v", strconv.Itoa(err.Ip), err.Err)
	}
	return f("instruction %v (line %v) %v", strconv.Itoa(err.Ip), strconv.Itoa(err.LineNo), err.Err)
}

func (err *ErrRuntime) Unwrap() error {
	return err.Err
}
