// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"
	"log"
	"math/big"

	"github.com/ezrec/regmach/cpu"
	"github.com/ezrec/regmach/io"
)

// Emulator state. CPU + program + IO channel.
type Emulator struct {
	Verbose  bool         // If set, enables verbose logging.
	*cpu.Cpu              // Reference to the CPU simulation.
	Program  *cpu.Program // Reference to the currently running program listing.

	Tape io.Tape // Default READ/WRITE channel.
}

// NewEmulator creates a new emulator with wall-clock seeded registers.
func NewEmulator() (emu *Emulator) {
	emu = &Emulator{
		Cpu:     cpu.NewCpu(cpu.TimeSeeder()),
		Program: &cpu.Program{},
	}

	emu.Cpu.Input = &emu.Tape
	emu.Cpu.Output = &emu.Tape

	return
}

// Reset the emulator to the start of the program.
func (emu *Emulator) Reset() (err error) {
	emu.Cpu.Verbose = emu.Verbose

	err = emu.Cpu.Reset(emu.Program)
	return
}

// Cost returns the cost accumulated since a reset.
func (emu *Emulator) Cost() *big.Int {
	return new(big.Int).Set(emu.Cpu.Cost)
}

// Ticks returns the total instructions executed since a reset.
func (emu *Emulator) Ticks() int {
	return emu.Cpu.Ticks
}

// Ip returns current instruction pointer.
func (emu *Emulator) Ip() int {
	return emu.Cpu.Ip
}

// Line returns the current source line, or nil if the instruction
// pointer is outside of the program.
func (emu *Emulator) Line() *cpu.Line {
	return emu.Program.Debug(emu.Cpu.Ip)
}

// LineNo returns the source line number for the executing instruction.
func (emu *Emulator) LineNo() int {
	line := emu.Line()
	if line == nil {
		return 0
	}

	return line.LineNo
}

// Tick performs a single tick of the emulator.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Cpu.Verbose = emu.Verbose

	ip := emu.Ip()
	lineno := emu.LineNo()
	defer func() {
		if err != nil {
			err = &ErrRuntime{Ip: ip, LineNo: lineno, Err: err}
		}
	}()

	err = emu.Cpu.Tick()
	if errors.Is(err, cpu.ErrHalt) {
		err = nil
		done = true
		return
	}
	if errors.Is(err, cpu.ErrJumpTargetInvalid) {
		// Report the address jumped to, not the jump.
		ip = emu.Ip()
		lineno = 0
	}

	return
}

// Run ticks the emulator until the program halts, returning its cost.
// No cost is returned on failure.
func (emu *Emulator) Run() (cost *big.Int, err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	if emu.Verbose {
		log.Print(f("emulator: halt after %d instructions", emu.Ticks()))
	}

	cost = emu.Cost()
	return
}
