package main

import (
	"errors"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/ezrec/regmach/cpu"
	"github.com/ezrec/regmach/emulator"
	rmio "github.com/ezrec/regmach/io"
	"github.com/ezrec/regmach/translate"
)

// runOptions are the flags of the root command.
type runOptions struct {
	verbose   bool
	quiet     bool
	input     string
	output    string
	registers string
	seed      uint64
	seedSet   bool
}

// loadProgram reads and validates a program file.
func loadProgram(path string, verbose bool) (prog *cpu.Program, err error) {
	inf, err := os.Open(path)
	if err != nil {
		return
	}
	defer inf.Close()

	asm := &cpu.Assembler{Verbose: verbose}
	prog, err = asm.Parse(inf)
	return
}

// seeder builds the register seeder selected by the flags.
func (opts *runOptions) seeder() (seeder cpu.Seeder, err error) {
	seeder = cpu.TimeSeeder()
	if opts.seedSet {
		seeder = cpu.NewRandomSeeder(opts.seed)
	}

	if len(opts.registers) == 0 {
		return
	}

	preset, err := cpu.ParsePresets(opts.registers)
	if err != nil {
		return
	}

	seeder = &cpu.PresetSeeder{Preset: preset, Fallback: seeder}
	return
}

// run loads and executes the program at path.
func (opts *runOptions) run(path string, stdout io.Writer) (err error) {
	status := stdout
	if opts.quiet {
		status = nil
	}

	translate.Fprintln(status, "Reading program.")
	prog, err := loadProgram(path, opts.verbose)
	if err != nil {
		return
	}
	translate.Fprintln(status, "Finished reading program (lines: %v).", strconv.Itoa(prog.Len()))

	seeder, err := opts.seeder()
	if err != nil {
		return
	}

	emu := emulator.NewEmulator()
	emu.Verbose = opts.verbose
	emu.Program = prog
	emu.Cpu.Seeder = seeder
	emu.Tape.Output = stdout
	emu.Tape.Prefix = "> "

	if opts.input == "-" {
		if rmio.IsTerminal(os.Stdin.Fd()) {
			var con *rmio.Console
			con, err = rmio.NewConsole("? ", "> ")
			if err != nil {
				return
			}
			defer con.Close()
			emu.Cpu.Input = con
			emu.Cpu.Output = con
		} else {
			emu.Tape.Input = os.Stdin
		}
	} else {
		var inf *os.File
		inf, err = os.Open(opts.input)
		if err != nil {
			return
		}
		defer inf.Close()
		emu.Tape.Input = inf
	}

	if opts.output != "-" {
		var ouf *os.File
		ouf, err = os.Create(opts.output)
		if err != nil {
			return
		}
		defer func() {
			err = errors.Join(err, ouf.Close())
		}()
		emu.Tape.Output = ouf
		emu.Tape.Prefix = ""
		emu.Cpu.Output = &emu.Tape
	}

	err = emu.Reset()
	if err != nil {
		return
	}

	translate.Fprintln(status, "Running program.")
	cost, err := emu.Run()
	if err != nil {
		if opts.verbose {
			log.Print(emu.Cpu.String())
		}
		return
	}
	translate.Fprintln(status, "Finished program (cost: %v).", cost)

	if opts.quiet {
		_, err = io.WriteString(stdout, cost.String()+"\n")
	}

	return
}
