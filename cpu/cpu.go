package cpu

import (
	"fmt"
	"log"
	"math/big"

	"github.com/ezrec/regmach/io"
)

// Cpu is the simulation context for the register machine.
type Cpu struct {
	Verbose bool // Set to enable verbose logging.

	Seeder Seeder    // Source of the initial register values.
	Input  io.Input  // Channel read by READ.
	Output io.Output // Channel written by WRITE.

	Program *Program // Program being executed.

	Ip       int                      // Current instruction pointer.
	Register [REGISTER_COUNT]*big.Int // Register bank.
	Memory   Memory                   // Sparse store.

	Cost  *big.Int // Accumulated instruction cost.
	Ticks int      // Executed instructions counter.
}

// NewCpu creates a new CPU whose registers are initialized by seeder.
func NewCpu(seeder Seeder) (cpu *Cpu) {
	cpu = &Cpu{
		Seeder: seeder,
		Cost:   new(big.Int),
	}

	for n := range cpu.Register {
		cpu.Register[n] = new(big.Int)
	}

	return
}

// String returns the current CPU state as a string.
func (cpu *Cpu) String() (text string) {
	text += fmt.Sprintf("% 5s: %v\n", "ip", cpu.Ip)
	for n, reg := range cpu.Register {
		text += fmt.Sprintf("% 5s: %v\n", fmt.Sprintf("r%d", n), reg)
	}
	text += fmt.Sprintf("% 5s: %v\n", "cost", cpu.Cost)
	text += fmt.Sprintf("% 5s: %v\n", "ticks", cpu.Ticks)
	for addr, value := range cpu.Memory.All() {
		text += fmt.Sprintf("% 5s: [%v] %v\n", "mem", addr, value)
	}

	return
}

// Reset the CPU state to run prog.
// - Seeds the registers.
// - Clears the store.
// - Zeros the cost and tick counters.
// - Rewinds the I/O channels.
// - Sets the instruction pointer to the first instruction.
func (cpu *Cpu) Reset(prog *Program) (err error) {
	if prog == nil {
		err = ErrProgramMissing
		return
	}

	if cpu.Verbose {
		log.Print(f("cpu: reset, %d instructions", prog.Len()))
	}

	cpu.Program = prog
	cpu.Ip = 0
	cpu.Ticks = 0
	cpu.Cost = new(big.Int)
	cpu.Memory.Reset()

	var seed [REGISTER_COUNT]*big.Int
	if cpu.Seeder != nil {
		seed = cpu.Seeder.Seed()
	}
	for n, value := range seed {
		cpu.Register[n] = new(big.Int)
		if value != nil {
			cpu.Register[n].Set(value)
		}
	}

	if cpu.Input != nil {
		cpu.Input.Rewind()
	}
	if cpu.Output != nil {
		cpu.Output.Rewind()
	}

	return
}

// Fetch returns the instruction at the instruction pointer.
func (cpu *Cpu) Fetch() (ins Instruction, err error) {
	ins, ok := cpu.Program.Fetch(cpu.Ip)
	if !ok {
		err = ErrJumpTargetInvalid
		return
	}

	return
}

// Tick executes a single instruction.
// Returns ErrHalt, without charging any cost, when the instruction at the
// instruction pointer is HALT.
func (cpu *Cpu) Tick() (err error) {
	ins, err := cpu.Fetch()
	if err != nil {
		return
	}

	if ins.Opcode() == OP_HALT {
		err = ErrHalt
		return
	}

	err = cpu.Execute(ins)
	return
}

// Execute executes a single decoded instruction, then verifies that the
// instruction pointer still addresses the program.
// Instructions with out of range operands are rejected without being charged.
func (cpu *Cpu) Execute(ins Instruction) (err error) {
	if cpu.Verbose {
		log.Print(f("%03d: %v", cpu.Ip, Format(ins)))
	}

	err = Check(ins)
	if err != nil {
		return
	}

	reg := &cpu.Register
	next_ip := cpu.Ip + 1

	switch ins := ins.(type) {
	case Read:
		if cpu.Input == nil {
			err = ErrChannelInvalid
			return
		}
		var value *big.Int
		value, err = cpu.Input.Receive()
		if err != nil {
			return
		}
		reg[ins.Reg] = value
	case Write:
		if cpu.Output == nil {
			err = ErrChannelInvalid
			return
		}
		err = cpu.Output.Send(new(big.Int).Set(reg[ins.Reg]))
		if err != nil {
			return
		}
	case Load:
		reg[ins.Dst] = cpu.Memory.Get(reg[ins.Addr])
	case Store:
		cpu.Memory.Set(reg[ins.Addr], reg[ins.Src])
	case Copy:
		reg[ins.Dst].Set(reg[ins.Src])
	case Add:
		reg[ins.Dst].Add(reg[ins.Dst], reg[ins.Src])
	case Sub:
		reg[ins.Dst].Sub(reg[ins.Dst], reg[ins.Src])
		if reg[ins.Dst].Sign() < 0 {
			reg[ins.Dst].SetInt64(0)
		}
	case Shr:
		reg[ins.Reg].Rsh(reg[ins.Reg], 1)
	case Shl:
		reg[ins.Reg].Lsh(reg[ins.Reg], 1)
	case Inc:
		reg[ins.Reg].Add(reg[ins.Reg], big.NewInt(1))
	case Dec:
		if reg[ins.Reg].Sign() > 0 {
			reg[ins.Reg].Sub(reg[ins.Reg], big.NewInt(1))
		}
	case Reset:
		reg[ins.Reg].SetInt64(0)
	case Jump:
		next_ip = ins.Target
	case JZero:
		if reg[ins.Reg].Sign() == 0 {
			next_ip = ins.Target
		}
	case JOdd:
		if reg[ins.Reg].Bit(0) == 1 {
			next_ip = ins.Target
		}
	case Halt:
		err = ErrHalt
		return
	default:
		err = ErrInstructionUnknown
		return
	}

	cpu.Ip = next_ip
	cpu.Ticks += 1
	cpu.Cost.Add(cpu.Cost, big.NewInt(ins.Opcode().Cost()))

	if cpu.Ip < 0 || cpu.Ip >= cpu.Program.Len() {
		err = ErrJumpTargetInvalid
		return
	}

	return
}
