package cpu

import (
	"bytes"
	"errors"
	"math/big"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ezrec/regmach/io"
)

// zeroSeeder starts all registers at zero.
var zeroSeeder = &PresetSeeder{}

func doLoad(t *testing.T, program ...string) *Program {
	asm := &Assembler{}
	prog, err := asm.Parse(strings.NewReader(strings.Join(program, "\n")))
	if err != nil {
		t.Fatal(err)
	}
	return prog
}

// doRun runs the program to completion or the first error.
func doRun(t *testing.T, cpu *Cpu, prog *Program) (err error) {
	err = cpu.Reset(prog)
	if err != nil {
		t.Fatal(err)
	}

	for {
		err = cpu.Tick()
		if errors.Is(err, ErrHalt) {
			return nil
		}
		if err != nil {
			return
		}
	}
}

func TestCpu(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(nil)
	for _, reg := range cpu.Register {
		assert.Equal(0, reg.Sign())
	}
	assert.Equal(0, cpu.Cost.Sign())

	err := cpu.Tick()
	assert.ErrorIs(err, ErrJumpTargetInvalid)

	assert.ErrorIs(cpu.Reset(nil), ErrProgramMissing)
}

func TestCpuReset(t *testing.T) {
	assert := assert.New(t)

	preset := &PresetSeeder{Preset: map[int]*big.Int{4: big.NewInt(44)}}
	cpu := NewCpu(preset)
	prog := doLoad(t, "INC 4", "STORE 4 4", "HALT")

	assert.NoError(doRun(t, cpu, prog))
	assert.Equal(int64(45), cpu.Register[4].Int64())
	assert.Equal(1, cpu.Memory.Len())
	assert.Equal(int64(21), cpu.Cost.Int64())
	assert.Equal(2, cpu.Ticks)

	// Seeded values are copied, so a second run starts afresh.
	assert.Equal(int64(44), preset.Preset[4].Int64())
	assert.NoError(cpu.Reset(prog))
	assert.Equal(int64(44), cpu.Register[4].Int64())
	assert.Equal(0, cpu.Memory.Len())
	assert.Equal(0, cpu.Cost.Sign())
	assert.Equal(0, cpu.Ticks)
	assert.Equal(0, cpu.Ip)
}

func TestCpuRandomSeed(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(NewRandomSeeder(7))
	assert.NoError(cpu.Reset(doLoad(t, "HALT")))

	expected := NewRandomSeeder(7).Seed()
	for n, reg := range cpu.Register {
		assert.Equal(0, expected[n].Cmp(reg), n)
	}
}

func TestCpuArithmetic(t *testing.T) {
	assert := assert.New(t)

	huge, _ := new(big.Int).SetString("340282366920938463463374607431768211456", 10) // 2**128

	table := [](struct {
		name     string
		program  []string
		preset   map[int]int64
		expected map[int]string
		cost     int64
	}){
		{"copy", []string{"COPY 1 2"}, map[int]int64{2: 9}, map[int]string{1: "9", 2: "9"}, 1},
		{"add", []string{"ADD 1 2"}, map[int]int64{1: 5, 2: 9}, map[int]string{1: "14", 2: "9"}, 5},
		{"add-self", []string{"ADD 3 3"}, map[int]int64{3: 21}, map[int]string{3: "42"}, 5},
		{"sub", []string{"SUB 1 2"}, map[int]int64{1: 9, 2: 5}, map[int]string{1: "4", 2: "5"}, 5},
		{"sub-saturate", []string{"SUB 1 2"}, map[int]int64{1: 5, 2: 9}, map[int]string{1: "0", 2: "9"}, 5},
		{"sub-equal", []string{"SUB 1 2"}, map[int]int64{1: 9, 2: 9}, map[int]string{1: "0"}, 5},
		{"sub-self", []string{"SUB 6 6"}, map[int]int64{6: 123456}, map[int]string{6: "0"}, 5},
		{"shr", []string{"SHR 0"}, map[int]int64{0: 7}, map[int]string{0: "3"}, 1},
		{"shr-one", []string{"SHR 0"}, map[int]int64{0: 1}, map[int]string{0: "0"}, 1},
		{"shl", []string{"SHL 0"}, map[int]int64{0: 7}, map[int]string{0: "14"}, 1},
		{"inc", []string{"INC 9"}, map[int]int64{9: 7}, map[int]string{9: "8"}, 1},
		{"dec", []string{"DEC 9"}, map[int]int64{9: 7}, map[int]string{9: "6"}, 1},
		{"dec-zero", []string{"DEC 9", "DEC 9"}, map[int]int64{9: 0}, map[int]string{9: "0"}, 2},
		{"reset", []string{"RESET 5"}, map[int]int64{5: 7}, map[int]string{5: "0"}, 1},
		{"shl-unbounded", []string{"SHL 0", "SHL 0", "SHL 0", "SHL 0"}, map[int]int64{0: 1 << 62},
			map[int]string{0: "73786976294838206464"}, 4},
		{"load-absent", []string{"LOAD 1 2"}, map[int]int64{1: 3, 2: 99}, map[int]string{1: "0", 2: "99"}, 20},
		{"store-load", []string{"STORE 1 2", "RESET 1", "LOAD 3 2"}, map[int]int64{1: 8, 2: 1000},
			map[int]string{1: "0", 2: "1000", 3: "8"}, 41},
		{"load-same", []string{"STORE 1 1", "LOAD 1 1"}, map[int]int64{1: 5}, map[int]string{1: "5"}, 40},
	}

	for _, entry := range table {
		preset := &PresetSeeder{Preset: map[int]*big.Int{}}
		for reg, value := range entry.preset {
			preset.Preset[reg] = big.NewInt(value)
		}
		cpu := NewCpu(preset)
		prog := doLoad(t, append(entry.program, "HALT")...)

		err := doRun(t, cpu, prog)
		assert.NoError(err, entry.name)

		for reg, value := range entry.expected {
			assert.Equal(value, cpu.Register[reg].String(), entry.name)
		}
		assert.Equal(entry.cost, cpu.Cost.Int64(), entry.name)
		assert.Equal(len(entry.program), cpu.Ticks, entry.name)
		assert.Equal(len(entry.program), cpu.Ip, entry.name)
	}

	// Arithmetic on values larger than any machine word.
	cpu := NewCpu(&PresetSeeder{Preset: map[int]*big.Int{0: huge, 1: huge}})
	assert.NoError(doRun(t, cpu, doLoad(t, "ADD 0 1", "SHR 0", "SUB 0 1", "INC 1", "STORE 0 1", "LOAD 2 1", "HALT")))
	assert.Equal(0, cpu.Register[0].Sign())
	assert.Equal(0, cpu.Register[2].Sign())
	assert.Equal(0, new(big.Int).Add(huge, big.NewInt(1)).Cmp(cpu.Register[1]))
}

func TestCpuIncChainCost(t *testing.T) {
	assert := assert.New(t)

	for _, k := range []int{0, 1, 2, 10, 257} {
		program := make([]string, 0, k+1)
		for n := range k {
			program = append(program, []string{"INC 0", "INC 3", "INC 9"}[n%3])
		}
		program = append(program, "HALT")

		cpu := NewCpu(zeroSeeder)
		assert.NoError(doRun(t, cpu, doLoad(t, program...)))
		assert.Equal(int64(k), cpu.Cost.Int64(), k)
	}
}

func TestCpuJumps(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		preset  map[int]int64
		ip      int
	}){
		{"jump", []string{"JUMP 2", "HALT", "HALT"}, nil, 2},
		{"jump-back", []string{"JUMP 2", "HALT", "JUMP 1"}, nil, 2},
		{"jzero-taken", []string{"JZERO 0 2", "HALT", "HALT"}, map[int]int64{0: 0}, 2},
		{"jzero-not", []string{"JZERO 0 2", "HALT", "HALT"}, map[int]int64{0: 4}, 1},
		{"jodd-taken", []string{"JODD 0 2", "HALT", "HALT"}, map[int]int64{0: 5}, 2},
		{"jodd-not", []string{"JODD 0 2", "HALT", "HALT"}, map[int]int64{0: 4}, 1},
		{"jodd-zero", []string{"JODD 0 2", "HALT", "HALT"}, map[int]int64{0: 0}, 1},
		{"jodd-negative", []string{"JODD 0 2", "HALT", "HALT"}, map[int]int64{0: -3}, 2},
	}

	for _, entry := range table {
		preset := &PresetSeeder{Preset: map[int]*big.Int{}}
		for reg, value := range entry.preset {
			preset.Preset[reg] = big.NewInt(value)
		}
		cpu := NewCpu(preset)
		assert.NoError(cpu.Reset(doLoad(t, entry.program...)), entry.name)

		err := cpu.Tick()
		assert.NoError(err, entry.name)
		assert.Equal(entry.ip, cpu.Ip, entry.name)
		assert.Equal(int64(1), cpu.Cost.Int64(), entry.name)
	}
}

func TestCpuHalt(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(zeroSeeder)
	assert.NoError(cpu.Reset(doLoad(t, "HALT", "INC 0")))

	// HALT charges nothing and does not advance.
	for range 3 {
		assert.ErrorIs(cpu.Tick(), ErrHalt)
		assert.Equal(0, cpu.Ip)
		assert.Equal(0, cpu.Cost.Sign())
		assert.Equal(0, cpu.Ticks)
	}

	assert.ErrorIs(cpu.Execute(Halt{}), ErrHalt)
}

func TestCpuJumpTargetInvalid(t *testing.T) {
	assert := assert.New(t)

	table := [](struct {
		name    string
		program []string
		ip      int
	}){
		{"jump-length", []string{"JUMP 2", "HALT"}, 2},
		{"jump-far", []string{"INC 0", "JUMP 500", "HALT"}, 500},
		{"jzero", []string{"RESET 1", "JZERO 1 3", "HALT"}, 3},
		{"fall-off", []string{"INC 0"}, 1},
		{"fall-off-jump", []string{"RESET 1", "JZERO 1 2", "INC 0"}, 3},
	}

	for _, entry := range table {
		cpu := NewCpu(zeroSeeder)
		err := doRun(t, cpu, doLoad(t, entry.program...))
		assert.ErrorIs(err, ErrJumpTargetInvalid, entry.name)
		assert.Equal(entry.ip, cpu.Ip, entry.name)
	}

	// An empty program has no first instruction.
	cpu := NewCpu(zeroSeeder)
	err := doRun(t, cpu, &Program{})
	assert.ErrorIs(err, ErrJumpTargetInvalid)
}

func TestCpuOperandInvalid(t *testing.T) {
	assert := assert.New(t)

	// Hand built programs bypass the assembler.
	table := [](struct {
		name  string
		ins   Instruction
		cause error
	}){
		{"inc", Inc{Reg: 10}, ErrRegisterInvalid},
		{"write", Write{Reg: -1}, ErrRegisterInvalid},
		{"add", Add{Dst: 0, Src: 99}, ErrRegisterInvalid},
		{"store", Store{Src: 1, Addr: 10}, ErrRegisterInvalid},
		{"jodd", JOdd{Reg: 10, Target: 0}, ErrRegisterInvalid},
		{"jump", Jump{Target: -1}, ErrTargetInvalid},
	}

	for _, entry := range table {
		prog := &Program{Lines: []Line{{Instruction: Inc{Reg: 0}}, {Instruction: entry.ins}, {Instruction: Halt{}}}}
		cpu := NewCpu(zeroSeeder)
		err := doRun(t, cpu, prog)
		assert.ErrorIs(err, ErrAddressInvalid, entry.name)
		assert.ErrorIs(err, entry.cause, entry.name)
		assert.Equal(1, cpu.Ip, entry.name)
		assert.Equal(int64(1), cpu.Cost.Int64(), entry.name)
		assert.Equal(1, cpu.Ticks, entry.name)
	}
}

func TestCpuIo(t *testing.T) {
	assert := assert.New(t)

	tape := &io.Tape{}
	output := &bytes.Buffer{}
	tape.Input = strings.NewReader("12 -3\n123456789012345678901234567890")
	tape.Output = output

	cpu := NewCpu(zeroSeeder)
	cpu.Input = tape
	cpu.Output = tape

	prog := doLoad(t, "READ 0", "READ 1", "READ 2", "WRITE 2", "WRITE 0", "WRITE 1", "HALT")
	assert.NoError(doRun(t, cpu, prog))
	assert.Equal("123456789012345678901234567890\n12\n-3\n", output.String())
	assert.Equal(int64(600), cpu.Cost.Int64())

	// Input exhaustion stops the machine before READ is charged.
	output.Reset()
	tape.Input = strings.NewReader("1")
	err := doRun(t, cpu, prog)
	assert.ErrorIs(err, io.ErrInputEnd)
	assert.Equal(1, cpu.Ip)
	assert.Equal(int64(100), cpu.Cost.Int64())

	tape.Input = strings.NewReader("x")
	err = doRun(t, cpu, prog)
	assert.ErrorIs(err, io.ErrInputInvalid)

	cpu.Input = nil
	cpu.Output = nil
	assert.ErrorIs(doRun(t, cpu, prog), ErrChannelInvalid)
	assert.ErrorIs(doRun(t, cpu, doLoad(t, "WRITE 0", "HALT")), ErrChannelInvalid)
}

func TestCpuString(t *testing.T) {
	assert := assert.New(t)

	cpu := NewCpu(zeroSeeder)
	assert.NoError(doRun(t, cpu, doLoad(t, "INC 3", "STORE 3 3", "HALT")))

	text := cpu.String()
	assert.Contains(text, "   ip: 2\n")
	assert.Contains(text, "   r3: 1\n")
	assert.Contains(text, " cost: 21\n")
	assert.Contains(text, "  mem: [1] 1\n")
}
