package cpu

import (
	"math/big"
	"math/rand/v2"
	"time"
)

// Seeder supplies the initial register values at reset.
type Seeder interface {
	// Seed returns one value per register.
	Seed() [REGISTER_COUNT]*big.Int
}

// RandomSeeder fills the registers with pseudo-random non-negative 31-bit values.
type RandomSeeder struct {
	rand *rand.Rand
}

// NewRandomSeeder creates a seeder with a fixed seed.
func NewRandomSeeder(seed uint64) *RandomSeeder {
	return &RandomSeeder{
		rand: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)),
	}
}

// TimeSeeder creates a seeder seeded from the wall clock.
func TimeSeeder() *RandomSeeder {
	return NewRandomSeeder(uint64(time.Now().UnixNano()))
}

func (rs *RandomSeeder) Seed() (regs [REGISTER_COUNT]*big.Int) {
	for n := range regs {
		regs[n] = big.NewInt(int64(rs.rand.Int32()))
	}
	return
}

// PresetSeeder overrides some registers, taking the rest from Fallback.
// With no fallback the remaining registers are zero.
type PresetSeeder struct {
	Preset   map[int]*big.Int
	Fallback Seeder
}

func (ps *PresetSeeder) Seed() (regs [REGISTER_COUNT]*big.Int) {
	if ps.Fallback != nil {
		regs = ps.Fallback.Seed()
	}

	for n := range regs {
		value, ok := ps.Preset[n]
		switch {
		case ok:
			regs[n] = new(big.Int).Set(value)
		case regs[n] == nil:
			regs[n] = new(big.Int)
		}
	}

	return
}
