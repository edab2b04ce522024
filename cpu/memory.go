package cpu

import (
	"iter"
	"maps"
	"math/big"
	"slices"
)

// cell is a single written memory location.
type cell struct {
	Addr  *big.Int
	Value *big.Int
}

// Memory is the sparse store addressed by register contents.
// Locations never written read as zero.
type Memory struct {
	cells map[string]cell
}

// key returns the map key of an address.
func (mem *Memory) key(addr *big.Int) string {
	return addr.String()
}

// Get returns a copy of the value at addr, or zero if addr was never written.
func (mem *Memory) Get(addr *big.Int) (value *big.Int) {
	value = new(big.Int)

	c, ok := mem.cells[mem.key(addr)]
	if ok {
		value.Set(c.Value)
	}

	return
}

// Set stores a copy of value at addr.
func (mem *Memory) Set(addr *big.Int, value *big.Int) {
	if mem.cells == nil {
		mem.cells = make(map[string]cell)
	}

	mem.cells[mem.key(addr)] = cell{
		Addr:  new(big.Int).Set(addr),
		Value: new(big.Int).Set(value),
	}
}

// Len returns the number of written locations.
func (mem *Memory) Len() int {
	return len(mem.cells)
}

// Reset forgets all written locations.
func (mem *Memory) Reset() {
	clear(mem.cells)
}

// All iterates the written locations in ascending address order.
func (mem *Memory) All() iter.Seq2[*big.Int, *big.Int] {
	return func(yield func(addr, value *big.Int) bool) {
		cells := slices.SortedFunc(maps.Values(mem.cells), func(a, b cell) int {
			return a.Addr.Cmp(b.Addr)
		})
		for _, c := range cells {
			if !yield(new(big.Int).Set(c.Addr), new(big.Int).Set(c.Value)) {
				return
			}
		}
	}
}
