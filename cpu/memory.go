package cpu

// MEMORY_MAX is the most cells any memory may grow to.
const MEMORY_MAX = int64(1 << 24)

// Memory is the machine's tape of signed cells. It grows with zero cells
// on demand, up to Limit cells when Limit is non-zero, and never past
// MEMORY_MAX cells.
type Memory struct {
	Data  []int64
	Limit int64
}

// Cap returns the number of addressable cells.
func (mem *Memory) Cap() int64 {
	if mem.Limit > 0 && mem.Limit < MEMORY_MAX {
		return mem.Limit
	}
	return MEMORY_MAX
}

// check validates an address against the limit.
func (mem *Memory) check(addr int64) (err error) {
	if addr < 0 || addr >= mem.Cap() {
		err = ErrAddress(addr)
	}
	return
}

// Len returns the current size of memory.
func (mem *Memory) Len() int64 {
	return int64(len(mem.Data))
}

// Load reads a cell. Cells past the end read as zero without growing memory.
func (mem *Memory) Load(addr int64) (value int64, err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	if addr < mem.Len() {
		value = mem.Data[addr]
	}
	return
}

// Store writes a cell, growing memory to cover it.
func (mem *Memory) Store(addr int64, value int64) (err error) {
	err = mem.check(addr)
	if err != nil {
		return
	}

	mem.Grow(addr + 1)
	mem.Data[addr] = value
	return
}

// Grow extends memory with zero cells to at least size cells, but never
// past Cap().
func (mem *Memory) Grow(size int64) {
	size = min(size, mem.Cap())
	if size <= mem.Len() {
		return
	}
	if size <= int64(cap(mem.Data)) {
		old := len(mem.Data)
		mem.Data = mem.Data[:size]
		clear(mem.Data[old:])
		return
	}
	mem.Data = append(mem.Data, make([]int64, size-mem.Len())...)
}
