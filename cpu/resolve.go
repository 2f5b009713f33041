package cpu

// address resolves the n-th operand (1-based) of the instruction at the pc
// to the memory index it names. Immediate operands name their own cell.
func (m *Machine) address(mode Mode, n int64) (addr int64, err error) {
	cell := m.Pc + n
	if mode == MODE_IMMEDIATE {
		addr = cell
		return
	}

	raw, err := m.Mem.Load(cell)
	if err != nil {
		return
	}

	switch mode {
	case MODE_RELATIVE:
		addr = raw + m.RelativeBase
	default:
		addr = raw
	}

	return
}

// read returns the value of the n-th operand.
func (m *Machine) read(inst Instruction, n int64) (value int64, err error) {
	addr, err := m.address(inst.Modes[n-1], n)
	if err != nil {
		return
	}

	return m.Mem.Load(addr)
}

// write stores value at the target of the n-th operand.
func (m *Machine) write(inst Instruction, n int64, value int64) (err error) {
	mode := inst.Modes[n-1]
	if m.Strict && mode == MODE_IMMEDIATE {
		err = ErrWriteImmediate
		return
	}

	addr, err := m.address(mode, n)
	if err != nil {
		return
	}

	return m.Mem.Store(addr, value)
}

// operands returns the raw operand cells of an instruction at the pc.
func (m *Machine) operands(inst Instruction) (raw []int64) {
	for n := range int64(inst.Op.Arity()) {
		value, err := m.Mem.Load(m.Pc + n + 1)
		if err != nil {
			break
		}
		raw = append(raw, value)
	}
	return
}
