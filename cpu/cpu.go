package cpu

import (
	"errors"
	"fmt"
	"slices"

	log "github.com/sirupsen/logrus"
)

// State is the execution state of a machine.
type State int

const (
	STATE_RUNNING   = State(0) // running
	STATE_SUSPENDED = State(1) // suspended
	STATE_HALTED    = State(2) // halted
	STATE_FAULTED   = State(3) // faulted
)

func (state State) String() string {
	switch state {
	case STATE_RUNNING:
		return "running"
	case STATE_SUSPENDED:
		return "suspended"
	case STATE_HALTED:
		return "halted"
	case STATE_FAULTED:
		return "faulted"
	}
	return fmt.Sprintf("State(%d)", int(state))
}

// Machine is the simulation context for one tape program.
type Machine struct {
	Verbose bool // Set to enable instruction tracing.
	Strict  bool // Set to reject unknown opcodes, modes and immediate writes.

	Pc           int64  // Offset of the next instruction.
	RelativeBase int64  // Base for relative-mode operands.
	Mem          Memory // Tape memory.

	Ticks    int // Instructions executed.
	Consumed int // Explicit inputs taken by SaveInput.

	program []int64
	state   State
	fault   error
}

// NewMachine creates a machine running a private copy of program.
func NewMachine(program []int64) (m *Machine) {
	m = &Machine{
		program: slices.Clone(program),
	}
	m.Reset()

	return
}

// Reset restores the initial program, registers and counters.
// Any memory limit is kept.
func (m *Machine) Reset() {
	m.Pc = 0
	m.RelativeBase = 0
	m.Ticks = 0
	m.Consumed = 0
	m.Mem.Data = slices.Clone(m.program)
	m.state = STATE_RUNNING
	m.fault = nil
}

// Clone returns an independent copy of the machine in its current state.
func (m *Machine) Clone() *Machine {
	clone := *m
	clone.Mem.Data = slices.Clone(m.Mem.Data)
	return &clone
}

// State returns the current execution state.
func (m *Machine) State() State {
	return m.state
}

// Halted returns true once the machine has executed a halt.
func (m *Machine) Halted() bool {
	return m.state == STATE_HALTED
}

// Waiting returns true if the next instruction reads an input.
func (m *Machine) Waiting() bool {
	word, err := m.Mem.Load(m.Pc)
	return err == nil && m.state != STATE_HALTED && Decode(word).Op == OP_SAVE_INPUT
}

// Memory returns the live memory of the machine.
func (m *Machine) Memory() []int64 {
	return m.Mem.Data
}

// String returns the current machine state as a string.
func (m *Machine) String() (text string) {
	word, _ := m.Mem.Load(m.Pc)
	inst := Decode(word)

	text += fmt.Sprintf("% 6s: %v\n", "state", m.state)
	text += fmt.Sprintf("% 6s: %d\n", "pc", m.Pc)
	text += fmt.Sprintf("% 6s: %d\n", "rb", m.RelativeBase)
	text += fmt.Sprintf("% 6s: %v\n", "next", inst.Format(m.operands(inst)...))
	text += fmt.Sprintf("% 6s: %d\n", "mem", m.Mem.Len())
	text += fmt.Sprintf("% 6s: %d\n", "ticks", m.Ticks)

	return
}

// Source supplies explicit inputs. ok is unset when none is ready.
type Source func() (value int64, ok bool, err error)

// Step runs the machine until it produces one output or halts.
//
// A SaveInput takes *input the first time it executes during the call, and
// signal every time after that, or always when input is nil. The output is
// returned with ok set; a halted machine returns ok unset. Errors are fatal:
// the machine is faulted and returns the same error from every later call.
func (m *Machine) Step(input *int64, signal int64) (output int64, ok bool, err error) {
	source := func() (value int64, ok bool, err error) {
		if input != nil {
			value, ok = *input, true
			input = nil
		}
		return
	}

	return m.Pull(source, signal)
}

// Pull is Step with inputs read from source only when a SaveInput
// executes. A SaveInput uses signal when source is nil or has nothing ready.
// An error from source faults the machine.
func (m *Machine) Pull(source Source, signal int64) (output int64, ok bool, err error) {
	switch m.state {
	case STATE_HALTED:
		return
	case STATE_FAULTED:
		err = m.fault
		return
	}

	m.state = STATE_RUNNING

	for {
		pc := m.Pc
		var word int64
		word, err = m.Mem.Load(pc)
		if err == nil {
			output, ok, err = m.execute(Decode(word), source, signal)
		}
		if err != nil {
			err = errors.Join(ErrInstruction{Pc: pc, Word: word}, err)
			m.fault = err
			m.state = STATE_FAULTED
			return
		}

		if ok {
			m.state = STATE_SUSPENDED
			return
		}

		if m.state == STATE_HALTED {
			return
		}
	}
}

// Next steps the machine with no explicit input.
func (m *Machine) Next(signal int64) (int64, bool, error) {
	return m.Step(nil, signal)
}

// Feed steps the machine with an explicit input.
func (m *Machine) Feed(input int64, signal int64) (int64, bool, error) {
	return m.Step(&input, signal)
}

// Expect steps the machine with an explicit input, requiring an output.
// A machine that halts instead returns ErrHalted.
func (m *Machine) Expect(input int64, signal int64) (output int64, err error) {
	output, ok, err := m.Feed(input, signal)
	if err == nil && !ok {
		err = ErrHalted
	}
	return
}

// Drain runs the machine to halt, collecting every output.
func (m *Machine) Drain(signal int64) (outputs []int64, err error) {
	for {
		value, ok, err := m.Next(signal)
		if err != nil {
			return outputs, err
		}
		if !ok {
			return outputs, nil
		}
		outputs = append(outputs, value)
	}
}

// execute executes a single decoded instruction at the pc.
// A SaveInput reads source, falling back to signal.
func (m *Machine) execute(inst Instruction, source Source, signal int64) (output int64, ok bool, err error) {
	if m.Verbose {
		log.Debugf("%d: %v", m.Pc, inst.Format(m.operands(inst)...))
	}

	if m.Strict {
		if !inst.Known {
			err = ErrOpcodeUnknown
			return
		}
		if inst.BadMode {
			err = ErrModeUnknown
			return
		}
	}

	next_pc := m.Pc + inst.Length()

	switch inst.Op {
	case OP_ADD, OP_MULTIPLY, OP_LESS_THAN, OP_EQUALS:
		var a, b int64
		a, err = m.read(inst, 1)
		if err != nil {
			return
		}
		b, err = m.read(inst, 2)
		if err != nil {
			return
		}
		err = m.write(inst, 3, doAlu(inst.Op, a, b))
		if err != nil {
			return
		}
	case OP_SAVE_INPUT:
		value := signal
		if source != nil {
			var ready bool
			var got int64
			got, ready, err = source()
			if err != nil {
				return
			}
			if ready {
				value = got
				m.Consumed++
			}
		}
		err = m.write(inst, 1, value)
		if err != nil {
			return
		}
	case OP_OUTPUT:
		output, err = m.read(inst, 1)
		if err != nil {
			return
		}
		ok = true
	case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
		var cond, target int64
		cond, err = m.read(inst, 1)
		if err != nil {
			return
		}
		target, err = m.read(inst, 2)
		if err != nil {
			return
		}
		if (cond != 0) == (inst.Op == OP_JUMP_IF_TRUE) {
			if target < 0 {
				err = ErrJumpRange
				return
			}
			next_pc = target
		}
	case OP_ADJUST_RELATIVE:
		var delta int64
		delta, err = m.read(inst, 1)
		if err != nil {
			return
		}
		m.RelativeBase += delta
	case OP_HALT:
		if m.Verbose {
			log.Debugf("%d: halted after %d ticks", m.Pc, m.Ticks)
		}
		m.state = STATE_HALTED
		return
	}

	m.Pc = next_pc
	m.Ticks++

	return
}

// doAlu performs the arithmetic or comparison of a three operand instruction.
func doAlu(op Op, a, b int64) (output int64) {
	switch op {
	case OP_ADD:
		output = a + b
	case OP_MULTIPLY:
		output = a * b
	case OP_LESS_THAN:
		if a < b {
			output = 1
		}
	case OP_EQUALS:
		if a == b {
			output = 1
		}
	}

	return
}
