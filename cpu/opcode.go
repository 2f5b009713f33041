package cpu

import (
	"fmt"
	"strings"
)

// Op is an operation tag, the low two decimal digits of an instruction word.
type Op int

const (
	OP_ADD             = Op(1)  // add
	OP_MULTIPLY        = Op(2)  // mul
	OP_SAVE_INPUT      = Op(3)  // in
	OP_OUTPUT          = Op(4)  // out
	OP_JUMP_IF_TRUE    = Op(5)  // jt
	OP_JUMP_IF_FALSE   = Op(6)  // jf
	OP_LESS_THAN       = Op(7)  // lt
	OP_EQUALS          = Op(8)  // eq
	OP_ADJUST_RELATIVE = Op(9)  // arb
	OP_HALT            = Op(99) // halt
)

var _op_names = map[Op]string{
	OP_ADD:             "add",
	OP_MULTIPLY:        "mul",
	OP_SAVE_INPUT:      "in",
	OP_OUTPUT:          "out",
	OP_JUMP_IF_TRUE:    "jt",
	OP_JUMP_IF_FALSE:   "jf",
	OP_LESS_THAN:       "lt",
	OP_EQUALS:          "eq",
	OP_ADJUST_RELATIVE: "arb",
	OP_HALT:            "halt",
}

func (op Op) String() string {
	name, ok := _op_names[op]
	if !ok {
		return fmt.Sprintf("Op(%d)", int(op))
	}
	return name
}

// Arity returns the number of operands the operation takes.
func (op Op) Arity() int {
	switch op {
	case OP_ADD, OP_MULTIPLY, OP_LESS_THAN, OP_EQUALS:
		return 3
	case OP_JUMP_IF_TRUE, OP_JUMP_IF_FALSE:
		return 2
	case OP_SAVE_INPUT, OP_OUTPUT, OP_ADJUST_RELATIVE:
		return 1
	}
	return 0
}

// Length returns how far the pc advances past the instruction.
// Halt has no length; the pc stays on it.
func (op Op) Length() int64 {
	if op == OP_HALT {
		return 0
	}
	return int64(op.Arity() + 1)
}

// Mode is an operand addressing mode, one decimal digit above the hundreds place.
type Mode int

const (
	MODE_POSITION  = Mode(0) // position
	MODE_IMMEDIATE = Mode(1) // immediate
	MODE_RELATIVE  = Mode(2) // relative
)

func (mode Mode) String() string {
	switch mode {
	case MODE_POSITION:
		return "position"
	case MODE_IMMEDIATE:
		return "immediate"
	case MODE_RELATIVE:
		return "relative"
	}
	return fmt.Sprintf("Mode(%d)", int(mode))
}

// Operand renders a raw operand value in the given mode.
func (mode Mode) Operand(raw int64) string {
	switch mode {
	case MODE_POSITION:
		return fmt.Sprintf("[%d]", raw)
	case MODE_RELATIVE:
		return fmt.Sprintf("rb[%d]", raw)
	}
	return fmt.Sprintf("%d", raw)
}

// Instruction is a decoded instruction word.
type Instruction struct {
	Op    Op      // Operation; OP_HALT for unknown tags.
	Modes [3]Mode // Addressing modes of operands 1, 2 and 3.

	Known   bool // Set if the tag named a defined operation.
	BadMode bool // Set if a mode digit was not 0, 1 or 2.
}

// Decode splits an instruction word into its operation and operand modes.
// Unknown tags decode as OP_HALT, unknown mode digits as MODE_IMMEDIATE.
func Decode(word int64) (inst Instruction) {
	op := Op(word % 100)
	_, inst.Known = _op_names[op]
	if inst.Known {
		inst.Op = op
	} else {
		inst.Op = OP_HALT
	}

	digits := word / 100
	for n := range inst.Modes {
		digit := Mode(digits % 10)
		digits /= 10
		switch digit {
		case MODE_POSITION, MODE_IMMEDIATE, MODE_RELATIVE:
			inst.Modes[n] = digit
		default:
			inst.Modes[n] = MODE_IMMEDIATE
			if n < inst.Op.Arity() {
				inst.BadMode = true
			}
		}
	}

	return
}

// Length returns the instruction length in words.
func (inst Instruction) Length() int64 {
	return inst.Op.Length()
}

// Format renders the instruction with its raw operand values.
func (inst Instruction) Format(operands ...int64) string {
	parts := []string{inst.Op.String()}
	for n := range min(inst.Op.Arity(), len(operands)) {
		parts = append(parts, inst.Modes[n].Operand(operands[n]))
	}
	return strings.Join(parts, " ")
}

// String returns the operation and its operand modes.
func (inst Instruction) String() string {
	parts := []string{inst.Op.String()}
	for n := range inst.Op.Arity() {
		parts = append(parts, inst.Modes[n].String())
	}
	return strings.Join(parts, ".")
}
