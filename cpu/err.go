package cpu

import (
	"errors"
	"strconv"

	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	// Machine errors
	ErrAddressRange   = errors.New(f("address out of range"))
	ErrJumpRange      = errors.New(f("jump out of range"))
	ErrOpcodeUnknown  = errors.New(f("opcode unknown"))
	ErrModeUnknown    = errors.New(f("mode unknown"))
	ErrWriteImmediate = errors.New(f("write to immediate operand"))
	ErrHalted         = errors.New(f("halted"))

	// Program errors
	ErrProgramSyntax = errors.New(f("program syntax"))
	ErrProgramEmpty  = errors.New(f("program empty"))
)

// ErrAddress is an access outside of the machine's memory.
type ErrAddress int64

func (ea ErrAddress) Error() string {
	return f("address %v out of range", strconv.FormatInt(int64(ea), 10))
}

func (ea ErrAddress) Is(err error) bool {
	return err == ErrAddressRange
}

// ErrInstruction locates a failing instruction.
type ErrInstruction struct {
	Pc   int64
	Word int64
}

func (err ErrInstruction) Error() string {
	return f("pc %v: %v (%v)", strconv.FormatInt(err.Pc, 10), Decode(err.Word).String(), strconv.FormatInt(err.Word, 10))
}

// ErrParse is a program cell that is not a decimal integer.
type ErrParse struct {
	Index int
	Text  string
}

func (err ErrParse) Error() string {
	return f("cell %v '%v' is not a number", strconv.Itoa(err.Index), err.Text)
}

func (err ErrParse) Unwrap() error {
	return ErrProgramSyntax
}
