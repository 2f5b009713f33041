package cpu

import (
	"fmt"
	"iter"
	"strings"
)

// Disassemble sweeps the program linearly, yielding each instruction with
// its address. Words that do not decode to a known operation, or whose
// operands run past the end, are yielded with Known unset and a length of one.
func Disassemble(prog Program) iter.Seq2[int, Instruction] {
	return func(yield func(addr int, inst Instruction) bool) {
		for addr := 0; addr < len(prog); {
			inst := Decode(prog[addr])
			if addr+inst.Op.Arity() >= len(prog) {
				inst.Known = false
			}
			if !yield(addr, inst) {
				return
			}
			if !inst.Known || inst.Op == OP_HALT {
				addr++
			} else {
				addr += int(inst.Length())
			}
		}
	}
}

// Listing returns the disassembly of the program, one instruction per line.
func Listing(prog Program) string {
	var text strings.Builder

	for addr, inst := range Disassemble(prog) {
		var line string
		if inst.Known {
			end := addr + 1 + inst.Op.Arity()
			line = inst.Format(prog[addr+1 : end]...)
		} else {
			line = fmt.Sprintf("data %d", prog[addr])
		}
		fmt.Fprintf(&text, "%5d: %v\n", addr, line)
	}

	return text.String()
}
