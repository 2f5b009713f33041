// Package cpu implements the tape machine and its program loader.
//
// A machine owns a growable memory of signed 64-bit cells, a program
// counter and a relative base register. Instruction words pack an operation
// in their two low decimal digits and one addressing mode per operand in
// the digits above: position, immediate or relative to the base register.
//
// Execution is cooperative. Each Step runs until one output is produced, so
// a caller can interleave several machines, feeding the output of one to
// the input of the next, with no state shared between them.
package cpu
