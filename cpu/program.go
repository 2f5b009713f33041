package cpu

import (
	"bufio"
	"bytes"
	"io"
	"slices"
	"strconv"
	"strings"
)

// Program is the initial memory image of a machine.
type Program []int64

// scanCells is a bufio.SplitFunc yielding comma separated cells.
func scanCells(data []byte, atEOF bool) (advance int, token []byte, err error) {
	if atEOF && len(data) == 0 {
		return
	}

	if i := bytes.IndexByte(data, ','); i >= 0 {
		return i + 1, data[:i], nil
	}

	if atEOF {
		return len(data), data, nil
	}

	return
}

// ParseProgram reads comma separated decimal integers.
// Whitespace around cells and a trailing comma are ignored.
func ParseProgram(r io.Reader) (prog Program, err error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, 1<<24)
	scanner.Split(scanCells)

	var cells []string
	for scanner.Scan() {
		cells = append(cells, strings.TrimSpace(scanner.Text()))
	}
	err = scanner.Err()
	if err != nil {
		return
	}

	// A trailing comma leaves one empty cell behind.
	if len(cells) > 0 && cells[len(cells)-1] == "" {
		cells = cells[:len(cells)-1]
	}

	if len(cells) == 0 {
		err = ErrProgramEmpty
		return
	}

	prog = make(Program, 0, len(cells))
	for n, cell := range cells {
		var value int64
		value, err = strconv.ParseInt(cell, 10, 64)
		if err != nil {
			prog = nil
			err = ErrParse{Index: n, Text: cell}
			return
		}
		prog = append(prog, value)
	}

	return
}

// ParseProgramString parses a program from text.
func ParseProgramString(text string) (Program, error) {
	return ParseProgram(strings.NewReader(text))
}

// String returns the program in its comma separated text form.
func (prog Program) String() string {
	cells := make([]string, len(prog))
	for n, value := range prog {
		cells[n] = strconv.FormatInt(value, 10)
	}
	return strings.Join(cells, ",")
}

// Clone returns a copy of the program.
func (prog Program) Clone() Program {
	return slices.Clone(prog)
}

// Patch returns a copy of the program with values stored from addr onward,
// growing it with zero cells as needed.
func (prog Program) Patch(addr int, values ...int64) (patched Program) {
	patched = prog.Clone()
	if end := addr + len(values); end > len(patched) {
		patched = append(patched, make(Program, end-len(patched))...)
	}
	copy(patched[addr:], values)
	return
}
