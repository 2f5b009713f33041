package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/cpu"
)

func runInt(t *testing.T, sc *Script, src string) int64 {
	result, err := sc.Run("test.star", src)
	assert.NoError(t, err)
	if err != nil {
		return 0
	}

	var value int64
	assert.NoError(t, starlark.AsInt(result, &value))
	return value
}

func TestScript_Feedback(t *testing.T) {
	sc := &Script{
		Globals: starlark.StringDict{
			"PROGRAM": starlark.String("3,26,1001,26,-4,26,3,27,1002,27,2,27,1,27,26,27,4,27,1001,28,-1,28,1005,28,6,99,0,0,5"),
		},
	}

	src := `
prog = parse(PROGRAM)

def run(phases):
    amps = [machine(prog) for _ in phases]
    signal = 0
    first = True
    while True:
        for i in range(len(amps)):
            phase = phases[i] if first else None
            out = amps[i].step(input = phase, signal = signal)
            if out == None:
                return signal
            signal = out
        first = False

best = 0
for p in permutations([5, 6, 7, 8, 9]):
    best = max(best, run(p))
result = best
`

	assert.Equal(t, int64(139629729), runInt(t, sc, src))
}

func TestScript_MachineAttrs(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	sc := &Script{
		Output: output,
		Globals: starlark.StringDict{
			"PROGRAM": ProgramValue(cpu.Program{1, 0, 0, 0, 104, 7, 99}),
		},
	}

	src := `
m = machine(PROGRAM)
print(m.state, m.pc)
first = m.step()
print(first, m.state, m.pc, m.peek(0))
m.poke(5, 9)
rest = m.drain()
print(rest, m.halted, m.ticks)
result = first
`
	assert.Equal(int64(7), runInt(t, sc, src))
	assert.Equal("running 0\n7 suspended 6 2\n[] True 2\n", output.String())
}

func TestScript_Feed(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}

	src := `
m = machine("3,11,3,12,1,11,12,13,4,13,99")
result = m.feed(5, signal = 100)
`
	assert.Equal(int64(105), runInt(t, sc, src))
}

func TestScript_Waiting(t *testing.T) {
	assert := assert.New(t)

	output := &bytes.Buffer{}
	sc := &Script{Output: output}

	src := `
m = machine([104, 1, 3, 7, 4, 7, 99, 0])
print(m.waiting)
m.step()
print(m.waiting)
result = m.feed(5)
`
	assert.Equal(int64(5), runInt(t, sc, src))
	assert.Equal("False\nTrue\n", output.String())
}

func TestScript_NoResult(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}
	result, err := sc.Run("none.star", "x = 1\n")
	assert.NoError(err)
	assert.Equal(starlark.None, result)
}

func TestScript_Errors(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}

	_, err := sc.Run("fault.star", "m = machine([204, -1])\nm.step()\n")
	assert.Error(err)
	assert.Contains(err.Error(), "out of range")

	_, err = sc.Run("parse.star", "parse('1,x')\n")
	assert.Error(err)

	_, err = sc.Run("limit.star", "machine([99], limit = -1)\n")
	assert.Error(err)

	_, err = sc.Run("huge.star", "machine([99], limit = 1 << 40)\n")
	assert.Error(err)

	_, err = sc.Run("poke.star", "machine([99]).poke(1 << 62, 1)\n")
	assert.Error(err)
	assert.Contains(err.Error(), "out of range")

	_, err = sc.Run("type.star", "machine(3)\n")
	assert.Error(err)

	_, err = sc.Run("strict.star", "machine([42], strict = True).step()\n")
	assert.Error(err)
	assert.Contains(err.Error(), "opcode unknown")
}

func TestScript_Permutations(t *testing.T) {
	assert := assert.New(t)

	sc := &Script{}
	assert.Equal(int64(6), runInt(t, sc, "result = len(permutations([1, 2, 3]))\n"))
}
