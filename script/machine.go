package script

import (
	"fmt"

	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/cpu"
)

// Machine exposes a cpu.Machine to Starlark.
type Machine struct {
	*cpu.Machine
}

var _ starlark.HasAttrs = (*Machine)(nil)

var _machine_attrs = []string{
	"drain", "feed", "halted", "pc", "peek", "poke", "relative_base", "state", "step", "ticks", "waiting",
}

func (sm *Machine) String() string {
	return fmt.Sprintf("<machine pc=%d %v>", sm.Pc, sm.State())
}

func (sm *Machine) Type() string         { return "machine" }
func (sm *Machine) Freeze()              {}
func (sm *Machine) Truth() starlark.Bool { return starlark.True }

func (sm *Machine) Hash() (uint32, error) {
	return 0, fmt.Errorf("unhashable type: machine")
}

func (sm *Machine) AttrNames() []string {
	return _machine_attrs
}

func (sm *Machine) Attr(name string) (value starlark.Value, err error) {
	switch name {
	case "halted":
		value = starlark.Bool(sm.Halted())
	case "pc":
		value = starlark.MakeInt64(sm.Pc)
	case "relative_base":
		value = starlark.MakeInt64(sm.RelativeBase)
	case "ticks":
		value = starlark.MakeInt(sm.Ticks)
	case "state":
		value = starlark.String(sm.State().String())
	case "waiting":
		value = starlark.Bool(sm.Waiting())
	case "step":
		value = starlark.NewBuiltin(name, sm.step).BindReceiver(sm)
	case "feed":
		value = starlark.NewBuiltin(name, sm.feed).BindReceiver(sm)
	case "drain":
		value = starlark.NewBuiltin(name, sm.drain).BindReceiver(sm)
	case "peek":
		value = starlark.NewBuiltin(name, sm.peek).BindReceiver(sm)
	case "poke":
		value = starlark.NewBuiltin(name, sm.poke).BindReceiver(sm)
	}

	// A nil value with no error reports a missing attribute.
	return
}

// result converts a step result to Starlark: the output, or None on halt.
func result(output int64, ok bool, err error) (starlark.Value, error) {
	if err != nil {
		return nil, err
	}
	if !ok {
		return starlark.None, nil
	}
	return starlark.MakeInt64(output), nil
}

// step(input=None, signal=0) runs until one output, returning it or None.
func (sm *Machine) step(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var st_input starlark.Value = starlark.None
	var st_signal starlark.Value = starlark.MakeInt(0)
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "input?", &st_input, "signal?", &st_signal)
	if err != nil {
		return nil, err
	}

	signal, err := toInt64(st_signal)
	if err != nil {
		return nil, fmt.Errorf("%s: signal: %w", b.Name(), err)
	}

	var input *int64
	if st_input != starlark.None {
		var value int64
		value, err = toInt64(st_input)
		if err != nil {
			return nil, fmt.Errorf("%s: input: %w", b.Name(), err)
		}
		input = &value
	}

	return result(sm.Step(input, signal))
}

// feed(input, signal=0) is step with a required input.
func (sm *Machine) feed(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var st_input starlark.Value
	var st_signal starlark.Value = starlark.MakeInt(0)
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "input", &st_input, "signal?", &st_signal)
	if err != nil {
		return nil, err
	}

	input, err := toInt64(st_input)
	if err != nil {
		return nil, fmt.Errorf("%s: input: %w", b.Name(), err)
	}
	signal, err := toInt64(st_signal)
	if err != nil {
		return nil, fmt.Errorf("%s: signal: %w", b.Name(), err)
	}

	return result(sm.Feed(input, signal))
}

// drain(signal=0) runs to halt, returning every output.
func (sm *Machine) drain(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var st_signal starlark.Value = starlark.MakeInt(0)
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "signal?", &st_signal)
	if err != nil {
		return nil, err
	}

	signal, err := toInt64(st_signal)
	if err != nil {
		return nil, fmt.Errorf("%s: signal: %w", b.Name(), err)
	}

	outputs, err := sm.Drain(signal)
	if err != nil {
		return nil, err
	}

	return toList(outputs), nil
}

// peek(addr) reads a memory cell.
func (sm *Machine) peek(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var st_addr starlark.Value
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &st_addr)
	if err != nil {
		return nil, err
	}

	addr, err := toInt64(st_addr)
	if err != nil {
		return nil, fmt.Errorf("%s: addr: %w", b.Name(), err)
	}

	value, err := sm.Mem.Load(addr)
	if err != nil {
		return nil, err
	}

	return starlark.MakeInt64(value), nil
}

// poke(addr, value) writes a memory cell.
func (sm *Machine) poke(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var st_addr, st_value starlark.Value
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 2, &st_addr, &st_value)
	if err != nil {
		return nil, err
	}

	addr, err := toInt64(st_addr)
	if err != nil {
		return nil, fmt.Errorf("%s: addr: %w", b.Name(), err)
	}
	value, err := toInt64(st_value)
	if err != nil {
		return nil, fmt.Errorf("%s: value: %w", b.Name(), err)
	}

	err = sm.Mem.Store(addr, value)
	if err != nil {
		return nil, err
	}

	return starlark.None, nil
}
