// Copyright 2024, Jason S. McMullan <jason.mcmullan@gmail.com>

package emulator

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/io"
)

// Emulator state. One machine plus its input and output channels.
type Emulator struct {
	Verbose      bool        // If set, enables verbose logging.
	*cpu.Machine             // Reference to the machine simulation.
	Program      cpu.Program // Program loaded on Reset.

	Input  io.Channel // Source of explicit inputs.
	Output io.Channel // Sink of outputs.
	Signal int64      // Fallback value when Input has nothing ready.
}

// NewEmulator creates a new emulator for a program.
func NewEmulator(program cpu.Program, input, output io.Channel) (emu *Emulator) {
	emu = &Emulator{
		Machine: cpu.NewMachine(program),
		Program: program,
		Input:   input,
		Output:  output,
	}

	return
}

// Reset reloads the program into a fresh machine, keeping machine options.
func (emu *Emulator) Reset() {
	strict := emu.Machine.Strict
	limit := emu.Machine.Mem.Limit

	emu.Machine = cpu.NewMachine(emu.Program)
	emu.Machine.Strict = strict
	emu.Machine.Mem.Limit = limit

	if emu.Input != nil {
		emu.Input.Rewind()
	}
	if emu.Output != nil {
		emu.Output.Rewind()
	}
}

// Tick performs a single step of the emulator: Input is read only when
// the machine executes a SaveInput, and at most one output moves to Output.
func (emu *Emulator) Tick() (done bool, err error) {
	emu.Machine.Verbose = emu.Verbose

	defer func() {
		if err != nil {
			runtime := &ErrRuntime{Pc: emu.Machine.Pc, Ticks: emu.Machine.Ticks, Err: err}
			var inst cpu.ErrInstruction
			if errors.As(err, &inst) {
				runtime.Pc = inst.Pc
			}
			err = runtime
		}
	}()

	var source cpu.Source
	if emu.Input != nil {
		source = emu.Input.Receive
	}

	output, ok, err := emu.Machine.Pull(source, emu.Signal)
	if err != nil {
		return
	}

	if !ok {
		done = true
		if emu.Verbose {
			log.Debugf("emulator: halted after %d ticks", emu.Machine.Ticks)
		}
		return
	}

	if emu.Output != nil {
		err = emu.Output.Send(output)
	}

	return
}

// Run ticks the emulator until the machine halts.
func (emu *Emulator) Run() (err error) {
	for done := false; !done; {
		done, err = emu.Tick()
		if err != nil {
			return
		}
	}

	return
}
