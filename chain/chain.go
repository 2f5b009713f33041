// Package chain composes independent machines running the same program
// into amplifier chains. Each machine's output is the next machine's
// signal; the machines share no state and are scheduled round-robin.
package chain

import (
	"errors"

	log "github.com/sirupsen/logrus"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrPhaseCount = errors.New(f("phase count does not match chain length"))
	ErrNoOutput   = errors.New(f("amplifier halted without output"))
	ErrNoPhases   = errors.New(f("no phases"))
)

// Chain is a ring of machines loaded with one program.
type Chain struct {
	Verbose bool        // If set, log every signal handoff and trace machines.
	Strict  bool        // Machine strict mode.
	Limit   int64       // Machine memory limit, 0 for the default.
	Program cpu.Program // Program each machine starts from.

	Machines []*cpu.Machine
}

// New creates a chain of count machines.
func New(program cpu.Program, count int) (ch *Chain) {
	ch = &Chain{
		Program:  program,
		Machines: make([]*cpu.Machine, count),
	}
	ch.Reset()

	return
}

// Reset reloads every machine from the program with the chain's options.
func (ch *Chain) Reset() {
	for n := range ch.Machines {
		m := cpu.NewMachine(ch.Program)
		m.Verbose = ch.Verbose
		m.Strict = ch.Strict
		m.Mem.Limit = ch.Limit
		ch.Machines[n] = m
	}
}

// Serial runs each machine once, in order. Each machine takes its phase as
// its explicit input and the previous output as its signal; the last
// output is returned. The chain is reset first.
func (ch *Chain) Serial(phases []int64, signal int64) (result int64, err error) {
	if len(phases) != len(ch.Machines) {
		err = ErrPhaseCount
		return
	}

	ch.Reset()

	for n, m := range ch.Machines {
		signal, err = m.Expect(phases[n], signal)
		if errors.Is(err, cpu.ErrHalted) {
			err = errors.Join(ErrNoOutput, err)
		}
		if err != nil {
			return
		}
		if ch.Verbose {
			log.Debugf("chain: amp %d phase %d -> %d", n, phases[n], signal)
		}
	}

	result = signal
	return
}

// Feedback runs the machines round-robin, passing each output on as the
// next machine's signal, until a machine halts. Phases are the explicit
// inputs of the first round only. The last signal produced is returned.
// The chain is reset first.
func (ch *Chain) Feedback(phases []int64, signal int64) (result int64, err error) {
	if len(phases) != len(ch.Machines) {
		err = ErrPhaseCount
		return
	}

	if len(ch.Machines) == 0 {
		err = ErrNoPhases
		return
	}

	ch.Reset()

	for round := 0; ; round++ {
		for n, m := range ch.Machines {
			var input *int64
			if round == 0 {
				input = &phases[n]
			}

			value, ok, err := m.Step(input, signal)
			if err != nil {
				return signal, err
			}
			if !ok {
				if ch.Verbose {
					log.Debugf("chain: amp %d halted in round %d", n, round)
				}
				return signal, nil
			}
			signal = value
		}
	}
}

// Best tries every ordering of phases on a fresh default chain.
func Best(program cpu.Program, phases []int64, feedback bool) (signal int64, order []int64, err error) {
	return New(program, len(phases)).Best(phases, feedback)
}

// Best tries every ordering of phases on the chain, returning the largest
// final signal and the ordering that produced it. The chain must have one
// machine per phase.
func (ch *Chain) Best(phases []int64, feedback bool) (signal int64, order []int64, err error) {
	if len(phases) == 0 {
		err = ErrNoPhases
		return
	}

	found := false
	for perm := range internal.Permutations(phases) {
		var value int64
		if feedback {
			value, err = ch.Feedback(perm, 0)
		} else {
			value, err = ch.Serial(perm, 0)
		}
		if err != nil {
			return
		}

		if !found || value > signal {
			found = true
			signal = value
			order = perm
		}
	}

	return
}
