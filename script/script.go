// Package script runs Starlark programs that drive tape machines. A script
// is the caller-side scheduler: it creates machines, feeds them inputs,
// routes their outputs, and leaves its answer in the global "result".
package script

import (
	"fmt"
	"io"

	log "github.com/sirupsen/logrus"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/internal"
)

// RESULT is the global a script assigns its answer to.
const RESULT = "result"

// Script is the execution context of a Starlark scheduler.
type Script struct {
	Verbose bool      // If set, log machine creation.
	Output  io.Writer // Destination of print(); discarded if nil.

	Globals starlark.StringDict // Extra predeclared values.
}

// predeclared returns the builtins visible to every script.
func (sc *Script) predeclared() (pred starlark.StringDict) {
	pred = starlark.StringDict{
		"parse":        starlark.NewBuiltin("parse", builtinParse),
		"machine":      starlark.NewBuiltin("machine", sc.builtinMachine),
		"permutations": starlark.NewBuiltin("permutations", builtinPermutations),
	}

	for key, value := range sc.Globals {
		pred[key] = value
	}

	return
}

// Run executes a script, returning its result global, or None if unset.
// src may be anything accepted by starlark.ExecFileOptions.
func (sc *Script) Run(filename string, src any) (result starlark.Value, err error) {
	thread := starlark.Thread{
		Name: filename,
		Print: func(thread *starlark.Thread, msg string) {
			if sc.Output != nil {
				fmt.Fprintln(sc.Output, msg)
			}
		},
	}
	opts := syntax.FileOptions{
		Set:             true,
		While:           true,
		TopLevelControl: true,
		GlobalReassign:  true,
		Recursion:       true,
	}

	dict, err := starlark.ExecFileOptions(&opts, &thread, filename, src, sc.predeclared())
	if err != nil {
		return
	}

	result, ok := dict[RESULT]
	if !ok {
		result = starlark.None
	}

	return
}

// ProgramValue converts a program to a Starlark list.
func ProgramValue(prog cpu.Program) *starlark.List {
	return toList(prog)
}

// toInt64 converts a Starlark int to int64.
func toInt64(value starlark.Value) (out int64, err error) {
	err = starlark.AsInt(value, &out)
	return
}

// toList converts values to a Starlark list of ints.
func toList(values []int64) *starlark.List {
	elems := make([]starlark.Value, len(values))
	for n, value := range values {
		elems[n] = starlark.MakeInt64(value)
	}
	return starlark.NewList(elems)
}

// toProgram converts a Starlark program text or iterable of ints.
func toProgram(value starlark.Value) (prog cpu.Program, err error) {
	if text, ok := starlark.AsString(value); ok {
		return cpu.ParseProgramString(text)
	}

	iterable, ok := value.(starlark.Iterable)
	if !ok {
		err = fmt.Errorf("got %s, want string or list of int", value.Type())
		return
	}

	iter := iterable.Iterate()
	defer iter.Done()

	var elem starlark.Value
	for iter.Next(&elem) {
		var cell int64
		cell, err = toInt64(elem)
		if err != nil {
			return
		}
		prog = append(prog, cell)
	}

	return
}

// parse(text) returns the program cells of text as a list.
func builtinParse(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text string
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &text)
	if err != nil {
		return nil, err
	}

	prog, err := cpu.ParseProgramString(text)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	return toList(prog), nil
}

// machine(program, limit=0, strict=False) creates a machine.
func (sc *Script) builtinMachine(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var st_program starlark.Value
	var limit int
	var strict bool
	err := starlark.UnpackArgs(b.Name(), args, kwargs, "program", &st_program, "limit?", &limit, "strict?", &strict)
	if err != nil {
		return nil, err
	}

	prog, err := toProgram(st_program)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b.Name(), err)
	}

	if limit < 0 || int64(limit) > cpu.MEMORY_MAX {
		return nil, fmt.Errorf("%s: limit %d out of range", b.Name(), limit)
	}

	m := cpu.NewMachine(prog)
	m.Mem.Limit = int64(limit)
	m.Strict = strict
	m.Verbose = sc.Verbose

	if sc.Verbose {
		log.Debugf("script: %v: machine of %d cells", thread.Name, len(prog))
	}

	return &Machine{Machine: m}, nil
}

// permutations(items) returns every ordering of items as a list of lists.
func builtinPermutations(thread *starlark.Thread, b *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var iterable starlark.Iterable
	err := starlark.UnpackPositionalArgs(b.Name(), args, kwargs, 1, &iterable)
	if err != nil {
		return nil, err
	}

	var items []starlark.Value
	iter := iterable.Iterate()
	defer iter.Done()
	var elem starlark.Value
	for iter.Next(&elem) {
		items = append(items, elem)
	}

	var perms []starlark.Value
	for perm := range internal.Permutations(items) {
		perms = append(perms, starlark.NewList(perm))
	}

	return starlark.NewList(perms), nil
}
