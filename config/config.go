// Package config loads run configurations for the intcode command.
package config

import (
	"errors"
	"io"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/ezrec/intcode/cpu"
	"github.com/ezrec/intcode/translate"
)

var f = translate.From

var (
	ErrIoMode      = errors.New(f("io mode must be tape or ascii"))
	ErrMemoryLimit = errors.New(f("memory limit out of range"))
	ErrPatch       = errors.New(f("patch address must not be negative"))
	ErrNoProgram   = errors.New(f("no program"))
)

// I/O modes of a run.
const (
	IO_TAPE  = "tape"
	IO_ASCII = "ascii"
)

// Chain configures an amplifier chain run.
type Chain struct {
	Phases   []int64 `yaml:"phases"`
	Feedback bool    `yaml:"feedback"`
	Best     bool    `yaml:"best"`
}

// Config is a run configuration.
type Config struct {
	Path string `yaml:"-"` // File the configuration was loaded from.

	Program     string          `yaml:"program"`
	Strict      bool            `yaml:"strict"`
	MemoryLimit int64           `yaml:"memory_limit"`
	Verbose     bool            `yaml:"verbose"`
	Signal      int64           `yaml:"signal"`
	Io          string          `yaml:"io"`
	Inputs      []int64         `yaml:"inputs"`
	Patch       map[int][]int64 `yaml:"patch"`
	Chain       Chain           `yaml:"chain"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Io: IO_TAPE,
	}
}

// Load parses a configuration file over the defaults.
// A relative program path is taken relative to the file.
func Load(path string) (cfg *Config, err error) {
	file, err := os.Open(path)
	if err != nil {
		return
	}
	defer file.Close()

	cfg, err = Parse(file)
	if err != nil {
		return
	}

	cfg.Path = path
	if len(cfg.Program) != 0 && !filepath.IsAbs(cfg.Program) {
		cfg.Program = filepath.Join(filepath.Dir(path), cfg.Program)
	}

	return
}

// Parse decodes a configuration over the defaults. Unknown keys are errors.
func Parse(r io.Reader) (cfg *Config, err error) {
	cfg = Default()

	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	err = decoder.Decode(cfg)
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		cfg = nil
		return
	}

	err = cfg.Validate()
	if err != nil {
		cfg = nil
	}

	return
}

// Validate checks the configuration for consistency.
func (cfg *Config) Validate() (err error) {
	switch cfg.Io {
	case IO_TAPE, IO_ASCII:
	default:
		return ErrIoMode
	}

	if cfg.MemoryLimit < 0 || cfg.MemoryLimit > cpu.MEMORY_MAX {
		return ErrMemoryLimit
	}

	for addr := range cfg.Patch {
		if addr < 0 {
			return ErrPatch
		}
	}

	return
}

// LoadProgram reads the configured program and applies its patches.
func (cfg *Config) LoadProgram() (prog cpu.Program, err error) {
	if len(cfg.Program) == 0 {
		err = ErrNoProgram
		return
	}

	file, err := os.Open(cfg.Program)
	if err != nil {
		return
	}
	defer file.Close()

	prog, err = cpu.ParseProgram(file)
	if err != nil {
		return
	}

	return cfg.Apply(prog), nil
}

// Apply returns a copy of prog with the configured patches stored.
func (cfg *Config) Apply(prog cpu.Program) cpu.Program {
	for addr, values := range cfg.Patch {
		prog = prog.Patch(addr, values...)
	}
	return prog
}

// Machine creates a machine for prog with the configured options.
func (cfg *Config) Machine(prog cpu.Program) (m *cpu.Machine) {
	m = cpu.NewMachine(prog)
	m.Strict = cfg.Strict
	m.Mem.Limit = cfg.MemoryLimit
	m.Verbose = cfg.Verbose
	return
}
