package main

import (
	"os"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/emulator"
	"github.com/ezrec/intcode/io"
)

var runCmd = &cobra.Command{
	Use:   "run [flags] [program]",
	Short: "Run a program against standard input and output.",
	Long: `Run a program to completion. Inputs come from --input or the
configuration when given, otherwise from standard input.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return
		}

		flags := cmd.Flags()
		if flags.Changed("input") {
			cfg.Inputs, _ = flags.GetInt64Slice("input")
		}
		if flags.Changed("signal") {
			cfg.Signal, _ = flags.GetInt64("signal")
		}
		if getFlag(cmd, "ascii") {
			cfg.Io = config.IO_ASCII
		}

		prog, err := cfg.LoadProgram()
		if err != nil {
			return
		}

		var input, output io.Channel
		switch cfg.Io {
		case config.IO_ASCII:
			ascii := &io.Ascii{Input: os.Stdin, Output: os.Stdout}
			input, output = ascii, ascii
		default:
			tape := &io.Tape{Input: os.Stdin, Output: os.Stdout}
			if term.IsTerminal(int(os.Stdin.Fd())) {
				tape.Prompt = "? "
				tape.PromptOutput = os.Stderr
			}
			input, output = tape, tape
		}

		if len(cfg.Inputs) != 0 {
			input = io.NewQueue(cfg.Inputs...)
		}

		emu := emulator.NewEmulator(prog, input, output)
		emu.Machine = cfg.Machine(prog)
		emu.Verbose = cfg.Verbose
		emu.Signal = cfg.Signal

		err = emu.Run()
		if err != nil {
			log.Debugf("%v: machine state\n%v", cfg.Program, emu.Machine.String())
		}

		return
	},
}

func init() {
	runCmd.Flags().Int64Slice("input", nil, "explicit inputs, in order")
	runCmd.Flags().Int64("signal", 0, "fallback value when no input is left")
	runCmd.Flags().Bool("ascii", false, "character I/O instead of decimal")
}
