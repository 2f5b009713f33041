package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/cpu"
)

var disasmCmd = &cobra.Command{
	Use:   "disasm [program]",
	Short: "List the instructions of a program.",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return
		}

		prog, err := cfg.LoadProgram()
		if err != nil {
			return
		}

		fmt.Print(cpu.Listing(prog))
		return
	},
}
