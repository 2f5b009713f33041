package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.starlark.net/starlark"

	"github.com/ezrec/intcode/script"
)

var scriptCmd = &cobra.Command{
	Use:   "script [flags] file.star",
	Short: "Drive machines from a Starlark script.",
	Long: `Execute a Starlark script with the builtins parse(), machine() and
permutations(). With --program the global PROGRAM holds its cells. The
script's "result" global is printed when set.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd, nil)
		if err != nil {
			return
		}

		program, _ := cmd.Flags().GetString("program")
		if len(program) != 0 {
			cfg.Program = program
		}

		sc := &script.Script{
			Verbose: cfg.Verbose,
			Output:  os.Stdout,
			Globals: starlark.StringDict{},
		}

		if len(cfg.Program) != 0 {
			prog, err := cfg.LoadProgram()
			if err != nil {
				return err
			}
			sc.Globals["PROGRAM"] = script.ProgramValue(prog)
		}

		result, err := sc.Run(args[0], nil)
		if err != nil {
			return
		}

		if result != starlark.None {
			fmt.Println(result.String())
		}
		return
	},
}

func init() {
	scriptCmd.Flags().String("program", "", "program file to load as PROGRAM")
}
