package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/chain"
	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/cpu"
)

// newChain builds a chain of one machine per configured phase, carrying
// the configured machine options.
func newChain(cfg *config.Config, prog cpu.Program) (ch *chain.Chain) {
	ch = chain.New(prog, len(cfg.Chain.Phases))
	ch.Verbose = cfg.Verbose
	ch.Strict = cfg.Strict
	ch.Limit = cfg.MemoryLimit
	return
}

var chainCmd = &cobra.Command{
	Use:   "chain [flags] [program]",
	Short: "Run a program as an amplifier chain.",
	Long: `Run one machine per phase, each taking its phase as first input and
the previous machine's output as its signal. With --feedback the last
machine feeds the first until a machine halts. With --best every
ordering of the phases is tried.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) (err error) {
		cfg, err := loadConfig(cmd, args)
		if err != nil {
			return
		}

		flags := cmd.Flags()
		if flags.Changed("phases") {
			cfg.Chain.Phases, _ = flags.GetInt64Slice("phases")
		}
		if flags.Changed("feedback") {
			cfg.Chain.Feedback = getFlag(cmd, "feedback")
		}
		if flags.Changed("best") {
			cfg.Chain.Best = getFlag(cmd, "best")
		}
		if flags.Changed("signal") {
			cfg.Signal, _ = flags.GetInt64("signal")
		}

		prog, err := cfg.LoadProgram()
		if err != nil {
			return
		}

		ch := newChain(cfg, prog)

		if cfg.Chain.Best {
			signal, order, err := ch.Best(cfg.Chain.Phases, cfg.Chain.Feedback)
			if err != nil {
				return err
			}
			fmt.Printf("%d %v\n", signal, order)
			return nil
		}

		var signal int64
		if cfg.Chain.Feedback {
			signal, err = ch.Feedback(cfg.Chain.Phases, cfg.Signal)
		} else {
			signal, err = ch.Serial(cfg.Chain.Phases, cfg.Signal)
		}
		if err != nil {
			return
		}

		fmt.Println(signal)
		return
	},
}

func init() {
	chainCmd.Flags().Int64Slice("phases", []int64{0, 1, 2, 3, 4}, "phase of each amplifier")
	chainCmd.Flags().Bool("feedback", false, "loop the last amplifier back to the first")
	chainCmd.Flags().Bool("best", false, "search every ordering of the phases")
	chainCmd.Flags().Int64("signal", 0, "initial signal")
}
