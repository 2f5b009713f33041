// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/ezrec/intcode/config"
	"github.com/ezrec/intcode/cpu"
)

var rootCmd = &cobra.Command{
	Use:   "intcode",
	Short: "Run tape machine programs.",
	Long:  "Run, chain, script and disassemble tape machine programs.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if getFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "trace every instruction")
	rootCmd.PersistentFlags().StringP("config", "c", "", "YAML run configuration")
	rootCmd.PersistentFlags().Bool("strict", false, "reject unknown opcodes, modes and immediate writes")
	rootCmd.PersistentFlags().Int64("limit", 0, "memory limit in cells (0 is unlimited)")
	rootCmd.PersistentFlags().StringArray("patch", nil, "store values before running, as addr=value[,value...]")
}

// Get an expected flag, or exit if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// parsePatch parses an addr=value[,value...] patch.
func parsePatch(text string) (addr int, values []int64, err error) {
	where, what, ok := strings.Cut(text, "=")
	if !ok {
		err = fmt.Errorf("patch '%v': missing '='", text)
		return
	}

	addr, err = strconv.Atoi(strings.TrimSpace(where))
	if err != nil {
		return
	}
	if addr < 0 {
		err = config.ErrPatch
		return
	}

	values, err = cpu.ParseProgramString(what)
	return
}

// loadConfig builds the run configuration from --config, the optional
// program argument, and the command line flags, in increasing precedence.
func loadConfig(cmd *cobra.Command, args []string) (cfg *config.Config, err error) {
	path, _ := cmd.Flags().GetString("config")
	if len(path) != 0 {
		cfg, err = config.Load(path)
		if err != nil {
			return
		}
	} else {
		cfg = config.Default()
	}

	if len(args) > 0 {
		cfg.Program = args[0]
	}

	flags := cmd.Flags()
	if flags.Changed("verbose") {
		cfg.Verbose, _ = flags.GetBool("verbose")
	}
	if flags.Changed("strict") {
		cfg.Strict, _ = flags.GetBool("strict")
	}
	if flags.Changed("limit") {
		cfg.MemoryLimit, _ = flags.GetInt64("limit")
	}

	patches, _ := flags.GetStringArray("patch")
	for _, patch := range patches {
		var addr int
		var values []int64
		addr, values, err = parsePatch(patch)
		if err != nil {
			return
		}
		if cfg.Patch == nil {
			cfg.Patch = map[int][]int64{}
		}
		cfg.Patch[addr] = values
	}

	if cfg.Verbose {
		log.SetLevel(log.DebugLevel)
	}

	err = cfg.Validate()
	return
}

func main() {
	rootCmd.AddCommand(runCmd, chainCmd, scriptCmd, disasmCmd)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
