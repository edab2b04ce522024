// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ezrec/regmach/translate"
)

var f = translate.From

func init() {
	log.SetFlags(0)
	log.SetPrefix(fmt.Sprintf("%s: ", filepath.Base(os.Args[0])))
}

func main() {
	err := newRootCommand().Execute()
	if err != nil {
		os.Exit(1)
	}
}

// newRootCommand builds the command tree.
func newRootCommand() *cobra.Command {
	opts := &runOptions{}

	root := &cobra.Command{
		Use:   "regmach [flags] PROGRAM",
		Short: f("Register machine interpreter"),
		Long: f(`Reads a register machine program, validates it, and runs it.
When the program halts, its total cost is reported.`),
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			opts.seedSet = cmd.Flags().Changed("seed")
			err = opts.run(args[0], cmd.OutOrStdout())
			if err != nil {
				log.Printf("%v: %v", args[0], err)
			}
			return
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true

	flags := root.Flags()
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, f("Verbose mode"))
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, f("Do not print status lines"))
	flags.StringVarP(&opts.input, "input", "i", "-", f("READ input file"))
	flags.StringVarP(&opts.output, "output", "o", "-", f("WRITE output file"))
	flags.StringVarP(&opts.registers, "registers", "R", "", f("Starlark script presetting registers r0-r9"))
	flags.Uint64Var(&opts.seed, "seed", 0, f("Fixed seed for the initial register values"))

	root.AddCommand(newCheckCommand())

	return root
}
