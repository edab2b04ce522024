package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/spf13/cobra"
)

// newCheckCommand builds the command that validates programs without running them.
func newCheckCommand() *cobra.Command {
	var list bool
	var verbose bool

	check := &cobra.Command{
		Use:          "check PROGRAM...",
		Short:        f("Validate programs without running them"),
		Args:         cobra.MinimumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			out := cmd.OutOrStdout()
			for _, path := range args {
				prog, perr := loadProgram(path, verbose)
				if perr != nil {
					log.Printf("%v: %v", path, perr)
					err = perr
					continue
				}
				if list {
					fmt.Fprint(out, prog.String())
				} else {
					fmt.Fprintln(out, f("%v: ok (lines: %v)", path, strconv.Itoa(prog.Len())))
				}
			}
			return
		},
	}

	check.Flags().BoolVarP(&list, "list", "l", false, f("List the decoded program"))
	check.Flags().BoolVarP(&verbose, "verbose", "v", false, f("Verbose mode"))

	return check
}
