package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"ibc/unit"
)

type runCmd struct {
	recreateFirst bool
}

func (*runCmd) Name() string { return "run" }

func (*runCmd) Synopsis() string { return "Compile and run a source program." }

func (*runCmd) Usage() string {
	return `run [-r] <source-file>:
Compile the given source file and execute it. With -r, print each line's
recreated canonical form before executing.
`
}

func (c *runCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.recreateFirst, "r", false, "print the recreated program before executing")
}

func (c *runCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: ibc run [-r] <source-file>")
		return subcommands.ExitUsageError
	}

	for _, file := range f.Args() {
		input, err := os.ReadFile(file)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error reading %s: %s\n", file, err)
			return subcommands.ExitFailure
		}

		u := unit.New(os.Stdout, nil)
		if errCount := u.CompileSource(string(input)); errCount > 0 {
			fmt.Println("contains errors, program not run")
			return subcommands.ExitFailure
		}

		if c.recreateFirst {
			fmt.Println("Program:")
			for _, line := range u.Recreate() {
				fmt.Println(line)
			}
			fmt.Println("Executing...")
		}

		if !u.RunCode() {
			return subcommands.ExitFailure
		}
	}
	return subcommands.ExitSuccess
}
