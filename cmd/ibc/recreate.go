package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"ibc/unit"
)

type recreateCmd struct{}

func (*recreateCmd) Name() string { return "recreate" }

func (*recreateCmd) Synopsis() string { return "Compile a program and print its canonical form." }

func (*recreateCmd) Usage() string {
	return `recreate <source-file>:
Compile the given source file and print each line's recreated canonical
text, without executing it.
`
}

func (*recreateCmd) SetFlags(f *flag.FlagSet) {}

func (*recreateCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: ibc recreate <source-file>")
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
		for _, line := range u.Recreate() {
			fmt.Println(line)
		}
	}
	return subcommands.ExitSuccess
}
