package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/google/subcommands"
	"github.com/peterh/liner"

	"ibc/unit"
)

type replCmd struct{}

func (*replCmd) Name() string { return "repl" }

func (*replCmd) Synopsis() string { return "Interactively compile and run one line at a time." }

func (*replCmd) Usage() string {
	return `repl:
Read a line, compile it, and run it immediately. The dialect has no
persistent state (§6), so each line is its own independent program.
`
}

func (*replCmd) SetFlags(f *flag.FlagSet) {}

func (*replCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...any) subcommands.ExitStatus {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	for {
		input, err := line.Prompt("ibc> ")
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) {
				return subcommands.ExitSuccess
			}
			slog.Error("error reading line", "error", err)
			return subcommands.ExitFailure
		}
		line.AppendHistory(input)

		u := unit.New(os.Stdout, nil)
		if errCount := u.CompileSource(input); errCount > 0 {
			continue
		}
		u.RunCode()
	}
}
