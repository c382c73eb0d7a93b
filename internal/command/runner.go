package command

import (
	"flag"
	"fmt"
	"os"

	"github.com/witvcs/wit/internal/fs"
	"github.com/witvcs/wit/internal/log"
	"github.com/witvcs/wit/internal/vcserr"
)

// RunCLI parses arguments, resolves the target command through the tree,
// applies its flags and runs it. Returns the process exit code. Expected
// errors (user mistakes, preconditions) print plainly; anything else is
// logged with a stack through the structured logger. Nothing panics.
func RunCLI(args []string) int {
	defer log.Sync()

	if len(args) == 0 {
		printUsage(os.Stderr)
		return 1
	}

	node, remaining, err := ResolveCommand(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "wit: unknown command %q\n\n", args[0])
		printUsage(os.Stderr)
		return 1
	}
	cmd := node.Cmd

	flags := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	cmd.Flags(flags)
	if err := flags.Parse(remaining); err != nil {
		return 1
	}

	ctx := &Context{
		Args:  flags.Args(),
		Flags: flags,
		FS:    fs.NewOSFS(),
	}

	if err := cmd.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "wit: %v\n", err)
		if !vcserr.IsExpected(err) {
			log.L().Errorw("command failed", "command", cmd.Name(), "error", err)
		}
		return 1
	}
	return 0
}

func printUsage(w *os.File) {
	fmt.Fprintln(w, "Usage: wit <command> [args...]")
	fmt.Fprintln(w, "Commands:")
	for _, cmd := range AllCommands() {
		fmt.Fprintf(w, "  %-10s %s\n", cmd.Name(), cmd.Brief())
	}
}
